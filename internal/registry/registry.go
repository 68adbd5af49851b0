// internal/registry/registry.go
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrActivityNotFound  = errors.New("ACTIVITY_NOT_FOUND")
	ErrAlreadyRegistered = errors.New("ALREADY_REGISTERED")
	ErrNotRegistered     = errors.New("NOT_REGISTERED")
)

// Registry holds the authoritative activity -> record mapping. The activity
// set is fixed after construction; only participant membership varies. One
// mutex guards the whole registry, closing the check-then-mutate race
// between concurrent requests on the same activity.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]Activity
}

// New builds a registry from a roster. The roster is deep-copied; duplicate
// participant emails within an activity are dropped, keeping the first
// occurrence, so the uniqueness invariant holds from the start.
func New(roster map[string]Activity) *Registry {
	activities := make(map[string]Activity, len(roster))
	for name, activity := range roster {
		clean := activity.clone()
		clean.Participants = dedupe(clean.Participants)
		activities[name] = clean
	}
	return &Registry{activities: activities}
}

// List returns a snapshot of the full mapping. Participant order is signup
// order.
func (r *Registry) List() map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Activity, len(r.activities))
	for name, activity := range r.activities {
		out[name] = activity.clone()
	}
	return out
}

// Names returns the sorted activity names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.activities))
	for name := range r.activities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a snapshot of one activity.
func (r *Registry) Get(name string) (Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, exists := r.activities[name]
	if !exists {
		return Activity{}, fmt.Errorf("%w: %s", ErrActivityNotFound, name)
	}
	return activity.clone(), nil
}

// Signup appends email to the named activity's participant list. It fails
// with ErrActivityNotFound for an unknown activity and ErrAlreadyRegistered
// for a duplicate email; failures leave the registry unchanged.
func (r *Registry) Signup(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, exists := r.activities[name]
	if !exists {
		return fmt.Errorf("%w: %s", ErrActivityNotFound, name)
	}
	if activity.hasParticipant(email) {
		return fmt.Errorf("%w: %s in %s", ErrAlreadyRegistered, email, name)
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity
	return nil
}

// Unregister removes email from the named activity's participant list. It
// fails with ErrActivityNotFound for an unknown activity and
// ErrNotRegistered when the email is absent; failures leave the registry
// unchanged.
func (r *Registry) Unregister(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, exists := r.activities[name]
	if !exists {
		return fmt.Errorf("%w: %s", ErrActivityNotFound, name)
	}

	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			r.activities[name] = activity
			return nil
		}
	}
	return fmt.Errorf("%w: %s in %s", ErrNotRegistered, email, name)
}

// ParticipantCount returns the current number of sign-ups for an activity,
// or 0 for an unknown name.
func (r *Registry) ParticipantCount(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.activities[name].Participants)
}

func dedupe(emails []string) []string {
	seen := make(map[string]bool, len(emails))
	out := emails[:0]
	for _, e := range emails {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
