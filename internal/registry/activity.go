// internal/registry/activity.go
package registry

// Activity describes one extracurricular activity. The activity name is the
// registry key and is not repeated inside the record, matching the wire
// format of GET /activities.
type Activity struct {
	Description string `json:"description"`
	Schedule    string `json:"schedule"`
	// MaxParticipants is advisory capacity metadata. Signup does not
	// enforce it.
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// clone returns a deep copy so registry snapshots are immune to later
// mutation of the shared state.
func (a Activity) clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

func (a Activity) hasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
