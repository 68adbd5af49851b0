// internal/registry/seed.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"activity-signups/internal/common/validation"
)

// DefaultRoster returns the built-in Mergington High School roster used when
// no roster file is configured. A process restart always reverts to this
// dataset.
func DefaultRoster() map[string]Activity {
	return map[string]Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Competitive basketball team for intramural and inter-school tournaments",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu"},
		},
		"Soccer Club": {
			Description:     "Join our soccer team for friendly matches and skill development",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"lucas@mergington.edu", "isabella@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Perform in school plays and develop acting skills",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"ava@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Explore painting, drawing, and sculpture techniques",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"noah@mergington.edu", "mia@mergington.edu"},
		},
		"Robotics Club": {
			Description:     "Design and build robots for competitions and challenges",
			Schedule:        "Mondays and Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 14,
			Participants:    []string{"ethan@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Compete in debate tournaments and develop public speaking skills",
			Schedule:        "Tuesdays and Fridays, 3:30 PM - 4:30 PM",
			MaxParticipants: 12,
			Participants:    []string{"charlotte@mergington.edu", "benjamin@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}

// RosterFromJSON parses a roster document after validating its shape against
// the roster schema. Field-level validation errors are joined into the
// returned error.
func RosterFromJSON(data []byte) (map[string]Activity, error) {
	if err := validation.ValidateRoster(data); err != nil {
		return nil, err
	}

	var roster map[string]Activity
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}
	return roster, nil
}

// LoadRosterFile reads and validates a roster JSON file.
func LoadRosterFile(path string) (map[string]Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file %s: %w", path, err)
	}
	return RosterFromJSON(data)
}
