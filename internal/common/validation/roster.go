// Package validation checks roster documents against the activity schema
// before they seed the registry.
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// rosterSchema describes the on-disk roster format: a mapping from activity
// name to its record. Participant uniqueness is an activity invariant, not a
// document-shape rule, so it is enforced by the registry rather than here.
const rosterSchema = `{
  "type": "object",
  "minProperties": 1,
  "additionalProperties": {
    "type": "object",
    "properties": {
      "description": {"type": "string"},
      "schedule": {"type": "string"},
      "max_participants": {"type": "integer", "minimum": 1},
      "participants": {
        "type": "array",
        "items": {"type": "string"}
      }
    },
    "required": ["description", "schedule", "max_participants", "participants"],
    "additionalProperties": false
  }
}`

// ValidateRoster validates a roster JSON document. All field-level errors
// are reported at once.
func ValidateRoster(document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(rosterSchema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("roster validation failed: %w", err)
	}

	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return fmt.Errorf("invalid roster: %s", strings.Join(messages, "; "))
	}

	return nil
}
