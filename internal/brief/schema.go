// internal/brief/schema.go

// Package brief turns a campaign/creator pair into a schema-valid outreach
// brief via the generation provider, with bounded repair retries and a
// content-addressed cache.
package brief

import (
	"encoding/json"
	"fmt"

	"creator-match-workers/internal/common/validation"
)

// Output is the validated brief document. Its schema identity is pinned to
// scoring.SchemaVersion, which participates in the cache fingerprint.
type Output struct {
	OutreachMessage string   `json:"outreachMessage"`
	ContentIdeas    []string `json:"contentIdeas"`
	HookSuggestions []string `json:"hookSuggestions"`
}

// schemaJSON is the wire contract: non-empty message, exactly 5 content
// ideas, exactly 3 hook suggestions. Unknown keys are tolerated and dropped
// when decoding into Output, so a stray extra field never costs a repair
// attempt.
const schemaJSON = `{
	"type": "object",
	"required": ["outreachMessage", "contentIdeas", "hookSuggestions"],
	"properties": {
		"outreachMessage": {"type": "string", "minLength": 1},
		"contentIdeas": {
			"type": "array",
			"items": {"type": "string"},
			"minItems": 5,
			"maxItems": 5
		},
		"hookSuggestions": {
			"type": "array",
			"items": {"type": "string"},
			"minItems": 3,
			"maxItems": 3
		}
	}
}`

// Validate parses raw provider text and checks it against the brief schema.
// On success the parsed output is returned with a nil error list; on failure
// the output is nil and the list holds field-path-qualified messages.
func Validate(raw string) (*Output, []string) {
	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, []string{fmt.Sprintf("response is not valid JSON: %v", err)}
	}

	violations, err := validation.ValidateDocument(schemaJSON, doc)
	if err != nil {
		return nil, []string{err.Error()}
	}
	if len(violations) > 0 {
		return nil, violations
	}

	var out Output
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, []string{fmt.Sprintf("decode brief: %v", err)}
	}
	return &out, nil
}
