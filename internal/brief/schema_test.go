// internal/brief/schema_test.go
package brief

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBriefJSON(t *testing.T) string {
	t.Helper()
	raw, err := json.Marshal(Output{
		OutreachMessage: "Hey @glowgirl, we love your work!",
		ContentIdeas:    []string{"a", "b", "c", "d", "e"},
		HookSuggestions: []string{"x", "y", "z"},
	})
	require.NoError(t, err)
	return string(raw)
}

func TestValidate_AcceptsWellFormedBrief(t *testing.T) {
	out, violations := Validate(validBriefJSON(t))

	require.Nil(t, violations)
	require.NotNil(t, out)
	assert.Len(t, out.ContentIdeas, 5)
	assert.Len(t, out.HookSuggestions, 3)
}

func TestValidate_StripsUnknownKeys(t *testing.T) {
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(validBriefJSON(t)), &doc))
	doc["callToAction"] = "buy now"
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	out, violations := Validate(string(raw))

	require.Nil(t, violations)
	require.NotNil(t, out)
	assert.Equal(t, "Hey @glowgirl, we love your work!", out.OutreachMessage)
}

func TestValidate_RejectsNonJSON(t *testing.T) {
	out, violations := Validate("Sure! Here is your brief: ...")

	assert.Nil(t, out)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "not valid JSON")
}

func TestValidate_SchemaViolations(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(m map[string]interface{})
		wantPath string
	}{
		{
			name:     "empty outreach message",
			mutate:   func(m map[string]interface{}) { m["outreachMessage"] = "" },
			wantPath: "outreachMessage",
		},
		{
			name:     "four content ideas",
			mutate:   func(m map[string]interface{}) { m["contentIdeas"] = []string{"a", "b", "c", "d"} },
			wantPath: "contentIdeas",
		},
		{
			name:     "six content ideas",
			mutate:   func(m map[string]interface{}) { m["contentIdeas"] = []string{"a", "b", "c", "d", "e", "f"} },
			wantPath: "contentIdeas",
		},
		{
			name:     "missing hook suggestions",
			mutate:   func(m map[string]interface{}) { delete(m, "hookSuggestions") },
			wantPath: "hookSuggestions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(validBriefJSON(t)), &doc))
			tt.mutate(doc)
			raw, err := json.Marshal(doc)
			require.NoError(t, err)

			out, violations := Validate(string(raw))

			assert.Nil(t, out)
			require.NotEmpty(t, violations)
			assert.Contains(t, strings.Join(violations, "\n"), tt.wantPath)
		})
	}
}
