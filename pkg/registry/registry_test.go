// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "task-registry.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeRegistry(t, `{
		"version": "1.0.0",
		"lastUpdated": "2026-08-31",
		"tasks": [
			{"taskType": "score-roster", "category": "matching", "retries": 3},
			{"taskType": "generate-brief", "category": "brief", "retries": 3}
		]
	}`)

	reg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", reg.Version)
	require.Len(t, reg.Tasks, 2)
	assert.Equal(t, "matching", reg.Tasks[0].Category)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeRegistry(t, `{not json`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse task registry")
}

func TestFind(t *testing.T) {
	reg := &TaskRegistry{Tasks: []Task{
		{TaskType: "score-roster"},
		{TaskType: "generate-brief"},
	}}

	require.NotNil(t, reg.Find("generate-brief"))
	assert.Equal(t, "generate-brief", reg.Find("generate-brief").TaskType)
	assert.Nil(t, reg.Find("unknown-task"))
}
