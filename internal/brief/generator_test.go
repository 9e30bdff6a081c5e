// internal/brief/generator_test.go
package brief

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "creator-match-workers/internal/common/errors"
	"creator-match-workers/internal/common/logger"
)

// scriptedProvider replays a fixed sequence of responses and records the
// prompts it was called with.
type scriptedProvider struct {
	responses []string
	errs      []error
	prompts   []string
}

func (s *scriptedProvider) Name() string      { return "scripted" }
func (s *scriptedProvider) ModelName() string { return "scripted-v1" }

func (s *scriptedProvider) Generate(_ context.Context, prompt string) (string, error) {
	i := len(s.prompts)
	s.prompts = append(s.prompts, prompt)
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return s.responses[len(s.responses)-1], nil
}

func TestGenerator_FirstAttemptSucceeds(t *testing.T) {
	provider := &scriptedProvider{responses: []string{validBriefJSON(t)}}
	gen := NewGenerator(provider, 2, logger.NewNoOpLogger())

	out, attempts, err := gen.Generate(context.Background(), "the prompt")

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 1, attempts)
	require.Len(t, provider.prompts, 1)
	assert.Equal(t, "the prompt", provider.prompts[0])
}

func TestGenerator_RepairsUntilValid(t *testing.T) {
	provider := &scriptedProvider{responses: []string{
		"definitely not json",
		`{"outreachMessage": "hi", "contentIdeas": ["a"], "hookSuggestions": ["x", "y", "z"]}`,
		validBriefJSON(t),
	}}
	gen := NewGenerator(provider, 2, logger.NewNoOpLogger())

	out, attempts, err := gen.Generate(context.Background(), "the prompt")

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 3, attempts)
	require.Len(t, provider.prompts, 3)

	// Repair prompts carry the failed output and its problems.
	assert.Contains(t, provider.prompts[1], "the prompt")
	assert.Contains(t, provider.prompts[1], "definitely not json")
	assert.Contains(t, provider.prompts[1], "not valid JSON")
	assert.Contains(t, provider.prompts[2], "contentIdeas")
}

func TestGenerator_ExhaustsBudget(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"still not json"}}
	gen := NewGenerator(provider, 2, logger.NewNoOpLogger())

	out, attempts, err := gen.Generate(context.Background(), "the prompt")

	assert.Nil(t, out)
	assert.Equal(t, 3, attempts)
	assert.Len(t, provider.prompts, 3)

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeGenerationExhausted, stdErr.Code)
	assert.False(t, stdErr.Retryable)
	assert.Equal(t, 3, stdErr.Metadata["attempts"])
	assert.Contains(t, stdErr.Details, "not valid JSON")
}

func TestGenerator_ProviderErrorPropagatesImmediately(t *testing.T) {
	provider := &scriptedProvider{
		responses: []string{""},
		errs:      []error{errors.New("connection refused")},
	}
	gen := NewGenerator(provider, 2, logger.NewNoOpLogger())

	out, attempts, err := gen.Generate(context.Background(), "the prompt")

	assert.Nil(t, out)
	assert.Equal(t, 1, attempts)
	assert.Len(t, provider.prompts, 1)

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeProviderCallFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

func TestGenerator_ZeroRepairBudget(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"nope"}}
	gen := NewGenerator(provider, 0, logger.NewNoOpLogger())

	_, attempts, err := gen.Generate(context.Background(), "the prompt")

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.Len(t, provider.prompts, 1)
}
