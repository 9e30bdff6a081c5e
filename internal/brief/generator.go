// internal/brief/generator.go
package brief

import (
	"context"
	"strings"

	"creator-match-workers/internal/ai"
	apperrors "creator-match-workers/internal/common/errors"
	"creator-match-workers/internal/common/logger"
	"creator-match-workers/internal/common/metrics"
)

// Generator runs the generate-validate-repair loop around a provider.
// maxRepairAttempts counts repairs, not calls: a budget of 2 allows the
// initial attempt plus two repair attempts, three provider calls in total.
type Generator struct {
	provider          ai.Provider
	maxRepairAttempts int
	logger            logger.Logger
}

func NewGenerator(provider ai.Provider, maxRepairAttempts int, log logger.Logger) *Generator {
	if maxRepairAttempts < 0 {
		maxRepairAttempts = 0
	}
	return &Generator{
		provider:          provider,
		maxRepairAttempts: maxRepairAttempts,
		logger:            log,
	}
}

// Generate produces a schema-valid brief for the prompt. It returns the
// number of provider calls consumed alongside the result.
//
// Transport-level provider failures propagate immediately without consuming
// the repair budget; only malformed output triggers a repair attempt. When
// the budget is spent the terminal error carries the last validation failure.
func (g *Generator) Generate(ctx context.Context, prompt string) (*Output, int, error) {
	var (
		lastOutput string
		lastErrors []string
	)

	for attempt := 0; attempt <= g.maxRepairAttempts; attempt++ {
		activePrompt := prompt
		if attempt > 0 {
			activePrompt = BuildRepairPrompt(prompt, lastOutput, lastErrors)
		}

		raw, err := g.provider.Generate(ctx, activePrompt)
		if err != nil {
			return nil, attempt + 1, apperrors.NewProviderCallFailedError(err)
		}

		output, violations := Validate(raw)
		if output != nil {
			metrics.BriefGenerationAttempts.Observe(float64(attempt + 1))
			return output, attempt + 1, nil
		}

		lastOutput = raw
		lastErrors = violations
		g.logger.Warn("provider output failed validation, repairing", map[string]interface{}{
			"attempt":    attempt + 1,
			"violations": violations,
		})
	}

	attempts := g.maxRepairAttempts + 1
	metrics.BriefGenerationAttempts.Observe(float64(attempts))
	return nil, attempts, apperrors.NewGenerationExhaustedError(attempts, strings.Join(lastErrors, "; "))
}
