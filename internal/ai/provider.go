// internal/ai/provider.go

// Package ai abstracts the text-generation backend behind a single
// capability: prompt in, raw text out. Nothing here parses or validates the
// response; that is the brief pipeline's job.
package ai

import (
	"context"

	"creator-match-workers/internal/common/config"
	"creator-match-workers/internal/common/logger"
)

// Provider is the generation boundary. Implementations must be safe for
// concurrent use.
type Provider interface {
	Name() string
	ModelName() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// FromConfig resolves the provider variant once per process lifetime.
// No credential means the offline deterministic variant: fully testable and
// runnable without network access. Callers may rely on this contract.
func FromConfig(ctx context.Context, cfg config.AIConfig, log logger.Logger) (Provider, error) {
	if cfg.GeminiAPIKey == "" {
		log.Info("no generation credential set, using offline provider", map[string]interface{}{
			"provider": offlineProviderName,
		})
		return NewOfflineProvider(), nil
	}

	provider, err := NewGeminiProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info("using live generation provider", map[string]interface{}{
		"provider": provider.Name(),
		"model":    provider.ModelName(),
	})
	return provider, nil
}
