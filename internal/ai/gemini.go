// internal/ai/gemini.go
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"creator-match-workers/internal/common/config"
)

const geminiProviderName = "gemini"

// GeminiProvider is the live variant: it delegates to the Gemini API with
// JSON-object-constrained output at a fixed low temperature for
// reproducibility. The raw text comes back unparsed and unvalidated.
type GeminiProvider struct {
	client      *genai.Client
	modelName   string
	temperature float32
}

func NewGeminiProvider(ctx context.Context, cfg config.AIConfig) (*GeminiProvider, error) {
	apiKey := strings.TrimSpace(cfg.GeminiAPIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiProvider{
		client:      client,
		modelName:   cfg.Model,
		temperature: float32(cfg.Temperature),
	}, nil
}

func (p *GeminiProvider) Name() string      { return geminiProviderName }
func (p *GeminiProvider) ModelName() string { return p.modelName }

func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr(p.temperature),
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.modelName, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}
	return output, nil
}
