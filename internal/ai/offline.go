// internal/ai/offline.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const (
	offlineProviderName = "offline"
	offlineModelName    = "offline-v1"
)

// OfflineProvider derives a schema-shaped response by pattern-extracting
// field values out of the prompt text itself. No network, deterministic for
// identical prompts.
type OfflineProvider struct{}

func NewOfflineProvider() *OfflineProvider {
	return &OfflineProvider{}
}

func (p *OfflineProvider) Name() string      { return offlineProviderName }
func (p *OfflineProvider) ModelName() string { return offlineModelName }

var nichesPattern = regexp.MustCompile(`"niches":\s*\[([^\]]+)\]`)

// Generate renders a contextually relevant brief from the prompt alone.
func (p *OfflineProvider) Generate(_ context.Context, prompt string) (string, error) {
	brand := extractFromPrompt(prompt, "brand")
	username := extractFromPrompt(prompt, "username")
	objective := extractFromPrompt(prompt, "objective")
	contentStyle := extractFromPrompt(prompt, "contentStyle")
	primaryHookType := extractFromPrompt(prompt, "primaryHookType")
	niches := extractNiches(prompt)

	brief := map[string]interface{}{
		"outreachMessage": fmt.Sprintf(
			"Hey @%s! We've been following your %s content and love your %s style, it's exactly the energy %s is looking for. We'd love to collaborate on our upcoming %s campaign and think your audience would genuinely connect with what we're building. Let's chat!",
			username, niches, contentStyle, brand, objective),
		"contentIdeas": []string{
			fmt.Sprintf("%s-style short: \"What I actually use from %s every day\", raw and authentic", primaryHookType, brand),
			fmt.Sprintf("%s integration: day-in-the-life showing %s fitting naturally into your routine", contentStyle, brand),
			fmt.Sprintf("Before/after transformation using %s's product, narrated in your voice", brand),
			fmt.Sprintf("\"Testing %s for 7 days\" mini-series documenting the honest experience", brand),
			fmt.Sprintf("Collab teaser: behind-the-scenes of creating content with the %s team", brand),
		},
		"hookSuggestions": []string{
			fmt.Sprintf("POV: you finally found a %s brand that actually gets it...", niches),
			fmt.Sprintf("I tested %s for a week so you don't have to, here's the truth", brand),
			fmt.Sprintf("Wait until you see what %s just dropped #%s", brand, strings.ReplaceAll(brand, " ", "")),
		},
	}

	// Raw JSON string, exactly as a real backend would return it.
	raw, err := json.Marshal(brief)
	if err != nil {
		return "", fmt.Errorf("marshal offline brief: %w", err)
	}
	return string(raw), nil
}

// extractFromPrompt looks for a JSON key in the prompt text. Falls back to
// the key name so the output stays schema-valid for arbitrary prompts.
func extractFromPrompt(prompt, key string) string {
	pattern := regexp.MustCompile(`"` + key + `":\s*"([^"]+)"`)
	if m := pattern.FindStringSubmatch(prompt); m != nil {
		return m[1]
	}
	return key
}

func extractNiches(prompt string) string {
	m := nichesPattern.FindStringSubmatch(prompt)
	if m == nil {
		return "your niche"
	}
	parts := strings.Split(m[1], ",")
	for i, p := range parts {
		parts[i] = strings.Trim(strings.TrimSpace(p), `"`)
	}
	return strings.Join(parts, " & ")
}
