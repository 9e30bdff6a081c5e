// internal/brief/prompt_test.go
package brief

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creator-match-workers/internal/models"
)

func promptTestCampaign() *models.Campaign {
	return &models.Campaign{
		ID:                 "camp-1",
		Brand:              "GlowLab",
		Objective:          "brand awareness",
		TargetCountry:      "US",
		Niches:             []string{"beauty", "skincare"},
		PreferredHookTypes: []string{"POV", "question"},
		Tone:               "friendly",
		DoNotUseWords:      []string{"cheap", "miracle"},
	}
}

func promptTestCreator() *models.Creator {
	return &models.Creator{
		ID:              "cr-1",
		Username:        "glowgirl",
		Country:         "US",
		Niches:          []string{"beauty", "lifestyle"},
		Followers:       50000,
		ContentStyle:    "vlog",
		PrimaryHookType: "POV",
	}
}

func TestBuildPrompt_ByteStable(t *testing.T) {
	first := BuildPrompt(promptTestCampaign(), promptTestCreator())
	second := BuildPrompt(promptTestCampaign(), promptTestCreator())

	assert.Equal(t, first, second)
}

func TestBuildPrompt_IncludesProjectedFields(t *testing.T) {
	prompt := BuildPrompt(promptTestCampaign(), promptTestCreator())

	assert.Contains(t, prompt, `"brand": "GlowLab"`)
	assert.Contains(t, prompt, `"username": "glowgirl"`)
	assert.Contains(t, prompt, `"primaryHookType": "POV"`)
	assert.Contains(t, prompt, "Keep the tone friendly")
	assert.Contains(t, prompt, "Never use these words: cheap, miracle.")
	assert.Contains(t, prompt, `"outreachMessage"`)

	// Irrelevant campaign fields stay out of the prompt.
	assert.NotContains(t, prompt, "camp-1")
	assert.NotContains(t, prompt, "minFollowers")
}

func TestBuildPrompt_OmitsOptionalRulesWhenUnset(t *testing.T) {
	campaign := promptTestCampaign()
	campaign.Tone = ""
	campaign.DoNotUseWords = nil

	prompt := BuildPrompt(campaign, promptTestCreator())

	assert.NotContains(t, prompt, "Keep the tone")
	assert.NotContains(t, prompt, "Never use these words")
}

func TestBuildPrompt_DistinctPairsDistinctPrompts(t *testing.T) {
	base := BuildPrompt(promptTestCampaign(), promptTestCreator())

	other := promptTestCreator()
	other.Username = "fitnessguy"
	assert.NotEqual(t, base, BuildPrompt(promptTestCampaign(), other))
}

func TestBuildRepairPrompt(t *testing.T) {
	original := BuildPrompt(promptTestCampaign(), promptTestCreator())
	repair := BuildRepairPrompt(original, `{"outreachMessage": ""}`, []string{
		"outreachMessage: String length must be greater than or equal to 1",
		"contentIdeas: contentIdeas is required",
	})

	require.Contains(t, repair, original)
	assert.Contains(t, repair, "PREVIOUS RESPONSE:")
	assert.Contains(t, repair, `{"outreachMessage": ""}`)
	assert.Contains(t, repair, "- outreachMessage: String length must be greater than or equal to 1\n")
	assert.Contains(t, repair, "- contentIdeas: contentIdeas is required\n")
	assert.Contains(t, repair, "Return a corrected JSON object")
}
