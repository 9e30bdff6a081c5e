// internal/brief/prompt.go
package brief

import (
	"encoding/json"
	"fmt"
	"strings"

	"creator-match-workers/internal/models"
)

// promptCampaign is the projection of a campaign that enters the prompt.
// Field order is fixed so identical inputs always marshal to identical bytes.
type promptCampaign struct {
	Brand              string   `json:"brand"`
	Objective          string   `json:"objective"`
	Niches             []string `json:"niches"`
	TargetCountry      string   `json:"targetCountry"`
	PreferredHookTypes []string `json:"preferredHookTypes"`
	Tone               string   `json:"tone"`
}

type promptCreator struct {
	Username        string   `json:"username"`
	Country         string   `json:"country"`
	Niches          []string `json:"niches"`
	Followers       int      `json:"followers"`
	ContentStyle    string   `json:"contentStyle"`
	PrimaryHookType string   `json:"primaryHookType"`
}

const responseExample = `{
  "outreachMessage": "string, a personalized DM to the creator",
  "contentIdeas": ["string", "string", "string", "string", "string"],
  "hookSuggestions": ["string", "string", "string"]
}`

// BuildPrompt renders the generation prompt for a campaign/creator pair.
// The result is byte-stable: the same pair always yields the same prompt,
// which is what makes the cache fingerprint meaningful.
func BuildPrompt(campaign *models.Campaign, creator *models.Creator) string {
	campaignJSON, _ := json.MarshalIndent(promptCampaign{
		Brand:              campaign.Brand,
		Objective:          campaign.Objective,
		Niches:             campaign.Niches,
		TargetCountry:      campaign.TargetCountry,
		PreferredHookTypes: campaign.PreferredHookTypes,
		Tone:               campaign.Tone,
	}, "", "  ")
	creatorJSON, _ := json.MarshalIndent(promptCreator{
		Username:        creator.Username,
		Country:         creator.Country,
		Niches:          creator.Niches,
		Followers:       creator.Followers,
		ContentStyle:    creator.ContentStyle,
		PrimaryHookType: creator.PrimaryHookType,
	}, "", "  ")

	var b strings.Builder
	b.WriteString("You are a creator marketing strategist. Write a collaboration brief for the creator below on behalf of the brand.\n\n")
	b.WriteString("CAMPAIGN:\n")
	b.Write(campaignJSON)
	b.WriteString("\n\nCREATOR:\n")
	b.Write(creatorJSON)
	b.WriteString("\n\nRespond with a single JSON object and nothing else, exactly this shape:\n")
	b.WriteString(responseExample)
	b.WriteString("\n\nRules:\n")
	b.WriteString("- outreachMessage is a warm, personal DM addressed to the creator by username.\n")
	b.WriteString("- contentIdeas holds exactly 5 distinct ideas tailored to the creator's content style.\n")
	b.WriteString("- hookSuggestions holds exactly 3 opening hooks matching the creator's primary hook type.\n")
	if campaign.Tone != "" {
		b.WriteString(fmt.Sprintf("- Keep the tone %s throughout.\n", campaign.Tone))
	}
	if len(campaign.DoNotUseWords) > 0 {
		b.WriteString(fmt.Sprintf("- Never use these words: %s.\n", strings.Join(campaign.DoNotUseWords, ", ")))
	}
	return b.String()
}

// BuildRepairPrompt extends the original prompt with the previous invalid
// output and the concrete validation failures, asking for a corrected
// response. Used on every attempt after the first.
func BuildRepairPrompt(originalPrompt, previousOutput string, validationErrors []string) string {
	var b strings.Builder
	b.WriteString(originalPrompt)
	b.WriteString("\n\nYour previous response was invalid.\n\nPREVIOUS RESPONSE:\n")
	b.WriteString(previousOutput)
	b.WriteString("\n\nPROBLEMS:\n")
	for _, e := range validationErrors {
		b.WriteString("- ")
		b.WriteString(e)
		b.WriteString("\n")
	}
	b.WriteString("\nReturn a corrected JSON object that fixes every problem listed. Respond with the JSON object only.")
	return b.String()
}
