// internal/workers/brief/generate-brief/models.go
package generatebrief

import "creator-match-workers/internal/brief"

type Input struct {
	CampaignID   string `json:"campaignId"`
	CreatorID    string `json:"creatorId"`
	ForceRefresh bool   `json:"forceRefresh,omitempty"`
}

type Output struct {
	Brief      brief.Output `json:"brief"`
	Cached     bool         `json:"cached"`
	Provider   string       `json:"provider"`
	Model      string       `json:"model"`
	Attempts   int          `json:"attempts"`
	PromptHash string       `json:"promptHash"`
}
