// internal/workers/matching/score-roster/models.go
package scoreroster

import "creator-match-workers/internal/scoring"

type Input struct {
	CampaignID string `json:"campaignId"`
	Limit      int    `json:"limit,omitempty"`
}

type Output struct {
	CampaignID string                `json:"campaignId"`
	Matches    []scoring.MatchResult `json:"matches"`
	Evaluated  int                   `json:"evaluated"`
}
