// internal/models/campaign.go
package models

import "time"

// TargetGender values accepted on a campaign.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderAll    = "all"
)

// BudgetRange is the follower band a campaign budget is sized for.
// Stored as a JSON column; minFollowers <= maxFollowers is enforced at ingestion.
type BudgetRange struct {
	MinFollowers int `json:"minFollowers"`
	MaxFollowers int `json:"maxFollowers"`
}

// Campaign represents a brand campaign to be matched against creators.
// Immutable once scored against; owned by the persistence layer.
type Campaign struct {
	ID                 string      `json:"id"`
	Brand              string      `json:"brand"`
	Objective          string      `json:"objective"`
	TargetCountry      string      `json:"targetCountry"`
	TargetGender       string      `json:"targetGender"` // male | female | all
	TargetAgeRange     string      `json:"targetAgeRange"`
	Niches             []string    `json:"niches"`
	PreferredHookTypes []string    `json:"preferredHookTypes"`
	MinAvgWatchTime    int         `json:"minAvgWatchTime"` // seconds
	BudgetRange        BudgetRange `json:"budgetRange"`
	Tone               string      `json:"tone"`
	DoNotUseWords      []string    `json:"doNotUseWords"`
	CreatedAt          time.Time   `json:"createdAt"`
}
