// internal/models/creator.go
package models

// GenderSplit holds audience gender fractions; female + male sum to ~1.
type GenderSplit struct {
	Female float64 `json:"female"`
	Male   float64 `json:"male"`
}

// Audience is the creator's audience profile. Stored as a JSON column.
// TopCountries is ordered most to least prevalent.
type Audience struct {
	TopCountries []string    `json:"topCountries"`
	GenderSplit  GenderSplit `json:"genderSplit"`
	TopAgeRange  string      `json:"topAgeRange"`
}

// RecentPost is an opaque summary of a recent post. Not used by scoring.
type RecentPost struct {
	Caption  string `json:"caption"`
	HookType string `json:"hookType"`
	Views    int    `json:"views"`
}

// Creator represents a content creator available for matching.
type Creator struct {
	ID               string       `json:"id"`
	Username         string       `json:"username"`
	Country          string       `json:"country"`
	Niches           []string     `json:"niches"`
	Followers        int          `json:"followers"`
	EngagementRate   float64      `json:"engagementRate"` // fraction in [0,1]
	AvgWatchTime     int          `json:"avgWatchTime"`   // seconds
	ContentStyle     string       `json:"contentStyle"`
	PrimaryHookType  string       `json:"primaryHookType"`
	BrandSafetyFlags []string     `json:"brandSafetyFlags"` // empty = clean
	Audience         Audience     `json:"audience"`
	RecentPosts      []RecentPost `json:"recentPosts,omitempty"`
}
