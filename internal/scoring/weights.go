// internal/scoring/weights.go

// Package scoring ranks creators against campaigns and produces explainable
// per-dimension sub-scores. All functions are pure: no I/O, no shared state.
package scoring

// SchemaVersion pins the identity of the brief output schema. It participates
// in the generation cache fingerprint, so bumping it invalidates every cached
// brief without an explicit migration.
const SchemaVersion = "2.0.0"

// Weights is the versioned, immutable weight table for the nine positive
// scoring dimensions. The values sum to 1.0; penalties are subtracted after
// weighting and are not bound by the sum.
type Weights struct {
	Niche         float64
	Country       float64
	Engagement    float64
	WatchTime     float64
	FollowerFit   float64
	HookAlignment float64
	BrandSafety   float64
	Gender        float64
	Age           float64
}

// DefaultWeights is the single active weight table.
var DefaultWeights = Weights{
	Niche:         0.25,
	Country:       0.20,
	Engagement:    0.12,
	WatchTime:     0.12,
	FollowerFit:   0.12,
	HookAlignment: 0.10,
	BrandSafety:   0.05,
	Gender:        0.02,
	Age:           0.02,
}

// Scoring thresholds.
const (
	// MinEngagementRate scores 0 at or below; MaxEngagementRate scores 100
	// at or above. Rates in between interpolate linearly.
	MinEngagementRate = 0.02
	MaxEngagementRate = 0.15

	// PenaltyPerFlag is subtracted from the weighted total per brand safety
	// flag, in absolute points.
	PenaltyPerFlag = 5.0
)

// Score levels and tier cutoffs shared between the engine and the
// explanation tiers. Both sides read these constants so the reasons can
// never drift from the scores they describe.
const (
	countryPrimaryScore   = 100.0
	countrySecondaryScore = 60.0

	genderStrongFraction  = 0.7
	genderNeutralFraction = 0.5
	genderWeakFraction    = 0.4
	genderStrongScore     = 100.0
	genderNeutralScore    = 60.0
	genderWeakScore       = 30.0

	// Under the follower band the ramp tops out below 100; oversized reach
	// decays at half the rate.
	underBandRampCap     = 80.0
	overBandPenaltySlope = 50.0

	nicheStrongCutoff        = 80.0
	engagementHighCutoff     = 70.0
	engagementModerateCutoff = 30.0
	watchTimeNearCutoff      = 60.0
	followerNearCutoff       = 60.0
)
