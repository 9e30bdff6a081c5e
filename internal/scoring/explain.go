// internal/scoring/explain.go
package scoring

type tierBand struct {
	threshold float64
	label     string
}

// tier returns the first label whose threshold the score meets or exceeds.
// Bands must be ordered from highest threshold to lowest.
func tier(score float64, bands []tierBand, fallback string) string {
	for _, b := range bands {
		if score >= b.threshold {
			return b.label
		}
	}
	return fallback
}

// Explain maps a breakdown to one human-readable sentence per dimension.
// The tier cutoffs are the same named constants the engine scores with.
func Explain(breakdown ScoreBreakdown) []string {
	return []string{
		tier(breakdown.NicheScore,
			[]tierBand{
				{nicheStrongCutoff, "Strong niche alignment with campaign categories"},
				{1, "Partial niche overlap with campaign categories"},
			},
			"No niche overlap with campaign categories"),
		tier(breakdown.CountryScore,
			[]tierBand{
				{countryPrimaryScore, "Primary audience country matches campaign target"},
				{countrySecondaryScore, "Target country appears in secondary audience countries"},
			},
			"Audience country does not match campaign target"),
		tier(breakdown.EngagementScore,
			[]tierBand{
				{engagementHighCutoff, "High engagement rate"},
				{engagementModerateCutoff, "Moderate engagement rate"},
			},
			"Below-average engagement rate"),
		tier(breakdown.WatchTimeScore,
			[]tierBand{
				{100, "Watch time meets or exceeds campaign minimum"},
				{watchTimeNearCutoff, "Watch time slightly below campaign minimum"},
			},
			"Watch time significantly below campaign minimum"),
		tier(breakdown.FollowerFitScore,
			[]tierBand{
				{100, "Follower count within campaign budget range"},
				{followerNearCutoff, "Follower count close to campaign budget range"},
			},
			"Follower count outside campaign budget range"),
		tier(breakdown.HookAlignmentScore,
			[]tierBand{
				{100, "Hook style matches campaign preferred hooks"},
			},
			"Hook style does not match preferred campaign hooks"),
		tier(breakdown.GenderScore,
			[]tierBand{
				{genderStrongScore, "Audience gender aligns with campaign target"},
				{genderNeutralScore, "Audience gender partially aligns with campaign target"},
			},
			"Audience gender does not align with campaign target"),
		tier(breakdown.AgeScore,
			[]tierBand{
				{100, "Audience age range matches campaign target"},
			},
			"Audience age range differs from campaign target"),
		tier(breakdown.BrandSafetyScore,
			[]tierBand{
				{100, "No brand safety concerns"},
			},
			"Brand safety flags detected, penalty applied"),
	}
}

// WeightedContributions returns each sub-score multiplied by its weight
// (penalties negated), rounded to 2 decimals. Display and debugging only;
// it does not feed back into scoring.
func WeightedContributions(breakdown ScoreBreakdown) map[string]float64 {
	w := DefaultWeights
	return map[string]float64{
		"niche":         round2(breakdown.NicheScore * w.Niche),
		"country":       round2(breakdown.CountryScore * w.Country),
		"engagement":    round2(breakdown.EngagementScore * w.Engagement),
		"watchTime":     round2(breakdown.WatchTimeScore * w.WatchTime),
		"followerFit":   round2(breakdown.FollowerFitScore * w.FollowerFit),
		"hookAlignment": round2(breakdown.HookAlignmentScore * w.HookAlignment),
		"brandSafety":   round2(breakdown.BrandSafetyScore * w.BrandSafety),
		"gender":        round2(breakdown.GenderScore * w.Gender),
		"age":           round2(breakdown.AgeScore * w.Age),
		"penalties":     -round2(breakdown.Penalties),
	}
}
