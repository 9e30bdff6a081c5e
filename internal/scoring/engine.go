// internal/scoring/engine.go
package scoring

import (
	"math"
	"sort"
	"strings"

	"creator-match-workers/internal/models"
)

// ScoreBreakdown holds the nine sub-scores, each in [0,100], plus the
// absolute penalty points (not normalized).
type ScoreBreakdown struct {
	NicheScore         float64 `json:"nicheScore"`
	CountryScore       float64 `json:"countryScore"`
	EngagementScore    float64 `json:"engagementScore"`
	WatchTimeScore     float64 `json:"watchTimeScore"`
	FollowerFitScore   float64 `json:"followerFitScore"`
	HookAlignmentScore float64 `json:"hookAlignmentScore"`
	BrandSafetyScore   float64 `json:"brandSafetyScore"`
	GenderScore        float64 `json:"genderScore"`
	AgeScore           float64 `json:"ageScore"`
	Penalties          float64 `json:"penalties"`
}

// MatchResult is the outcome of scoring one creator against one campaign.
// TotalScore is clamped to [0,100] and rounded to 2 decimals.
type MatchResult struct {
	Creator    models.Creator `json:"creator"`
	TotalScore float64        `json:"totalScore"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
	Reasons    []string       `json:"reasons,omitempty"`
}

// Score computes the full breakdown and weighted total for one pair.
// Pure and total: it never fails for well-formed inputs. Malformed records
// (e.g. budget min > max) are the ingestion layer's problem, not ours.
func Score(campaign *models.Campaign, creator *models.Creator) MatchResult {
	breakdown := ScoreBreakdown{
		NicheScore:         calcNicheScore(campaign, creator),
		CountryScore:       calcCountryScore(campaign, creator.Audience),
		EngagementScore:    calcEngagementScore(creator),
		WatchTimeScore:     calcWatchTimeScore(campaign, creator),
		FollowerFitScore:   calcFollowerFitScore(campaign.BudgetRange, creator),
		HookAlignmentScore: calcHookAlignmentScore(campaign, creator),
		BrandSafetyScore:   calcBrandSafetyScore(creator),
		GenderScore:        calcGenderScore(campaign, creator.Audience),
		AgeScore:           calcAgeScore(campaign, creator.Audience),
		Penalties:          calcPenalties(creator),
	}

	w := DefaultWeights
	raw := breakdown.NicheScore*w.Niche +
		breakdown.CountryScore*w.Country +
		breakdown.EngagementScore*w.Engagement +
		breakdown.WatchTimeScore*w.WatchTime +
		breakdown.FollowerFitScore*w.FollowerFit +
		breakdown.HookAlignmentScore*w.HookAlignment +
		breakdown.BrandSafetyScore*w.BrandSafety +
		breakdown.GenderScore*w.Gender +
		breakdown.AgeScore*w.Age

	return MatchResult{
		Creator:    *creator,
		TotalScore: round2(clamp100(raw - breakdown.Penalties)),
		Breakdown:  breakdown,
	}
}

// Rank scores every creator against the campaign, attaches reasons, sorts by
// total score descending (stable, so ties keep input order) and truncates to
// limit. limit <= 0 means no truncation.
func Rank(campaign *models.Campaign, creators []models.Creator, limit int) []MatchResult {
	results := make([]MatchResult, 0, len(creators))
	for i := range creators {
		r := Score(campaign, &creators[i])
		r.Reasons = Explain(r.Breakdown)
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Fraction of campaign niche tags present in the creator's tags, scaled to
// 100. A campaign with no niche tags has no requirement.
func calcNicheScore(campaign *models.Campaign, creator *models.Creator) float64 {
	if len(campaign.Niches) == 0 {
		return 100
	}
	creatorNiches := make(map[string]struct{}, len(creator.Niches))
	for _, n := range creator.Niches {
		creatorNiches[strings.ToLower(n)] = struct{}{}
	}
	matches := 0
	for _, n := range campaign.Niches {
		if _, ok := creatorNiches[strings.ToLower(n)]; ok {
			matches++
		}
	}
	return float64(matches) / float64(len(campaign.Niches)) * 100
}

// Target country at rank 0 of the audience list is a primary match; anywhere
// else is secondary.
func calcCountryScore(campaign *models.Campaign, audience models.Audience) float64 {
	target := strings.ToUpper(campaign.TargetCountry)
	for i, c := range audience.TopCountries {
		if strings.ToUpper(c) == target {
			if i == 0 {
				return countryPrimaryScore
			}
			return countrySecondaryScore
		}
	}
	return 0
}

// Linear interpolation between the configured floor and ceiling.
func calcEngagementScore(creator *models.Creator) float64 {
	rate := creator.EngagementRate
	if rate <= MinEngagementRate {
		return 0
	}
	if rate >= MaxEngagementRate {
		return 100
	}
	return (rate - MinEngagementRate) / (MaxEngagementRate - MinEngagementRate) * 100
}

// Meeting the campaign minimum is full score; below it is proportional.
func calcWatchTimeScore(campaign *models.Campaign, creator *models.Creator) float64 {
	if campaign.MinAvgWatchTime <= 0 {
		return 100
	}
	if creator.AvgWatchTime >= campaign.MinAvgWatchTime {
		return 100
	}
	return float64(creator.AvgWatchTime) / float64(campaign.MinAvgWatchTime) * 100
}

// Inside the band scores 100. Below, a sub-linear ramp that never reaches
// 100 (undersized creators carry more risk). Above, a softer decay.
func calcFollowerFitScore(band models.BudgetRange, creator *models.Creator) float64 {
	f := creator.Followers
	if f >= band.MinFollowers && f <= band.MaxFollowers {
		return 100
	}
	if f < band.MinFollowers {
		return math.Min(100, float64(f)/float64(band.MinFollowers)*underBandRampCap)
	}
	over := float64(f-band.MaxFollowers) / float64(band.MaxFollowers)
	return math.Max(0, 100-over*overBandPenaltySlope)
}

// Binary: the creator's primary hook type matches any preferred type.
func calcHookAlignmentScore(campaign *models.Campaign, creator *models.Creator) float64 {
	if len(campaign.PreferredHookTypes) == 0 {
		return 100
	}
	hook := strings.ToLower(creator.PrimaryHookType)
	for _, h := range campaign.PreferredHookTypes {
		if strings.ToLower(h) == hook {
			return 100
		}
	}
	return 0
}

func calcBrandSafetyScore(creator *models.Creator) float64 {
	if len(creator.BrandSafetyFlags) == 0 {
		return 100
	}
	return 0
}

// Tiered by the audience fraction matching the targeted gender.
func calcGenderScore(campaign *models.Campaign, audience models.Audience) float64 {
	if campaign.TargetGender == models.GenderAll {
		return 100
	}
	var fraction float64
	switch campaign.TargetGender {
	case models.GenderFemale:
		fraction = audience.GenderSplit.Female
	case models.GenderMale:
		fraction = audience.GenderSplit.Male
	}
	switch {
	case fraction >= genderStrongFraction:
		return genderStrongScore
	case fraction >= genderNeutralFraction:
		return genderNeutralScore
	case fraction >= genderWeakFraction:
		return genderWeakScore
	}
	return 0
}

func calcAgeScore(campaign *models.Campaign, audience models.Audience) float64 {
	if audience.TopAgeRange == campaign.TargetAgeRange {
		return 100
	}
	return 0
}

// Absolute deduction per brand safety flag, applied after weighting.
func calcPenalties(creator *models.Creator) float64 {
	return float64(len(creator.BrandSafetyFlags)) * PenaltyPerFlag
}

func clamp100(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
