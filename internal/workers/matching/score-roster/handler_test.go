// internal/workers/matching/score-roster/handler_test.go
package scoreroster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "creator-match-workers/internal/common/errors"
	"creator-match-workers/internal/common/logger"
	"creator-match-workers/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

type stubStore struct {
	campaign *models.Campaign
	creators []models.Creator
	err      error
}

func (s *stubStore) GetCampaign(_ context.Context, id string) (*models.Campaign, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.campaign == nil || s.campaign.ID != id {
		return nil, apperrors.NewCampaignNotFoundError(id)
	}
	return s.campaign, nil
}

func (s *stubStore) ListCreators(_ context.Context) ([]models.Creator, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.creators, nil
}

func createTestCampaign() *models.Campaign {
	return &models.Campaign{
		ID:                 "camp-1",
		Brand:              "GlowLab",
		Objective:          "brand awareness",
		TargetCountry:      "US",
		TargetGender:       models.GenderAll,
		TargetAgeRange:     "18-24",
		Niches:             []string{"beauty"},
		PreferredHookTypes: []string{"POV"},
		MinAvgWatchTime:    20,
		BudgetRange:        models.BudgetRange{MinFollowers: 10000, MaxFollowers: 100000},
	}
}

func createTestCreator(id string, followers int, engagementRate float64) models.Creator {
	return models.Creator{
		ID:              id,
		Username:        "creator-" + id,
		Country:         "US",
		Niches:          []string{"beauty"},
		Followers:       followers,
		EngagementRate:  engagementRate,
		AvgWatchTime:    25,
		PrimaryHookType: "POV",
		Audience: models.Audience{
			TopCountries: []string{"US"},
			GenderSplit:  models.GenderSplit{Female: 0.6, Male: 0.4},
			TopAgeRange:  "18-24",
		},
	}
}

func newHandler(store rosterStore) *Handler {
	return NewHandler(LoadConfig(), store, logger.NewNoOpLogger())
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_RanksRoster(t *testing.T) {
	store := &stubStore{
		campaign: createTestCampaign(),
		creators: []models.Creator{
			createTestCreator("cr-weak", 500, 0.01),
			createTestCreator("cr-strong", 50000, 0.10),
		},
	}
	handler := newHandler(store)

	output, err := handler.Execute(context.Background(), &Input{CampaignID: "camp-1"})

	require.NoError(t, err)
	assert.Equal(t, "camp-1", output.CampaignID)
	assert.Equal(t, 2, output.Evaluated)
	require.Len(t, output.Matches, 2)
	assert.Equal(t, "cr-strong", output.Matches[0].Creator.ID)
	assert.Equal(t, "cr-weak", output.Matches[1].Creator.ID)
	assert.Greater(t, output.Matches[0].TotalScore, output.Matches[1].TotalScore)
	assert.NotEmpty(t, output.Matches[0].Reasons)
}

func TestHandler_Execute_AppliesLimit(t *testing.T) {
	creators := make([]models.Creator, 30)
	for i := range creators {
		creators[i] = createTestCreator(string(rune('a'+i)), 50000, 0.10)
	}
	store := &stubStore{campaign: createTestCampaign(), creators: creators}
	handler := newHandler(store)

	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{"default limit when zero", 0, 20},
		{"explicit limit", 5, 5},
		{"capped at max limit", 500, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := handler.Execute(context.Background(), &Input{
				CampaignID: "camp-1",
				Limit:      tt.limit,
			})

			require.NoError(t, err)
			assert.Len(t, output.Matches, tt.expected)
			assert.Equal(t, 30, output.Evaluated)
		})
	}
}

func TestHandler_Execute_EmptyRoster(t *testing.T) {
	store := &stubStore{campaign: createTestCampaign()}
	handler := newHandler(store)

	output, err := handler.Execute(context.Background(), &Input{CampaignID: "camp-1"})

	require.NoError(t, err)
	assert.Empty(t, output.Matches)
	assert.Equal(t, 0, output.Evaluated)
}

// ==========================
// Error Cases
// ==========================

func TestHandler_Execute_MissingCampaignID(t *testing.T) {
	handler := newHandler(&stubStore{})

	output, err := handler.Execute(context.Background(), &Input{})

	assert.Nil(t, output)
	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeInvalidInput, stdErr.Code)
}

func TestHandler_Execute_CampaignNotFound(t *testing.T) {
	handler := newHandler(&stubStore{})

	output, err := handler.Execute(context.Background(), &Input{CampaignID: "missing"})

	assert.Nil(t, output)
	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeCampaignNotFound, stdErr.Code)
	assert.False(t, stdErr.Retryable)
}

func TestHandler_Execute_StorageFailurePropagates(t *testing.T) {
	handler := newHandler(&stubStore{err: apperrors.NewStorageFailureError(assert.AnError)})

	output, err := handler.Execute(context.Background(), &Input{CampaignID: "camp-1"})

	assert.Nil(t, output)
	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeStorageFailure, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}
