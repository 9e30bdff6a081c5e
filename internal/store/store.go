// internal/store/store.go

// Package store is the persistence collaborator: point lookups by primary
// key, a bulk creator scan, and idempotent upserts for the seed loader.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	apperrors "creator-match-workers/internal/common/errors"
	"creator-match-workers/internal/models"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const campaignColumns = `id, brand, objective, target_country, target_gender, target_age_range,
	niches, preferred_hook_types, min_avg_watch_time, budget_range, tone, do_not_use_words, created_at`

const creatorColumns = `id, username, country, niches, followers, engagement_rate, avg_watch_time,
	content_style, primary_hook_type, brand_safety_flags, audience, recent_posts`

// GetCampaign looks up a single campaign by primary key.
func (s *Store) GetCampaign(ctx context.Context, id string) (*models.Campaign, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)

	var c models.Campaign
	var budgetRange []byte
	err := row.Scan(
		&c.ID, &c.Brand, &c.Objective, &c.TargetCountry, &c.TargetGender, &c.TargetAgeRange,
		pq.Array(&c.Niches), pq.Array(&c.PreferredHookTypes), &c.MinAvgWatchTime,
		&budgetRange, &c.Tone, pq.Array(&c.DoNotUseWords), &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewCampaignNotFoundError(id)
		}
		return nil, apperrors.NewStorageFailureError(err)
	}

	if err := json.Unmarshal(budgetRange, &c.BudgetRange); err != nil {
		return nil, apperrors.NewStorageFailureError(fmt.Errorf("decode budget_range: %w", err))
	}
	return &c, nil
}

// GetCreator looks up a single creator by primary key.
func (s *Store) GetCreator(ctx context.Context, id string) (*models.Creator, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+creatorColumns+` FROM creators WHERE id = $1`, id)

	c, err := scanCreator(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewCreatorNotFoundError(id)
		}
		return nil, apperrors.NewStorageFailureError(err)
	}
	return c, nil
}

// ListCreators performs the bulk unordered roster scan.
func (s *Store) ListCreators(ctx context.Context) ([]models.Creator, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+creatorColumns+` FROM creators`)
	if err != nil {
		return nil, apperrors.NewStorageFailureError(err)
	}
	defer rows.Close()

	var creators []models.Creator
	for rows.Next() {
		c, err := scanCreator(rows)
		if err != nil {
			return nil, apperrors.NewStorageFailureError(err)
		}
		creators = append(creators, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageFailureError(err)
	}
	return creators, nil
}

// UpsertCampaign inserts or overwrites a campaign row (seed loader).
func (s *Store) UpsertCampaign(ctx context.Context, c *models.Campaign) error {
	budgetRange, err := json.Marshal(c.BudgetRange)
	if err != nil {
		return apperrors.NewStorageFailureError(err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO campaigns (`+campaignColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		ON CONFLICT (id) DO UPDATE SET
			brand = EXCLUDED.brand,
			objective = EXCLUDED.objective,
			target_country = EXCLUDED.target_country,
			target_gender = EXCLUDED.target_gender,
			target_age_range = EXCLUDED.target_age_range,
			niches = EXCLUDED.niches,
			preferred_hook_types = EXCLUDED.preferred_hook_types,
			min_avg_watch_time = EXCLUDED.min_avg_watch_time,
			budget_range = EXCLUDED.budget_range,
			tone = EXCLUDED.tone,
			do_not_use_words = EXCLUDED.do_not_use_words`,
		c.ID, c.Brand, c.Objective, c.TargetCountry, c.TargetGender, c.TargetAgeRange,
		pq.Array(c.Niches), pq.Array(c.PreferredHookTypes), c.MinAvgWatchTime,
		budgetRange, c.Tone, pq.Array(c.DoNotUseWords),
	)
	if err != nil {
		return apperrors.NewStorageFailureError(err)
	}
	return nil
}

// UpsertCreator inserts or overwrites a creator row (seed loader).
func (s *Store) UpsertCreator(ctx context.Context, c *models.Creator) error {
	audience, err := json.Marshal(c.Audience)
	if err != nil {
		return apperrors.NewStorageFailureError(err)
	}
	recentPosts, err := json.Marshal(c.RecentPosts)
	if err != nil {
		return apperrors.NewStorageFailureError(err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO creators (`+creatorColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			country = EXCLUDED.country,
			niches = EXCLUDED.niches,
			followers = EXCLUDED.followers,
			engagement_rate = EXCLUDED.engagement_rate,
			avg_watch_time = EXCLUDED.avg_watch_time,
			content_style = EXCLUDED.content_style,
			primary_hook_type = EXCLUDED.primary_hook_type,
			brand_safety_flags = EXCLUDED.brand_safety_flags,
			audience = EXCLUDED.audience,
			recent_posts = EXCLUDED.recent_posts`,
		c.ID, c.Username, c.Country, pq.Array(c.Niches), c.Followers, c.EngagementRate,
		c.AvgWatchTime, c.ContentStyle, c.PrimaryHookType, pq.Array(c.BrandSafetyFlags),
		audience, recentPosts,
	)
	if err != nil {
		return apperrors.NewStorageFailureError(err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCreator(row rowScanner) (*models.Creator, error) {
	var c models.Creator
	var audience, recentPosts []byte
	err := row.Scan(
		&c.ID, &c.Username, &c.Country, pq.Array(&c.Niches), &c.Followers, &c.EngagementRate,
		&c.AvgWatchTime, &c.ContentStyle, &c.PrimaryHookType, pq.Array(&c.BrandSafetyFlags),
		&audience, &recentPosts,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(audience, &c.Audience); err != nil {
		return nil, fmt.Errorf("decode audience: %w", err)
	}
	if len(recentPosts) > 0 {
		if err := json.Unmarshal(recentPosts, &c.RecentPosts); err != nil {
			return nil, fmt.Errorf("decode recent_posts: %w", err)
		}
	}
	return &c, nil
}
