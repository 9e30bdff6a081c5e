// internal/brief/cache.go
package brief

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "creator-match-workers/internal/common/errors"
	"creator-match-workers/internal/scoring"
)

// Fingerprint addresses a cached brief by what produced it: the pinned
// schema version concatenated with the exact prompt bytes. Bumping the
// schema version invalidates every prior entry without any deletion.
func Fingerprint(prompt string) string {
	return fingerprint(scoring.SchemaVersion, prompt)
}

func fingerprint(schemaVersion, prompt string) string {
	h := sha256.New()
	h.Write([]byte(schemaVersion))
	h.Write([]byte(prompt))
	return hex.EncodeToString(h.Sum(nil))
}

// CacheEntry is the stored value: the brief plus provenance of how it was
// generated.
type CacheEntry struct {
	Brief     Output    `json:"brief"`
	Provider  string    `json:"provider"`
	Model     string    `json:"model"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Cache stores generated briefs in Redis keyed by campaign, creator and
// prompt fingerprint. A zero TTL keeps entries until explicitly overwritten.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func cacheKey(campaignID, creatorID, fp string) string {
	return fmt.Sprintf("brief:%s:%s:%s", campaignID, creatorID, fp)
}

// Get returns the cached entry for the triple, or nil on a miss.
func (c *Cache) Get(ctx context.Context, campaignID, creatorID, fp string) (*CacheEntry, error) {
	raw, err := c.client.Get(ctx, cacheKey(campaignID, creatorID, fp)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStorageFailureError(err)
	}

	var entry CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		// Unreadable entry, treat as a miss so the caller regenerates.
		return nil, nil
	}
	return &entry, nil
}

// Put upserts the entry for the triple. Last write wins.
func (c *Cache) Put(ctx context.Context, campaignID, creatorID, fp string, entry *CacheEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return apperrors.NewStorageFailureError(err)
	}
	if err := c.client.Set(ctx, cacheKey(campaignID, creatorID, fp), raw, c.ttl).Err(); err != nil {
		return apperrors.NewStorageFailureError(err)
	}
	return nil
}
