// internal/brief/cache_test.go
package brief

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "creator-match-workers/internal/common/errors"
)

func newTestCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, ttl)
}

func TestFingerprint_Stable(t *testing.T) {
	assert.Equal(t, Fingerprint("prompt"), Fingerprint("prompt"))
	assert.Len(t, Fingerprint("prompt"), 64)
}

func TestFingerprint_ChangesWithPromptAndSchemaVersion(t *testing.T) {
	assert.NotEqual(t, Fingerprint("prompt a"), Fingerprint("prompt b"))
	assert.NotEqual(t, fingerprint("2.0.0", "prompt"), fingerprint("2.1.0", "prompt"))
}

func TestCache_RoundTrip(t *testing.T) {
	cache := newTestCache(t, 0)
	ctx := context.Background()
	fp := Fingerprint("prompt")

	entry := &CacheEntry{
		Brief: Output{
			OutreachMessage: "hey there",
			ContentIdeas:    []string{"a", "b", "c", "d", "e"},
			HookSuggestions: []string{"x", "y", "z"},
		},
		Provider:  "offline",
		Model:     "offline-v1",
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, cache.Put(ctx, "camp-1", "cr-1", fp, entry))

	got, err := cache.Get(ctx, "camp-1", "cr-1", fp)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry.Brief, got.Brief)
	assert.Equal(t, "offline", got.Provider)
	assert.True(t, entry.UpdatedAt.Equal(got.UpdatedAt))
}

func TestCache_MissReturnsNil(t *testing.T) {
	cache := newTestCache(t, 0)

	got, err := cache.Get(context.Background(), "camp-1", "cr-1", Fingerprint("prompt"))

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_DistinctFingerprintsAreDistinctEntries(t *testing.T) {
	cache := newTestCache(t, 0)
	ctx := context.Background()

	entry := &CacheEntry{Provider: "offline", Model: "offline-v1", UpdatedAt: time.Now().UTC()}
	require.NoError(t, cache.Put(ctx, "camp-1", "cr-1", Fingerprint("old prompt"), entry))

	got, err := cache.Get(ctx, "camp-1", "cr-1", Fingerprint("new prompt"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_PutOverwrites(t *testing.T) {
	cache := newTestCache(t, 0)
	ctx := context.Background()
	fp := Fingerprint("prompt")

	first := &CacheEntry{Provider: "offline", Model: "offline-v1", UpdatedAt: time.Now().UTC()}
	second := &CacheEntry{Provider: "gemini", Model: "gemini-2.0-flash", UpdatedAt: time.Now().UTC()}
	require.NoError(t, cache.Put(ctx, "camp-1", "cr-1", fp, first))
	require.NoError(t, cache.Put(ctx, "camp-1", "cr-1", fp, second))

	got, err := cache.Get(ctx, "camp-1", "cr-1", fp)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "gemini", got.Provider)
}

func TestCache_GetRedisErrorIsStorageFailure(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewCache(client, 0)
	fp := Fingerprint("prompt")

	mock.ExpectGet(cacheKey("camp-1", "cr-1", fp)).SetErr(errors.New("connection refused"))

	got, err := cache.Get(context.Background(), "camp-1", "cr-1", fp)

	require.Error(t, err)
	assert.Nil(t, got)
	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeStorageFailure, stdErr.Code)
	assert.True(t, stdErr.Retryable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_UnreadableEntryIsMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewCache(client, 0)
	fp := Fingerprint("prompt")

	mock.ExpectGet(cacheKey("camp-1", "cr-1", fp)).SetVal("{not json")

	got, err := cache.Get(context.Background(), "camp-1", "cr-1", fp)

	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}
