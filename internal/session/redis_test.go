package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client, "test:session"), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	sess := sampleSession("abc", time.Hour)
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)

	assert.Equal(t, "abc", got.ID)
	require.Len(t, got.Cart, 1)
	assert.Equal(t, "Headphones", got.Cart[0].Name)
	assert.True(t, got.Cart[0].Price.Equal(decimal.RequireFromString("89.99")))
	assert.Equal(t, 2, got.Cart[0].Quantity)
	require.Len(t, got.Reviews[101], 1)
	assert.Equal(t, "Great sound", got.Reviews[101][0].Text)
}

func TestRedisStoreUnknownID(t *testing.T) {
	store, _ := newRedisStore(t)

	_, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStoreSetsTTL(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSession("abc", time.Hour)))

	ttl := mr.TTL("test:session:abc")
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestRedisStoreKeyExpiresWithSession(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSession("abc", time.Minute)))

	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStoreSaveExpiredSessionDeletes(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSession("abc", time.Hour)))
	require.True(t, mr.Exists("test:session:abc"))

	stale := sampleSession("abc", -time.Minute)
	require.NoError(t, store.Save(ctx, stale))

	assert.False(t, mr.Exists("test:session:abc"))
}

func TestRedisStoreDelete(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSession("abc", time.Hour)))
	require.NoError(t, store.Delete(ctx, "abc"))

	_, err := store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.NoError(t, store.Delete(ctx, "abc"))
}
