package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *Redis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := NewRedis(client, "test:")
	t.Cleanup(func() { r.Close() })
	return mr, r
}

func TestRedisCreate(t *testing.T) {
	ctx := context.Background()
	mr, r := newTestRedis(t)

	ts := time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC)
	hc, err := r.Create(ctx, HealthCheck{Timestamp: ts})
	require.NoError(t, err)
	require.NotEmpty(t, hc.ID)

	key := "test:health_check:" + hc.ID
	assert.True(t, mr.Exists(key))
	assert.Equal(t, hc.ID, mr.HGet(key, "id"))
	assert.Equal(t, ts.Format(time.RFC3339Nano), mr.HGet(key, "timestamp"))

	score, err := mr.ZScore("test:health_check", hc.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(ts.UnixMilli()), score)
}

func TestRedisCount(t *testing.T) {
	ctx := context.Background()
	_, r := newTestRedis(t)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	for range 3 {
		_, err := r.Create(ctx, HealthCheck{})
		require.NoError(t, err)
	}
	n, err = r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestRedisUnavailable(t *testing.T) {
	mr, r := newTestRedis(t)
	mr.Close()

	_, err := r.Create(context.Background(), HealthCheck{})
	assert.Error(t, err)
	_, err = r.Count(context.Background())
	assert.Error(t, err)
}

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	repo, err := Open(context.Background(), Config{Kind: "redis", RedisAddr: mr.Addr(), RedisPrefix: "p:"})
	require.NoError(t, err)
	defer repo.Close()
	assert.IsType(t, &Redis{}, repo)

	_, err = repo.Create(context.Background(), HealthCheck{})
	require.NoError(t, err)
	keys, err := mr.ZMembers("p:health_check")
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}

func TestOpenRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := Open(ctx, Config{Kind: "redis", RedisAddr: addr})
	assert.Error(t, err)
}
