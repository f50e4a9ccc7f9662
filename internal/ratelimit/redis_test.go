package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisLimiter(t *testing.T) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisLimiter(client, 15*time.Minute, 5), mr
}

func TestRedisLimiter_ThresholdBoundary(t *testing.T) {
	ctx := context.Background()
	limiter, _ := newTestRedisLimiter(t)
	key := HashKey("203.0.113.7")

	for i := 0; i < 5; i++ {
		res, err := limiter.Check(ctx, key)
		require.NoError(t, err)
		assert.True(t, res.Allowed, "attempt %d should pass the gate", i+1)

		require.NoError(t, limiter.RecordFailure(ctx, key))
	}

	res, err := limiter.Check(ctx, key)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
}

func TestRedisLimiter_WindowExpiry(t *testing.T) {
	ctx := context.Background()
	limiter, mr := newTestRedisLimiter(t)
	key := HashKey("198.51.100.20")

	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.RecordFailure(ctx, key))
	}

	res, err := limiter.Check(ctx, key)
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	mr.FastForward(15*time.Minute + time.Second)

	res, err = limiter.Check(ctx, key)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 5, res.Remaining)
}

func TestRedisLimiter_OnlyFirstFailureSetsTTL(t *testing.T) {
	ctx := context.Background()
	limiter, mr := newTestRedisLimiter(t)
	key := HashKey("192.0.2.33")

	require.NoError(t, limiter.RecordFailure(ctx, key))
	ttlAfterFirst := mr.TTL(redisKeyPrefix + key)

	mr.FastForward(5 * time.Minute)
	require.NoError(t, limiter.RecordFailure(ctx, key))
	ttlAfterSecond := mr.TTL(redisKeyPrefix + key)

	assert.Equal(t, ttlAfterFirst-5*time.Minute, ttlAfterSecond)
}
