package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:failures:"

// RedisLimiter shares the failure counters across instances. The first
// failure creates the key with the window TTL; later INCRs leave the
// TTL untouched, matching the in-memory fixed-window-reset behavior.
type RedisLimiter struct {
	client    *redis.Client
	window    time.Duration
	threshold int
}

func NewRedisLimiter(client *redis.Client, window time.Duration, threshold int) *RedisLimiter {
	return &RedisLimiter{
		client:    client,
		window:    window,
		threshold: threshold,
	}
}

func (l *RedisLimiter) Check(ctx context.Context, key string) (Result, error) {
	redisKey := redisKeyPrefix + key

	count, err := l.client.Get(ctx, redisKey).Int()
	if err == redis.Nil {
		return Result{Allowed: true, Limit: l.threshold, Remaining: l.threshold, ResetAt: time.Now().Add(l.window)}, nil
	}
	if err != nil {
		return Result{}, err
	}

	ttl, err := l.client.TTL(ctx, redisKey).Result()
	if err != nil {
		return Result{}, err
	}
	if ttl < 0 {
		ttl = l.window
	}

	remaining := l.threshold - count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   count < l.threshold,
		Limit:     l.threshold,
		Remaining: remaining,
		ResetAt:   time.Now().Add(ttl),
	}, nil
}

func (l *RedisLimiter) RecordFailure(ctx context.Context, key string) error {
	redisKey := redisKeyPrefix + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		return l.client.Expire(ctx, redisKey, l.window).Err()
	}
	return nil
}
