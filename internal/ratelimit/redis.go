package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisLimiter is a fixed window counter shared by every instance using the
// same Redis database.
type RedisLimiter struct {
	client redis.Cmdable
	limit  int
	window time.Duration
	prefix string
}

// NewRedisLimiter allows limit requests per window and key.
func NewRedisLimiter(client redis.Cmdable, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, window: window, prefix: "rate_limit:"}
}

// Allow implements Limiter.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	key = l.prefix + key

	pipe := l.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("rate limit pipeline for %q: %w", key, err)
	}

	reset := ttl.Val()
	if reset < 0 {
		if err := l.client.PExpire(ctx, key, l.window).Err(); err != nil {
			return Result{}, fmt.Errorf("rate limit expire for %q: %w", key, err)
		}
		reset = l.window
	}

	count := int(incr.Val())
	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Limit:     l.limit,
		Remaining: remaining,
		Reset:     reset,
		Allowed:   count <= l.limit,
	}, nil
}
