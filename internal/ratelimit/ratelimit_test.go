package ratelimit

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_WriteHeaders(t *testing.T) {
	h := http.Header{}

	Result{Limit: 10, Remaining: 3, Reset: 1500 * time.Millisecond}.WriteHeaders(h)

	assert.Equal(t, "10", h.Get(HeaderLimit))
	assert.Equal(t, "3", h.Get(HeaderRemaining))
	assert.Equal(t, "2", h.Get(HeaderReset))
}

func TestMemoryLimiter_Allow(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(2, 10*time.Second)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	first, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, first.Allowed)
	assert.Equal(t, 2, first.Limit)
	assert.Equal(t, 1, first.Remaining)
	assert.Equal(t, 5*time.Second, first.Reset)

	second, _ := l.Allow(ctx, "10.0.0.1")
	assert.True(t, second.Allowed)
	assert.Equal(t, 0, second.Remaining)
	assert.Equal(t, 10*time.Second, second.Reset)

	third, _ := l.Allow(ctx, "10.0.0.1")
	assert.False(t, third.Allowed)
	assert.Equal(t, 0, third.Remaining)

	other, _ := l.Allow(ctx, "10.0.0.2")
	assert.True(t, other.Allowed, "keys are counted separately")

	now = now.Add(5 * time.Second)
	refilled, _ := l.Allow(ctx, "10.0.0.1")
	assert.True(t, refilled.Allowed)
}

func TestMemoryLimiter_EvictsFullBuckets(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(1, time.Second)
	l.now = func() time.Time { return now }

	_, _ = l.Allow(context.Background(), "a")
	now = now.Add(time.Minute)
	l.evictFull(now)

	assert.Empty(t, l.bucket)
}

func TestRedisLimiter_ConnectionError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	_, err := NewRedisLimiter(client, 5, time.Minute).Allow(context.Background(), "10.0.0.1")

	assert.Error(t, err)
}

func TestRedisLimiter_Live(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	ctx := context.Background()

	key := "test-" + time.Now().Format(time.RFC3339Nano)
	l := NewRedisLimiter(client, 2, time.Minute)
	t.Cleanup(func() { client.Del(ctx, l.prefix+key) })

	first, err := l.Allow(ctx, key)
	require.NoError(t, err)
	assert.True(t, first.Allowed)
	assert.Equal(t, 1, first.Remaining)
	assert.LessOrEqual(t, first.Reset, time.Minute)

	_, _ = l.Allow(ctx, key)
	third, err := l.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, third.Allowed)
	assert.Equal(t, 0, third.Remaining)
}
