package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxIdleKeys bounds the number of tracked clients before idle buckets are
// dropped.
const maxIdleKeys = 10000

// MemoryLimiter is a per-process token bucket limiter. Each key may burst
// up to limit requests and regains one request every window/limit.
type MemoryLimiter struct {
	limit  int
	every  rate.Limit
	now    func() time.Time
	mu     sync.Mutex
	bucket map[string]*rate.Limiter
}

// NewMemoryLimiter allows limit requests per window and key.
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:  limit,
		every:  rate.Every(window / time.Duration(limit)),
		now:    time.Now,
		bucket: make(map[string]*rate.Limiter),
	}
}

// Allow implements Limiter.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	lim, ok := l.bucket[key]
	if !ok {
		if len(l.bucket) >= maxIdleKeys {
			l.evictFull(now)
		}
		lim = rate.NewLimiter(l.every, l.limit)
		l.bucket[key] = lim
	}

	allowed := lim.AllowN(now, 1)
	tokens := lim.TokensAt(now)

	remaining := int(tokens)
	if remaining < 0 {
		remaining = 0
	}
	missing := float64(l.limit) - tokens
	reset := time.Duration(missing / float64(l.every) * float64(time.Second))

	return Result{Limit: l.limit, Remaining: remaining, Reset: reset, Allowed: allowed}, nil
}

// evictFull drops buckets that have refilled completely; they are
// indistinguishable from new ones.
func (l *MemoryLimiter) evictFull(now time.Time) {
	for key, lim := range l.bucket {
		if lim.TokensAt(now) >= float64(l.limit) {
			delete(l.bucket, key)
		}
	}
}
