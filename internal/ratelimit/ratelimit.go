// Package ratelimit counts requests per client key and reports the quota
// through X-Rate-Limit-* headers.
package ratelimit

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

//go:generate mockgen -source=ratelimit.go -destination=../mock/ratelimit_mock.go -package=mock

// Response headers describing the quota.
const (
	HeaderLimit     = "X-Rate-Limit-Limit"
	HeaderRemaining = "X-Rate-Limit-Remaining"
	HeaderReset     = "X-Rate-Limit-Reset"
)

// Result is the outcome of a single request against the quota.
type Result struct {
	// Limit is the number of requests allowed per window.
	Limit int
	// Remaining is the number of requests left in the current window.
	Remaining int
	// Reset is the time until the full quota is available again.
	Reset time.Duration
	// Allowed reports whether the request fits into the quota.
	Allowed bool
}

// WriteHeaders sets the X-Rate-Limit-* headers. Reset is rounded up to
// whole seconds.
func (r Result) WriteHeaders(h http.Header) {
	reset := int64((r.Reset + time.Second - 1) / time.Second)
	h.Set(HeaderLimit, strconv.Itoa(r.Limit))
	h.Set(HeaderRemaining, strconv.Itoa(r.Remaining))
	h.Set(HeaderReset, strconv.FormatInt(reset, 10))
}

// Limiter consumes one request from the quota of key.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}
