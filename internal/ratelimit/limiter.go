package ratelimit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Result is the outcome of a limit check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter returns the seconds until the window resets, floored at 1
// so a throttled caller never receives a zero Retry-After.
func (r Result) RetryAfter(now time.Time) int {
	secs := int(r.ResetAt.Sub(now).Seconds())
	if secs < 1 {
		secs = 1
	}
	return secs
}

// Limiter counts failed authorization attempts per client key inside a
// sliding window. Check runs before the real authorization check;
// RecordFailure runs after a failed one.
type Limiter interface {
	Check(ctx context.Context, key string) (Result, error)
	RecordFailure(ctx context.Context, key string) error
}

// HashKey hashes a raw client identifier (IP or similar) so the limiter
// never stores identifying data.
func HashKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
