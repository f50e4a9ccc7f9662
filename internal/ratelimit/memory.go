package ratelimit

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

type windowEntry struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is the in-process sliding-window limiter for tests and
// single-instance deployments. The map is guarded by a mutex; expired
// entries are evicted opportunistically on roughly one call in ten
// instead of by a background timer.
type MemoryLimiter struct {
	mu        sync.Mutex
	entries   map[string]*windowEntry
	window    time.Duration
	threshold int
	now       func() time.Time
}

func NewMemoryLimiter(window time.Duration, threshold int) *MemoryLimiter {
	return &MemoryLimiter{
		entries:   make(map[string]*windowEntry),
		window:    window,
		threshold: threshold,
		now:       time.Now,
	}
}

func (l *MemoryLimiter) Check(_ context.Context, key string) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.maybeCleanup()

	now := l.now()
	entry, ok := l.entries[key]
	if !ok || !now.Before(entry.resetAt) {
		return Result{Allowed: true, Limit: l.threshold, Remaining: l.threshold, ResetAt: now.Add(l.window)}, nil
	}

	remaining := l.threshold - entry.count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   entry.count < l.threshold,
		Limit:     l.threshold,
		Remaining: remaining,
		ResetAt:   entry.resetAt,
	}, nil
}

func (l *MemoryLimiter) RecordFailure(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.entries[key]
	if !ok || !now.Before(entry.resetAt) {
		// First failure in the window fixes the reset time; later
		// failures never extend it.
		l.entries[key] = &windowEntry{count: 1, resetAt: now.Add(l.window)}
		return nil
	}

	entry.count++
	return nil
}

// maybeCleanup evicts expired entries on ~10% of calls. Caller holds the
// lock.
func (l *MemoryLimiter) maybeCleanup() {
	if rand.Intn(10) != 0 {
		return
	}
	now := l.now()
	for key, entry := range l.entries {
		if !now.Before(entry.resetAt) {
			delete(l.entries, key)
		}
	}
}
