package ratelimit

import (
	"context"
	"sync/atomic"
)

// ConcurrentLimiter caps the number of simultaneous in-flight requests.
// It is a counting semaphore: Acquire blocks until a slot is free or the
// context is cancelled, TryAcquire never blocks.
type ConcurrentLimiter struct {
	slots   chan struct{}
	current atomic.Int64
}

// NewConcurrentLimiter creates a limiter allowing at most limit concurrent
// acquisitions. A non-positive limit is treated as 1.
func NewConcurrentLimiter(limit int) *ConcurrentLimiter {
	if limit <= 0 {
		limit = 1
	}
	return &ConcurrentLimiter{
		slots: make(chan struct{}, limit),
	}
}

// Acquire blocks until a slot is available or ctx is cancelled.
// On success the caller must call Release when done.
func (cl *ConcurrentLimiter) Acquire(ctx context.Context) error {
	select {
	case cl.slots <- struct{}{}:
		cl.current.Add(1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryAcquire acquires a slot without blocking. Returns false when the limit
// is reached. On success the caller must call Release when done.
func (cl *ConcurrentLimiter) TryAcquire() bool {
	select {
	case cl.slots <- struct{}{}:
		cl.current.Add(1)
		return true
	default:
		return false
	}
}

// Release frees a slot acquired by Acquire or TryAcquire.
func (cl *ConcurrentLimiter) Release() {
	cl.current.Add(-1)
	<-cl.slots
}

// Current returns the number of slots currently held.
func (cl *ConcurrentLimiter) Current() int64 {
	return cl.current.Load()
}

// Limit returns the configured concurrency limit.
func (cl *ConcurrentLimiter) Limit() int {
	return cap(cl.slots)
}
