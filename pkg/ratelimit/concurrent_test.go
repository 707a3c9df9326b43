package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestConcurrentLimiterTryAcquire(t *testing.T) {
	cl := NewConcurrentLimiter(2)

	if !cl.TryAcquire() {
		t.Fatal("first acquire should succeed")
	}
	if !cl.TryAcquire() {
		t.Fatal("second acquire should succeed")
	}
	if cl.TryAcquire() {
		t.Fatal("third acquire should fail at limit 2")
	}

	cl.Release()
	if !cl.TryAcquire() {
		t.Fatal("acquire after release should succeed")
	}

	if got := cl.Current(); got != 2 {
		t.Errorf("expected 2 held slots, got %d", got)
	}
}

func TestConcurrentLimiterAcquireBlocksUntilRelease(t *testing.T) {
	cl := NewConcurrentLimiter(1)

	if err := cl.Acquire(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	acquired := make(chan struct{})
	go func() {
		if err := cl.Acquire(context.Background()); err == nil {
			close(acquired)
		}
	}()

	select {
	case <-acquired:
		t.Fatal("second acquire should block while slot is held")
	case <-time.After(20 * time.Millisecond):
	}

	cl.Release()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second acquire should proceed after release")
	}
}

func TestConcurrentLimiterAcquireRespectsContext(t *testing.T) {
	cl := NewConcurrentLimiter(1)
	if err := cl.Acquire(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := cl.Acquire(ctx); err == nil {
		t.Fatal("expected context error when no slot frees up")
	}
}

func TestConcurrentLimiterUnderLoad(t *testing.T) {
	const limit = 4
	cl := NewConcurrentLimiter(limit)

	var peak, current atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := cl.Acquire(context.Background()); err != nil {
				t.Errorf("unexpected acquire error: %v", err)
				return
			}
			defer cl.Release()

			n := current.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			current.Add(-1)
		}()
	}

	wg.Wait()

	if peak.Load() > limit {
		t.Errorf("observed %d concurrent holders, limit is %d", peak.Load(), limit)
	}
}

func TestNewConcurrentLimiterNonPositive(t *testing.T) {
	cl := NewConcurrentLimiter(0)
	if cl.Limit() != 1 {
		t.Errorf("expected limit 1 for non-positive input, got %d", cl.Limit())
	}
}
