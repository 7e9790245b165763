package pool

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Bounded starts a goroutine per submitted closure and caps how many of them
// execute at once with a weighted semaphore.
type Bounded struct {
	limit int
	sem   *semaphore.Weighted

	mu       sync.RWMutex
	closed   bool
	inflight sync.WaitGroup
}

// NewBounded creates a pool executing at most n closures at once. Zero means runtime.NumCPU().
func NewBounded(n uint) *Bounded {
	limit := int(n)
	if limit == 0 {
		limit = runtime.NumCPU()
	}
	return &Bounded{limit: limit, sem: semaphore.NewWeighted(int64(limit))}
}

// Submit launches fn in a new goroutine that waits for a free slot.
func (p *Bounded) Submit(fn func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()
		// Acquire with a background context only fails on cancellation, which cannot happen.
		_ = p.sem.Acquire(context.Background(), 1)
		defer p.sem.Release(1)
		fn()
	}()

	return nil
}

// Parallelism returns the concurrency limit.
func (p *Bounded) Parallelism() int { return p.limit }

// Close rejects further submissions and waits for launched closures to return.
//
// Closures already running may still submit work while Close waits; such
// submissions are rejected with ErrPoolClosed.
func (p *Bounded) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.inflight.Wait()
}
