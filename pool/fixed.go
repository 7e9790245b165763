package pool

import (
	"runtime"
	"sync"
)

// Fixed runs submitted closures on a fixed number of long-lived goroutines.
// The queue is unbounded, so Submit never blocks, even when called from a
// closure running on one of the pool's own goroutines.
type Fixed struct {
	size int

	mu      sync.Mutex
	ready   *sync.Cond
	queue   []func()
	head    int
	closed  bool
	stopped sync.WaitGroup
}

// NewFixed starts a pool with n goroutines. Zero means runtime.NumCPU().
func NewFixed(n uint) *Fixed {
	size := int(n)
	if size == 0 {
		size = runtime.NumCPU()
	}

	p := &Fixed{size: size}
	p.ready = sync.NewCond(&p.mu)

	p.stopped.Add(size)
	for range size {
		go p.work()
	}

	return p
}

// Submit enqueues fn. It returns ErrPoolClosed after Close.
func (p *Fixed) Submit(fn func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPoolClosed
	}

	p.queue = append(p.queue, fn)
	p.ready.Signal()

	return nil
}

// Parallelism returns the number of goroutines in the pool.
func (p *Fixed) Parallelism() int { return p.size }

// Close stops accepting new closures, lets already queued ones run and
// waits for every goroutine to exit. Idempotent.
func (p *Fixed) Close() {
	p.mu.Lock()
	p.closed = true
	p.ready.Broadcast()
	p.mu.Unlock()

	p.stopped.Wait()
}

func (p *Fixed) work() {
	defer p.stopped.Done()

	for {
		fn, ok := p.next()
		if !ok {
			return
		}
		fn()
	}
}

// next blocks until a closure is queued. It reports false once the pool is
// closed and the queue is drained.
func (p *Fixed) next() (func(), bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for p.head == len(p.queue) {
		if p.closed {
			return nil, false
		}
		p.ready.Wait()
	}

	fn := p.queue[p.head]
	// release the reference so a finished closure does not pin what it captured
	p.queue[p.head] = nil
	p.head++

	if p.head == len(p.queue) {
		p.queue = p.queue[:0]
		p.head = 0
	}

	return fn, true
}
