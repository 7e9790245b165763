package pool

import "errors"

// ErrPoolClosed is returned by Submit once the pool has been closed.
var ErrPoolClosed = errors.New("pool: closed")

// Pool is an interface that defines methods on a pool of goroutines executing closures.
type Pool interface {
	// Submit schedules fn for asynchronous execution and returns immediately.
	// It must be safe to call from inside a closure currently running on the pool.
	Submit(fn func()) error

	// Parallelism returns the maximum number of closures executed at once.
	Parallelism() int
}
