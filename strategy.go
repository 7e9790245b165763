package taskgroup

import "github.com/ygrebnov/taskgroup/pool"

// strategy decides where an appended task executes.
type strategy interface {
	// dispatch arranges for run to be called exactly once, or returns an
	// error if run will never be called.
	dispatch(run func()) error
	parallelism() int
}

// serial runs each task inline, before Append returns. Tasks appended by a
// running task execute depth first, nested inside it.
type serial struct{}

func (serial) dispatch(run func()) error {
	run()
	return nil
}

func (serial) parallelism() int { return 1 }

// threaded hands each task to a pool. The group does not own the pool.
type threaded struct {
	pool pool.Pool
}

func (t threaded) dispatch(run func()) error { return t.pool.Submit(run) }

func (t threaded) parallelism() int { return t.pool.Parallelism() }
