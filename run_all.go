package taskgroup

import "github.com/ygrebnov/taskgroup/pool"

// RunAll appends tasks to a new group and waits for them.
// With a nil pool the tasks run serially in input order; otherwise they are
// submitted to p. The returned error is the first recorded failure.
func RunAll(p pool.Pool, tasks []Task, opts ...Option) error {
	g, err := newForPool(p, opts)
	if err != nil {
		return err
	}

	for _, t := range tasks {
		g.Append(t)
	}

	return g.Finish()
}

func newForPool(p pool.Pool, opts []Option) (*Group, error) {
	if p == nil {
		return NewSerial(opts...)
	}
	return NewThreaded(p, opts...)
}
