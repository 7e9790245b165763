package taskgroup

import "github.com/ygrebnov/taskgroup/pool"

// ForEach applies fn to each item, one task per item, and returns the first failure.
// Pool selection follows RunAll.
func ForEach[T any](p pool.Pool, items []T, fn func(T) error, opts ...Option) error {
	if len(items) == 0 {
		return nil
	}

	tasks := make([]Task, 0, len(items))
	for _, item := range items {
		tasks = append(tasks, func() error { return fn(item) })
	}

	return RunAll(p, tasks, opts...)
}
