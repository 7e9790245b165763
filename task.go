package taskgroup

import "fmt"

// Task is a unit of work appended to a Group. A nil error means success;
// any other value is recorded as the task's failure.
type Task func() error

// TaskFunc adapts a function that cannot fail.
func TaskFunc(fn func()) Task {
	return func() error { fn(); return nil }
}

// runTask executes t, converting a panic into ErrTaskPanicked.
func runTask(t Task) (err error) {
	if t == nil {
		return ErrNilTask
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, p)
		}
	}()

	return t()
}
