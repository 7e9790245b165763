package taskgroup

import "errors"

const Namespace = "taskgroup"

var (
	ErrNilTask       = errors.New(Namespace + ": nil task")
	ErrTaskPanicked  = errors.New(Namespace + ": task execution panicked")
	ErrTaskRejected  = errors.New(Namespace + ": task rejected by pool")
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")
)
