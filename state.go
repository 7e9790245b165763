package taskgroup

import (
	"sync"
	"sync/atomic"
)

// state is the bookkeeping shared by both strategies.
//
// outstanding counts appended tasks that have not completed yet, including
// tasks appended by running tasks. err holds the first failure and is never
// replaced. While outstanding is positive the state is pinned, see keepalive.go.
type state struct {
	mu          sync.Mutex
	idle        sync.Cond
	outstanding int
	err         error

	// failed mirrors err != nil so OK does not need the lock.
	failed atomic.Bool
}

func (s *state) init() {
	s.idle.L = &s.mu
}

// acquire accounts for one more outstanding task.
func (s *state) acquire() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.outstanding++
	if s.outstanding == 1 {
		pin(s)
	}
}

// release folds a completed task's result. The last release of a busy cycle
// unpins the state and wakes every Finish caller.
func (s *state) release(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil && s.err == nil {
		s.err = err
		s.failed.Store(true)
	}

	s.outstanding--
	if s.outstanding == 0 {
		unpin(s)
		s.idle.Broadcast()
	}
}

func (s *state) ok() bool { return !s.failed.Load() }

// wait blocks until no task is outstanding and returns the recorded failure.
func (s *state) wait() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.outstanding > 0 {
		s.idle.Wait()
	}

	return s.err
}
