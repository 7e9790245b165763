package taskgroup

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/taskgroup/pool"
)

// Group runs appended tasks and records whether any of them failed.
// Methods are safe for concurrent use, and Append may be called from inside
// a task running under the same group.
//
// A Group with outstanding tasks stays reachable on its own: callers may drop
// every reference while tasks are pending, and tasks may keep appending
// through a weak.Pointer obtained before the drop. Once the last task
// completes, the Group is collectable again.
type Group struct {
	// noCopy prevents accidental copying of the group.
	//go:nocopy
	nc noCopy

	config   *config
	strategy strategy
	state    state
	metrics  instruments

	// sequence counter for appended tasks (used for error tagging)
	seq atomic.Uint64
}

// noCopy is a vet-recognized marker to discourage copying types with this field embedded.
// It works with the "-copylocks" analyzer via the presence of Lock/Unlock methods.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// NewSerial creates a Group that runs every task inline in the goroutine
// calling Append. Its parallelism is 1.
func NewSerial(opts ...Option) (*Group, error) {
	return newGroup(serial{}, opts)
}

// NewThreaded creates a Group that submits every task to p.
// The caller keeps ownership of p and must keep it running while the group has work.
func NewThreaded(p pool.Pool, opts ...Option) (*Group, error) {
	if p == nil {
		return nil, errorc.With(ErrInvalidConfig, errorc.String("", "NewThreaded requires a non-nil pool"))
	}
	return newGroup(threaded{pool: p}, opts)
}

func newGroup(s strategy, opts []Option) (*Group, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	g := &Group{
		config:   cfg,
		strategy: s,
		metrics:  newInstruments(cfg.Metrics),
	}
	g.state.init()

	return g, nil
}

// Append adds a task to the group and dispatches it.
//
// A serial group runs the task, and everything it appends, before Append
// returns. A threaded group submits it to the pool and returns immediately.
// Append never fails: a nil task, a panic or a submission rejected by the
// pool are recorded as that task's failure.
func (g *Group) Append(task Task) {
	index := int(g.seq.Add(1) - 1)

	g.state.acquire()
	g.metrics.appended.Add(1)
	g.metrics.outstanding.Add(1)

	err := g.strategy.dispatch(func() { g.execute(task, index) })
	if err != nil {
		g.complete(index, fmt.Errorf("%w: %w", ErrTaskRejected, err))
	}
}

// OK reports whether no task has failed so far. It never blocks.
// Producers may poll it to stop generating work after a failure.
func (g *Group) OK() bool { return g.state.ok() }

// Finish waits until every appended task, including tasks appended by other
// tasks, has completed. It returns the first recorded failure or nil.
//
// Finish may be called any number of times; once the group is idle it returns
// immediately with the same result. It must not be called from a task
// running under the same group.
func (g *Group) Finish() error { return g.state.wait() }

// Parallelism returns 1 for a serial group and the pool's parallelism for a threaded one.
func (g *Group) Parallelism() int { return g.strategy.parallelism() }

func (g *Group) execute(task Task, index int) {
	if !g.config.RunAfterError && !g.state.ok() {
		g.metrics.skipped.Add(1)
		g.complete(index, nil)
		return
	}

	start := time.Now()
	err := runTask(task)
	g.metrics.duration.Record(time.Since(start).Seconds())

	g.complete(index, err)
}

func (g *Group) complete(index int, err error) {
	if err != nil {
		g.metrics.failed.Add(1)
		if g.config.ErrorTagging {
			err = newTaskTaggedError(err, index)
		}
	}

	g.metrics.outstanding.Add(-1)
	g.state.release(err)
}
