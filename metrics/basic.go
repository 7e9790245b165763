package metrics

import (
	"sync"
	"sync/atomic"
)

// BasicProvider keeps instruments in memory. Instruments are created on first
// use and shared by name, which makes it convenient for tests and examples.
type BasicProvider struct {
	counters   registry[BasicCounter]
	updowns    registry[BasicUpDownCounter]
	histograms registry[BasicHistogram]
}

// NewBasicProvider returns an empty BasicProvider.
func NewBasicProvider() *BasicProvider { return &BasicProvider{} }

func (p *BasicProvider) Counter(name string, opts ...InstrumentOption) Counter {
	return p.counters.get(name, opts)
}

func (p *BasicProvider) UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter {
	return p.updowns.get(name, opts)
}

func (p *BasicProvider) Histogram(name string, opts ...InstrumentOption) Histogram {
	return p.histograms.get(name, opts)
}

// LookupCounter returns the named counter and whether it has been created.
func (p *BasicProvider) LookupCounter(name string) (*BasicCounter, bool) {
	return p.counters.lookup(name)
}

// LookupUpDownCounter returns the named up/down counter and whether it has been created.
func (p *BasicProvider) LookupUpDownCounter(name string) (*BasicUpDownCounter, bool) {
	return p.updowns.lookup(name)
}

// LookupHistogram returns the named histogram and whether it has been created.
func (p *BasicProvider) LookupHistogram(name string) (*BasicHistogram, bool) {
	return p.histograms.lookup(name)
}

// Describe returns the metadata the named instrument was created with.
func (p *BasicProvider) Describe(name string) (InstrumentConfig, bool) {
	for _, d := range []func(string) (InstrumentConfig, bool){
		p.counters.describe, p.updowns.describe, p.histograms.describe,
	} {
		if cfg, ok := d(name); ok {
			return cfg, true
		}
	}
	return InstrumentConfig{}, false
}

type entry[T any] struct {
	inst *T
	cfg  InstrumentConfig
}

// registry maps names to instruments of one kind. The zero value is ready to use.
type registry[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
}

func (r *registry[T]) get(name string, opts []InstrumentOption) *T {
	if inst, ok := r.lookup(name); ok {
		return inst
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[name]; ok {
		return e.inst
	}
	if r.entries == nil {
		r.entries = make(map[string]entry[T])
	}

	e := entry[T]{inst: new(T), cfg: buildConfig(opts)}
	r.entries[name] = e

	return e.inst
}

func (r *registry[T]) lookup(name string) (*T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	return e.inst, ok
}

func (r *registry[T]) describe(name string) (InstrumentConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	return e.cfg, ok
}

// BasicCounter is a concurrency-safe monotonic counter.
type BasicCounter struct{ val atomic.Int64 }

func (c *BasicCounter) Add(n int64) { c.val.Add(n) }

// Value returns the current count.
func (c *BasicCounter) Value() int64 { return c.val.Load() }

// BasicUpDownCounter is a concurrency-safe up/down counter.
type BasicUpDownCounter struct{ val atomic.Int64 }

func (u *BasicUpDownCounter) Add(n int64) { u.val.Add(n) }

// Value returns the current value.
func (u *BasicUpDownCounter) Value() int64 { return u.val.Load() }

// BasicHistogram tracks count, sum, min and max of recorded values. No buckets.
type BasicHistogram struct {
	mu       sync.Mutex
	count    int64
	sum      float64
	min, max float64
}

func (h *BasicHistogram) Record(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.count == 0 || v < h.min {
		h.min = v
	}
	if h.count == 0 || v > h.max {
		h.max = v
	}
	h.count++
	h.sum += v
}

// HistSnapshot is a point-in-time copy of a BasicHistogram.
type HistSnapshot struct {
	Count    int64
	Sum      float64
	Min, Max float64
}

// Mean returns Sum/Count, or zero for an empty snapshot.
func (s HistSnapshot) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Snapshot copies the current state.
func (h *BasicHistogram) Snapshot() HistSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return HistSnapshot{Count: h.count, Sum: h.sum, Min: h.min, Max: h.max}
}
