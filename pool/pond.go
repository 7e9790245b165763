package pool

import "github.com/alitto/pond/v2"

type pondPool struct {
	p pond.Pool
}

// FromPond adapts a pond pool. The pond pool must be created with an
// unbounded queue (the pond default), otherwise Submit may block.
func FromPond(p pond.Pool) Pool {
	return pondPool{p: p}
}

func (a pondPool) Submit(fn func()) error { return a.p.Go(fn) }

func (a pondPool) Parallelism() int { return a.p.MaxConcurrency() }
