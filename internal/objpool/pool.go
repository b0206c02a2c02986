// Package objpool provides a tiny generic wrapper around sync.Pool,
// grounded on flier-goutil's internal/xsync.Pool[T] (same New/Reset field
// shape, same Get/Put methods). Unlike that package, this one does not
// carry a //go:nosplit pragma: that directive is only valid for
// non-preemptible runtime-adjacent hot paths, not for a library-level
// allocator used by arbitrary caller goroutines, so it is dropped rather
// than copied blindly.
package objpool

import "sync"

// Pool recycles *T values. New must always return a usable zero value;
// Reset (optional) is called before a value is returned to the pool so
// the next Get doesn't observe stale state.
type Pool[T any] struct {
	New   func() *T
	Reset func(*T)

	pool sync.Pool
}

func (p *Pool[T]) Get() *T {
	if v, ok := p.pool.Get().(*T); ok {
		return v
	}
	return p.New()
}

func (p *Pool[T]) Put(v *T) {
	if p.Reset != nil {
		p.Reset(v)
	}
	p.pool.Put(v)
}
