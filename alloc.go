package art

import "github.com/adaptiveart/art/internal/objpool"

// Allocator is the abstract allocation contract spec.md §4.2/§7 requires:
// typed allocation for leaves and the N4 variant (the only variant
// Insert ever allocates fresh — N16/N48/N256 are only ever reached via
// grow, which allocates the larger variant directly rather than through
// this interface).
//
// There is deliberately no Free/Release method here: an obsolete node
// must never be handed back for reuse while a concurrent reader might
// still be dereferencing it, and this module relies on the Go garbage
// collector — not a pool — to decide when that is safe (see DESIGN.md).
// Recycling is only ever safe for a freshly allocated node that was
// never published into the tree, which is what PooledAllocator.Prewarm
// exploits.
type Allocator interface {
	NewLeaf(key []byte, value int64) *leaf
	NewNode4() *node4
}

// gcAllocator is the default: every node is a plain heap allocation, and
// the garbage collector alone governs its lifetime.
type gcAllocator struct{}

func (gcAllocator) NewLeaf(key []byte, value int64) *leaf { return newLeafCopy(key, value) }
func (gcAllocator) NewNode4() *node4                      { return newNode4() }

// PooledAllocator draws fresh leaves and node4s from a sync.Pool-backed
// pair of object pools, grounded on flier-goutil's internal/xsync.Pool[T]
// (see internal/objpool). It reduces allocator churn on the insert hot
// path when Prewarm has stocked the pools ahead of a burst of inserts;
// with empty pools it behaves exactly like gcAllocator (Pool.Get falls
// back to New on a miss).
type PooledAllocator struct {
	leaves *objpool.Pool[leaf]
	node4s *objpool.Pool[node4]
}

// NewPooledAllocator returns a PooledAllocator with empty pools.
func NewPooledAllocator() *PooledAllocator {
	return &PooledAllocator{
		leaves: &objpool.Pool[leaf]{New: func() *leaf { return &leaf{} }},
		node4s: &objpool.Pool[node4]{New: func() *node4 { return &node4{} }},
	}
}

func (p *PooledAllocator) NewLeaf(key []byte, value int64) *leaf {
	lf := p.leaves.Get()
	k := make([]byte, len(key))
	copy(k, key)
	lf.key = k
	lf.kind = kindLeaf
	lf.value.Store(value)
	return lf
}

func (p *PooledAllocator) NewNode4() *node4 {
	n := p.node4s.Get()
	*n = node4{}
	n.kind = kindNode4
	return n
}

// Prewarm allocates n fresh leaves and n fresh node4s and immediately
// returns them to the pools, so the next n Insert calls that need either
// kind can draw from the pool instead of the allocator. Only ever call
// this with nodes that have not (and never will be) published into a
// tree — see the package doc on Allocator.
func (p *PooledAllocator) Prewarm(n int) {
	scratchLeaves := make([]*leaf, n)
	scratchNode4s := make([]*node4, n)
	for i := 0; i < n; i++ {
		scratchLeaves[i] = p.leaves.Get()
		scratchNode4s[i] = p.node4s.Get()
	}
	for i := 0; i < n; i++ {
		p.leaves.Put(scratchLeaves[i])
		p.node4s.Put(scratchNode4s[i])
	}
}
