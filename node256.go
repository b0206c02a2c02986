package art

import "sync/atomic"

const node256Cap = 256

// node256 is a direct 256-slot child array indexed by key byte; a slot is
// nil iff that byte has no child (spec.md §3 invariant 4). It never grows
// and is never full.
type node256 struct {
	nodeHeader
	children [node256Cap]atomic.Pointer[nodeHeader]
}

func newNode256() *node256 {
	n := &node256{}
	n.kind = kindNode256
	return n
}

// findChildSlot always returns a valid slot address for node256, even
// when the slot currently holds nil — the 256-entry array is physically
// reserved for every byte value. Callers distinguish "no child" by
// checking the loaded value, not by a nil slot pointer.
func (n *node256) findChildSlot(b byte) *atomic.Pointer[nodeHeader] {
	return &n.children[b]
}

func (n *node256) isFull() bool { return false }

func addChild256(n *node256, b byte, child *nodeHeader) {
	n.children[b].Store(child)
	n.childrenCount++
	if n.childrenCount == 1 || b < n.minKey {
		n.minKey = b
	}
}
