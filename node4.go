package art

import "sync/atomic"

const node4Cap = 4

// node4 is the smallest inner-node variant: a short sorted array of key
// bytes paired with child pointers, scanned linearly. Grounded on
// TomTonic-multimap's node5[T] (same shape, one slot smaller here to match
// this spec's fixed 4/16/48/256 capacities instead of the teacher's
// 5/51/256).
type node4 struct {
	nodeHeader
	keys     [node4Cap]byte
	children [node4Cap]atomic.Pointer[nodeHeader]
}

func newNode4() *node4 {
	n := &node4{}
	n.kind = kindNode4
	return n
}

func (n *node4) findChildSlot(b byte) *atomic.Pointer[nodeHeader] {
	cnt := int(n.childrenCount)
	for i := 0; i < cnt; i++ {
		if n.keys[i] == b {
			return &n.children[i]
		}
	}
	return nil
}

func (n *node4) isFull() bool { return int(n.childrenCount) >= node4Cap }

func addChild4(n *node4, b byte, child *nodeHeader) {
	cnt := int(n.childrenCount)
	pos := cnt
	for pos > 0 && n.keys[pos-1] > b {
		n.keys[pos] = n.keys[pos-1]
		n.children[pos].Store(n.children[pos-1].Load())
		pos--
	}
	n.keys[pos] = b
	n.children[pos].Store(child)
	n.childrenCount++
}

// growTo16 promotes a full node4 to a node16, copying the header and all
// four children verbatim (no byte may be dropped, per spec.md §9(iii)).
func growTo16(n *node4) *node16 {
	g := newNode16()
	copyHeaderInto(&g.nodeHeader, &n.nodeHeader)
	cnt := int(n.childrenCount)
	for i := 0; i < cnt; i++ {
		g.keys[i] = n.keys[i]
		g.children[i].Store(n.children[i].Load())
	}
	return g
}
