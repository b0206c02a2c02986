package art

import "sync/atomic"

// findChildSlot returns the address of the child slot for byte b, or nil
// if byte b has no reserved slot in this node (node4/node16/node48 only —
// node256 always has a reserved slot, see node256.findChildSlot).
// Returning the address (not the value) lets the caller atomically
// overwrite the slot in place, per spec.md §4.2.
func findChildSlot(h *nodeHeader, b byte) *atomic.Pointer[nodeHeader] {
	switch h.kind {
	case kindNode4:
		return h.asNode4().findChildSlot(b)
	case kindNode16:
		return h.asNode16().findChildSlot(b)
	case kindNode48:
		return h.asNode48().findChildSlot(b)
	case kindNode256:
		return h.asNode256().findChildSlot(b)
	default:
		panic("art: findChildSlot on non-inner node")
	}
}

func addChild(h *nodeHeader, b byte, child *nodeHeader) {
	switch h.kind {
	case kindNode4:
		addChild4(h.asNode4(), b, child)
	case kindNode16:
		addChild16(h.asNode16(), b, child)
	case kindNode48:
		addChild48(h.asNode48(), b, child)
	case kindNode256:
		addChild256(h.asNode256(), b, child)
	default:
		panic("art: addChild on non-inner node")
	}
}

func isFull(h *nodeHeader) bool {
	switch h.kind {
	case kindNode4:
		return h.asNode4().isFull()
	case kindNode16:
		return h.asNode16().isFull()
	case kindNode48:
		return h.asNode48().isFull()
	case kindNode256:
		return h.asNode256().isFull()
	default:
		panic("art: isFull on non-inner node")
	}
}

// grow promotes node to the next larger variant, copying the header and
// every existing child verbatim (spec.md §9(iii)); the caller is
// responsible for installing the returned header in the parent slot and
// retiring the old one as obsolete.
func grow(h *nodeHeader) *nodeHeader {
	switch h.kind {
	case kindNode4:
		return &growTo16(h.asNode4()).nodeHeader
	case kindNode16:
		return &growTo48(h.asNode16()).nodeHeader
	case kindNode48:
		return &growTo256(h.asNode48()).nodeHeader
	case kindNode256:
		panic("art: node256 never grows")
	default:
		panic("art: grow on non-inner node")
	}
}

// findMinimumKey descends the leftmost child chain until a leaf is
// reached, returning its key bytes. If the node itself has no regular
// children, its key-end child (if any) is the minimum. Grounded on
// original_source/src/actions.cpp's Tree::findMinimumKey.
func findMinimumKey(h *nodeHeader) ([]byte, bool) {
	cur := h
	for {
		if cur.kind == kindLeaf {
			return cur.asLeaf().key, true
		}
		if cur.childrenCount == 0 {
			kc := cur.keyEnd.Load()
			if kc == nil {
				return nil, false
			}
			return kc.key, true
		}
		var next *nodeHeader
		switch cur.kind {
		case kindNode4:
			next = cur.asNode4().children[0].Load()
		case kindNode16:
			next = cur.asNode16().children[0].Load()
		case kindNode48:
			n := cur.asNode48()
			next = n.children[n.childIndex[n.minKey]].Load()
		case kindNode256:
			n := cur.asNode256()
			next = n.children[n.minKey].Load()
		default:
			panic("art: findMinimumKey on leaf reached via unknown kind")
		}
		if next == nil {
			panic("art: findMinimumKey hit a nil child under a non-zero child count")
		}
		cur = next
	}
}
