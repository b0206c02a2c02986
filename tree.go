// Package art implements a concurrent, in-memory Adaptive Radix Tree
// mapping variable-length byte-string keys to fixed-width int64 values.
package art

import (
	"bytes"
	"fmt"

	"github.com/adaptiveart/art/internal/diag"
)

// Tree is a concurrent ART index. The zero value is not usable; create
// one with MakeTree.
type Tree struct {
	root  *node256
	alloc Allocator
}

// MakeTree returns an empty tree. The root is a dedicated N256 that is
// never split, grown, or retired (spec.md §4.5/§9 "Root is special").
func MakeTree() *Tree {
	return &Tree{root: newNode256(), alloc: gcAllocator{}}
}

// NewTreeWithAllocator is MakeTree with a caller-supplied Allocator (for
// instance a *PooledAllocator warmed ahead of a known insert burst).
func NewTreeWithAllocator(a Allocator) *Tree {
	return &Tree{root: newNode256(), alloc: a}
}

var errEmptyKey = fmt.Errorf("art: key must be non-empty")

// Search returns the value stored under key and true, or (0, false) if no
// such key is present. Search never mutates the tree and is wait-free
// under OLC: any inconsistency detected mid-descent causes a full restart
// from the root rather than returning a wrong answer.
func (t *Tree) Search(key []byte) (int64, bool) {
	if len(key) == 0 {
		panic(errEmptyKey)
	}

restart:
	for {
		node := &t.root.nodeHeader
		depth := 0
		version, ok := node.readLockOrRestart()
		if !ok {
			diag.RecordRestart()
			continue restart
		}

		for {
			if len(key) < depth+int(node.prefixLen) {
				if !node.readUnlockOrRestart(version) {
					diag.RecordRestart()
					continue restart
				}
				return 0, false
			}

			matched, _, _ := prefixMatches(node, key, depth)
			if !matched {
				if !node.readUnlockOrRestart(version) {
					diag.RecordRestart()
					continue restart
				}
				return 0, false
			}
			depth += int(node.prefixLen)

			if depth == len(key) {
				kc := node.keyEnd.Load()
				if !node.readUnlockOrRestart(version) {
					diag.RecordRestart()
					continue restart
				}
				if kc == nil {
					return 0, false
				}
				return kc.value.Load(), true
			}

			slot := findChildSlot(node, key[depth])
			if slot == nil {
				if !node.readUnlockOrRestart(version) {
					diag.RecordRestart()
					continue restart
				}
				return 0, false
			}
			child := slot.Load()
			if !node.readUnlockOrRestart(version) {
				diag.RecordRestart()
				continue restart
			}
			if child == nil {
				return 0, false
			}
			depth++

			if child.kind == kindLeaf {
				lf := child.asLeaf()
				if len(lf.key) == len(key) && bytes.Equal(lf.key, key) {
					return lf.value.Load(), true
				}
				return 0, false
			}

			childVersion, ok := child.readLockOrRestart()
			if !ok {
				diag.RecordRestart()
				continue restart
			}
			node = child
			version = childVersion
		}
	}
}

// Insert stores value under key, overwriting any existing value for an
// identical key. key must be non-empty.
func (t *Tree) Insert(key []byte, value int64) {
	if len(key) == 0 {
		panic(errEmptyKey)
	}

restart:
	for {
		rootHeader := &t.root.nodeHeader
		rootSlot := &t.root.children[key[0]]

		rv, ok := rootHeader.readLockOrRestart()
		if !ok {
			diag.RecordRestart()
			continue restart
		}
		child := rootSlot.Load()

		if child == nil {
			if !rootHeader.upgradeToWriteLockOrRestart(rv) {
				diag.RecordRestart()
				continue restart
			}
			lf := t.alloc.NewLeaf(key, value)
			rootSlot.Store(&lf.nodeHeader)
			rootHeader.writeUnlock()
			return
		}

		if child.kind == kindLeaf {
			if !rootHeader.upgradeToWriteLockOrRestart(rv) {
				diag.RecordRestart()
				continue restart
			}
			newChild := splitLeafPrefix(t.alloc, child.asLeaf(), key, value, 1)
			rootSlot.Store(newChild)
			rootHeader.writeUnlock()
			return
		}

		depth := 1
		parent := rootHeader
		parentSlot := rootSlot
		parentVersion := rv
		node := child

		for {
			nodeVersion, ok := node.readLockOrRestart()
			if !ok {
				diag.RecordRestart()
				continue restart
			}
			if !parent.readUnlockOrRestart(parentVersion) {
				diag.RecordRestart()
				continue restart
			}

			matched, firstDiff, minKey := prefixMatches(node, key, depth)
			newDepth := depth + firstDiff

			if !matched {
				// Case A: the node's prefix diverges from key, or key is
				// exhausted inside it. Split the prefix into a fresh N4
				// carrying the common head, with the shortened node and a
				// new leaf as its two children — or, when key ends inside
				// the prefix, with the new leaf as its key-end child and
				// the shortened node as its only regular child.
				if !parent.upgradeToWriteLockOrRestart(parentVersion) {
					diag.RecordRestart()
					continue restart
				}
				if !node.upgradeToWriteLockOrRestart(nodeVersion) {
					parent.writeUnlock()
					diag.RecordRestart()
					continue restart
				}

				oldPrefixLen := int(node.prefixLen)

				newParent := t.alloc.NewNode4()
				newParent.prefixLen = uint32(firstDiff)
				headLen := capPrefixLen(firstDiff)
				copy(newParent.prefix[:headLen], node.prefix[:headLen])

				node.prefixLen = uint32(oldPrefixLen - (firstDiff + 1))
				newCapLen := capPrefixLen(int(node.prefixLen))

				if minKey == nil {
					residual := capPrefixLen(oldPrefixLen) - (firstDiff + 1)
					if newCapLen > residual {
						mk, ok := findMinimumKey(node)
						if !ok {
							panic("art: prefix split needs a leaf under the node")
						}
						minKey = mk
					}
				}

				var diffByte byte
				if minKey == nil {
					diffByte = node.prefix[firstDiff]
					copy(node.prefix[:newCapLen], node.prefix[firstDiff+1:firstDiff+1+newCapLen])
				} else {
					diffByte = minKey[depth+firstDiff]
					src := minKey[depth+firstDiff+1:]
					n := newCapLen
					if len(src) < n {
						n = len(src)
					}
					copy(node.prefix[:n], src[:n])
				}

				newLf := t.alloc.NewLeaf(key, value)
				if newDepth == len(key) {
					newParent.keyEnd.Store(newLf)
					addChild4(newParent, diffByte, node)
				} else {
					insertSortedPair(newParent, key[depth+firstDiff], diffByte, &newLf.nodeHeader, node)
					newParent.childrenCount = 2
				}

				parentSlot.Store(&newParent.nodeHeader)
				node.writeUnlock()
				parent.writeUnlock()
				return
			}

			depth = newDepth

			if depth == len(key) {
				// Case B: key exhausted exactly at this node's prefix end.
				if !node.upgradeToWriteLockOrRestart(nodeVersion) {
					diag.RecordRestart()
					continue restart
				}
				lf := t.alloc.NewLeaf(key, value)
				node.keyEnd.Store(lf)
				node.writeUnlock()
				return
			}

			// Case C: advance past the prefix and locate the child slot.
			childSlot := findChildSlot(node, key[depth])
			if childSlot == nil || childSlot.Load() == nil {
				if !node.upgradeToWriteLockOrRestart(nodeVersion) {
					diag.RecordRestart()
					continue restart
				}
				if !isFull(node) {
					lf := t.alloc.NewLeaf(key, value)
					addChild(node, key[depth], &lf.nodeHeader)
					node.writeUnlock()
				} else {
					if !parent.upgradeToWriteLockOrRestart(parentVersion) {
						node.writeUnlock()
						diag.RecordRestart()
						continue restart
					}
					grown := grow(node)
					lf := t.alloc.NewLeaf(key, value)
					addChild(grown, key[depth], &lf.nodeHeader)
					parentSlot.Store(grown)
					node.writeUnlockObsolete()
					parent.writeUnlock()
				}
				return
			}

			nextChild := childSlot.Load()
			if nextChild.kind == kindLeaf {
				if !node.upgradeToWriteLockOrRestart(nodeVersion) {
					diag.RecordRestart()
					continue restart
				}
				newChild := splitLeafPrefix(t.alloc, nextChild.asLeaf(), key, value, depth+1)
				childSlot.Store(newChild)
				node.writeUnlock()
				return
			}

			parent = node
			parentSlot = childSlot
			parentVersion = nodeVersion
			node = nextChild
			depth++
		}
	}
}

// splitLeafPrefix builds a subtree indexing both old_leaf.key and
// key → value, grounded on original_source/src/actions.cpp's
// Tree::splitLeafPrefix.
func splitLeafPrefix(alloc Allocator, oldLeaf *leaf, key []byte, value int64, depth int) *nodeHeader {
	i := depth
	stop := len(key)
	if len(oldLeaf.key) < stop {
		stop = len(oldLeaf.key)
	}
	for i < stop && key[i] == oldLeaf.key[i] {
		i++
	}

	if i == len(key) && len(key) == len(oldLeaf.key) {
		oldLeaf.value.Store(value)
		return &oldLeaf.nodeHeader
	}

	newParent := alloc.NewNode4()
	newParent.prefixLen = uint32(i - depth)
	n := capPrefixLen(i - depth)
	copy(newParent.prefix[:n], oldLeaf.key[depth:depth+n])

	switch {
	case i == len(key):
		// new key is a proper prefix of the old key.
		newLf := alloc.NewLeaf(key, value)
		newParent.keyEnd.Store(newLf)
		addChild(&newParent.nodeHeader, oldLeaf.key[i], &oldLeaf.nodeHeader)
		newParent.childrenCount = 1
	case i == len(oldLeaf.key):
		// old key is a proper prefix of the new key.
		newLf := alloc.NewLeaf(key, value)
		addChild(&newParent.nodeHeader, key[i], &newLf.nodeHeader)
		newParent.keyEnd.Store(oldLeaf)
		newParent.childrenCount = 1
	default:
		newLf := alloc.NewLeaf(key, value)
		insertSortedPair(newParent, key[i], oldLeaf.key[i], &newLf.nodeHeader, &oldLeaf.nodeHeader)
		newParent.childrenCount = 2
	}
	return &newParent.nodeHeader
}

// insertSortedPair writes both (k1,c1) and (k2,c2) into a fresh, empty
// node4 in ascending key-byte order, mirroring the C++ original's
// insertInOrder helper.
func insertSortedPair(n *node4, k1, k2 byte, c1, c2 *nodeHeader) {
	if k1 == k2 {
		panic("art: diverging children must have distinct key bytes")
	}
	if k1 < k2 {
		n.keys[0], n.keys[1] = k1, k2
		n.children[0].Store(c1)
		n.children[1].Store(c2)
	} else {
		n.keys[0], n.keys[1] = k2, k1
		n.children[0].Store(c2)
		n.children[1].Store(c1)
	}
}
