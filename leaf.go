package art

import "sync/atomic"

// leaf owns the full key bytes and the fixed-width value. A leaf never has
// children of its own; its key-end/children/prefix fields (inherited via
// nodeHeader) are unused padding that exists only so a leaf shares the
// same pointer layout as the inner-node variants.
type leaf struct {
	nodeHeader
	key   []byte
	value atomic.Int64
}

func newLeafCopy(key []byte, value int64) *leaf {
	k := make([]byte, len(key))
	copy(k, key)
	lf := &leaf{key: k}
	lf.kind = kindLeaf
	lf.value.Store(value)
	return lf
}
