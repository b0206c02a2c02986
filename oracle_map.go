package art

import "sync"

// oracleMap is a trivial mutex+slice reference map used only by this
// module's property and concurrency tests as ground truth to check the
// tree against. Adapted from TomTonic-multimap's arrayBasedMultiMap (same
// sync.RWMutex + linear-scan-slice shape), trimmed to this spec's
// single-valued int64 semantics: no value sets, no range queries (both
// out of scope here — multi-value entries and range scans are explicit
// Non-goals).
type oracleMap struct {
	mu   sync.RWMutex
	data []oracleEntry
}

type oracleEntry struct {
	key   []byte
	value int64
}

func newOracleMap() *oracleMap {
	return &oracleMap{data: make([]oracleEntry, 0, 64)}
}

func (m *oracleMap) Put(key []byte, value int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data {
		if bytesEqual(m.data[i].key, key) {
			m.data[i].value = value
			return
		}
	}
	k := make([]byte, len(key))
	copy(k, key)
	m.data = append(m.data, oracleEntry{key: k, value: value})
}

func (m *oracleMap) Get(key []byte) (int64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.data {
		if bytesEqual(m.data[i].key, key) {
			return m.data[i].value, true
		}
	}
	return 0, false
}

func (m *oracleMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *oracleMap) Keys() [][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([][]byte, len(m.data))
	for i := range m.data {
		k := make([]byte, len(m.data[i].key))
		copy(k, m.data[i].key)
		out[i] = k
	}
	return out
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
