package art

// prefixMatches is the central path-compression helper (spec.md §4.3),
// grounded on original_source/src/actions.cpp's Tree::prefixMatches. It
// compares key[depth:] against node's logical prefix in two phases:
//
//  1. Materialised: compare against the up-to-prefixCap bytes actually
//     stored in the header.
//  2. Lazy: only entered when the node's logical prefix is longer than
//     what's materialised and no mismatch has been found yet — fetches a
//     representative leaf beneath the node (via findMinimumKey) and
//     continues the comparison against its key bytes.
//
// Returns whether the full logical prefix matched, the offset of the
// first difference (0-based, relative to the start of the prefix), and —
// only when the lazy phase actually ran — the fetched leaf's key bytes,
// so insert's Case A can reuse them instead of fetching twice.
func prefixMatches(node *nodeHeader, key []byte, depth int) (matched bool, firstDiff int, minKey []byte) {
	prefixLen := int(node.prefixLen)
	capLen := capPrefixLen(prefixLen)
	stop := capLen
	if rem := len(key) - depth; rem < stop {
		stop = rem
	}

	i := 0
	for ; i < stop; i++ {
		if key[depth+i] != node.prefix[i] {
			return false, i, nil
		}
	}

	if i+depth == len(key) {
		// key exhausted exactly at (or before) the end of the materialised
		// region: a full match requires the logical prefix to also end here.
		return i == prefixLen, i, nil
	}
	if i == prefixLen {
		// node's logical prefix exhausted within the materialised region.
		return true, i, nil
	}

	// The node's logical prefix runs longer than what's materialised;
	// fetch a leaf beneath the node to verify the remaining bytes.
	mk, ok := findMinimumKey(node)
	if !ok {
		// A populated inner node always has a reachable leaf; this would
		// indicate a corrupt tree rather than a normal mismatch.
		return false, i, nil
	}

	stop2 := prefixLen
	if r := len(mk) - depth; r < stop2 {
		stop2 = r
	}
	if r := len(key) - depth; r < stop2 {
		stop2 = r
	}
	for ; i < stop2; i++ {
		if key[depth+i] != mk[depth+i] {
			return false, i, mk
		}
	}
	if depth+i == len(key) {
		// key exhausted during the lazy phase: only a full match if the
		// logical prefix also ends here, mirroring the materialised
		// phase's identical check above instead of matching implicitly.
		return i == prefixLen, i, mk
	}
	return true, i, mk
}
