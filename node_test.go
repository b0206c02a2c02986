package art

import "testing"

func TestAddChild4SortedOrder(t *testing.T) {
	n := newNode4()
	bytes := []byte{5, 1, 9, 3}
	for _, b := range bytes {
		lf := newLeafCopy([]byte{b}, int64(b))
		addChild4(n, b, &lf.nodeHeader)
	}
	if n.childrenCount != 4 {
		t.Fatalf("expected 4 children, got %d", n.childrenCount)
	}
	want := []byte{1, 3, 5, 9}
	for i, w := range want {
		if n.keys[i] != w {
			t.Fatalf("keys[%d] = %d, want %d", i, n.keys[i], w)
		}
	}
}

func TestNode4FindChildSlot(t *testing.T) {
	n := newNode4()
	lf := newLeafCopy([]byte{7}, 42)
	addChild4(n, 7, &lf.nodeHeader)

	if slot := n.findChildSlot(7); slot == nil || slot.Load() != &lf.nodeHeader {
		t.Fatalf("expected to find child at byte 7")
	}
	if slot := n.findChildSlot(8); slot != nil {
		t.Fatalf("expected no slot for absent byte 8")
	}
}

func TestGrow_PreservesAllChildren(t *testing.T) {
	t.Run("node4_to_node16", func(t *testing.T) {
		n := newNode4()
		n.prefixLen = 2
		n.prefix[0], n.prefix[1] = 0xAA, 0xBB
		n.keyEnd.Store(newLeafCopy([]byte("ke"), 99))
		leaves := make([]*leaf, 4)
		for i, b := range []byte{10, 20, 30, 40} {
			leaves[i] = newLeafCopy([]byte{b}, int64(b))
			addChild4(n, b, &leaves[i].nodeHeader)
		}

		g := growTo16(n)
		if g.childrenCount != 4 {
			t.Fatalf("expected 4 children after grow, got %d", g.childrenCount)
		}
		if g.prefixLen != 2 || g.prefix[0] != 0xAA || g.prefix[1] != 0xBB {
			t.Fatalf("prefix not preserved across grow")
		}
		if g.keyEnd.Load() == nil {
			t.Fatalf("key-end child dropped across grow")
		}
		for i, b := range []byte{10, 20, 30, 40} {
			if g.keys[i] != b || g.children[i].Load() != &leaves[i].nodeHeader {
				t.Fatalf("child %d not preserved verbatim across grow", i)
			}
		}
	})

	t.Run("node16_to_node48", func(t *testing.T) {
		n := newNode16()
		leaves := make([]*leaf, node16Cap)
		for i := 0; i < node16Cap; i++ {
			b := byte(i * 2)
			leaves[i] = newLeafCopy([]byte{b}, int64(b))
			addChild16(n, b, &leaves[i].nodeHeader)
		}
		g := growTo48(n)
		if g.childrenCount != node16Cap {
			t.Fatalf("expected %d children after grow, got %d", node16Cap, g.childrenCount)
		}
		if g.minKey != 0 {
			t.Fatalf("expected min_key 0, got %d", g.minKey)
		}
		for i := 0; i < node16Cap; i++ {
			b := byte(i * 2)
			slot := g.findChildSlot(b)
			if slot == nil || slot.Load() != &leaves[i].nodeHeader {
				t.Fatalf("child for byte %d not preserved verbatim across grow", b)
			}
		}
	})

	t.Run("node48_to_node256", func(t *testing.T) {
		n := newNode48()
		leaves := make([]*leaf, node48Cap)
		for i := 0; i < node48Cap; i++ {
			b := byte(i)
			leaves[i] = newLeafCopy([]byte{b}, int64(b))
			addChild48(n, b, &leaves[i].nodeHeader)
		}
		g := growTo256(n)
		for i := 0; i < node48Cap; i++ {
			b := byte(i)
			slot := g.findChildSlot(b)
			if slot == nil || slot.Load() != &leaves[i].nodeHeader {
				t.Fatalf("child for byte %d not preserved verbatim across grow", b)
			}
		}
	})
}

func TestIsFull(t *testing.T) {
	n4 := newNode4()
	for i := 0; i < node4Cap; i++ {
		if isFull(&n4.nodeHeader) {
			t.Fatalf("node4 reported full at %d children", i)
		}
		lf := newLeafCopy([]byte{byte(i)}, int64(i))
		addChild(&n4.nodeHeader, byte(i), &lf.nodeHeader)
	}
	if !isFull(&n4.nodeHeader) {
		t.Fatalf("node4 should report full at capacity %d", node4Cap)
	}

	n256 := newNode256()
	for i := 0; i < 256; i++ {
		lf := newLeafCopy([]byte{byte(i)}, int64(i))
		addChild256(n256, byte(i), &lf.nodeHeader)
	}
	if isFull(&n256.nodeHeader) {
		t.Fatalf("node256 must never report full")
	}
}

func TestFindMinimumKey(t *testing.T) {
	n := newNode4()
	l1 := newLeafCopy([]byte("ba"), 1)
	l2 := newLeafCopy([]byte("aa"), 2)
	addChild4(n, 'b', &l1.nodeHeader)
	addChild4(n, 'a', &l2.nodeHeader)

	mk, ok := findMinimumKey(&n.nodeHeader)
	if !ok {
		t.Fatalf("expected a minimum key")
	}
	if string(mk) != "aa" {
		t.Fatalf("expected lexicographically-first child by byte, got %q", mk)
	}
}

func TestFindMinimumKey_KeyEndOnly(t *testing.T) {
	n := newNode4()
	kc := newLeafCopy([]byte("x"), 7)
	n.keyEnd.Store(kc)

	mk, ok := findMinimumKey(&n.nodeHeader)
	if !ok || string(mk) != "x" {
		t.Fatalf("expected key-end child to serve as minimum key when there are no regular children")
	}
}
