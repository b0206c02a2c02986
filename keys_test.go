package art

import (
	"bytes"
	"testing"
)

func TestStringKey_AppendsSentinel(t *testing.T) {
	k := StringKey("hi")
	if len(k) != 3 || k[2] != 0x00 {
		t.Fatalf("expected a trailing 0x00 sentinel, got %v", k)
	}
}

func TestStringKey_NoKeyIsPrefixOfAnother(t *testing.T) {
	a := StringKey("hell")
	b := StringKey("hello")
	if bytes.Equal(a, b[:len(a)]) && len(a) < len(b) {
		// the shared textual bytes may still match; what must NOT happen
		// is a being a proper byte-for-byte prefix of b once the sentinel
		// is included, since a's sentinel byte diverges from b's 'o'.
		if bytes.Equal(a, b[:len(a)]) {
			t.Fatalf("StringKey(%q) must not be a byte-prefix of StringKey(%q)", "hell", "hello")
		}
	}
}

func TestInt64Key_PreservesOrder(t *testing.T) {
	vals := []int64{-100, -1, 0, 1, 100}
	for i := 0; i < len(vals)-1; i++ {
		a, b := Int64Key(vals[i]), Int64Key(vals[i+1])
		if bytes.Compare(a, b) >= 0 {
			t.Fatalf("Int64Key(%d) should sort before Int64Key(%d)", vals[i], vals[i+1])
		}
	}
}

func TestUint64Key_PreservesOrder(t *testing.T) {
	vals := []uint64{0, 1, 1 << 32, 1 << 63}
	for i := 0; i < len(vals)-1; i++ {
		a, b := Uint64Key(vals[i]), Uint64Key(vals[i+1])
		if bytes.Compare(a, b) >= 0 {
			t.Fatalf("Uint64Key(%d) should sort before Uint64Key(%d)", vals[i], vals[i+1])
		}
	}
}

func TestNarrowIntKeys_AgreeWithInt64Key(t *testing.T) {
	if !bytes.Equal(Int32Key(42), Int64Key(42)) {
		t.Fatalf("Int32Key should delegate to Int64Key's encoding")
	}
	if !bytes.Equal(Uint16Key(7), Uint64Key(7)) {
		t.Fatalf("Uint16Key should delegate to Uint64Key's encoding")
	}
	if !bytes.Equal(Int8Key(-5), Int64Key(-5)) {
		t.Fatalf("Int8Key should delegate to Int64Key's encoding")
	}
}

func TestRuneKey_UTF8Encoding(t *testing.T) {
	cases := map[rune][]byte{
		'A': {0x41},
		'é': {0xC3, 0xA9},
		'中': {0xE4, 0xB8, 0xAD},
		'😀': {0xF0, 0x9F, 0x98, 0x80},
	}
	for r, want := range cases {
		got := RuneKey(r)
		if !bytes.Equal(got, want) {
			t.Fatalf("RuneKey(%q) = %v, want %v", r, got, want)
		}
	}
}

func TestKeys_RoundTripThroughTree(t *testing.T) {
	tr := MakeTree()
	tr.Insert(Int64Key(-5), 1)
	tr.Insert(Int64Key(5), 2)
	tr.Insert(StringKey("hi"), 3)
	tr.Insert(RuneKey('中'), 4)

	if v, ok := tr.Search(Int64Key(-5)); !ok || v != 1 {
		t.Fatalf("Int64Key(-5) round trip failed: got (%d, %v)", v, ok)
	}
	if v, ok := tr.Search(Int64Key(5)); !ok || v != 2 {
		t.Fatalf("Int64Key(5) round trip failed: got (%d, %v)", v, ok)
	}
	if v, ok := tr.Search(StringKey("hi")); !ok || v != 3 {
		t.Fatalf("StringKey(hi) round trip failed: got (%d, %v)", v, ok)
	}
	if v, ok := tr.Search(RuneKey('中')); !ok || v != 4 {
		t.Fatalf("RuneKey round trip failed: got (%d, %v)", v, ok)
	}
}
