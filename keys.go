package art

import (
	"encoding/binary"

	"golang.org/x/text/unicode/norm"
)

// This file adapts TomTonic-multimap's key.go constructors to this
// module's plain []byte key convention. The Key ADT's ordering/range
// surface (LessThan, String, Clone, Equal, IsEmpty) is dropped: ordered
// iteration and range queries are an explicit Non-goal here, so there is
// nothing left that would consume an ordering API.
//
// Integer encoding policy: every integer constructor writes an 8-byte
// big-endian representation; signed values are first offset by 1<<63 and
// unsigned values are written as-is, so lexicographic byte comparison of
// the resulting keys matches numeric ordering regardless of source width.

// StringKey normalizes s to Unicode NFC and appends a single 0x00
// sentinel byte, the technique spec.md §3 describes for making no
// normalized string key a proper prefix of another — grounded directly on
// the teacher's FromString (same norm.NFC.String call). This is caller
// convenience only; the tree itself handles proper-prefix keys correctly
// via the key-end child regardless (spec.md §3).
func StringKey(s string) []byte {
	s = norm.NFC.String(s)
	b := make([]byte, len(s)+1)
	copy(b, s)
	b[len(s)] = 0x00
	return b
}

const int64KeyOffset = uint64(1) << 63

// Int64Key converts i to an order-preserving 8-byte big-endian key.
func Int64Key(i int64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(i)+int64KeyOffset)
	return b[:]
}

// Uint64Key converts u to an order-preserving 8-byte big-endian key.
func Uint64Key(u uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], u)
	return b[:]
}

// Int32Key converts i to an order-preserving 8-byte big-endian key.
func Int32Key(i int32) []byte { return Int64Key(int64(i)) }

// Uint32Key converts u to an order-preserving 8-byte big-endian key.
func Uint32Key(u uint32) []byte { return Uint64Key(uint64(u)) }

// Int16Key converts i to an order-preserving 8-byte big-endian key.
func Int16Key(i int16) []byte { return Int64Key(int64(i)) }

// Uint16Key converts u to an order-preserving 8-byte big-endian key.
func Uint16Key(u uint16) []byte { return Uint64Key(uint64(u)) }

// Int8Key converts i to an order-preserving 8-byte big-endian key.
func Int8Key(i int8) []byte { return Int64Key(int64(i)) }

// Uint8Key converts u to an order-preserving 8-byte big-endian key.
func Uint8Key(u uint8) []byte { return Uint64Key(uint64(u)) }

// RuneKey returns the UTF-8 encoding of r as a key.
func RuneKey(r rune) []byte {
	var buf [4]byte
	n := utf8EncodeRune(buf[:], r)
	out := make([]byte, n)
	copy(out, buf[:n])
	return out
}

// utf8EncodeRune writes r's UTF-8 encoding into buf and returns its
// length, adapted from the teacher's hand-rolled encoder in key.go.
func utf8EncodeRune(buf []byte, r rune) int {
	switch {
	case r <= 0x7F:
		buf[0] = byte(r)
		return 1
	case r <= 0x7FF:
		buf[0] = 0xC0 | byte(r>>6)
		buf[1] = 0x80 | byte(r)&0x3F
		return 2
	case r <= 0xFFFF:
		buf[0] = 0xE0 | byte(r>>12)
		buf[1] = 0x80 | byte(r>>6)&0x3F
		buf[2] = 0x80 | byte(r)&0x3F
		return 3
	default:
		buf[0] = 0xF0 | byte(r>>18)
		buf[1] = 0x80 | byte(r>>12)&0x3F
		buf[2] = 0x80 | byte(r>>6)&0x3F
		buf[3] = 0x80 | byte(r)&0x3F
		return 4
	}
}
