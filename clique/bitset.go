// Package clique implements the Clique Scheduler (C5): section priority
// scoring, the compatibility graph over eligible-course sections, a
// Bron-Kerbosch-with-pivot exact search over that graph, and the top-K
// diversified enumeration with post-filters described for the scheduling
// engine's hardest subsystem.
package clique

import "math/bits"

// Bitset is a fixed-width set of small non-negative integers (node
// indices), encoded as a slice of 64-bit words. It exists so the clique
// search can intersect and count candidate sets with single machine
// instructions instead of map operations, the same technique the original
// engine's backtracking search used.
type Bitset []uint64

// NewBitset returns a zeroed Bitset able to hold indices in [0, n).
func NewBitset(n int) Bitset {
	return make(Bitset, (n+63)/64)
}

// Set marks i as a member.
func (b Bitset) Set(i int) {
	b[i/64] |= 1 << uint(i%64)
}

// Clear removes i from the set.
func (b Bitset) Clear(i int) {
	b[i/64] &^= 1 << uint(i%64)
}

// Test reports whether i is a member.
func (b Bitset) Test(i int) bool {
	return b[i/64]&(1<<uint(i%64)) != 0
}

// Clone returns an independent copy.
func (b Bitset) Clone() Bitset {
	out := make(Bitset, len(b))
	copy(out, b)
	return out
}

// And returns the intersection of b and other (new allocation).
func (b Bitset) And(other Bitset) Bitset {
	out := make(Bitset, len(b))
	for i := range b {
		out[i] = b[i] & other[i]
	}
	return out
}

// AndInPlace intersects b with other, mutating b.
func (b Bitset) AndInPlace(other Bitset) {
	for i := range b {
		b[i] &= other[i]
	}
}

// AndNot returns b \ other (new allocation).
func (b Bitset) AndNot(other Bitset) Bitset {
	out := make(Bitset, len(b))
	for i := range b {
		out[i] = b[i] &^ other[i]
	}
	return out
}

// Or returns the union of b and other (new allocation).
func (b Bitset) Or(other Bitset) Bitset {
	out := make(Bitset, len(b))
	for i := range b {
		out[i] = b[i] | other[i]
	}
	return out
}

// Count returns the number of set bits (popcount).
func (b Bitset) Count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether no bits are set.
func (b Bitset) IsEmpty() bool {
	for _, w := range b {
		if w != 0 {
			return false
		}
	}
	return true
}

// Bits returns the set member indices in ascending order.
func (b Bitset) Bits() []int {
	var out []int
	for wi, w := range b {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, wi*64+tz)
			w &= w - 1
		}
	}
	return out
}
