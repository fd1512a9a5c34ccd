// Package nimber implements the nimber group: non-negative integers under
// Nim addition (XOR), with the minimum-excludant (mex) operator used to
// derive the Grundy value of an impartial game position.
package nimber

import (
	"sort"
	"strconv"
)

// Nimber is the value of a Nim heap of the given size. Addition is XOR;
// a Nimber is its own additive inverse.
type Nimber uint32

// New constructs a Nimber from a heap size.
func New(value uint32) Nimber {
	return Nimber(value)
}

// Value returns the underlying heap size.
func (n Nimber) Value() uint32 {
	return uint32(n)
}

// Add computes the Nim sum (XOR) of two nimbers.
func (n Nimber) Add(rhs Nimber) Nimber {
	return n ^ rhs
}

// Sub is identical to Add: nimbers are their own additive inverse.
func (n Nimber) Sub(rhs Nimber) Nimber {
	return n ^ rhs
}

// Neg returns n unchanged: every nimber is its own negative.
func (n Nimber) Neg() Nimber {
	return n
}

// Cmp gives the numeric order on nimbers. This is unrelated to game value
// comparison; it exists only so nimbers can be sorted and deduplicated.
func (n Nimber) Cmp(rhs Nimber) int {
	switch {
	case n < rhs:
		return -1
	case n > rhs:
		return 1
	default:
		return 0
	}
}

// Mex returns the minimum excludant of a multiset of nimbers: the least
// non-negative integer absent from ns. Complexity is O(k log k) in len(ns).
func Mex(ns []Nimber) Nimber {
	sorted := make([]Nimber, len(ns))
	copy(sorted, ns)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var current uint32
	for _, n := range sorted {
		switch {
		case current < uint32(n):
			return Nimber(current)
		case current == uint32(n):
			current++
		}
	}
	return Nimber(current)
}

// String renders the standard CGT notation: "0" for *0, "*" for *1, "*k"
// otherwise.
func (n Nimber) String() string {
	switch n {
	case 0:
		return "0"
	case 1:
		return "*"
	default:
		return "*" + strconv.FormatUint(uint64(n), 10)
	}
}
