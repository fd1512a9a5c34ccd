// Package quicksort implements the impartial Quicksort game: a position is
// a sequence of numbers, and a move pivots the sequence around any element
// the way one quicksort partition step would — everything smaller first,
// the pivot, then everything larger, each side keeping its relative order.
// A pivot that changes nothing is not a move, so play ends on the sorted
// sequence.
package quicksort

import (
	"fmt"
	"strings"
)

// Position is a Quicksort game position.
type Position struct {
	sequence []uint32
}

// New copies the sequence into a fresh position.
func New(sequence []uint32) Position {
	return Position{sequence: append([]uint32(nil), sequence...)}
}

// Sequence returns a copy of the underlying sequence.
func (p Position) Sequence() []uint32 {
	return append([]uint32(nil), p.sequence...)
}

// PivotOn partitions the sequence around pivot: smaller elements first in
// order, then the pivot if present, then larger elements in order.
func (p Position) PivotOn(pivot uint32) Position {
	res := make([]uint32, 0, len(p.sequence))
	for _, elem := range p.sequence {
		if elem < pivot {
			res = append(res, elem)
		}
	}
	for _, elem := range p.sequence {
		if elem == pivot {
			res = append(res, elem)
			break
		}
	}
	for _, elem := range p.sequence {
		if elem > pivot {
			res = append(res, elem)
		}
	}
	return Position{sequence: res}
}

// Moves lists every pivot that actually changes the sequence.
func (p Position) Moves() []Position {
	moves := make([]Position, 0, len(p.sequence))
	for _, pivot := range p.sequence {
		next := p.PivotOn(pivot)
		if !next.equal(p) {
			moves = append(moves, next)
		}
	}
	return moves
}

func (p Position) equal(rhs Position) bool {
	if len(p.sequence) != len(rhs.sequence) {
		return false
	}
	for i := range p.sequence {
		if p.sequence[i] != rhs.sequence[i] {
			return false
		}
	}
	return true
}

// String renders "Quicksort[a, b, c]".
func (p Position) String() string {
	var b strings.Builder
	b.WriteString("Quicksort[")
	for i, v := range p.sequence {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteByte(']')
	return b.String()
}
