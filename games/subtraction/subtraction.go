// Package subtraction implements the classical subtraction game on a finite
// subtraction set: a position is a heap, a move removes any s ∈ S tokens.
// Grundy values are produced as an infinite sequence over heap sizes using
// the Grundy scale method — a ring buffer as wide as the largest
// subtraction, so arbitrarily long prefixes stream in constant memory.
package subtraction

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/cgtlath/nimber"
)

// Sub is a subtraction game rule set. The subtraction set is kept sorted.
type Sub struct {
	subtractionSet []uint32
}

// New defines the game with the given subtraction set.
func New(subtractionSet []uint32) Sub {
	set := append([]uint32(nil), subtractionSet...)
	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
	return Sub{subtractionSet: set}
}

// SubtractionSet returns a copy of the sorted subtraction set.
func (s Sub) SubtractionSet() []uint32 {
	return append([]uint32(nil), s.subtractionSet...)
}

// String renders "Sub(s1, s2, ...)".
func (s Sub) String() string {
	var b strings.Builder
	b.WriteString("Sub(")
	for i, v := range s.subtractionSet {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteByte(')')
	return b.String()
}

// GrundySequence starts streaming the game's Grundy values from heap 0.
func (s Sub) GrundySequence() *GrundySequence {
	largest := uint32(0)
	if n := len(s.subtractionSet); n > 0 {
		largest = s.subtractionSet[n-1]
	}
	if largest == 0 {
		largest = 1
	}
	return &GrundySequence{
		game:     s,
		previous: make([]nimber.Nimber, largest),
	}
}

// GrundySequence is an unbounded iterator over heap sizes 0, 1, 2, ...
type GrundySequence struct {
	game     Sub
	previous []nimber.Nimber
	current  uint32
}

// Next returns the Grundy value of the next heap size.
func (gs *GrundySequence) Next() nimber.Nimber {
	periodLen := uint32(len(gs.previous))

	forMex := make([]nimber.Nimber, 0, len(gs.game.subtractionSet))
	for _, m := range gs.game.subtractionSet {
		if m > gs.current {
			break
		}
		forMex = append(forMex, gs.previous[(gs.current-m)%periodLen])
	}
	mex := nimber.Mex(forMex)

	gs.previous[gs.current%periodLen] = mex
	gs.current++
	return mex
}

// Take returns the first n values of the sequence.
func (gs *GrundySequence) Take(n int) []nimber.Nimber {
	out := make([]nimber.Nimber, n)
	for i := range out {
		out[i] = gs.Next()
	}
	return out
}
