package impartial_test

import (
	"testing"

	"github.com/katalvlaran/cgtlath/impartial"
	"github.com/katalvlaran/cgtlath/nimber"
	"github.com/stretchr/testify/assert"
)

// heap is a single Nim heap: a move takes any positive number of tokens.
type heap uint32

func (h heap) Moves() []heap {
	moves := make([]heap, 0, h)
	for take := heap(1); take <= h; take++ {
		moves = append(moves, h-take)
	}
	return moves
}

// pair is a position of two Nim heaps, exercising the recursion on a game
// whose value is a genuine XOR rather than the heap size itself.
type pair struct {
	a, b heap
}

func (p pair) Moves() []pair {
	var moves []pair
	for _, a := range p.a.Moves() {
		moves = append(moves, pair{a, p.b})
	}
	for _, b := range p.b.Moves() {
		moves = append(moves, pair{p.a, b})
	}
	return moves
}

func TestNimHeapValueIsItsSize(t *testing.T) {
	for size := uint32(0); size < 8; size++ {
		assert.Equal(t, nimber.New(size), impartial.NimValue(heap(size)))
	}
}

func TestTwoHeapsXor(t *testing.T) {
	assert.Equal(t, nimber.New(0), impartial.NimValue(pair{3, 3}))
	assert.Equal(t, nimber.New(6), impartial.NimValue(pair{3, 5}))
	assert.Equal(t, nimber.New(1), impartial.NimValue(pair{4, 5}))
}

func TestMemoMatchesUnmemoised(t *testing.T) {
	memo := impartial.NewMemo[pair]()
	for a := heap(0); a < 5; a++ {
		for b := heap(0); b < 5; b++ {
			p := pair{a, b}
			assert.Equal(t, impartial.NimValue(p), memo.NimValue(p))
		}
	}
	assert.Greater(t, memo.Len(), 0)
}
