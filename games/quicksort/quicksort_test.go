package quicksort_test

import (
	"testing"

	"github.com/katalvlaran/cgtlath/games/quicksort"
	"github.com/katalvlaran/cgtlath/impartial"
	"github.com/katalvlaran/cgtlath/nimber"
	"github.com/stretchr/testify/assert"
)

func TestPivotPartitions(t *testing.T) {
	p := quicksort.New([]uint32{4, 1, 6, 5, 3})
	assert.Equal(t, []uint32{1, 3, 4, 6, 5}, p.PivotOn(4).Sequence())
	// Pivoting on an absent value still partitions around it.
	assert.Equal(t, []uint32{1, 4, 6, 5, 3}, p.PivotOn(2).Sequence())
}

func TestSortedPositionHasNoMoves(t *testing.T) {
	assert.Empty(t, quicksort.New([]uint32{1, 2, 3, 4}).Moves())
}

func TestCorrectNimValue(t *testing.T) {
	assert.Equal(t, nimber.New(2), impartial.NimValue(quicksort.New([]uint32{1, 2, 3, 6, 5, 4})))
	assert.Equal(t, nimber.New(5), impartial.NimValue(quicksort.New([]uint32{4, 1, 6, 5, 7, 3, 8, 2})))
	assert.Equal(t, nimber.New(0), impartial.NimValue(quicksort.New([]uint32{4, 1, 6, 5, 7, 8, 2, 3})))
}

// A sequence 2,3,...,n,1 has nim value *(n-1).
func TestOneEndHypothesis(t *testing.T) {
	for end := uint32(2); end < 12; end++ {
		sequence := make([]uint32, 0, end)
		for v := uint32(2); v <= end; v++ {
			sequence = append(sequence, v)
		}
		sequence = append(sequence, 1)
		assert.Equal(t, nimber.New(end-1), impartial.NimValue(quicksort.New(sequence)))
	}
}
