package subtraction_test

import (
	"testing"

	"github.com/katalvlaran/cgtlath/games/subtraction"
	"github.com/katalvlaran/cgtlath/nimber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repetitions is how many full periods each assertion checks.
const repetitions = 16

func assertGrundy(t *testing.T, set []uint32, period []uint32) {
	t.Helper()
	seq := subtraction.New(set).GrundySequence().Take(repetitions * len(period))
	for i, got := range seq {
		want := nimber.New(period[i%len(period)])
		require.Equal(t, want, got, "set %v: heap %d valued %s, want %s", set, i, got, want)
	}
}

func TestCorrectGrundySequence(t *testing.T) {
	assertGrundy(t, []uint32{1}, []uint32{0, 1})
	assertGrundy(t, []uint32{2}, []uint32{0, 0, 1, 1})
	assertGrundy(t, []uint32{1, 2}, []uint32{0, 1, 2})
	assertGrundy(t, []uint32{1, 2, 3}, []uint32{0, 1, 2, 3})
	assertGrundy(t, []uint32{5}, []uint32{0, 0, 0, 0, 0, 1, 1, 1, 1, 1})
	assertGrundy(t, []uint32{2, 3, 5}, []uint32{0, 0, 1, 1, 2, 2, 3})
}

func TestSetIsSortedOnConstruction(t *testing.T) {
	s := subtraction.New([]uint32{5, 2, 3})
	assert.Equal(t, []uint32{2, 3, 5}, s.SubtractionSet())
	assert.Equal(t, "Sub(2, 3, 5)", s.String())
}
