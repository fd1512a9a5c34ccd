package toadsandfrogs_test

import (
	"testing"

	"github.com/katalvlaran/cgtlath/games/toadsandfrogs"
	"github.com/katalvlaran/cgtlath/parser"
	"github.com/katalvlaran/cgtlath/partizan"
	"github.com/katalvlaran/cgtlath/ttable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCanonicalForm(t *testing.T, row, want string) {
	t.Helper()
	table := ttable.NewParallel[toadsandfrogs.Row]()
	form := partizan.CanonicalForm(toadsandfrogs.MustParse(row), table)
	expected, err := parser.Parse(want)
	require.NoError(t, err)
	assert.True(t, form.Equal(expected), "row %q valued as %s, want %s", row, form, expected)
}

func TestParseRejectsForeignTiles(t *testing.T) {
	_, err := toadsandfrogs.Parse("T.X")
	assert.ErrorIs(t, err, toadsandfrogs.ErrBadTile)
}

func TestLeftMoves(t *testing.T) {
	moves := toadsandfrogs.MustParse("T.TFTFF").LeftMoves()
	require.Len(t, moves, 1)
	assert.Equal(t, ".TTFTFF", moves[0].String())

	moves = toadsandfrogs.MustParse("TFT.TFF").LeftMoves()
	require.Len(t, moves, 1)
	assert.Equal(t, "TF.TTFF", moves[0].String())
}

func TestRightMoves(t *testing.T) {
	moves := toadsandfrogs.MustParse("T.TFTFF").RightMoves()
	require.Len(t, moves, 1)
	assert.Equal(t, "TFT.TFF", moves[0].String())

	moves = toadsandfrogs.MustParse(".F.F").RightMoves()
	require.Len(t, moves, 2)
	assert.Equal(t, "F..F", moves[0].String())
	assert.Equal(t, ".FF.", moves[1].String())
}

func TestCanonicalForms(t *testing.T) {
	assertCanonicalForm(t, "", "0")
	assertCanonicalForm(t, ".", "0")
	assertCanonicalForm(t, "F", "0")
	assertCanonicalForm(t, "T", "0")
	assertCanonicalForm(t, "TF.TTFF", "0")
	assertCanonicalForm(t, "TFTFT.F", "*")
	assertCanonicalForm(t, "TFT.TFF", "^")
	assertCanonicalForm(t, "T.TFTFF", "{0|^}")
}
