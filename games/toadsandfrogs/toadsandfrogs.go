// Package toadsandfrogs implements a single row of Toads and Frogs: Left's
// toads (T) step right into an empty square or jump one frog onto an empty
// square, Right's frogs (F) do the same leftwards. Rectangular boards are
// sums of rows, so the row is the whole rule set.
package toadsandfrogs

import (
	"errors"
	"fmt"
)

// ErrBadTile is returned by Parse for characters outside T, F and '.'.
var ErrBadTile = errors.New("toadsandfrogs: row may only contain 'T', 'F' and '.'")

const (
	empty = '.'
	toad  = 'T'
	frog  = 'F'
)

// Row is one row of the board. It is immutable and comparable, so it can
// key a transposition table directly.
type Row struct {
	tiles string
}

// Parse reads a row like "T.TFTFF".
func Parse(s string) (Row, error) {
	for _, c := range s {
		if c != empty && c != toad && c != frog {
			return Row{}, fmt.Errorf("%w: %q", ErrBadTile, c)
		}
	}
	return Row{tiles: s}, nil
}

// MustParse is Parse for fixtures and tests with known-good literals.
func MustParse(s string) Row {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// String renders the row back in its textual form.
func (r Row) String() string {
	return r.tiles
}

func (r Row) with(idx int, c byte) string {
	b := []byte(r.tiles)
	b[idx] = c
	return string(b)
}

// LeftMoves lists every row reachable by one toad stepping or jumping
// right.
func (r Row) LeftMoves() []Row {
	var moves []Row
	n := len(r.tiles)
	for idx := 0; idx < n; idx++ {
		if r.tiles[idx] != toad {
			continue
		}
		switch {
		case idx+1 < n && r.tiles[idx+1] == empty:
			b := []byte(r.with(idx, empty))
			b[idx+1] = toad
			moves = append(moves, Row{tiles: string(b)})
		case idx+2 < n && r.tiles[idx+1] == frog && r.tiles[idx+2] == empty:
			b := []byte(r.with(idx, empty))
			b[idx+2] = toad
			moves = append(moves, Row{tiles: string(b)})
		}
	}
	return moves
}

// RightMoves lists every row reachable by one frog stepping or jumping
// left.
func (r Row) RightMoves() []Row {
	var moves []Row
	for idx := 0; idx < len(r.tiles); idx++ {
		if r.tiles[idx] != frog {
			continue
		}
		switch {
		case idx > 0 && r.tiles[idx-1] == empty:
			b := []byte(r.with(idx, empty))
			b[idx-1] = frog
			moves = append(moves, Row{tiles: string(b)})
		case idx > 1 && r.tiles[idx-1] == toad && r.tiles[idx-2] == empty:
			b := []byte(r.with(idx, empty))
			b[idx-2] = frog
			moves = append(moves, Row{tiles: string(b)})
		}
	}
	return moves
}
