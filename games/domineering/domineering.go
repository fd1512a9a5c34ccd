// Package domineering implements Domineering on a rectangular grid: Left
// places vertical dominoes on pairs of empty cells, Right places horizontal
// ones. Regions of the grid that share no empty cells play independently,
// which is where the driver's decomposition fan-out earns its keep.
package domineering

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadTile is returned by Parse for characters outside '.' and '#'.
var ErrBadTile = errors.New("domineering: grid may only contain '.' and '#'")

// ErrEmptyGrid is returned by Parse when no rows are supplied.
var ErrEmptyGrid = errors.New("domineering: grid has no rows")

const (
	emptyCell   = '.'
	blockedCell = '#'
)

// Grid is a Domineering position: a width×height board stored row-major as
// a string, so positions are comparable and hash cheaply as table keys.
type Grid struct {
	width  int
	height int
	cells  string
}

// Parse reads a grid from '|'-separated rows of '.' (empty) and '#'
// (blocked). Rows shorter than the widest are padded with blocked cells.
func Parse(s string) (Grid, error) {
	rows := strings.Split(s, "|")
	if len(rows) == 0 || (len(rows) == 1 && rows[0] == "") {
		return Grid{}, ErrEmptyGrid
	}
	width := 0
	for _, row := range rows {
		for _, c := range row {
			if c != emptyCell && c != blockedCell {
				return Grid{}, fmt.Errorf("%w: %q", ErrBadTile, c)
			}
		}
		if len(row) > width {
			width = len(row)
		}
	}
	var cells strings.Builder
	for _, row := range rows {
		cells.WriteString(row)
		for pad := len(row); pad < width; pad++ {
			cells.WriteByte(blockedCell)
		}
	}
	return Grid{width: width, height: len(rows), cells: cells.String()}, nil
}

// MustParse is Parse for fixtures and tests with known-good literals.
func MustParse(s string) Grid {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// String renders the grid back as '|'-separated rows.
func (g Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('|')
		}
		b.WriteString(g.cells[y*g.width : (y+1)*g.width])
	}
	return b.String()
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g Grid) Height() int { return g.height }

func (g Grid) at(x, y int) byte {
	return g.cells[y*g.width+x]
}

func (g Grid) place(x1, y1, x2, y2 int) Grid {
	b := []byte(g.cells)
	b[y1*g.width+x1] = blockedCell
	b[y2*g.width+x2] = blockedCell
	return Grid{width: g.width, height: g.height, cells: string(b)}
}

// LeftMoves lists every position reachable by placing one vertical domino.
func (g Grid) LeftMoves() []Grid {
	var moves []Grid
	for y := 0; y+1 < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.at(x, y) == emptyCell && g.at(x, y+1) == emptyCell {
				moves = append(moves, g.place(x, y, x, y+1))
			}
		}
	}
	return moves
}

// RightMoves lists every position reachable by placing one horizontal
// domino.
func (g Grid) RightMoves() []Grid {
	var moves []Grid
	for y := 0; y < g.height; y++ {
		for x := 0; x+1 < g.width; x++ {
			if g.at(x, y) == emptyCell && g.at(x+1, y) == emptyCell {
				moves = append(moves, g.place(x, y, x+1, y))
			}
		}
	}
	return moves
}

// Decompositions splits the grid into the 4-connected regions of its empty
// cells; dominoes never straddle two regions, so each plays independently.
// Every region comes back cropped to its bounding box, which lets the
// transposition table recognise congruent regions from different corners of
// the board.
func (g Grid) Decompositions() []Grid {
	seen := make([]bool, len(g.cells))
	var out []Grid
	for idx := range g.cells {
		if seen[idx] || g.cells[idx] != emptyCell {
			continue
		}
		region := g.flood(idx, seen)
		out = append(out, g.crop(region))
	}
	if len(out) == 0 {
		// Fully blocked: the zero game, kept as a single summand so the
		// driver always has something to value.
		return []Grid{g}
	}
	return out
}

// flood marks the 4-connected empty region containing start and returns its
// membership mask.
func (g Grid) flood(start int, seen []bool) []bool {
	region := make([]bool, len(g.cells))
	stack := []int{start}
	seen[start] = true
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region[idx] = true
		x, y := idx%g.width, idx/g.width
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := x+d[0], y+d[1]
			if nx < 0 || nx >= g.width || ny < 0 || ny >= g.height {
				continue
			}
			nidx := ny*g.width + nx
			if !seen[nidx] && g.cells[nidx] == emptyCell {
				seen[nidx] = true
				stack = append(stack, nidx)
			}
		}
	}
	return region
}

// crop extracts a region into its own grid, blocking every cell outside the
// region and trimming to the region's bounding box.
func (g Grid) crop(region []bool) Grid {
	minX, minY := g.width, g.height
	maxX, maxY := -1, -1
	for idx, in := range region {
		if !in {
			continue
		}
		x, y := idx%g.width, idx/g.width
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	w, h := maxX-minX+1, maxY-minY+1
	b := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := (y+minY)*g.width + (x + minX)
			if region[src] {
				b[y*w+x] = emptyCell
			} else {
				b[y*w+x] = blockedCell
			}
		}
	}
	return Grid{width: w, height: h, cells: string(b)}
}
