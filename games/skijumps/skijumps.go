// Package skijumps implements Ski-Jumps: Left's skiers traverse the slope
// eastward, Right's westward, each sliding one square at a time into empty
// space (and off the edge when the run is done). A skier that still has its
// jump — written in uppercase — may leap over an opposing skier directly
// below it, landing two rows down; the skier jumped over loses its own jump
// and is demoted to lowercase.
package skijumps

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadTile is returned by Parse for characters outside L, l, R, r and '.'.
var ErrBadTile = errors.New("skijumps: slope may only contain 'L', 'l', 'R', 'r' and '.'")

// ErrEmptySlope is returned by Parse when no rows are supplied.
var ErrEmptySlope = errors.New("skijumps: slope has no rows")

// ErrRaggedSlope is returned by Parse when rows differ in length.
var ErrRaggedSlope = errors.New("skijumps: rows must all have the same length")

const (
	emptyCell    = '.'
	leftJumper   = 'L'
	leftSlipper  = 'l'
	rightJumper  = 'R'
	rightSlipper = 'r'
)

// Slope is a Ski-Jumps position, stored row-major as a string so positions
// are comparable table keys.
type Slope struct {
	width  int
	height int
	cells  string
}

// Parse reads a slope from '|'-separated rows.
func Parse(s string) (Slope, error) {
	rows := strings.Split(s, "|")
	if len(rows) == 0 || (len(rows) == 1 && rows[0] == "") {
		return Slope{}, ErrEmptySlope
	}
	width := len(rows[0])
	var cells strings.Builder
	for _, row := range rows {
		if len(row) != width {
			return Slope{}, ErrRaggedSlope
		}
		for _, c := range row {
			switch c {
			case emptyCell, leftJumper, leftSlipper, rightJumper, rightSlipper:
			default:
				return Slope{}, fmt.Errorf("%w: %q", ErrBadTile, c)
			}
		}
		cells.WriteString(row)
	}
	return Slope{width: width, height: len(rows), cells: cells.String()}, nil
}

// MustParse is Parse for fixtures and tests with known-good literals.
func MustParse(s string) Slope {
	sl, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sl
}

// String renders the slope back as '|'-separated rows.
func (s Slope) String() string {
	var b strings.Builder
	for y := 0; y < s.height; y++ {
		if y > 0 {
			b.WriteByte('|')
		}
		b.WriteString(s.cells[y*s.width : (y+1)*s.width])
	}
	return b.String()
}

func (s Slope) at(x, y int) byte {
	return s.cells[y*s.width+x]
}

func (s Slope) set(changes map[int]byte) Slope {
	b := []byte(s.cells)
	for idx, c := range changes {
		b[idx] = c
	}
	return Slope{width: s.width, height: s.height, cells: string(b)}
}

func isLeft(c byte) bool  { return c == leftJumper || c == leftSlipper }
func isRight(c byte) bool { return c == rightJumper || c == rightSlipper }

// LeftMoves lists every position reachable by one Left skier sliding east
// (or off the east edge) or jumping an opposing skier below it.
func (s Slope) LeftMoves() []Slope {
	return s.moves(isLeft, isRight, 1, leftJumper)
}

// RightMoves lists every position reachable by one Right skier sliding west
// (or off the west edge) or jumping an opposing skier below it.
func (s Slope) RightMoves() []Slope {
	return s.moves(isRight, isLeft, -1, rightJumper)
}

// moves generates slides and jumps for one side. dir is +1 for eastbound
// skiers, -1 for westbound; jumper is the side's uppercase tile.
func (s Slope) moves(mine, theirs func(byte) bool, dir int, jumper byte) []Slope {
	var out []Slope
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := s.at(x, y)
			if !mine(c) {
				continue
			}
			idx := y*s.width + x

			// Slide forward, or off the edge at the end of the run.
			nx := x + dir
			switch {
			case nx < 0 || nx >= s.width:
				out = append(out, s.set(map[int]byte{idx: emptyCell}))
			case s.at(nx, y) == emptyCell:
				out = append(out, s.set(map[int]byte{idx: emptyCell, y*s.width + nx: c}))
			}

			// Jump: uppercase only, over an opponent directly below, onto
			// an empty landing two rows down. The skier jumped over loses
			// its jump.
			if c == jumper && y+2 < s.height {
				below := s.at(x, y+1)
				if theirs(below) && s.at(x, y+2) == emptyCell {
					out = append(out, s.set(map[int]byte{
						idx:               emptyCell,
						(y+1)*s.width + x: demote(below),
						(y+2)*s.width + x: c,
					}))
				}
			}
		}
	}
	return out
}

func demote(c byte) byte {
	switch c {
	case leftJumper:
		return leftSlipper
	case rightJumper:
		return rightSlipper
	default:
		return c
	}
}
