// Package partizan implements the game-independent driver for short
// partizan games: the recursion that turns a concrete position
// into its canonical form by decomposing it into disjoint summands,
// recursing over moves in parallel, simplifying, and summing — memoised
// through a transposition table.
//
// A rule set plugs in by implementing Game on an immutable, comparable
// position type; the driver never mutates positions and only ever asks for
// move lists. Decomposition and per-side move recursion fan out on an
// errgroup, so a rule set's move generators must be safe to call from
// multiple goroutines (pure functions are, trivially).
package partizan

import (
	"github.com/katalvlaran/cgtlath/canonical"
	"github.com/katalvlaran/cgtlath/thermograph"
	"github.com/katalvlaran/cgtlath/ttable"
	"golang.org/x/sync/errgroup"
)

// Player selects a side of a partizan game.
type Player uint8

const (
	// Left is the maximising player, conventionally "bLue".
	Left Player = iota
	// Right is the minimising player, conventionally "Red".
	Right
)

// Opposite returns the other player.
func (p Player) Opposite() Player {
	if p == Left {
		return Right
	}
	return Left
}

// String renders "Left" or "Right".
func (p Player) String() string {
	if p == Left {
		return "Left"
	}
	return "Right"
}

// Game is the contract a partizan rule set implements. Positions must be
// comparable (cheap to hash as map keys) and treated as immutable.
type Game[G comparable] interface {
	comparable

	// LeftMoves lists every position Left can move to.
	LeftMoves() []G

	// RightMoves lists every position Right can move to.
	RightMoves() []G
}

// Decomposer is optionally implemented by rule sets whose positions split
// into disjoint sums; the driver then values each summand independently and
// in parallel. A position that does not decompose returns itself as the
// only summand.
type Decomposer[G comparable] interface {
	Decompositions() []G
}

// Reducer is optionally implemented by rule sets with closed-form values
// for special position shapes; the driver takes the early exit whenever
// Reductions reports one.
type Reducer interface {
	Reductions() (canonical.Form, bool)
}

// CanonicalForm computes the canonical game value of a position:
//
//  1. transposition-table hit, or
//  2. rule-set reduction, or
//  3. decompose; for each summand recurse over both sides' moves in
//     parallel, simplify the resulting options, and sum the summands.
func CanonicalForm[G Game[G]](position G, table ttable.Table[G]) canonical.Form {
	if v, ok := table.Lookup(position); ok {
		return v
	}
	if r, ok := any(position).(Reducer); ok {
		if v, ok := r.Reductions(); ok {
			table.Insert(position, v)
			return v
		}
	}

	return table.Compute(position, func() canonical.Form {
		summands := decompositions(position)
		values := make([]canonical.Form, len(summands))

		var grp errgroup.Group
		for i, summand := range summands {
			i, summand := i, summand
			grp.Go(func() error {
				values[i] = summandForm(summand, table)
				return nil
			})
		}
		_ = grp.Wait() // no branch ever errors; the group is pure fan-out

		result := canonical.Integer(0)
		for _, v := range values {
			result = canonical.Add(result, v)
		}
		return result
	})
}

// summandForm values one non-decomposable summand: both sides' moves
// recurse concurrently, then the option lists run through the simplifier.
func summandForm[G Game[G]](position G, table ttable.Table[G]) canonical.Form {
	if v, ok := table.Lookup(position); ok {
		return v
	}

	leftMoves := position.LeftMoves()
	rightMoves := position.RightMoves()
	left := make([]canonical.Form, len(leftMoves))
	right := make([]canonical.Form, len(rightMoves))

	var grp errgroup.Group
	for i, m := range leftMoves {
		i, m := i, m
		grp.Go(func() error {
			left[i] = CanonicalForm(m, table)
			return nil
		})
	}
	for i, m := range rightMoves {
		i, m := i, m
		grp.Go(func() error {
			right[i] = CanonicalForm(m, table)
			return nil
		})
	}
	_ = grp.Wait()

	v := canonical.Simplify(left, right)
	table.Insert(position, v)
	return v
}

func decompositions[G Game[G]](position G) []G {
	if d, ok := any(position).(Decomposer[G]); ok {
		return d.Decompositions()
	}
	return []G{position}
}

// SensibleLeftMoves filters Left's moves down to the ones worth showing: a
// move is sensible when its value is at most some Left option of the
// position's canonical form.
func SensibleLeftMoves[G Game[G]](position G, table ttable.Table[G]) []G {
	form := CanonicalForm(position, table)
	canonicalLeft, _ := form.Options()

	var out []G
	for _, m := range position.LeftMoves() {
		mv := CanonicalForm(m, table)
		for _, k := range canonicalLeft {
			if canonical.Leq(mv, k) {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// SensibleRightMoves is the Right-side mirror: a move is sensible when its
// value is at least some Right option of the canonical form.
func SensibleRightMoves[G Game[G]](position G, table ttable.Table[G]) []G {
	form := CanonicalForm(position, table)
	_, canonicalRight := form.Options()

	var out []G
	for _, m := range position.RightMoves() {
		mv := CanonicalForm(m, table)
		for _, k := range canonicalRight {
			if canonical.Geq(mv, k) {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// ThermographDirect computes a position's thermograph without first
// canonicalising it, folding max over Left moves' right walls and min over
// Right moves' left walls exactly as canonical forms do. For some rule sets
// this beats going through the canonical form; for others it is slower.
// One-sided positions are numbers in disguise, so they fall back to the
// canonical route rather than scaffold against a missing wall.
func ThermographDirect[G Game[G]](position G) thermograph.Thermograph {
	leftMoves := position.LeftMoves()
	rightMoves := position.RightMoves()
	if len(leftMoves) == 0 || len(rightMoves) == 0 {
		return CanonicalForm[G](position, ttable.NewNoTable[G]()).Thermograph()
	}

	leftScaffold := ThermographDirect(leftMoves[0]).Right
	for _, m := range leftMoves[1:] {
		leftScaffold = leftScaffold.Max(ThermographDirect(m).Right)
	}
	rightScaffold := ThermographDirect(rightMoves[0]).Left
	for _, m := range rightMoves[1:] {
		rightScaffold = rightScaffold.Min(ThermographDirect(m).Left)
	}

	leftScaffold = leftScaffold.Tilt(-1)
	rightScaffold = rightScaffold.Tilt(1)
	return thermograph.ThermographicIntersection(leftScaffold, rightScaffold)
}
