package canonical

import (
	"github.com/katalvlaran/cgtlath/dyadic"
	"github.com/katalvlaran/cgtlath/thermograph"
)

// Neg returns -f.
func (f Form) Neg() Form {
	d := f.data()
	switch d.kind {
	case kindInteger:
		return Integer(-d.integer)
	case kindDyadic:
		return Dyadic(d.dyadic.Neg())
	case kindNimber:
		return f // *n is its own negative.
	case kindNumberUpStar:
		return NumberUpStar(d.nusNumber.Neg(), -d.nusUps, d.nusStar)
	default:
		nl := negateAll(d.right)
		nr := negateAll(d.left)
		nl = dedupeSorted(nl)
		nr = dedupeSorted(nr)
		return newMoves(nl, nr)
	}
}

// Add returns f+g, taking a closed-form shortcut whenever both operands are
// the same kind of number-like value and falling back to the generic
// Left/Right-option sum through Simplify.
func Add(f, g Form) Form {
	fd, gd := f.data(), g.data()
	switch {
	case isNumber(f) && isNumber(g):
		return Dyadic(f.number().Add(g.number()))
	case fd.kind == kindNimber && gd.kind == kindNimber:
		return NimberValue(fd.nim.Add(gd.nim))
	case fd.kind == kindNumberUpStar && gd.kind == kindNumberUpStar:
		return NumberUpStar(fd.nusNumber.Add(gd.nusNumber), fd.nusUps+gd.nusUps, fd.nusStar.Add(gd.nusStar))
	default:
		left, right := rawSumOptions(f, g)
		return Simplify(left, right)
	}
}

// Sub returns f-g.
func Sub(f, g Form) Form {
	return Add(f, g.Neg())
}

// gameGeq is the mutual-recursion engine behind Geq: {aLeft|aRight} ≥
// {bLeft|bRight} iff no Right option of the first is ≤ the second and no
// Left option of the second is ≥ the first.
func gameGeq(aLeft, aRight, bLeft, bRight []Form) bool {
	for _, ar := range aRight {
		arLeft, arRight := ar.Options()
		if gameGeq(bLeft, bRight, arLeft, arRight) {
			return false
		}
	}
	for _, bl := range bLeft {
		blLeft, blRight := bl.Options()
		if gameGeq(blLeft, blRight, aLeft, aRight) {
			return false
		}
	}
	return true
}

// Geq reports whether f ≥ g as game values.
func Geq(f, g Form) bool {
	fl, fr := f.Options()
	gl, gr := g.Options()
	return gameGeq(fl, fr, gl, gr)
}

// Leq reports whether f ≤ g as game values.
func Leq(f, g Form) bool { return Geq(g, f) }

// GameEqual reports whether f and g are equal as game values (not merely
// the same interned token: a value reached both through Add's NumberUpStar
// arithmetic and through Simplify, such as ⇑* and {0|↑}, carries two
// different tokens that GameEqual reports equal).
func GameEqual(f, g Form) bool { return Geq(f, g) && Leq(f, g) }

// Confused reports whether f and g are incomparable (neither ≥ nor ≤).
func Confused(f, g Form) bool { return !Geq(f, g) && !Leq(f, g) }

var negOne = dyadic.NewInteger(-1)

// Temperature returns f's temperature: -1 for numbers (their thermograph is
// a bare mast), and the thermograph-derived value otherwise. Nonzero
// nimbers and number-up-star values come out at exactly 0, since their
// walls diverge only below temperature 0.
func (f Form) Temperature() dyadic.Rational {
	d := f.data()
	switch d.kind {
	case kindInteger, kindDyadic:
		return negOne
	default:
		return f.Thermograph().Temperature()
	}
}

// Thermograph derives f's thermograph: a flat mast for numbers,
// and otherwise the recursive construction over Left/Right options' own
// thermographs (Left's scaffold is the running max of its options' right
// walls tilted down at slope -1, Right's the running min of its options'
// left walls tilted at slope +1, combined by thermographic intersection).
// Compact NimberValue/NumberUpStar forms go through the same recursion on
// their expanded option lists, which lands them at mast = number part,
// temperature 0.
func (f Form) Thermograph() thermograph.Thermograph {
	d := f.data()
	switch d.kind {
	case kindInteger:
		return thermograph.WithMast(dyadic.NewInteger(d.integer))
	case kindDyadic:
		return thermograph.WithMast(d.dyadic)
	case kindMoves:
		return movesThermograph(d.left, d.right)
	default:
		return movesThermograph(Expand(f))
	}
}

// movesThermograph runs the recursive thermograph step on option lists.
// Every caller hands it non-empty sides: canonical Moves forms keep both
// lists non-empty by invariant, and the nimber/number-up-star expansions
// are two-sided by construction.
func movesThermograph(left, right []Form) thermograph.Thermograph {
	if len(left) == 0 || len(right) == 0 {
		return thermograph.WithMast(zeroRational)
	}

	leftScaffold := left[0].Thermograph().Right
	for _, gl := range left[1:] {
		leftScaffold = leftScaffold.Max(gl.Thermograph().Right)
	}
	rightScaffold := right[0].Thermograph().Left
	for _, gr := range right[1:] {
		rightScaffold = rightScaffold.Min(gr.Thermograph().Left)
	}

	leftScaffold = leftScaffold.Tilt(-1)
	rightScaffold = rightScaffold.Tilt(1)
	return thermograph.ThermographicIntersection(leftScaffold, rightScaffold)
}
