// Package thermograph implements thermographs: the pair of piecewise-linear
// walls bounding a game's cooled values as a function of temperature.
package thermograph

import (
	"github.com/katalvlaran/cgtlath/dyadic"
	"github.com/katalvlaran/cgtlath/trajectory"
)

var negOne = dyadic.NewInteger(-1)

// Thermograph is a pair of walls, left ≥ right at every temperature (values
// grow leftward on the conventional plot), coinciding at and above the
// thermograph's temperature.
type Thermograph struct {
	Left  trajectory.Trajectory
	Right trajectory.Trajectory
}

// WithMast returns the thermograph whose walls are both the constant
// trajectory at v: a number's thermograph.
func WithMast(v dyadic.Rational) Thermograph {
	c := trajectory.Constant(v)
	return Thermograph{Left: c, Right: c}
}

// ThermographicIntersection builds the thermograph produced by one recursive
// step from a Left scaffold (tilted -1, so falling as temperature rises) and
// a Right scaffold (tilted +1): the highest temperature t* at which
// leftScaffold(t) ≥ rightScaffold(t) becomes the thermograph's temperature,
// the walls freeze into the constant mast above t*, and keep their scaffold
// shapes below it.
func ThermographicIntersection(leftScaffold, rightScaffold trajectory.Trajectory) Thermograph {
	crossing, mast := findCrossing(leftScaffold, rightScaffold)
	return Thermograph{
		Left:  freezeAbove(leftScaffold, crossing, mast),
		Right: freezeAbove(rightScaffold, crossing, mast),
	}
}

// findCrossing returns the highest temperature at which left(t) ≥ right(t),
// together with the walls' common value there. The difference left-right is
// piecewise affine, so the scan walks regions from the top down: first the
// unbounded mast-line region, then each breakpoint interval, solving the
// linear crossing inside whichever region the sign change happens in. If
// the scaffolds never meet down to -1 (which no well-formed game produces)
// the crossing degenerates to -1 with the midpoint as mast.
func findCrossing(left, right trajectory.Trajectory) (dyadic.Rational, dyadic.Rational) {
	bps := scanTemps(left, right)
	top := bps[0]

	dTop := left.ValueAt(top).Sub(right.ValueAt(top))
	zero := dyadic.NewInteger(0)
	if !dTop.Less(zero) {
		// Still meeting at the top breakpoint; the crossing is up in the
		// mast-line region, where the difference falls at slope
		// left.MastSlope() - right.MastSlope().
		ds := left.MastSlope() - right.MastSlope()
		if ds >= 0 {
			// Parallel or diverging scaffolds: frozen from the top breakpoint up.
			return top, left.ValueAt(top).Mean(right.ValueAt(top))
		}
		t := top.Add(divByNegSlope(dTop, ds))
		return t, left.ValueAt(t)
	}

	for i := 0; i+1 < len(bps); i++ {
		hi, lo := bps[i], bps[i+1]
		dLo := left.ValueAt(lo).Sub(right.ValueAt(lo))
		if dLo.Less(zero) {
			continue
		}
		dHi := left.ValueAt(hi).Sub(right.ValueAt(hi))
		// dHi < 0 ≤ dLo: the difference is affine on [lo, hi] with the
		// integer slope (dHi-dLo)/(hi-lo); its root is the crossing.
		slope := affineSlope(dLo, dHi, lo, hi)
		t := lo.Add(divByNegSlope(dLo, slope))
		return t, left.ValueAt(t)
	}

	return negOne, left.ValueAt(negOne).Mean(right.ValueAt(negOne))
}

// affineSlope reports the integer slope of an affine function taking value
// dLo at lo and dHi at hi > lo. Scaffold differences only produce slopes in
// {-2..2}, and only negative ones reach this path.
func affineSlope(dLo, dHi, lo, hi dyadic.Rational) int {
	span := hi.Sub(lo)
	diff := dHi.Sub(dLo)
	switch {
	case diff.Equal(span.Neg()):
		return -1
	default:
		return -2
	}
}

// divByNegSlope returns d / (-slope) for slope in {-1, -2}.
func divByNegSlope(d dyadic.Rational, slope int) dyadic.Rational {
	if slope == -2 {
		return dyadic.New(d.Numerator(), d.DenomExponent()+1)
	}
	return d
}

// scanTemps unions both scaffolds' critical temperatures with -1, strictly
// decreasing.
func scanTemps(left, right trajectory.Trajectory) []dyadic.Rational {
	var out []dyadic.Rational
	add := func(t dyadic.Rational) {
		for _, seen := range out {
			if seen.Equal(t) {
				return
			}
		}
		out = append(out, t)
	}
	for _, k := range left.Knots() {
		add(k.Temp)
	}
	for _, k := range right.Knots() {
		add(k.Temp)
	}
	add(negOne)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].Less(out[j]); j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// freezeAbove turns a scaffold into a wall: equal to tr below crossing,
// constant mast above it.
func freezeAbove(tr trajectory.Trajectory, crossing, mast dyadic.Rational) trajectory.Trajectory {
	temps := []dyadic.Rational{crossing}
	values := []dyadic.Rational{mast}
	for _, k := range tr.Knots() {
		if k.Temp.Less(crossing) {
			temps = append(temps, k.Temp)
			values = append(values, k.Value)
		}
	}
	frozen, err := trajectory.New(mast, temps, values)
	if err != nil {
		return trajectory.Constant(mast)
	}
	return frozen
}

// Temperature returns the largest critical temperature below which the
// walls still differ, or -1 if they agree everywhere (the game is a number).
func (th Thermograph) Temperature() dyadic.Rational {
	temps := scanTemps(th.Left, th.Right)
	for i, t := range temps {
		below := negOne
		if i+1 < len(temps) {
			below = temps[i+1]
		}
		if !th.Left.ValueAt(below).Equal(th.Right.ValueAt(below)) {
			return t
		}
	}
	return negOne
}

// Mast returns the thermograph's mast: the common wall value at
// sufficiently high temperature.
func (th Thermograph) Mast() dyadic.Rational {
	return th.Left.Mast()
}
