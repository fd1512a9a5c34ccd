// Package trajectory implements the piecewise-linear functions of
// temperature that make up a thermograph's walls and scaffolds.
// A Trajectory is affine with slope in {-1, 0, +1} between consecutive
// critical temperatures, constant below its lowest knot down to t = -1, and
// extends above its highest knot as a line of the trajectory's mast slope.
//
// A finished thermograph wall always has mast slope 0: above its highest
// critical temperature it is the constant mast value. Scaffolds — the
// intermediate trajectories produced by Tilt during thermograph derivation —
// carry mast slope -1 or +1 instead, which is how this package represents
// the unbounded taxed lines that would otherwise need a signed infinity
// from package rational at every evaluation.
package trajectory

import (
	"errors"

	"github.com/katalvlaran/cgtlath/dyadic"
	"github.com/katalvlaran/cgtlath/rational"
)

// ErrTemperatureTooLow is returned when a critical temperature below -1 is
// supplied; trajectories are only defined on [-1, +∞).
var ErrTemperatureTooLow = errors.New("trajectory: temperature below -1")

// ErrTemperaturesNotDecreasing is returned when the supplied critical
// temperatures are not in strictly decreasing order.
var ErrTemperaturesNotDecreasing = errors.New("trajectory: critical temperatures must strictly decrease")

// ErrLengthMismatch is returned when the temperature and value lists differ
// in length.
var ErrLengthMismatch = errors.New("trajectory: temperature and value list length mismatch")

var negOne = dyadic.NewInteger(-1)

// Knot is a critical temperature/value pair.
type Knot struct {
	Temp  dyadic.Rational
	Value dyadic.Rational
}

// Trajectory is a strictly decreasing list of critical temperatures, each
// ≥ -1, each paired with the value there. Above the highest knot the
// function continues from that knot at mastSlope; below the lowest knot it
// is constant. A knot-less trajectory is the constant mast everywhere.
type Trajectory struct {
	mast      dyadic.Rational
	mastSlope int
	knots     []Knot
}

// Constant returns the trajectory that is v everywhere.
func Constant(v dyadic.Rational) Trajectory {
	return Trajectory{mast: v}
}

// New constructs a wall trajectory (mast slope 0) from a mast and parallel
// critical-temperature and value lists; temps must strictly decrease and all
// be ≥ -1.
func New(mast dyadic.Rational, temps, values []dyadic.Rational) (Trajectory, error) {
	if len(temps) != len(values) {
		return Trajectory{}, ErrLengthMismatch
	}
	knots := make([]Knot, len(temps))
	for i, t := range temps {
		if t.Less(negOne) {
			return Trajectory{}, ErrTemperatureTooLow
		}
		if i > 0 && !t.Less(temps[i-1]) {
			return Trajectory{}, ErrTemperaturesNotDecreasing
		}
		knots[i] = Knot{Temp: t, Value: values[i]}
	}
	return normalize(Trajectory{mast: mast, knots: knots}), nil
}

// Mast returns the value above the highest critical temperature. Only
// meaningful on a wall (mast slope 0); a tilted scaffold has no finite mast
// and reports its highest knot's value instead.
func (tr Trajectory) Mast() dyadic.Rational {
	return tr.mast
}

// MastSlope reports the slope of the trajectory above its highest knot:
// 0 for walls, -1 or +1 for tilted scaffolds.
func (tr Trajectory) MastSlope() int {
	return tr.mastSlope
}

// Knots returns a copy of the critical temperature/value pairs, highest
// temperature first.
func (tr Trajectory) Knots() []Knot {
	out := make([]Knot, len(tr.knots))
	copy(out, tr.knots)
	return out
}

// ValueAt evaluates the trajectory at temperature t (t must be ≥ -1).
func (tr Trajectory) ValueAt(t dyadic.Rational) dyadic.Rational {
	if len(tr.knots) == 0 {
		return tr.mast
	}
	top := tr.knots[0]
	if !t.Less(top.Temp) {
		return affineFrom(top, tr.mastSlope, t)
	}
	for i := 0; i < len(tr.knots)-1; i++ {
		hi, lo := tr.knots[i], tr.knots[i+1]
		if !t.Less(lo.Temp) {
			return interpolate(hi, lo, t)
		}
	}
	return tr.knots[len(tr.knots)-1].Value
}

// affineFrom continues the line of the given slope through anchor up to t.
func affineFrom(anchor Knot, slope int, t dyadic.Rational) dyadic.Rational {
	switch slope {
	case 1:
		return anchor.Value.Add(t.Sub(anchor.Temp))
	case -1:
		return anchor.Value.Sub(t.Sub(anchor.Temp))
	default:
		return anchor.Value
	}
}

// interpolate returns the affine value at t between knots hi (higher
// temperature) and lo (lower temperature), assuming slope in {-1,0,1}.
func interpolate(hi, lo Knot, t dyadic.Rational) dyadic.Rational {
	return affineFrom(hi, segmentSlope(hi, lo), t)
}

// segmentSlope reports the slope of the segment from hi down to lo.
func segmentSlope(hi, lo Knot) int {
	switch {
	case hi.Value.Equal(lo.Value):
		return 0
	case lo.Value.Less(hi.Value):
		return 1
	default:
		return -1
	}
}

// Tilt adds slope·t to the whole trajectory: the taxing step of thermograph
// derivation. Each knot value shifts by slope·temp and the mast slope grows
// by slope, so a constant v becomes the line v + slope·t anchored at t = -1.
// slope must be -1, 0, or +1, and composed tilts must keep every segment's
// slope in {-1, 0, +1}.
func (tr Trajectory) Tilt(slope int) Trajectory {
	if slope == 0 {
		return tr
	}
	if len(tr.knots) == 0 {
		anchor := Knot{Temp: negOne, Value: shiftBySlope(tr.mast, slope, negOne)}
		return Trajectory{mast: anchor.Value, mastSlope: slope, knots: []Knot{anchor}}
	}
	knots := make([]Knot, len(tr.knots))
	for i, k := range tr.knots {
		knots[i] = Knot{Temp: k.Temp, Value: shiftBySlope(k.Value, slope, k.Temp)}
	}
	return normalize(Trajectory{mast: knots[0].Value, mastSlope: tr.mastSlope + slope, knots: knots})
}

// shiftBySlope returns v + slope·t.
func shiftBySlope(v dyadic.Rational, slope int, t dyadic.Rational) dyadic.Rational {
	switch slope {
	case 1:
		return v.Add(t)
	case -1:
		return v.Sub(t)
	default:
		return v
	}
}

// normalize drops colinear interior knots, drops a top knot that continues
// the mast line, and re-anchors the mast value at the top knot so that a
// slope-0 trajectory's Mast always equals its value above the top knot.
func normalize(tr Trajectory) Trajectory {
	for len(tr.knots) >= 2 {
		out := tr.knots[:1]
		removed := false
		for i := 1; i < len(tr.knots); i++ {
			cur := tr.knots[i]
			if len(out) >= 2 && segmentSlope(out[len(out)-2], out[len(out)-1]) == segmentSlope(out[len(out)-1], cur) {
				out[len(out)-1] = cur
				removed = true
				continue
			}
			out = append(out, cur)
		}
		tr.knots = out
		if !removed {
			break
		}
	}
	// The lowest segment of every trajectory is constant; a bottom knot that
	// repeats the value above it carries no information.
	for len(tr.knots) >= 2 {
		last, prev := tr.knots[len(tr.knots)-1], tr.knots[len(tr.knots)-2]
		if segmentSlope(prev, last) != 0 {
			break
		}
		tr.knots = tr.knots[:len(tr.knots)-1]
	}
	if len(tr.knots) >= 2 && segmentSlope(tr.knots[0], tr.knots[1]) == tr.mastSlope {
		tr.knots = tr.knots[1:]
	}
	if len(tr.knots) > 0 {
		tr.mast = tr.knots[0].Value
		if tr.mastSlope == 0 && len(tr.knots) == 1 {
			// A single knot continued flat both ways is a constant.
			tr.knots = nil
		}
	}
	return tr
}

// LimitAtInfinity reports where the trajectory heads as temperature grows
// without bound: the finite mast for a wall, -∞ for a scaffold tilted
// leftward, +∞ for one tilted rightward. This is the extended-rational
// codomain showing through; everywhere else the slope encoding keeps
// values finite.
func (tr Trajectory) LimitAtInfinity() rational.Extended {
	switch {
	case tr.mastSlope < 0:
		return rational.NegativeInfinity
	case tr.mastSlope > 0:
		return rational.PositiveInfinity
	default:
		if d, ok := tr.mast.Denominator(); ok {
			if e, err := rational.New(tr.mast.Numerator(), int64(d)); err == nil {
				return e
			}
		}
		return rational.FromInt(tr.mast.Numerator())
	}
}

// Min returns the pointwise minimum of tr and other.
func (tr Trajectory) Min(other Trajectory) Trajectory {
	return extreme(tr, other, false)
}

// Max returns the pointwise maximum of tr and other.
func (tr Trajectory) Max(other Trajectory) Trajectory {
	return extreme(tr, other, true)
}

// extreme walks both breakpoint lists from high temperature downward,
// selecting the smaller (or larger, for max) affine piece on each interval
// and emitting a crossing knot whenever the two lines cross strictly inside
// an interval — including the unbounded interval above both trajectories'
// highest knots, where differing mast slopes can still cross.
func extreme(a, b Trajectory, wantMax bool) Trajectory {
	bps := mergeBreakpoints(a, b)
	if len(bps) == 0 {
		// Two constants.
		if a.mast.Less(b.mast) == wantMax {
			return b
		}
		return a
	}

	top := bps[0]
	// Crossing above the top breakpoint, where both are pure lines.
	if t, ok := lineCrossing(top, a.ValueAt(top), a.mastSlope, b.ValueAt(top), b.mastSlope); ok {
		bps = append([]dyadic.Rational{t}, bps...)
		top = t
	}

	slope := extremeMastSlope(a, b, top, wantMax)
	var knots []Knot
	for i, t := range bps {
		knots = append(knots, Knot{Temp: t, Value: pick(a.ValueAt(t), b.ValueAt(t), wantMax)})
		if i+1 < len(bps) {
			lo := bps[i+1]
			if ct, ok := interiorCrossing(a, b, lo, t); ok {
				knots = append(knots, Knot{Temp: ct, Value: a.ValueAt(ct)})
			}
		}
	}
	if last := bps[len(bps)-1]; negOne.Less(last) {
		// Both constant below their lowest knots; a crossing cannot occur,
		// but the extreme may switch sides exactly at the last breakpoint.
		knots = append(knots, Knot{Temp: negOne, Value: pick(a.ValueAt(negOne), b.ValueAt(negOne), wantMax)})
	}
	return normalize(Trajectory{mast: knots[0].Value, mastSlope: slope, knots: knots})
}

func pick(av, bv dyadic.Rational, wantMax bool) dyadic.Rational {
	if av.Less(bv) == wantMax {
		return bv
	}
	return av
}

// extremeMastSlope decides which of the two mast lines dominates above the
// top breakpoint: the steeper-growing one for max, the steeper-falling one
// for min, tie-broken by value at the breakpoint.
func extremeMastSlope(a, b Trajectory, top dyadic.Rational, wantMax bool) int {
	av, bv := a.ValueAt(top), b.ValueAt(top)
	if av.Equal(bv) {
		if (a.mastSlope < b.mastSlope) == wantMax {
			return b.mastSlope
		}
		return a.mastSlope
	}
	if av.Less(bv) == wantMax {
		return b.mastSlope
	}
	return a.mastSlope
}

// lineCrossing returns the temperature strictly above anchor at which the
// two lines through (anchor, av) and (anchor, bv) with integer slopes sa, sb
// meet.
func lineCrossing(anchor, av dyadic.Rational, sa int, bv dyadic.Rational, sb int) (dyadic.Rational, bool) {
	if sa == sb || av.Equal(bv) {
		return dyadic.Rational{}, false
	}
	// av + sa·d = bv + sb·d  ⇒  d = (bv-av)/(sa-sb)
	d := divBySmallInt(bv.Sub(av), sa-sb)
	if d.Less(dyadic.NewInteger(0)) || d.EqInteger(0) {
		return dyadic.Rational{}, false
	}
	return anchor.Add(d), true
}

// interiorCrossing returns the temperature strictly inside (lo, hi) at which
// a and b cross, if they do.
func interiorCrossing(a, b Trajectory, lo, hi dyadic.Rational) (dyadic.Rational, bool) {
	aHi, aLo := a.ValueAt(hi), a.ValueAt(lo)
	bHi, bLo := b.ValueAt(hi), b.ValueAt(lo)
	dHi, dLo := aHi.Sub(bHi), aLo.Sub(bLo)
	zero := dyadic.NewInteger(0)
	if !dHi.Less(zero) && !dLo.Less(zero) {
		return dyadic.Rational{}, false
	}
	if !zero.Less(dHi) && !zero.Less(dLo) {
		return dyadic.Rational{}, false
	}
	// Strict sign change: the difference is affine on the interval, so it
	// has slope (dHi-dLo)/(hi-lo) ∈ {±1, ±2} and a dyadic root.
	sa := segmentSlope(Knot{Temp: hi, Value: aHi}, Knot{Temp: lo, Value: aLo})
	sb := segmentSlope(Knot{Temp: hi, Value: bHi}, Knot{Temp: lo, Value: bLo})
	if sa == sb {
		return dyadic.Rational{}, false
	}
	// dLo + (sa-sb)·(t-lo) = 0  ⇒  t = lo - dLo/(sa-sb)
	return lo.Sub(divBySmallInt(dLo, sa-sb)), true
}

// divBySmallInt divides a dyadic rational by ±1 or ±2; larger divisors never
// arise from slope differences in {-1,0,+1}.
func divBySmallInt(r dyadic.Rational, d int) dyadic.Rational {
	neg := d < 0
	if neg {
		d = -d
	}
	out := r
	if d == 2 {
		out = dyadic.New(r.Numerator(), r.DenomExponent()+1)
	}
	if neg {
		out = out.Neg()
	}
	return out
}

// mergeBreakpoints unions the two trajectories' critical temperatures,
// strictly decreasing, deduplicated.
func mergeBreakpoints(a, b Trajectory) []dyadic.Rational {
	var out []dyadic.Rational
	add := func(t dyadic.Rational) {
		for _, seen := range out {
			if seen.Equal(t) {
				return
			}
		}
		out = append(out, t)
	}
	for _, k := range a.knots {
		add(k.Temp)
	}
	for _, k := range b.knots {
		add(k.Temp)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].Less(out[j]); j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
