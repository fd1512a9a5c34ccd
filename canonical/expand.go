package canonical

import (
	"github.com/katalvlaran/cgtlath/dyadic"
	"github.com/katalvlaran/cgtlath/nimber"
)

// Expand materialises the Left/Right option lists of a compact-variant
// Form (Integer, Dyadic, NimberValue or NumberUpStar) the way its value
// would appear as a Moves form. It is the inverse of the compaction the
// simplifier performs, needed by generic arithmetic and comparison, which
// must walk the options of any operand regardless of which compact variant
// it happens to be stored as.
func Expand(f Form) (left, right []Form) {
	d := f.data()
	switch d.kind {
	case kindInteger:
		return expandInteger(d.integer)
	case kindDyadic:
		return expandDyadic(d.dyadic)
	case kindNimber:
		return expandNimberSet(d.nim)
	case kindNumberUpStar:
		return expandNumberUpStar(d.nusNumber, d.nusUps, d.nusStar)
	default:
		return append([]Form(nil), d.left...), append([]Form(nil), d.right...)
	}
}

func expandInteger(i int64) (left, right []Form) {
	switch {
	case i > 0:
		return []Form{Integer(i - 1)}, nil
	case i < 0:
		return nil, []Form{Integer(i + 1)}
	default:
		return nil, nil
	}
}

// expandDyadic applies the simplicity-theorem construction for a non-integer
// dyadic n/2^k (k ≥ 1, n odd): { (n-1)/2^k | (n+1)/2^k }.
func expandDyadic(r dyadic.Rational) (left, right []Form) {
	n, k := r.Numerator(), r.DenomExponent()
	lo := dyadic.New(n-1, k)
	hi := dyadic.New(n+1, k)
	return []Form{Dyadic(lo)}, []Form{Dyadic(hi)}
}

// expandNimberSet returns the options of *g: every smaller nimber on both
// sides.
func expandNimberSet(g nimber.Nimber) (left, right []Form) {
	opts := make([]Form, 0, g.Value())
	for j := nimber.Nimber(0); j < g; j++ {
		opts = append(opts, NimberValue(j))
	}
	return opts, append([]Form(nil), opts...)
}

// expandNumberUpStar decomposes v + ups·↑ + *star into options, shifting
// the pure infinitesimal part (ups·↑ [+ *star]) by the number v via the
// generic Add (translation by a number only ever shifts each option's own
// number component — a standard CGT fact for all-small games).
func expandNumberUpStar(v dyadic.Rational, ups int32, star nimber.Nimber) (left, right []Form) {
	vForm := Dyadic(v)

	if ups == 0 {
		// Pure *star shifted by v: v + *star.
		opts := make([]Form, 0, star.Value())
		for j := nimber.Nimber(0); j < star; j++ {
			opts = append(opts, Add(vForm, NimberValue(j)))
		}
		return opts, append([]Form(nil), opts...)
	}

	if star == 0 {
		l, r := upsOptions(ups)
		return shiftEach(vForm, l), shiftEach(vForm, r)
	}

	// ups != 0 && star != 0: combine the pure-ups part with the nimber
	// part via one generic (non-compacting) sum step, then shift.
	pureUps := NumberUpStar(dyadic.NewInteger(0), ups, 0)
	starForm := NimberValue(star)
	l, r := rawSumOptions(pureUps, starForm)
	return shiftEach(vForm, l), shiftEach(vForm, r)
}

func shiftEach(v Form, fs []Form) []Form {
	out := make([]Form, len(fs))
	for i, f := range fs {
		out[i] = Add(v, f)
	}
	return out
}

// upsOptions returns the options of ups·↑ (star == 0), for any nonzero
// ups, following the standard "n.up"/"n.up-star" recursion (e.g. Siegel,
// Combinatorial Game Theory, ch. on infinitesimals):
//
//	1.↑  = {0 | *}
//	n.↑  = {0 | (n-1).↑*}   for n ≥ 2
//	1.↑* = {0,* | 0}
//	n.↑* = {0 | (n-1).↑}    for n ≥ 2
//
// and n.↓ / n.↓* as the negation of the corresponding positive form.
func upsOptions(ups int32) (left, right []Form) {
	if ups < 0 {
		pl, pr := withStarOptions(-ups)
		return negateAll(pr), negateAll(pl)
	}
	return withStarOptions(ups)
}

// withStarOptions returns the options of n.↑ for n ≥ 1 (star == 0 case of
// upsOptions, positive side only).
func withStarOptions(n int32) (left, right []Form) {
	if n == 1 {
		return []Form{Integer(0)}, []Form{NimberValue(1)}
	}
	return []Form{Integer(0)}, []Form{NumberUpStar(dyadic.NewInteger(0), n-1, 1)}
}

func negateAll(fs []Form) []Form {
	out := make([]Form, len(fs))
	for i, f := range fs {
		out[i] = f.Neg()
	}
	return out
}
