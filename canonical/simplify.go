package canonical

import (
	"sort"

	"github.com/katalvlaran/cgtlath/dyadic"
	"github.com/katalvlaran/cgtlath/nimber"
)

// Simplify builds the canonical Form for the game {left | right} from raw,
// already-canonical option lists: domination removal, reversibility bypass
// (iterated to a fixed point), and compaction into the simplest matching
// variant (Integer, Dyadic, NimberValue, NumberUpStar, or Moves as the
// fallback).
func Simplify(left, right []Form) Form {
	left = dedupeSorted(left)
	right = dedupeSorted(right)

	if v, ok := numberCompaction(left, right); ok {
		return v
	}

	left, right = removeDominated(left, right)
	left, right = bypassReversibleFixpoint(left, right)

	if v, ok := numberCompaction(left, right); ok {
		return v
	}
	if n, ok := asNimberPattern(left, right); ok {
		return NimberValue(n)
	}
	if v, ok := detectNumberUpStar(left, right); ok {
		return v
	}
	return newMoves(left, right)
}

// rawSumOptions runs domination removal and reversibility bypass on the raw
// union defining g+h, but stops short of the final compaction stage: it is
// used by Expand's NumberUpStar decomposition, which would otherwise recurse
// into itself the moment the result re-collapsed into the same compact
// variant that triggered the call.
func rawSumOptions(g, h Form) (left, right []Form) {
	gl, gr := g.Options()
	hl, hr := h.Options()

	left = make([]Form, 0, len(gl)+len(hl))
	for _, x := range gl {
		left = append(left, Add(x, h))
	}
	for _, y := range hl {
		left = append(left, Add(g, y))
	}
	right = make([]Form, 0, len(gr)+len(hr))
	for _, x := range gr {
		right = append(right, Add(x, h))
	}
	for _, y := range hr {
		right = append(right, Add(g, y))
	}

	left, right = dedupeSorted(left), dedupeSorted(right)
	left, right = removeDominated(left, right)
	return bypassReversibleFixpoint(left, right)
}

func dedupeSorted(fs []Form) []Form {
	if len(fs) == 0 {
		return nil
	}
	out := append([]Form(nil), fs...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	n := 1
	for i := 1; i < len(out); i++ {
		if !out[i].Equal(out[n-1]) {
			out[n] = out[i]
			n++
		}
	}
	return out[:n]
}

func sameFormSlice(a, b []Form) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// removeDominated deletes, on each side independently, any option that is
// no better than another option on the same side: a Left option dominated
// when some other Left option is ≥ it, a Right option dominated when some
// other Right option is ≤ it.
func removeDominated(left, right []Form) (nl, nr []Form) {
	return dedupeSorted(filterDominated(left, true)), dedupeSorted(filterDominated(right, false))
}

func filterDominated(options []Form, isLeftSide bool) []Form {
	keep := make([]bool, len(options))
	for i := range keep {
		keep[i] = true
	}
	for i := range options {
		for j := range options {
			if i == j {
				continue
			}
			var iDominated bool
			if isLeftSide {
				iDominated = Geq(options[j], options[i])
			} else {
				iDominated = Geq(options[i], options[j])
			}
			if iDominated {
				keep[i] = false
				break
			}
		}
	}
	out := make([]Form, 0, len(options))
	for i, k := range keep {
		if k {
			out = append(out, options[i])
		}
	}
	return out
}

// bypassReversibleFixpoint resolves reversible options on both sides,
// re-running domination removal after every substitution, until a round
// changes nothing.
func bypassReversibleFixpoint(left, right []Form) ([]Form, []Form) {
	for {
		newLeft, changedL := bypassSide(left, right, true)
		newRight, changedR := bypassSide(left, right, false)
		newLeft = dedupeSorted(newLeft)
		newRight = dedupeSorted(newRight)
		dl, dr := removeDominated(newLeft, newRight)
		if !changedL && !changedR && sameFormSlice(dl, left) && sameFormSlice(dr, right) {
			return dl, dr
		}
		left, right = dl, dr
	}
}

// bypassSide scans one side's options for reversibility against the whole
// game {left|right} and replaces each reversible option in place.
func bypassSide(left, right []Form, isLeftSide bool) (result []Form, changed bool) {
	var options []Form
	if isLeftSide {
		options = left
	} else {
		options = right
	}
	result = make([]Form, 0, len(options))
	for _, opt := range options {
		replacement, ok := tryBypass(opt, left, right, isLeftSide)
		if ok {
			result = append(result, replacement...)
			changed = true
		} else {
			result = append(result, opt)
		}
	}
	return result, changed
}

// tryBypass tests whether opt (a Left option when isLeftSide, else a Right
// option) of the game {left|right} is reversible, returning its replacement
// options when it is.
func tryBypass(opt Form, left, right []Form, isLeftSide bool) ([]Form, bool) {
	if isLeftSide {
		_, lrOptions := opt.Options()
		for _, lr := range lrOptions {
			lrLeft, lrRight := lr.Options()
			if gameGeq(left, right, lrLeft, lrRight) { // lr ≤ {left|right}
				return append([]Form(nil), lrLeft...), true
			}
		}
		return nil, false
	}
	rlOptions, _ := opt.Options()
	for _, rl := range rlOptions {
		rlLeft, rlRight := rl.Options()
		if gameGeq(rlLeft, rlRight, left, right) { // rl ≥ {left|right}
			return append([]Form(nil), rlRight...), true
		}
	}
	return nil, false
}

// asNimberPattern recognises the already-domination-free, already-sorted
// {0,*1,...,*(k-1) | 0,*1,...,*(k-1)} shape of *k, k ≥ 1.
func asNimberPattern(left, right []Form) (nimber.Nimber, bool) {
	if len(left) == 0 || len(left) != len(right) {
		return 0, false
	}
	k := len(left)
	for i := 0; i < k; i++ {
		if !left[i].Equal(right[i]) {
			return 0, false
		}
		if i == 0 {
			if iv, ok := left[i].AsInteger(); !ok || iv != 0 {
				return 0, false
			}
			continue
		}
		nv, ok := left[i].AsNimber()
		if !ok || nv.Value() != uint32(i) {
			return 0, false
		}
	}
	return nimber.New(uint32(k)), true
}

// detectNumberUpStar recognises the shapes produced by v + ups·↑ [+ *] for
// ups ∈ {-1, +1} and star ∈ {0, 1}: the compact patterns that real games
// (not reached through Add's own closed-form paths) actually settle into.
// Other NumberUpStar shapes (|ups| > 1, or ups ≠ 0 with a star above *1) are
// not recognised here and stay Moves forms; Add builds them directly as
// NumberUpStar, so such a value can carry two different tokens.
func detectNumberUpStar(left, right []Form) (Form, bool) {
	// {v, v+*, ..., v+*(k-1) | same} is v + *k; the k = 1 case is the bare
	// {v|v} = v*. The pure-nimber shape (v = 0) never reaches here, having
	// been caught by asNimberPattern already.
	if sameFormSlice(left, right) && len(left) >= 1 && isNumber(left[0]) {
		v := left[0]
		matched := true
		for i := 1; i < len(left); i++ {
			if !left[i].Equal(Add(v, NimberValue(nimber.New(uint32(i))))) {
				matched = false
				break
			}
		}
		if matched {
			return NumberUpStar(v.number(), 0, nimber.New(uint32(len(left)))), true
		}
	}
	if len(left) == 1 && len(right) == 1 {
		v := left[0]
		if isNumber(v) && right[0].Equal(Add(v, NimberValue(1))) {
			return NumberUpStar(v.number(), 1, 0), true
		}
		w := right[0]
		if isNumber(w) && left[0].Equal(Add(w, NimberValue(1))) {
			return NumberUpStar(w.number(), -1, 0), true
		}
	}
	if len(left) == 2 && len(right) == 1 {
		if v, ok := upStarNumber(left, right[0]); ok {
			return NumberUpStar(v, 1, 1), true
		}
	}
	if len(left) == 1 && len(right) == 2 {
		if v, ok := downStarNumber(right, left[0]); ok {
			return NumberUpStar(v, -1, 1), true
		}
	}
	return Form{}, false
}

// upStarNumber tests whether {a,b|c} matches {v,v+*|v}: one of a,b is a
// number v and the other is v+*, with c equal to v.
func upStarNumber(pair []Form, single Form) (dyadic.Rational, bool) {
	for i := 0; i < 2; i++ {
		v, other := pair[i], pair[1-i]
		if !isNumber(v) {
			continue
		}
		if other.Equal(Add(v, NimberValue(1))) && single.Equal(v) {
			return v.number(), true
		}
	}
	return dyadic.Rational{}, false
}

// downStarNumber tests whether {c|a,b} matches {v|v,v+*}: one of a,b is a
// number v and the other is v+*, with c equal to v.
func downStarNumber(pair []Form, single Form) (dyadic.Rational, bool) {
	return upStarNumber(pair, single)
}

func isNumber(f Form) bool {
	return f.IsInteger() || f.IsDyadic()
}

// numberCompaction recognises games whose Left and Right options are all
// numbers with every Left option strictly less than every Right option: by
// the simplicity theorem such a game equals the simplest dyadic number
// lying strictly between the largest Left number and the smallest Right
// number (an absent side is an open bound at -∞/+∞).
func numberCompaction(left, right []Form) (Form, bool) {
	for _, f := range left {
		if !isNumber(f) {
			return Form{}, false
		}
	}
	for _, f := range right {
		if !isNumber(f) {
			return Form{}, false
		}
	}

	var lo dyadic.Rational
	hasLo := false
	for _, f := range left {
		n := f.number()
		if !hasLo || lo.Less(n) {
			lo, hasLo = n, true
		}
	}
	var hi dyadic.Rational
	hasHi := false
	for _, f := range right {
		n := f.number()
		if !hasHi || n.Less(hi) {
			hi, hasHi = n, true
		}
	}
	if hasLo && hasHi && !lo.Less(hi) {
		return Form{}, false
	}
	return Dyadic(simplestNumberBetween(hasLo, lo, hasHi, hi)), true
}

var zeroRational = dyadic.NewInteger(0)

// simplestNumberBetween implements the simplicity theorem's search for the
// number with the smallest birthday strictly between lo and hi (either
// bound may be absent, meaning -∞/+∞ respectively).
func simplestNumberBetween(hasLo bool, lo dyadic.Rational, hasHi bool, hi dyadic.Rational) dyadic.Rational {
	switch {
	case !hasLo && !hasHi:
		return zeroRational
	case !hasLo:
		return simplestBelow(hi)
	case !hasHi:
		return simplestAbove(lo)
	default:
		if c, ok := simplestIntBetween(lo, hi); ok {
			return c
		}
		for k := uint32(1); k < 256; k++ {
			m := scaledFloor(lo, k) + 1
			c := dyadic.New(m, k)
			if lo.Less(c) && c.Less(hi) {
				return c
			}
		}
		return lo.Mean(hi)
	}
}

func simplestBelow(hi dyadic.Rational) dyadic.Rational {
	if zeroRational.Less(hi) {
		return zeroRational
	}
	return dyadic.NewInteger(largestIntBelow(hi))
}

func simplestAbove(lo dyadic.Rational) dyadic.Rational {
	if lo.Less(zeroRational) {
		return zeroRational
	}
	return dyadic.NewInteger(smallestIntAbove(lo))
}

func simplestIntBetween(lo, hi dyadic.Rational) (dyadic.Rational, bool) {
	candLow := smallestIntAbove(lo)
	candHigh := largestIntBelow(hi)
	if candLow > candHigh {
		return dyadic.Rational{}, false
	}
	switch {
	case candLow <= 0 && 0 <= candHigh:
		return dyadic.NewInteger(0), true
	case candLow > 0:
		return dyadic.NewInteger(candLow), true
	default:
		return dyadic.NewInteger(candHigh), true
	}
}

func smallestIntAbove(lo dyadic.Rational) int64 {
	return scaledFloor(lo, 0) + 1
}

func largestIntBelow(hi dyadic.Rational) int64 {
	if hi.IsInteger() {
		return scaledFloor(hi, 0) - 1
	}
	return scaledFloor(hi, 0)
}

// scaledFloor returns floor(r * 2^k) as an integer.
func scaledFloor(r dyadic.Rational, k uint32) int64 {
	n, e := r.Numerator(), r.DenomExponent()
	if k >= e {
		return n << (k - e)
	}
	return floorDivInt64(n, int64(1)<<(e-k))
}

func floorDivInt64(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
