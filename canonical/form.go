package canonical

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/cgtlath/dyadic"
	"github.com/katalvlaran/cgtlath/nimber"
)

// variantKind tags the five semantic constructors of a canonical form.
type variantKind uint8

const (
	kindInteger variantKind = iota
	kindDyadic
	kindNimber
	kindNumberUpStar
	kindMoves
)

// formData is the payload stored in the arena for one interned value.
type formData struct {
	kind variantKind

	integer int64
	dyadic  dyadic.Rational
	nim     nimber.Nimber

	nusNumber dyadic.Rational
	nusUps    int32
	nusStar   nimber.Nimber

	left  []Form
	right []Form
}

// Form is a token referring to an interned CanonicalForm. The zero Form is
// unspecified; always obtain one through a constructor.
type Form struct {
	token int32
}

type store struct {
	mu    sync.RWMutex
	arena []formData
	index map[string]int32
}

var global = &store{index: make(map[string]int32)}

func (s *store) intern(key string, data formData) Form {
	s.mu.RLock()
	if tok, ok := s.index[key]; ok {
		s.mu.RUnlock()
		return Form{token: tok}
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if tok, ok := s.index[key]; ok {
		return Form{token: tok}
	}
	s.arena = append(s.arena, data)
	tok := int32(len(s.arena) - 1)
	s.index[key] = tok
	return Form{token: tok}
}

func (f Form) data() formData {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.arena[f.token]
}

// Len reports how many distinct canonical forms have ever been interned in
// this process.
func Len() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return len(global.arena)
}

// Integer returns the canonical form of the integer game value v.
func Integer(v int64) Form {
	key := fmt.Sprintf("I:%d", v)
	return global.intern(key, formData{kind: kindInteger, integer: v})
}

// Dyadic returns the canonical form of a dyadic rational, collapsing to
// Integer when the value is whole.
func Dyadic(r dyadic.Rational) Form {
	if v, ok := r.ToInteger(); ok {
		return Integer(v)
	}
	key := fmt.Sprintf("D:%d:%d", r.Numerator(), r.DenomExponent())
	return global.intern(key, formData{kind: kindDyadic, dyadic: r})
}

// NimberValue returns the canonical form of the pure nimber game *n,
// collapsing to Integer(0) when n is *0.
func NimberValue(n nimber.Nimber) Form {
	if n == 0 {
		return Integer(0)
	}
	key := fmt.Sprintf("N:%d", n.Value())
	return global.intern(key, formData{kind: kindNimber, nim: n})
}

// NumberUpStar returns the canonical form v + ups·↑ + *star, collapsing to
// Dyadic/Integer or NimberValue when ups and/or star are trivial.
func NumberUpStar(number dyadic.Rational, ups int32, star nimber.Nimber) Form {
	if ups == 0 {
		if star == 0 {
			return Dyadic(number)
		}
		if number.EqInteger(0) {
			return NimberValue(star)
		}
	}
	key := fmt.Sprintf("U:%d:%d:%d:%d", number.Numerator(), number.DenomExponent(), ups, star.Value())
	return global.intern(key, formData{kind: kindNumberUpStar, nusNumber: number, nusUps: ups, nusStar: star})
}

// movesKey builds the structural interning key for a Moves form from
// already-sorted, already-deduplicated child tokens.
func movesKey(left, right []Form) string {
	var b strings.Builder
	b.WriteByte('M')
	for _, l := range left {
		fmt.Fprintf(&b, ":%d", l.token)
	}
	b.WriteByte('|')
	for _, r := range right {
		fmt.Fprintf(&b, ":%d", r.token)
	}
	return b.String()
}

// newMoves interns a Moves form directly from already-canonicalised,
// already-sorted, already-simplified option lists. Callers outside this
// package should use Simplify instead, which performs the full
// simplification pipeline; newMoves is the low-level constructor Simplify
// (and Neg, when negating a Moves form) builds on.
func newMoves(left, right []Form) Form {
	l := append([]Form(nil), left...)
	r := append([]Form(nil), right...)
	return global.intern(movesKey(l, r), formData{kind: kindMoves, left: l, right: r})
}

// IsInteger reports whether f is the Integer variant.
func (f Form) IsInteger() bool { return f.data().kind == kindInteger }

// AsInteger returns the integer value and true if f is the Integer variant.
func (f Form) AsInteger() (int64, bool) {
	d := f.data()
	if d.kind != kindInteger {
		return 0, false
	}
	return d.integer, true
}

// IsDyadic reports whether f is the non-integer DyadicFraction variant.
func (f Form) IsDyadic() bool { return f.data().kind == kindDyadic }

// IsNimber reports whether f is the NimberValue variant (a pure *n, n>0).
func (f Form) IsNimber() bool { return f.data().kind == kindNimber }

// AsNimber returns the nimber value and true if f is the NimberValue variant.
func (f Form) AsNimber() (nimber.Nimber, bool) {
	d := f.data()
	if d.kind != kindNimber {
		return 0, false
	}
	return d.nim, true
}

// IsNumberUpStar reports whether f is the NumberUpStar variant.
func (f Form) IsNumberUpStar() bool { return f.data().kind == kindNumberUpStar }

// IsMoves reports whether f is the Moves (fallback) variant.
func (f Form) IsMoves() bool { return f.data().kind == kindMoves }

// number returns the dyadic "number part" of f: the integer/dyadic value
// itself for Integer/Dyadic, the number component for NumberUpStar, and
// zero for Nimber/Moves (which have no number part).
func (f Form) number() dyadic.Rational {
	d := f.data()
	switch d.kind {
	case kindInteger:
		return dyadic.NewInteger(d.integer)
	case kindDyadic:
		return d.dyadic
	case kindNumberUpStar:
		return d.nusNumber
	default:
		return dyadic.NewInteger(0)
	}
}

// Cmp gives the total order on canonical forms: first by variant tag, then
// componentwise; Moves forms compare by length then elementwise by
// (recursively) Cmp-ordered child forms.
func (f Form) Cmp(g Form) int {
	if f.token == g.token {
		return 0
	}
	fd, gd := f.data(), g.data()
	if fd.kind != gd.kind {
		return int(fd.kind) - int(gd.kind)
	}
	switch fd.kind {
	case kindInteger:
		return cmpInt64(fd.integer, gd.integer)
	case kindDyadic:
		return fd.dyadic.Cmp(gd.dyadic)
	case kindNimber:
		return fd.nim.Cmp(gd.nim)
	case kindNumberUpStar:
		if c := fd.nusNumber.Cmp(gd.nusNumber); c != 0 {
			return c
		}
		if fd.nusUps != gd.nusUps {
			return int(fd.nusUps) - int(gd.nusUps)
		}
		return fd.nusStar.Cmp(gd.nusStar)
	default: // kindMoves
		if len(fd.left) != len(gd.left) {
			return len(fd.left) - len(gd.left)
		}
		for i := range fd.left {
			if c := fd.left[i].Cmp(gd.left[i]); c != 0 {
				return c
			}
		}
		if len(fd.right) != len(gd.right) {
			return len(fd.right) - len(gd.right)
		}
		for i := range fd.right {
			if c := fd.right[i].Cmp(gd.right[i]); c != 0 {
				return c
			}
		}
		return 0
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether f and g are the same interned canonical form.
func (f Form) Equal(g Form) bool { return f.token == g.token }

// Less reports whether f sorts before g under Cmp.
func (f Form) Less(g Form) bool { return f.Cmp(g) < 0 }

// String renders f in the most compact recognised textual form.
func (f Form) String() string {
	d := f.data()
	switch d.kind {
	case kindInteger:
		return fmt.Sprintf("%d", d.integer)
	case kindDyadic:
		return d.dyadic.String()
	case kindNimber:
		return d.nim.String()
	case kindNumberUpStar:
		return numberUpStarString(d.nusNumber, d.nusUps, d.nusStar)
	default:
		var b strings.Builder
		b.WriteByte('{')
		writeFormList(&b, d.left)
		b.WriteByte('|')
		writeFormList(&b, d.right)
		b.WriteByte('}')
		return b.String()
	}
}

func writeFormList(b *strings.Builder, fs []Form) {
	for i, g := range fs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(g.String())
	}
}

func numberUpStarString(number dyadic.Rational, ups int32, star nimber.Nimber) string {
	var b strings.Builder
	if !number.EqInteger(0) || ups == 0 {
		b.WriteString(number.String())
	}
	switch {
	case ups == 1:
		b.WriteString("^")
	case ups == -1:
		b.WriteString("v")
	case ups > 1:
		fmt.Fprintf(&b, "^%d", ups)
	case ups < -1:
		fmt.Fprintf(&b, "v%d", -ups)
	}
	switch {
	case star == 1:
		b.WriteString("*")
	case star > 1:
		fmt.Fprintf(&b, "*%d", star.Value())
	}
	return b.String()
}

// Options returns the Left and Right option lists of f: the stored lists
// for Moves, and the expansion of the compact variants otherwise (Expand,
// in expand.go).
func (f Form) Options() (left, right []Form) {
	d := f.data()
	if d.kind == kindMoves {
		return append([]Form(nil), d.left...), append([]Form(nil), d.right...)
	}
	return Expand(f)
}
