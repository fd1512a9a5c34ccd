// Package rational implements extended rationals: finite rational values
// together with signed infinities, the codomain trajectories range over
// once unbounded scaffolds enter the picture.
package rational

import (
	"errors"
	"fmt"
)

// ErrUndefinedArithmetic is returned when an operation on two infinities (or
// an infinity by zero) has no well-defined result: -∞+∞, ∞-∞ is undefined by
// this package's policy, 0·∞.
var ErrUndefinedArithmetic = errors.New("rational: undefined arithmetic on infinities")

// ErrDenominatorZero is returned by New when the denominator is zero.
var ErrDenominatorZero = errors.New("rational: denominator is zero")

// kind tags the three variants of Extended.
type kind uint8

const (
	kindNegativeInfinity kind = iota
	kindValue
	kindPositiveInfinity
)

// Extended is a rational number extended with -∞ and +∞. The zero value is
// NegativeInfinity (the first variant tag); build finite values with New.
type Extended struct {
	k   kind
	num int64
	den int64
}

// NegativeInfinity is smaller than every finite value and PositiveInfinity.
var NegativeInfinity = Extended{k: kindNegativeInfinity}

// PositiveInfinity is larger than every finite value and NegativeInfinity.
var PositiveInfinity = Extended{k: kindPositiveInfinity}

// New constructs a finite value numerator/denominator in lowest terms. It
// fails with ErrDenominatorZero if denominator is zero.
func New(numerator int64, denominator int64) (Extended, error) {
	if denominator == 0 {
		return Extended{}, ErrDenominatorZero
	}
	if denominator < 0 {
		numerator, denominator = -numerator, -denominator
	}
	g := gcd(numerator, denominator)
	if g == 0 {
		g = 1
	}
	return Extended{k: kindValue, num: numerator / g, den: denominator / g}, nil
}

// FromInt wraps an integer as a finite Extended value.
func FromInt(v int64) Extended {
	return Extended{k: kindValue, num: v, den: 1}
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// IsInfinite reports whether e is NegativeInfinity or PositiveInfinity.
func (e Extended) IsInfinite() bool {
	return e.k != kindValue
}

// IsFinite reports whether e holds a finite value.
func (e Extended) IsFinite() bool {
	return e.k == kindValue
}

// Fraction returns the numerator and denominator of a finite value, and
// false if e is infinite.
func (e Extended) Fraction() (int64, int64, bool) {
	if e.k != kindValue {
		return 0, 0, false
	}
	return e.num, e.den, true
}

// Round rounds a finite value towards zero, and reports false if e is
// infinite.
func (e Extended) Round() (int64, bool) {
	if e.k != kindValue {
		return 0, false
	}
	return e.num / e.den, true
}

// Float64 approximates a finite value as a float64, and reports false if e
// is infinite.
func (e Extended) Float64() (float64, bool) {
	if e.k != kindValue {
		return 0, false
	}
	return float64(e.num) / float64(e.den), true
}

// Add follows the saturating policy: infinite + finite saturates to the
// infinite side; -∞+∞ is undefined.
func (e Extended) Add(rhs Extended) (Extended, error) {
	switch {
	case e.k == kindValue && rhs.k == kindValue:
		r, err := New(e.num*rhs.den+rhs.num*e.den, e.den*rhs.den)
		return r, err
	case e.k == kindValue:
		return rhs, nil
	case rhs.k == kindValue:
		return e, nil
	case e.k == rhs.k:
		return e, nil
	default:
		return Extended{}, fmt.Errorf("rational: %w: %s + %s", ErrUndefinedArithmetic, e, rhs)
	}
}

// Sub is Add(rhs.Neg()); -∞ and +∞ subtracted from themselves are
// undefined, matching Add's -∞+∞ case.
func (e Extended) Sub(rhs Extended) (Extended, error) {
	return e.Add(rhs.Neg())
}

// Neg flips the sign: finite negation, and infinities swap.
func (e Extended) Neg() Extended {
	switch e.k {
	case kindNegativeInfinity:
		return PositiveInfinity
	case kindPositiveInfinity:
		return NegativeInfinity
	default:
		return Extended{k: kindValue, num: -e.num, den: e.den}
	}
}

// Mul follows the original's sign-preserving/flipping saturation policy:
// infinity times a positive finite keeps its sign, times a negative finite
// flips it, times zero is undefined.
func (e Extended) Mul(rhs Extended) (Extended, error) {
	if e.k == kindValue && rhs.k == kindValue {
		r, err := New(e.num*rhs.num, e.den*rhs.den)
		return r, err
	}
	if e.k != kindValue && rhs.k != kindValue {
		return e.signMul(rhs), nil
	}
	inf, fin := e, rhs
	if rhs.k != kindValue {
		inf, fin = rhs, e
	}
	if fin.num == 0 {
		return Extended{}, fmt.Errorf("rational: %w: %s * %s", ErrUndefinedArithmetic, e, rhs)
	}
	if fin.num > 0 {
		return inf, nil
	}
	return inf.Neg(), nil
}

func (e Extended) signMul(rhs Extended) Extended {
	if e.k == rhs.k {
		return PositiveInfinity
	}
	return NegativeInfinity
}

// Div divides two finite values; dividing by, or involving, an infinity is
// undefined under this package's policy (the original panics in both cases).
func (e Extended) Div(rhs Extended) (Extended, error) {
	if e.k != kindValue || rhs.k != kindValue || rhs.num == 0 {
		return Extended{}, fmt.Errorf("rational: %w: %s / %s", ErrUndefinedArithmetic, e, rhs)
	}
	return New(e.num*rhs.den, e.den*rhs.num)
}

// Cmp extends the numeric order: -∞ < every finite value < +∞.
func (e Extended) Cmp(rhs Extended) int {
	if e.k != rhs.k {
		return int(e.k) - int(rhs.k)
	}
	if e.k != kindValue {
		return 0
	}
	lhs := e.num * rhs.den
	other := rhs.num * e.den
	sign := int64(1)
	if (e.den < 0) != (rhs.den < 0) {
		sign = -1
	}
	switch {
	case lhs*sign < other*sign:
		return -1
	case lhs*sign > other*sign:
		return 1
	default:
		return 0
	}
}

// Equal reports whether e and rhs denote the same value.
func (e Extended) Equal(rhs Extended) bool {
	return e.Cmp(rhs) == 0
}

// Less reports whether e < rhs.
func (e Extended) Less(rhs Extended) bool {
	return e.Cmp(rhs) < 0
}

// String renders "-∞", "∞", an integer, or "n/d".
func (e Extended) String() string {
	switch e.k {
	case kindNegativeInfinity:
		return "-∞"
	case kindPositiveInfinity:
		return "∞"
	default:
		if e.den == 1 {
			return fmt.Sprintf("%d", e.num)
		}
		return fmt.Sprintf("%d/%d", e.num, e.den)
	}
}
