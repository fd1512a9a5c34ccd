package rational_test

import (
	"testing"

	"github.com/katalvlaran/cgtlath/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReducesToLowestTerms(t *testing.T) {
	v, err := rational.New(4, 8)
	require.NoError(t, err)
	n, d, ok := v.Fraction()
	require.True(t, ok)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, int64(2), d)
}

func TestNewRejectsZeroDenominator(t *testing.T) {
	_, err := rational.New(1, 0)
	require.ErrorIs(t, err, rational.ErrDenominatorZero)
}

func TestAddSaturatesAtInfinity(t *testing.T) {
	sum, err := rational.PositiveInfinity.Add(rational.FromInt(5))
	require.NoError(t, err)
	assert.Equal(t, rational.PositiveInfinity, sum)

	sum, err = rational.FromInt(5).Add(rational.NegativeInfinity)
	require.NoError(t, err)
	assert.Equal(t, rational.NegativeInfinity, sum)
}

func TestAddOppositeInfinitiesIsUndefined(t *testing.T) {
	_, err := rational.PositiveInfinity.Add(rational.NegativeInfinity)
	require.ErrorIs(t, err, rational.ErrUndefinedArithmetic)
}

func TestAddSameInfinities(t *testing.T) {
	sum, err := rational.PositiveInfinity.Add(rational.PositiveInfinity)
	require.NoError(t, err)
	assert.Equal(t, rational.PositiveInfinity, sum)
}

func TestNegSwapsInfinities(t *testing.T) {
	assert.Equal(t, rational.NegativeInfinity, rational.PositiveInfinity.Neg())
	assert.Equal(t, rational.PositiveInfinity, rational.NegativeInfinity.Neg())
}

func TestMulPreservesOrFlipsInfinitySign(t *testing.T) {
	r, err := rational.PositiveInfinity.Mul(rational.FromInt(3))
	require.NoError(t, err)
	assert.Equal(t, rational.PositiveInfinity, r)

	r, err = rational.PositiveInfinity.Mul(rational.FromInt(-3))
	require.NoError(t, err)
	assert.Equal(t, rational.NegativeInfinity, r)
}

func TestMulByZeroIsUndefined(t *testing.T) {
	_, err := rational.PositiveInfinity.Mul(rational.FromInt(0))
	require.ErrorIs(t, err, rational.ErrUndefinedArithmetic)
}

func TestCmpOrdersInfinitiesAroundFinite(t *testing.T) {
	assert.True(t, rational.NegativeInfinity.Less(rational.FromInt(0)))
	assert.True(t, rational.FromInt(0).Less(rational.PositiveInfinity))
	assert.True(t, rational.NegativeInfinity.Less(rational.PositiveInfinity))
	assert.Equal(t, 0, rational.FromInt(3).Cmp(rational.FromInt(3)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "-∞", rational.NegativeInfinity.String())
	assert.Equal(t, "∞", rational.PositiveInfinity.String())
	v, err := rational.New(-1, 2)
	require.NoError(t, err)
	assert.Equal(t, "-1/2", v.String())
}
