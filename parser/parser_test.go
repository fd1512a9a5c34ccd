package parser_test

import (
	"testing"

	"github.com/katalvlaran/cgtlath/canonical"
	"github.com/katalvlaran/cgtlath/dyadic"
	"github.com/katalvlaran/cgtlath/nimber"
	"github.com/katalvlaran/cgtlath/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) canonical.Form {
	t.Helper()
	f, err := parser.Parse(s)
	require.NoError(t, err, "parsing %q", s)
	return f
}

func TestParseIntegers(t *testing.T) {
	assert.True(t, mustParse(t, "0").Equal(canonical.Integer(0)))
	assert.True(t, mustParse(t, "42").Equal(canonical.Integer(42)))
	assert.True(t, mustParse(t, "-3").Equal(canonical.Integer(-3)))
}

func TestParseDyadic(t *testing.T) {
	assert.True(t, mustParse(t, "1/2").Equal(canonical.Dyadic(dyadic.New(1, 1))))
	assert.True(t, mustParse(t, "-3/4").Equal(canonical.Dyadic(dyadic.New(-3, 2))))
}

func TestParseNimbers(t *testing.T) {
	assert.True(t, mustParse(t, "*").Equal(canonical.NimberValue(nimber.New(1))))
	assert.True(t, mustParse(t, "*7").Equal(canonical.NimberValue(nimber.New(7))))
	assert.True(t, mustParse(t, "*0").Equal(canonical.Integer(0)))
}

func TestParseUpsAndStars(t *testing.T) {
	up := mustParse(t, "^")
	down := mustParse(t, "v")
	assert.True(t, down.Equal(up.Neg()))
	assert.Equal(t, "^*", mustParse(t, "^*").String())
	assert.Equal(t, "v*", mustParse(t, "v*").String())
	assert.Equal(t, "^2", mustParse(t, "^2").String())
	// The multiplier spelling parses to the same value.
	assert.True(t, mustParse(t, "2·^").Equal(mustParse(t, "^2")))
	assert.True(t, mustParse(t, "3.v").Equal(mustParse(t, "v3")))
	// Number plus infinitesimal part.
	assert.Equal(t, "1/2^*", mustParse(t, "1/2^*").String())
}

func TestParseMoves(t *testing.T) {
	// Raw moves simplify on the way in.
	assert.True(t, mustParse(t, "{ 0,1 | }").Equal(canonical.Integer(2)))
	assert.True(t, mustParse(t, "{ | -2 }").Equal(canonical.Integer(-3)))
	assert.True(t, mustParse(t, "{0|1}").Equal(canonical.Dyadic(dyadic.New(1, 1))))
	assert.True(t, mustParse(t, "{0|0}").Equal(canonical.NimberValue(nimber.New(1))))
	assert.Equal(t, "{3|1}", mustParse(t, "{ 1,2,3 | 1 }").String())
}

func TestParseNested(t *testing.T) {
	g := mustParse(t, "{ {2|1} , 0 | -1 }")
	require.True(t, g.IsMoves())
	// And nesting with whitespace everywhere.
	h := mustParse(t, " {  { 2 | 1 } , 0 |  -1 } ")
	assert.True(t, g.Equal(h))
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{
		"0", "5", "-17", "1/2", "-3/4", "*", "*4",
		"^", "v", "^*", "v*", "^3", "{3|1}", "{2|-2}",
	} {
		f := mustParse(t, s)
		again := mustParse(t, f.String())
		assert.True(t, f.Equal(again), "round trip of %q via %q", s, f)
	}
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{
		"", "{", "{0", "{0|", "{0|1", "1/3", "abc", "1 2", "--2", "{0,|1}",
	} {
		_, err := parser.Parse(s)
		assert.ErrorIs(t, err, parser.ErrSyntax, "input %q should not parse", s)
	}
}
