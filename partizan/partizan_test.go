package partizan_test

import (
	"testing"

	"github.com/katalvlaran/cgtlath/canonical"
	"github.com/katalvlaran/cgtlath/dyadic"
	"github.com/katalvlaran/cgtlath/partizan"
	"github.com/katalvlaran/cgtlath/ttable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is the simplest partizan game: a positive counter gives Left
// moves down to zero, a negative one gives Right moves up to zero. Its
// value is the integer it holds.
type counter int64

func (c counter) LeftMoves() []counter {
	if c > 0 {
		return []counter{c - 1}
	}
	return nil
}

func (c counter) RightMoves() []counter {
	if c < 0 {
		return []counter{c + 1}
	}
	return nil
}

// counterPair decomposes into two independent counters, exercising the
// driver's parallel summand path.
type counterPair struct {
	a, b counter
}

func (p counterPair) Decompositions() []counterPair {
	return []counterPair{{p.a, 0}, {0, p.b}}
}

func (p counterPair) LeftMoves() []counterPair {
	var out []counterPair
	for _, m := range p.a.LeftMoves() {
		out = append(out, counterPair{m, p.b})
	}
	for _, m := range p.b.LeftMoves() {
		out = append(out, counterPair{p.a, m})
	}
	return out
}

func (p counterPair) RightMoves() []counterPair {
	var out []counterPair
	for _, m := range p.a.RightMoves() {
		out = append(out, counterPair{m, p.b})
	}
	for _, m := range p.b.RightMoves() {
		out = append(out, counterPair{p.a, m})
	}
	return out
}

// reducible short-circuits the recursion with a known value, standing in
// for rule sets with closed-form special cases.
type reducible struct {
	value int64
}

func (reducible) LeftMoves() []reducible  { panic("reduction must pre-empt move generation") }
func (reducible) RightMoves() []reducible { panic("reduction must pre-empt move generation") }

func (r reducible) Reductions() (canonical.Form, bool) {
	return canonical.Integer(r.value), true
}

func TestCounterValueIsItsInteger(t *testing.T) {
	table := ttable.NewParallel[counter]()
	for v := int64(-4); v <= 4; v++ {
		form := partizan.CanonicalForm(counter(v), table)
		assert.True(t, form.Equal(canonical.Integer(v)), "counter %d valued as %s", v, form)
	}
	assert.False(t, table.IsEmpty())
}

func TestPairSums(t *testing.T) {
	table := ttable.NewParallel[counterPair]()
	form := partizan.CanonicalForm(counterPair{3, -1}, table)
	assert.True(t, form.Equal(canonical.Integer(2)), "got %s", form)
}

func TestReductionShortCircuits(t *testing.T) {
	table := ttable.NewNoTable[reducible]()
	form := partizan.CanonicalForm(reducible{value: 9}, table)
	assert.True(t, form.Equal(canonical.Integer(9)))
}

func TestNoTableRecomputes(t *testing.T) {
	form := partizan.CanonicalForm(counter(2), ttable.NewNoTable[counter]())
	assert.True(t, form.Equal(canonical.Integer(2)))
}

func TestPlayerOpposite(t *testing.T) {
	assert.Equal(t, partizan.Right, partizan.Left.Opposite())
	assert.Equal(t, partizan.Left, partizan.Right.Opposite())
	assert.Equal(t, "Left", partizan.Left.String())
	assert.Equal(t, "Right", partizan.Right.String())
}

func TestThermographDirectOnNumbers(t *testing.T) {
	th := partizan.ThermographDirect(counter(3))
	assert.True(t, th.Mast().Equal(dyadic.NewInteger(3)))
	assert.True(t, th.Temperature().Equal(dyadic.NewInteger(-1)))
}

func TestSensibleMovesKeepCanonicalOnes(t *testing.T) {
	table := ttable.NewParallel[counterPair]()
	p := counterPair{1, 1}
	sensible := partizan.SensibleLeftMoves(p, table)
	require.NotEmpty(t, sensible)
	// Every sensible move of a positive pair has value ≤ some canonical
	// Left option (here: both moves land on value 1, the Left option of 2).
	for _, m := range sensible {
		mv := partizan.CanonicalForm(m, table)
		assert.True(t, mv.Equal(canonical.Integer(1)))
	}
}
