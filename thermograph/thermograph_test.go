package thermograph_test

import (
	"testing"

	"github.com/katalvlaran/cgtlath/dyadic"
	"github.com/katalvlaran/cgtlath/thermograph"
	"github.com/katalvlaran/cgtlath/trajectory"
	"github.com/stretchr/testify/assert"
)

func d(v int64) dyadic.Rational {
	return dyadic.NewInteger(v)
}

func TestWithMastIsFlatAndAgreesEverywhere(t *testing.T) {
	th := thermograph.WithMast(d(4))
	assert.True(t, th.Mast().Equal(d(4)))
	assert.True(t, th.Temperature().Equal(d(-1)))
}

func TestIntersectionOfSwitch(t *testing.T) {
	// Scaffolds of {1|-1}: left 1-t, right -1+t. They cross at t=1, value 0.
	left := trajectory.Constant(d(1)).Tilt(-1)
	right := trajectory.Constant(d(-1)).Tilt(1)
	th := thermograph.ThermographicIntersection(left, right)

	assert.True(t, th.Mast().Equal(d(0)))
	assert.True(t, th.Temperature().Equal(d(1)))
	// Below the temperature the walls keep their scaffold shapes.
	assert.True(t, th.Left.ValueAt(d(0)).Equal(d(1)))
	assert.True(t, th.Right.ValueAt(d(0)).Equal(d(-1)))
	// Above it they freeze at the mast.
	assert.True(t, th.Left.ValueAt(d(5)).Equal(d(0)))
	assert.True(t, th.Right.ValueAt(d(5)).Equal(d(0)))
}

func TestIntersectionHalfTemperature(t *testing.T) {
	// Scaffolds of {2|1}: left 2-t, right 1+t. Cross at t=1/2, value 3/2.
	left := trajectory.Constant(d(2)).Tilt(-1)
	right := trajectory.Constant(d(1)).Tilt(1)
	th := thermograph.ThermographicIntersection(left, right)

	assert.True(t, th.Temperature().Equal(dyadic.New(1, 1)))
	assert.True(t, th.Mast().Equal(dyadic.New(3, 1)))
}

func TestIntersectionOfTouchingScaffoldsHasTemperatureZero(t *testing.T) {
	// Scaffolds of {0|0} (= *): left -t, right +t, meeting exactly at t=0.
	left := trajectory.Constant(d(0)).Tilt(-1)
	right := trajectory.Constant(d(0)).Tilt(1)
	th := thermograph.ThermographicIntersection(left, right)

	assert.True(t, th.Mast().Equal(d(0)))
	assert.True(t, th.Temperature().Equal(d(0)))
	assert.True(t, th.Left.ValueAt(d(-1)).Equal(d(1)))
	assert.True(t, th.Right.ValueAt(d(-1)).Equal(d(-1)))
}
