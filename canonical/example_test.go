package canonical_test

import (
	"fmt"

	"github.com/katalvlaran/cgtlath/canonical"
	"github.com/katalvlaran/cgtlath/nimber"
)

// ExampleSimplify demonstrates how raw option lists collapse into compact
// canonical values: dominated options disappear and pure-number games reduce
// to the simplest number between the sides.
func ExampleSimplify() {
	zero := canonical.Integer(0)
	one := canonical.Integer(1)

	// { 0,1 | } — Left can move to 0 or 1, Right has no moves.
	fmt.Println(canonical.Simplify([]canonical.Form{zero, one}, nil))

	// { 0 | 1 } — the simplest number strictly between 0 and 1.
	fmt.Println(canonical.Simplify([]canonical.Form{zero}, []canonical.Form{one}))

	// { 0 | 0 } — neither side wants to move first: star.
	fmt.Println(canonical.Simplify([]canonical.Form{zero}, []canonical.Form{zero}))

	// Output:
	// 2
	// 1/2
	// *
}

// ExampleAdd shows the closed-form shortcuts of game addition.
func ExampleAdd() {
	star3 := canonical.NimberValue(nimber.New(3))
	star5 := canonical.NimberValue(nimber.New(5))

	// Nimbers add by XOR.
	fmt.Println(canonical.Add(star3, star5))

	// Every game cancels its negative.
	g := canonical.Simplify(
		[]canonical.Form{canonical.Integer(1)},
		[]canonical.Form{canonical.Integer(-1)},
	)
	fmt.Println(canonical.Add(g, g.Neg()))

	// Output:
	// *6
	// 0
}

// ExampleForm_Temperature reads the urgency of a position off its
// thermograph.
func ExampleForm_Temperature() {
	// {1|-1}: whoever moves first gains; temperature 1.
	g := canonical.Simplify(
		[]canonical.Form{canonical.Integer(1)},
		[]canonical.Form{canonical.Integer(-1)},
	)
	fmt.Println(g.Temperature())

	// Numbers are cold: temperature -1.
	fmt.Println(canonical.Integer(7).Temperature())

	// Output:
	// 1
	// -1
}
