// Package cgtlath is your in-memory laboratory for combinatorial game
// theory on short games in Go.
//
// 🚀 What is cgtlath?
//
//	A modern, thread-safe library that brings together:
//
//	  • Canonical forms: interned game values with exact arithmetic & order
//	  • Thermography: temperatures, masts and full thermographs
//	  • Generic drivers: plug in a rule set, get its value back — in parallel
//
// ✨ Why choose cgtlath?
//
//   - Researcher-friendly  — the textual {L|R} syntax parses and prints
//   - Rock-solid           — interned arenas give O(1) equality under locks
//   - Extensible           — any type with LeftMoves/RightMoves is a game
//   - Deterministic        — parallel runs produce bit-identical values
//
// Under the hood, everything is organized in layers:
//
//	nimber/, dyadic/, rational/    — exact numeric kernels
//	trajectory/, thermograph/      — piecewise-linear temperature analysis
//	canonical/, parser/            — interned game values, simplifier, syntax
//	partizan/, impartial/, ttable/ — game-independent drivers & memoisation
//	loopy/, misere/                — the two specialised side algebras
//	games/                         — reference rule sets exercising the core
//
// Quick example — valuing a Toads and Frogs row:
//
//	row := toadsandfrogs.MustParse("T.TFTFF")
//	table := ttable.NewParallel[toadsandfrogs.Row]()
//	form := partizan.CanonicalForm(row, table)
//	fmt.Println(form, form.Temperature()) // {0|^} 0
//
// Start with partizan.CanonicalForm for position → value, canonical for
// arithmetic on values, and thermograph when you need to know how urgent
// the next move is.
//
//	go get github.com/katalvlaran/cgtlath
package cgtlath
