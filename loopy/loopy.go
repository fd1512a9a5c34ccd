// Package loopy implements the one loopy-impartial subsystem of the core:
// the modular subtraction game WindUp(n, S), solved by a three-pass graph
// orbiting fixpoint. Positions are the vertices 0..n-1 and a
// move subtracts any s ∈ S modulo n, so every position is reachable
// infinitely often — the short-game machinery does not apply, and some
// vertices may resolve to loops rather than finite nimbers.
package loopy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/cgtlath/nimber"
)

// ErrEmptyPeriod is returned by NewUsingSequence when no starting period is
// supplied.
var ErrEmptyPeriod = errors.New("loopy: period must not be empty")

// Vertex is the resolved value of one graph vertex: a finite nimber, or a
// loop tagged with the sorted, deduplicated finite nimbers reachable
// through the loop's exits.
type Vertex struct {
	loop    bool
	value   nimber.Nimber
	escapes []nimber.Nimber
}

// FiniteVertex wraps a finite nimber as a vertex value.
func FiniteVertex(n nimber.Nimber) Vertex {
	return Vertex{value: n}
}

// LoopVertex builds a loop vertex from its escape nimbers, canonicalised by
// sorting and deduplication so equal loops compare equal.
func LoopVertex(escapes []nimber.Nimber) Vertex {
	sorted := append([]nimber.Nimber(nil), escapes...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	var dedup []nimber.Nimber
	for _, e := range sorted {
		if len(dedup) == 0 || dedup[len(dedup)-1] != e {
			dedup = append(dedup, e)
		}
	}
	return Vertex{loop: true, escapes: dedup}
}

// IsLoop reports whether the vertex sits on a loop.
func (v Vertex) IsLoop() bool {
	return v.loop
}

// Value returns the finite nimber of a non-loop vertex.
func (v Vertex) Value() (nimber.Nimber, bool) {
	if v.loop {
		return 0, false
	}
	return v.value, true
}

// Escapes returns the finite nimbers reachable from a loop vertex.
func (v Vertex) Escapes() []nimber.Nimber {
	return append([]nimber.Nimber(nil), v.escapes...)
}

// Equal compares two vertex values.
func (v Vertex) Equal(rhs Vertex) bool {
	if v.loop != rhs.loop {
		return false
	}
	if !v.loop {
		return v.value == rhs.value
	}
	if len(v.escapes) != len(rhs.escapes) {
		return false
	}
	for i := range v.escapes {
		if v.escapes[i] != rhs.escapes[i] {
			return false
		}
	}
	return true
}

// String renders a finite vertex as its nimber and a loop as "∞" with its
// escape list.
func (v Vertex) String() string {
	if !v.loop {
		return v.value.String()
	}
	if len(v.escapes) == 0 {
		return "∞"
	}
	var b strings.Builder
	b.WriteString("∞(")
	for i, e := range v.escapes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}

// WindUp is a solved modular subtraction game: every vertex of the mod-n
// move graph carries its resolved value.
type WindUp struct {
	graph          []Vertex
	subtractionSet []uint32
}

// unresolved is the working state of one vertex during orbiting.
type unresolved struct {
	done  bool
	value Vertex
}

// NewUsingGraph solves WindUp(n, S) by graph orbiting: three sweeps that
// each run to their own fixpoint.
//
// Pass 1 finds the zeros: vertex 0 is a zero by definition, and a vertex is
// a zero when every first move to a still-unresolved vertex admits a
// response landing on a known zero. Pass 2 assigns the mex to every vertex
// all of whose moves reach finite values. Pass 3 tags everything left — the
// loops — with the finite nimbers reachable through their exits.
func NewUsingGraph(n uint32, subtractionSet []uint32) *WindUp {
	graph := make([]unresolved, n)
	graph[0] = unresolved{done: true, value: FiniteVertex(0)}

	size := int64(n)
	at := func(idx int64) *unresolved {
		return &graph[remEuclid(idx, size)]
	}

	// First pass: find the remaining zeros.
	for sweep := 0; sweep < len(graph); sweep++ {
	firstPass:
		for idx := int64(1); idx < size; idx++ {
			if graph[idx].done {
				continue
			}
			for _, firstMove := range subtractionSet {
				moveVertex := at(idx - int64(firstMove))
				// A move to an already-resolved vertex means a move to a
				// zero is available, so idx cannot be one.
				if moveVertex.done {
					continue firstPass
				}
				respondsToZero := false
				for _, responseMove := range subtractionSet {
					response := at(idx - int64(firstMove) - int64(responseMove))
					if response.done && response.value.Equal(FiniteVertex(0)) {
						respondsToZero = true
						break
					}
				}
				if !respondsToZero {
					continue firstPass
				}
			}
			graph[idx] = unresolved{done: true, value: FiniteVertex(0)}
		}
	}

	// Second pass: mex on vertices whose moves are all finite.
	for sweep := 0; sweep < len(graph); sweep++ {
	secondPass:
		for idx := int64(1); idx < size; idx++ {
			if graph[idx].done {
				continue
			}
			forMex := make([]nimber.Nimber, 0, len(subtractionSet))
			for _, m := range subtractionSet {
				move := at(idx - int64(m))
				if !move.done {
					continue secondPass
				}
				v, ok := move.value.Value()
				if !ok {
					continue secondPass
				}
				forMex = append(forMex, v)
			}
			graph[idx] = unresolved{done: true, value: FiniteVertex(nimber.Mex(forMex))}
		}
	}

	// Third pass: everything still unresolved is a loop; collect the finite
	// nimbers its moves escape to.
	resolved := make([]Vertex, n)
	for idx := int64(0); idx < size; idx++ {
		if graph[idx].done {
			resolved[idx] = graph[idx].value
			continue
		}
		var escapes []nimber.Nimber
		for _, m := range subtractionSet {
			move := at(idx - int64(m))
			if !move.done {
				continue
			}
			if v, ok := move.value.Value(); ok {
				escapes = append(escapes, v)
			}
		}
		resolved[idx] = LoopVertex(escapes)
	}

	return &WindUp{graph: resolved, subtractionSet: append([]uint32(nil), subtractionSet...)}
}

// NewUsingSequence solves WindUp(n, S) by the table method: extend the
// classical subtraction game's Grundy period around the cycle, then orbit
// whole sequences (recomputing each entry as the mex of its predecessors)
// until the sequence reproduces itself or revisits an earlier state.
func NewUsingSequence(period []uint32, n uint32, subtractionSet []uint32) (*WindUp, error) {
	if len(period) == 0 {
		return nil, ErrEmptyPeriod
	}

	size := int(n)
	extended := make([]uint32, size)
	for idx := range extended {
		extended[idx] = period[idx%len(period)]
	}

	seen := map[string]bool{sequenceKey(extended): true}
	for {
		next := make([]uint32, 0, size)
		next = append(next, 0)
		for idx := 1; idx < size; idx++ {
			forMex := make([]nimber.Nimber, 0, len(subtractionSet))
			for _, m := range subtractionSet {
				i := remEuclid(int64(idx)-int64(m), int64(size))
				forMex = append(forMex, nimber.New(extended[i]))
			}
			next = append(next, nimber.Mex(forMex).Value())
		}

		if sequencesEqual(next, extended) {
			break
		}
		extended = next
		key := sequenceKey(extended)
		if seen[key] {
			break
		}
		seen[key] = true
	}

	graph := make([]Vertex, size)
	for idx, v := range extended {
		graph[idx] = FiniteVertex(nimber.New(v))
	}
	return &WindUp{graph: graph, subtractionSet: append([]uint32(nil), subtractionSet...)}, nil
}

// Graph returns the per-vertex solved values.
func (w *WindUp) Graph() []Vertex {
	return append([]Vertex(nil), w.graph...)
}

// SubtractionSet returns the game's subtraction set.
func (w *WindUp) SubtractionSet() []uint32 {
	return append([]uint32(nil), w.subtractionSet...)
}

// N returns the modulus: the number of vertices.
func (w *WindUp) N() uint32 {
	return uint32(len(w.graph))
}

// Equal reports whether two solved games agree vertex for vertex.
func (w *WindUp) Equal(rhs *WindUp) bool {
	if len(w.graph) != len(rhs.graph) || len(w.subtractionSet) != len(rhs.subtractionSet) {
		return false
	}
	for i := range w.graph {
		if !w.graph[i].Equal(rhs.graph[i]) {
			return false
		}
	}
	for i := range w.subtractionSet {
		if w.subtractionSet[i] != rhs.subtractionSet[i] {
			return false
		}
	}
	return true
}

// String renders "WindUp(n=..., {s1, s2}) = [v0, v1, ...]".
func (w *WindUp) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "WindUp(n=%d, {", w.N())
	for i, s := range w.subtractionSet {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", s)
	}
	b.WriteString("}) = [")
	for i, v := range w.graph {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteByte(']')
	return b.String()
}

// remEuclid reduces idx into [0, size), the way modular positions wrap.
func remEuclid(idx, size int64) int64 {
	r := idx % size
	if r < 0 {
		r += size
	}
	return r
}

func sequenceKey(seq []uint32) string {
	var b strings.Builder
	for _, v := range seq {
		fmt.Fprintf(&b, "%d,", v)
	}
	return b.String()
}

func sequencesEqual(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
