// Package ttable implements the concurrent transposition table the partizan
// driver memoises through: a position → canonical-form cache whose values
// are the stable interned tokens of package canonical. Value interning
// itself lives in canonical's own arena — a Form already is a deduplicated
// token — so the table's job is the position cache plus collapsing
// concurrent computations of one position into a single flight.
//
// One RWMutex guards the position map, and a singleflight.Group
// independently serialises in-flight computations, so parallel lookups of
// distinct positions never contend on a computing position.
package ttable

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/cgtlath/canonical"
	"golang.org/x/sync/singleflight"
)

// Table is the memoisation contract the partizan driver consumes. Compute
// must return the cached value when the position is known, and otherwise
// run fn, cache its result, and return it.
type Table[G comparable] interface {
	Lookup(position G) (canonical.Form, bool)
	Insert(position G, value canonical.Form)
	Compute(position G, fn func() canonical.Form) canonical.Form
}

// Option configures a ParallelTable.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity pre-sizes the position map for callers that know roughly how
// many positions an exploration will visit.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// ParallelTable is the concurrent position cache. The zero value is not
// usable; construct with NewParallel.
type ParallelTable[G comparable] struct {
	mu        sync.RWMutex
	positions map[G]canonical.Form
	flight    singleflight.Group
}

// NewParallel returns an empty table.
func NewParallel[G comparable](opts ...Option) *ParallelTable[G] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &ParallelTable[G]{positions: make(map[G]canonical.Form, o.capacity)}
}

// Lookup returns the cached value of a position.
func (t *ParallelTable[G]) Lookup(position G) (canonical.Form, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.positions[position]
	return v, ok
}

// Insert caches a position's value. Races between writers of the same
// position are benign: simplification is deterministic, so both write the
// same token.
func (t *ParallelTable[G]) Insert(position G, value canonical.Form) {
	t.mu.Lock()
	t.positions[position] = value
	t.mu.Unlock()
}

// Compute returns the cached value or runs fn exactly once per concurrent
// burst of callers asking for the same position, caching the result.
func (t *ParallelTable[G]) Compute(position G, fn func() canonical.Form) canonical.Form {
	if v, ok := t.Lookup(position); ok {
		return v
	}
	v, _, _ := t.flight.Do(flightKey(position), func() (interface{}, error) {
		if v, ok := t.Lookup(position); ok {
			return v, nil
		}
		v := fn()
		t.Insert(position, v)
		return v, nil
	})
	return v.(canonical.Form)
}

// flightKey renders the position in Go syntax; the driver's positions are
// value types built from strings and small integers, for which %#v is
// injective.
func flightKey[G comparable](position G) string {
	return fmt.Sprintf("%#v", position)
}

// Len reports how many positions are cached.
func (t *ParallelTable[G]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.positions)
}

// IsEmpty reports whether the table has cached anything yet.
func (t *ParallelTable[G]) IsEmpty() bool {
	return t.Len() == 0
}

// NoTable is the dummy table for single-shot queries: it caches nothing, so
// every recursion recomputes. Useful in tests and for positions known to
// have no transpositions.
type NoTable[G comparable] struct{}

// NewNoTable returns a no-op table.
func NewNoTable[G comparable]() NoTable[G] {
	return NoTable[G]{}
}

// Lookup always misses.
func (NoTable[G]) Lookup(G) (canonical.Form, bool) {
	return canonical.Form{}, false
}

// Insert drops the value.
func (NoTable[G]) Insert(G, canonical.Form) {}

// Compute always runs fn.
func (NoTable[G]) Compute(_ G, fn func() canonical.Form) canonical.Form {
	return fn()
}
