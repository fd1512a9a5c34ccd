// Package impartial implements the game-independent driver for impartial
// games: the Sprague-Grundy recursion that reduces a position to its nimber
// via the minimum excludant over its moves' values.
package impartial

import (
	"sync"

	"github.com/katalvlaran/cgtlath/nimber"
)

// Game is the contract an impartial rule set implements: both players share
// one move list. Positions must be immutable from the driver's point of
// view; Moves returns fresh values.
type Game[G any] interface {
	Moves() []G
}

// NimValue computes the Grundy value of a position: the mex of its moves'
// nim values. The recursion is unmemoised; use a Memo for rule sets with
// heavy transpositions.
func NimValue[G Game[G]](position G) nimber.Nimber {
	moves := position.Moves()
	values := make([]nimber.Nimber, len(moves))
	for i, m := range moves {
		values[i] = NimValue(m)
	}
	return nimber.Mex(values)
}

// Memo caches position → nimber for rule sets whose positions are
// comparable. Safe for concurrent use.
type Memo[G interface {
	Game[G]
	comparable
}] struct {
	mu    sync.RWMutex
	cache map[G]nimber.Nimber
}

// NewMemo returns an empty cache.
func NewMemo[G interface {
	Game[G]
	comparable
}]() *Memo[G] {
	return &Memo[G]{cache: make(map[G]nimber.Nimber)}
}

// NimValue computes the Grundy value of a position through the cache.
func (m *Memo[G]) NimValue(position G) nimber.Nimber {
	m.mu.RLock()
	v, ok := m.cache[position]
	m.mu.RUnlock()
	if ok {
		return v
	}

	moves := position.Moves()
	values := make([]nimber.Nimber, len(moves))
	for i, mv := range moves {
		values[i] = m.NimValue(mv)
	}
	v = nimber.Mex(values)

	m.mu.Lock()
	m.cache[position] = v
	m.mu.Unlock()
	return v
}

// Len reports how many positions have been cached.
func (m *Memo[G]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cache)
}
