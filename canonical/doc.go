// Package canonical implements the interned canonical-form sum type, the
// simplifier that reduces raw Left/Right option sets to canonical form, and
// the arithmetic (negation, sum, comparison, thermograph derivation) built
// on top of it.
//
// A Form is a small, comparable value: an index into a process-wide,
// append-only, structurally-deduplicated arena, so equality, hashing, and
// use as a map key are all O(1). Two Forms with the same index denote the
// same game value. The converse does not hold for every value: the
// simplifier recognises the NumberUpStar shapes only for ±↑ and ±↑*, while
// Add builds any NumberUpStar directly, so a value such as ⇑* can exist both
// as a NumberUpStar token (from Add) and as a Moves token ({0|↑}, from
// Simplify). GameEqual compares game values whatever their tokens. The arena is guarded by a
// single sync.RWMutex (the arena and its structural index are always
// mutated together) and is never pruned: canonical forms live for the
// lifetime of the process and are released as a whole, not per value.
//
// Five variants exist: Integer, DyadicFraction, NimberValue, NumberUpStar
// and Moves. Moves is the fallback: anything that does not collapse to one
// of the other four during simplification.
package canonical
