// Package ltlerr implements two error families for this module.
//
// UserError covers malformed input that a caller can act on: bad
// syntax, unknown atomic names, out-of-range indices, a formula with no
// atomic propositions, an empty automaton, a deadlocked transition
// system. It is returned as an ordinary error (formula.Collector.Collect,
// given zero atomic propositions, is the one place that panics with it).
//
// InvariantError covers programmer/invariant violations raised in the
// formula DAG (an entry or atomic index out of range, an unknown
// parse-node kind) and the |indices| >= 32 enumeration limit. These
// fail fast: construct one with Invariant and panic with it; Recover
// converts a panicked InvariantError back into an error at a package
// boundary (the top-level verifier) without touching any panic raised
// for an unrelated reason. Bit-vector length and index errors are not
// InvariantErrors: package bitset panics with a plain message, which
// Recover passes on unchanged. The degeneraliser builds exactly one
// transition per state and performs no duplicate-transition check.
package ltlerr
