// Package automaton builds the Vardi–Wolper GNBA for an LTL formula
// from its elementary sets and degeneralises it into a single-
// acceptance-set NBA.
package automaton
