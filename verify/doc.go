// Package verify composes the formula, elementary, automaton and
// product packages into the single public entry point of the core:
// given a formula and a transition system, decide whether every
// infinite execution of the system satisfies the formula.
package verify
