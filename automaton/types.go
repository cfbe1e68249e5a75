package automaton

import "github.com/ltlcheck/ltlcheck/bitset"

// StateTransition is the single outgoing edge of one automaton state:
// the trigger it fires on and the set of successor states it reaches.
// Every GNBA/NBA state produced by this package has exactly one
// outgoing StateTransition: its successors are already grouped by
// trigger at construction time.
type StateTransition struct {
	Trigger    bitset.Word
	Successors bitset.Set
}

// successors returns the successor set reachable from state q on the
// given trigger, or (zero, false) if q's stored trigger does not match.
func successors(transitions []StateTransition, q int, trigger bitset.Word) (bitset.Set, bool) {
	t := transitions[q]
	if t.Trigger.Equal(trigger) {
		return t.Successors, true
	}
	return bitset.Set{}, false
}

// GNBA is a Generalised Non-deterministic Büchi Automaton: its
// acceptance condition is one set per UNTIL sub-formula, all of which
// a run must visit infinitely often.
type GNBA struct {
	NumStates    int
	NumTriggers  int
	Initial      bitset.Set
	Transitions  []StateTransition
	UsedAP       bitset.Word
	FinalStates  []bitset.Set // one acceptance set per UNTIL sub-formula
}

// Successors returns the successor set of state q on trigger.
func (g *GNBA) Successors(q int, trigger bitset.Word) (bitset.Set, bool) {
	return successors(g.Transitions, q, trigger)
}

// NBA is a single-acceptance-set Non-deterministic Büchi Automaton,
// produced by Degeneralize.
type NBA struct {
	NumStates   int
	NumTriggers int
	Initial     bitset.Set
	Transitions []StateTransition
	UsedAP      bitset.Word
	Final       bitset.Set
}

// Successors returns the successor set of state q on trigger.
func (a *NBA) Successors(q int, trigger bitset.Word) (bitset.Set, bool) {
	return successors(a.Transitions, q, trigger)
}
