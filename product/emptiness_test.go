package product_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ltlcheck/ltlcheck/automaton"
	"github.com/ltlcheck/ltlcheck/bitset"
	"github.com/ltlcheck/ltlcheck/product"
	"github.com/ltlcheck/ltlcheck/ts"
)

// selfLoopNBA builds a single-state NBA that accepts everything and
// loops on any trigger — the "always true" automaton.
func selfLoopNBA(numAP int) *automaton.NBA {
	trigger := bitset.NewWord(numAP)
	succ := bitset.New(1).SetBit(0)
	return &automaton.NBA{
		NumStates:   1,
		NumTriggers: numAP,
		Initial:     bitset.New(1).SetBit(0),
		Transitions: []automaton.StateTransition{{Trigger: trigger, Successors: succ}},
		UsedAP:      bitset.NewWord(numAP),
		Final:       bitset.New(1).SetBit(0),
	}
}

func TestHasAcceptingRunSelfLoop(t *testing.T) {
	sys := ts.New(1, 0)
	sys.AddTransition(0, 0)
	sys.SetInitial(0)

	assert.True(t, product.HasAcceptingRun(sys, selfLoopNBA(0)))
}

func TestHasAcceptingRunRejectsWhenAutomatonNeverAccepts(t *testing.T) {
	sys := ts.New(1, 0)
	sys.AddTransition(0, 0)
	sys.SetInitial(0)

	a := selfLoopNBA(0)
	a.Final = bitset.New(1) // no accepting state
	assert.False(t, product.HasAcceptingRun(sys, a))
}

func TestHasAcceptingRunRequiresReachableCycle(t *testing.T) {
	// Two TS states, 0 -> 1, 1 has a self-loop; NBA is accept-everything
	// single state. An accepting run exists because state 1 loops.
	sys := ts.New(2, 0)
	sys.AddTransition(0, 1)
	sys.AddTransition(1, 1)
	sys.SetInitial(0)

	assert.True(t, product.HasAcceptingRun(sys, selfLoopNBA(0)))
}

func TestHasAcceptingRunAcceptingStateWithoutCycleIsEmpty(t *testing.T) {
	// A TS where every state is deadlock-free via a self-loop at the
	// tail. The product reaches the NBA's only accepting state q1, but
	// q1 has no successors, so no accepting cycle exists.
	sys := ts.New(2, 1)
	sys.AddTransition(0, 1)
	sys.AddTransition(1, 1)
	sys.SetInitial(0)
	sys.Label(1, 0) // proposition 0 holds at state 1

	trigger0 := bitset.NewWord(1) // proposition absent
	trigger1 := bitset.NewWord(1).Set(0)

	// NBA: q0 --trigger0--> q1 (never loops back); q1's transition has
	// an empty successor set, so no accepting cycle is reachable.
	a := &automaton.NBA{
		NumStates:   2,
		NumTriggers: 1,
		Initial:     bitset.New(2).SetBit(0),
		Transitions: []automaton.StateTransition{
			{Trigger: trigger0, Successors: bitset.New(2).SetBit(1)},
			{Trigger: trigger1, Successors: bitset.New(2)},
		},
		UsedAP: bitset.NewWord(1).Set(0),
		Final:  bitset.New(2).SetBit(1),
	}

	assert.False(t, product.HasAcceptingRun(sys, a))
}
