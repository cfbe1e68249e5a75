package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltlcheck/ltlcheck/formula"
	"github.com/ltlcheck/ltlcheck/ts"
	"github.com/ltlcheck/ltlcheck/verify"
)

func atom(i int) formula.Node { return formula.AtomicNode{Index: i} }

func TestEndToEndScenarios(t *testing.T) {
	selfLoop := func() *ts.System {
		s := ts.New(1, 1)
		s.AddTransition(0, 0)
		s.SetInitial(0)
		s.Label(0, 0)
		return s
	}

	chain := func() *ts.System {
		s := ts.New(2, 1)
		s.AddTransition(0, 1)
		s.AddTransition(1, 1)
		s.SetInitial(0)
		s.Label(1, 0)
		return s
	}

	toggle := func() *ts.System {
		s := ts.New(2, 2)
		s.AddTransition(0, 1)
		s.AddTransition(1, 0)
		s.SetInitial(0)
		s.Label(0, 0)
		s.Label(1, 1)
		return s
	}

	cases := []struct {
		name string
		ts   *ts.System
		f    formula.Node
		want bool
	}{
		{"S1_self_loop_always_a_holds", selfLoop(), formula.AlwaysNode{X: atom(0)}, true},
		{"S3_chain_eventually_a", chain(), formula.EventuallyNode{X: atom(0)}, true},
		{"S4_chain_next_a", chain(), formula.NextNode{X: atom(0)}, true},
		{"S5_chain_a_until_next_a", chain(), formula.UntilNode{L: atom(0), R: formula.NextNode{X: atom(0)}}, false},
		{
			"S6_toggle_mutual_handoff",
			toggle(),
			formula.AndNode{
				L: formula.AlwaysNode{X: formula.ImpliesNode{L: atom(0), R: formula.NextNode{X: atom(1)}}},
				R: formula.AlwaysNode{X: formula.ImpliesNode{L: atom(1), R: formula.NextNode{X: atom(0)}}},
			},
			true,
		},
		{"S7_toggle_eventually_always_a", toggle(), formula.EventuallyNode{X: formula.AlwaysNode{X: atom(0)}}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := verify.LTL(c.f, c.ts)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestS2SelfLoopWithoutAtomicAlwaysFails(t *testing.T) {
	s := ts.New(1, 1)
	s.AddTransition(0, 0)
	s.SetInitial(0)
	// a is never labelled at s0.

	got, err := verify.LTL(formula.AlwaysNode{X: atom(0)}, s)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestTautologyAlwaysHolds(t *testing.T) {
	s := ts.New(1, 1)
	s.AddTransition(0, 0)
	s.SetInitial(0)

	got, err := verify.LTL(formula.TrueNode{}, s)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestContradictionNeverHolds(t *testing.T) {
	s := ts.New(1, 1)
	s.AddTransition(0, 0)
	s.SetInitial(0)

	got, err := verify.LTL(formula.FalseNode{}, s)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestLTLIsIdempotent(t *testing.T) {
	s := ts.New(2, 1)
	s.AddTransition(0, 1)
	s.AddTransition(1, 1)
	s.SetInitial(0)
	s.Label(1, 0)

	f := formula.EventuallyNode{X: atom(0)}

	first, err := verify.LTL(f, s)
	require.NoError(t, err)
	second, err := verify.LTL(f, s)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLTLRejectsDeadlockedSystem(t *testing.T) {
	s := ts.New(2, 1)
	s.AddTransition(0, 1) // state 1 has no successors
	s.SetInitial(0)

	_, err := verify.LTL(formula.AlwaysNode{X: atom(0)}, s)
	require.Error(t, err)
}

func TestLTLReturnsErrorOnZeroAtomicPropositions(t *testing.T) {
	s := ts.New(1, 0)
	s.AddTransition(0, 0)
	s.SetInitial(0)

	assert.NotPanics(t, func() {
		_, err := verify.LTL(formula.NextNode{X: formula.TrueNode{}}, s)
		require.Error(t, err)
	})
}
