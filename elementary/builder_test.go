package elementary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltlcheck/ltlcheck/elementary"
	"github.com/ltlcheck/ltlcheck/formula"
)

func TestBuildAtomicOnly(t *testing.T) {
	c := formula.NewCollector(1)
	a := formula.AtomicNode{Index: 0}
	root, _ := c.Collect(a)

	sets, usedAP := elementary.Build(c.DAG, root)
	require.NotEmpty(t, sets)
	assert.True(t, usedAP.Get(0))

	var sawTrue, sawFalse bool
	for _, s := range sets {
		if formula.Eval(s, root) {
			sawTrue = true
		} else {
			sawFalse = true
		}
	}
	assert.True(t, sawTrue)
	assert.True(t, sawFalse)
}

func TestBuildUntilConsistency(t *testing.T) {
	c := formula.NewCollector(2)
	a := formula.AtomicNode{Index: 0}
	b := formula.AtomicNode{Index: 1}
	root, _ := c.Collect(formula.UntilNode{L: a, R: b})

	sets, _ := elementary.Build(c.DAG, root)
	require.NotEmpty(t, sets)

	entry := c.DAG.Entry(root)
	for _, s := range sets {
		si := s.Get(int(root))
		sa := formula.Eval(s, entry.A)
		sb := formula.Eval(s, entry.B)
		if !si {
			assert.False(t, sb, "¬set[i] ∧ set[b] must not hold")
		}
		if si && !sb {
			assert.True(t, sa, "set[i] ∧ ¬set[a] ∧ ¬set[b] must not hold")
		}
	}
}

func TestBuildRespectsUsedAPMask(t *testing.T) {
	c := formula.NewCollector(3)
	a := formula.AtomicNode{Index: 0}
	root, _ := c.Collect(a)

	_, usedAP := elementary.Build(c.DAG, root)
	assert.True(t, usedAP.Get(0))
	assert.False(t, usedAP.Get(1))
	assert.False(t, usedAP.Get(2))
}

func TestBuildTooManyIndicesPanics(t *testing.T) {
	c := formula.NewCollector(40)
	var root formula.Node = formula.AtomicNode{Index: 0}
	for i := 1; i < 40; i++ {
		root = formula.AndNode{L: root, R: formula.AtomicNode{Index: i}}
	}
	id, _ := c.Collect(root)

	assert.Panics(t, func() {
		elementary.Build(c.DAG, id)
	})
}
