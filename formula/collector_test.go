package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltlcheck/ltlcheck/formula"
)

func TestNegationIsFree(t *testing.T) {
	c := formula.NewCollector(1)
	a := formula.AtomicNode{Index: 0}
	id, _ := c.Collect(a)

	assert.Equal(t, id, formula.Neg(formula.Neg(id)))
	assert.Equal(t, formula.False, formula.Neg(formula.True))
	assert.Equal(t, formula.True, formula.Neg(formula.False))
}

func TestConjCanonicalOrderHashConses(t *testing.T) {
	c := formula.NewCollector(2)
	a := formula.AtomicNode{Index: 0}
	b := formula.AtomicNode{Index: 1}

	id1, _ := c.Collect(formula.AndNode{L: a, R: b})
	id2, _ := c.Collect(formula.AndNode{L: b, R: a})

	assert.Equal(t, id1, id2)
}

func TestRewritesToPrimitiveSet(t *testing.T) {
	c := formula.NewCollector(1)
	a := formula.AtomicNode{Index: 0}

	// F a = TRUE U a
	fID, _ := c.Collect(formula.EventuallyNode{X: a})
	require.False(t, formula.IsNegation(fID))
	entry := c.DAG.Entry(fID)
	assert.Equal(t, formula.Until, entry.Kind)
	assert.Equal(t, formula.True, entry.A)

	// G a = ~(TRUE U ~a)
	gID, _ := c.Collect(formula.AlwaysNode{X: a})
	assert.True(t, formula.IsNegation(gID))

	// a OR b = ~(~a ∧ ~b)
	b := formula.AtomicNode{Index: 0}
	orID, _ := c.Collect(formula.OrNode{L: a, R: b})
	assert.True(t, formula.IsNegation(orID))
}

func TestCollectPostConditionHolds(t *testing.T) {
	c := formula.NewCollector(2)
	a := formula.AtomicNode{Index: 0}
	b := formula.AtomicNode{Index: 1}
	root := formula.UntilNode{L: a, R: formula.AndNode{L: a, R: b}}

	_, _ = c.Collect(root)
	assert.NoError(t, c.DAG.CheckInvariants())
}

func TestNoAtomicPropositionsPanics(t *testing.T) {
	c := formula.NewCollector(0)
	assert.Panics(t, func() {
		c.Collect(formula.TrueNode{})
	})
}

