package formula

import (
	"github.com/ltlcheck/ltlcheck/internal/ltlerr"
)

// Collector walks a parse tree and rewrites it into a DAG of primitive
// operators. Derived operators are eliminated via the rewrite table
// below:
//
//	NOT a      -> ~a
//	a OR b     -> ~(~a ∧ ~b)
//	a -> b     -> ~(a ∧ ~b)
//	F a        -> TRUE U a
//	G a        -> ~(TRUE U ~a)
type Collector struct {
	DAG   *DAG
	memo  map[Node]ID
	numAP int
}

// NewCollector constructs a Collector targeting a DAG with numAP atomic
// propositions.
func NewCollector(numAP int) *Collector {
	return &Collector{
		DAG:   NewDAG(numAP),
		memo:  make(map[Node]ID),
		numAP: numAP,
	}
}

// Collect rewrites root into the DAG and returns its ID, along with a
// map from every visited parse node to its assigned ID.
func (c *Collector) Collect(root Node) (ID, map[Node]ID) {
	if c.numAP == 0 {
		panic(ltlerr.User(ltlerr.CodeNoAtomicPropositions,
			"formula: a non-atomic formula requires at least one atomic proposition"))
	}
	ids := make(map[Node]ID)
	id := c.collect(root, ids)
	return id, ids
}

func (c *Collector) collect(n Node, ids map[Node]ID) ID {
	if id, ok := c.memo[n]; ok {
		ids[n] = id
		return id
	}
	var id ID
	switch t := n.(type) {
	case TrueNode:
		id = True
	case FalseNode:
		id = False
	case AtomicNode:
		id = c.DAG.Atom(t.Index)
	case NotNode:
		id = Neg(c.collect(t.X, ids))
	case AndNode:
		id = c.DAG.internConj(c.collect(t.L, ids), c.collect(t.R, ids))
	case OrNode:
		// a ∨ b -> ~(~a ∧ ~b)
		id = Neg(c.DAG.internConj(Neg(c.collect(t.L, ids)), Neg(c.collect(t.R, ids))))
	case ImpliesNode:
		// a -> b -> ~(a ∧ ~b)
		id = Neg(c.DAG.internConj(c.collect(t.L, ids), Neg(c.collect(t.R, ids))))
	case NextNode:
		id = c.DAG.internNext(c.collect(t.X, ids))
	case EventuallyNode:
		// F a -> TRUE U a
		id = c.DAG.internUntil(True, c.collect(t.X, ids))
	case AlwaysNode:
		// G a -> ~(TRUE U ~a)
		id = Neg(c.DAG.internUntil(True, Neg(c.collect(t.X, ids))))
	case UntilNode:
		id = c.DAG.internUntil(c.collect(t.L, ids), c.collect(t.R, ids))
	default:
		panic(ltlerr.Invariantf("formula: unknown parse-node kind %T", n))
	}
	c.memo[n] = id
	ids[n] = id
	return id
}
