package verify

import (
	"github.com/ltlcheck/ltlcheck/automaton"
	"github.com/ltlcheck/ltlcheck/formula"
	"github.com/ltlcheck/ltlcheck/internal/ltlerr"
	"github.com/ltlcheck/ltlcheck/product"
	"github.com/ltlcheck/ltlcheck/ts"
)

// LTL reports whether every infinite execution of t satisfies root: it
// collects root into a DAG, builds the GNBA for its negation,
// degeneralises to an NBA, and checks the product for an accepting
// run. A run of the negation is a counterexample to root, so the
// formula holds over t iff the product admits none.
//
// LTL validates t before checking: a deadlocked state would make the
// product search unsound, since the algorithm assumes every infinite
// execution is well-defined.
func LTL(root formula.Node, t *ts.System) (result bool, err error) {
	defer ltlerr.Recover(&err)

	if err := t.Validate(); err != nil {
		return false, err
	}
	if t.NumAtomics == 0 {
		return false, ltlerr.User(ltlerr.CodeNoAtomicPropositions,
			"verify: a non-atomic formula requires at least one atomic proposition")
	}

	collector := formula.NewCollector(t.NumAtomics)
	rootID, _ := collector.Collect(root)

	gnba, err := automaton.BuildGNBA(collector.DAG, formula.Neg(rootID))
	if err != nil {
		return false, err
	}
	nba := automaton.Degeneralize(gnba)

	return !product.HasAcceptingRun(t, nba), nil
}
