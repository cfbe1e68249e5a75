package automaton

import (
	"github.com/ltlcheck/ltlcheck/bitset"
)

// Degeneralize cross-products a GNBA with its acceptance-set index,
// producing a single-acceptance-set NBA. If the GNBA has at most one
// acceptance set, no layering is needed and the NBA is structurally
// identical to the GNBA (with an all-states acceptance set when there
// are zero UNTIL sub-formulas: a formula with nothing to accept on
// should not reject every run for lack of an acceptance condition).
func Degeneralize(g *GNBA) *NBA {
	k := len(g.FinalStates)
	if k <= 1 {
		final := bitset.New(g.NumStates).SetAll()
		if k == 1 {
			final = g.FinalStates[0]
		}
		return &NBA{
			NumStates:   g.NumStates,
			NumTriggers: g.NumTriggers,
			Initial:     g.Initial,
			Transitions: g.Transitions,
			UsedAP:      g.UsedAP,
			Final:       final,
		}
	}

	n := g.NumStates
	total := n * k

	initial := bitset.New(total)
	g.Initial.ForEach(func(q int) {
		initial = initial.SetBit(layerIndex(n, q, 0))
	})

	final := bitset.New(total)
	g.FinalStates[0].ForEach(func(q int) {
		final = final.SetBit(layerIndex(n, q, 0))
	})

	transitions := make([]StateTransition, total)
	for j := 0; j < k; j++ {
		for q := 0; q < n; q++ {
			src := layerIndex(n, q, j)
			gTrans := g.Transitions[q]

			nextLayer := j
			if g.FinalStates[j].Get(q) {
				nextLayer = (j + 1) % k
			}

			succ := bitset.New(total)
			succ = succ.ShiftOverlay(nextLayer*n, gTrans.Successors)

			// Every (q, j) pair maps to a distinct src, so this never
			// overwrites an already-populated transition.
			transitions[src] = StateTransition{Trigger: gTrans.Trigger, Successors: succ}
		}
	}

	return &NBA{
		NumStates:   total,
		NumTriggers: g.NumTriggers,
		Initial:     initial,
		Transitions: transitions,
		UsedAP:      g.UsedAP,
		Final:       final,
	}
}

// layerIndex maps a GNBA state q in layer j (chasing F_j) to its NBA
// state index.
func layerIndex(n, q, j int) int { return j*n + q }
