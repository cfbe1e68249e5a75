package automaton

import (
	"github.com/ltlcheck/ltlcheck/bitset"
	"github.com/ltlcheck/ltlcheck/elementary"
	"github.com/ltlcheck/ltlcheck/formula"
	"github.com/ltlcheck/ltlcheck/internal/ltlerr"
)

// BuildGNBA derives a GNBA from the elementary sets of d's closure,
// rooted at root (the verifier passes the negated formula). It returns
// a UserError if the closure has no elementary sets at all.
func BuildGNBA(d *formula.DAG, root formula.ID) (*GNBA, error) {
	sets, usedAP := elementary.Build(d, root)
	n := len(sets)
	if n == 0 {
		return nil, ltlerr.User(ltlerr.CodeEmptyAutomaton, "automaton: formula has no elementary sets")
	}

	initial := bitset.New(n)
	for i, s := range sets {
		if formula.Eval(s, root) {
			initial = initial.SetBit(i)
		}
	}

	transitions := make([]StateTransition, n)
	for i, si := range sets {
		trigger := si.SlicePrefix(d.NumAP).And(usedAP)

		requiredBits := bitset.New(d.Len())
		requiredValues := bitset.New(d.Len())
		infeasible := false

		require := func(pos int, value bool) {
			if requiredBits.Get(pos) {
				if requiredValues.Get(pos) != value {
					infeasible = true
				}
				return
			}
			requiredBits = requiredBits.SetBit(pos)
			requiredValues = requiredValues.PutBit(pos, value)
		}

		for k := d.NumAP; k < d.Len(); k++ {
			e := d.Entry(formula.ID(k))
			switch e.Kind {
			case formula.Next:
				// S_i[k] ⇔ S_j[a]
				if e.A == formula.True || e.A == formula.False {
					constant := e.A == formula.True
					if formula.Eval(si, formula.ID(k)) != constant {
						infeasible = true
					}
					continue
				}
				pos := int(formula.Original(e.A))
				want := formula.Eval(si, formula.ID(k))
				if formula.IsNegation(e.A) {
					want = !want
				}
				require(pos, want)
			case formula.Until:
				// S_i[k] ⇔ (S_i[b] ∨ (S_i[a] ∧ S_j[k]))
				sik := si.Get(k)
				sib := formula.Eval(si, e.B)
				sia := formula.Eval(si, e.A)
				switch {
				case sib:
					if !sik {
						infeasible = true
					}
				case sia:
					require(k, sik)
				default:
					if sik {
						infeasible = true
					}
				}
			}
			if infeasible {
				break
			}
		}

		var succ bitset.Set
		if infeasible {
			succ = bitset.New(n)
		} else {
			succ = bitset.New(n)
			for j, sj := range sets {
				ok := true
				for p := 0; p < d.Len(); p++ {
					if requiredBits.Get(p) && sj.Get(p) != requiredValues.Get(p) {
						ok = false
						break
					}
				}
				if ok {
					succ = succ.SetBit(j)
				}
			}
		}
		transitions[i] = StateTransition{Trigger: trigger, Successors: succ}
	}

	var final []bitset.Set
	for k := d.NumAP; k < d.Len(); k++ {
		e := d.Entry(formula.ID(k))
		if e.Kind != formula.Until {
			continue
		}
		f := bitset.New(n)
		for i, si := range sets {
			if !si.Get(k) || formula.Eval(si, e.B) {
				f = f.SetBit(i)
			}
		}
		final = append(final, f)
	}

	return &GNBA{
		NumStates:   n,
		NumTriggers: d.NumAP,
		Initial:     initial,
		Transitions: transitions,
		UsedAP:      usedAP,
		FinalStates: final,
	}, nil
}
