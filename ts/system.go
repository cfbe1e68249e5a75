package ts

import (
	"github.com/ltlcheck/ltlcheck/bitset"
	"github.com/ltlcheck/ltlcheck/internal/ltlerr"
)

// System is a labelled Kripke structure: states, an initial set, a
// successor relation, and a state-labelling by atomic proposition. It
// is built once and treated as read-only afterwards.
type System struct {
	NumStates   int
	NumAtomics  int
	Initial     bitset.Set
	Transitions []bitset.Set // Transitions[s] = successors of s
	Atomics     []bitset.Set // Atomics[s] = propositions holding at s
}

// New constructs an empty System sized for numStates states and
// numAtomics atomic propositions, with empty transition/labelling sets
// ready to be populated.
func New(numStates, numAtomics int) *System {
	t := &System{
		NumStates:   numStates,
		NumAtomics:  numAtomics,
		Initial:     bitset.New(numStates),
		Transitions: make([]bitset.Set, numStates),
		Atomics:     make([]bitset.Set, numStates),
	}
	for s := 0; s < numStates; s++ {
		t.Transitions[s] = bitset.New(numStates)
		t.Atomics[s] = bitset.New(numAtomics)
	}
	return t
}

// AddTransition marks `to` as a successor of `from`.
func (t *System) AddTransition(from, to int) {
	t.Transitions[from] = t.Transitions[from].SetBit(to)
}

// SetInitial marks s as an initial state.
func (t *System) SetInitial(s int) {
	t.Initial = t.Initial.SetBit(s)
}

// Label marks atomic proposition k as holding at state s.
func (t *System) Label(s, k int) {
	t.Atomics[s] = t.Atomics[s].SetBit(k)
}

// Validate enforces that every state has at least one successor. It
// returns a UserError on the first deadlocked state found.
func (t *System) Validate() error {
	for s := 0; s < t.NumStates; s++ {
		if t.Transitions[s].IsZero() {
			return ltlerr.Userf(ltlerr.CodeDeadlockedState,
				"ts: state %d has no successors; the transition system must be deadlock-free", s)
		}
	}
	return nil
}
