package elementary

import (
	"github.com/ltlcheck/ltlcheck/bitset"
	"github.com/ltlcheck/ltlcheck/formula"
	"github.com/ltlcheck/ltlcheck/internal/ltlerr"
)

// maxIndices caps the number of uncertain bit positions (used atomics
// plus every NEXT/UNTIL formula) strictly below 32 to keep the
// 2^|indices| enumeration below it tractable.
const maxIndices = 32

// Build enumerates every elementary set over d's closure, given the
// (already negated, if applicable) root formula under consideration.
// It returns one bitset.Set per elementary set plus the mask of atomic
// propositions that actually influence the formula; propositions
// outside that mask are never iterated and are left unset in every
// returned set.
func Build(d *formula.DAG, root formula.ID) ([]bitset.Set, bitset.Word) {
	m := d.Len()

	usedAtomic := make([]bool, d.NumAP)
	isIndex := make([]bool, m)

	markAtomicIfUsed := func(id formula.ID) {
		orig := formula.Original(id)
		if int(orig) < d.NumAP {
			usedAtomic[orig] = true
			isIndex[orig] = true
		}
	}
	markAtomicIfUsed(root)

	for i := d.NumAP; i < m; i++ {
		e := d.Entry(formula.ID(i))
		switch e.Kind {
		case formula.Next:
			isIndex[i] = true
			markAtomicIfUsed(e.A)
		case formula.Until:
			isIndex[i] = true
			markAtomicIfUsed(e.A)
			markAtomicIfUsed(e.B)
		case formula.Conj:
			markAtomicIfUsed(e.A)
			markAtomicIfUsed(e.B)
		}
	}

	var indices []int
	for i := 0; i < m; i++ {
		if isIndex[i] {
			indices = append(indices, i)
		}
	}
	if len(indices) >= maxIndices {
		panic(ltlerr.Invariantf(
			"elementary: %d uncertain positions exceeds the enumeration limit of %d", len(indices), maxIndices))
	}

	usedAP := bitset.NewWord(d.NumAP)
	for k, used := range usedAtomic {
		if used {
			usedAP = usedAP.Set(k)
		}
	}

	var sets []bitset.Set
	total := uint64(1) << uint(len(indices))
	for pattern := uint64(0); pattern < total; pattern++ {
		if set, ok := propagate(d, m, indices, pattern); ok {
			sets = append(sets, set)
		}
	}
	return sets, usedAP
}

// propagate assigns the pattern's bits to the uncertain positions and
// derives the rest of the elementary set in ascending index order,
// rejecting the assignment if any UNTIL consistency condition is
// violated.
func propagate(d *formula.DAG, m int, indices []int, pattern uint64) (bitset.Set, bool) {
	val := make([]bool, m)
	isUncertain := make([]bool, m)
	for j, idx := range indices {
		isUncertain[idx] = true
		val[idx] = pattern&(uint64(1)<<uint(j)) != 0
	}

	eval := func(id formula.ID) bool {
		if id == formula.True {
			return true
		}
		if id == formula.False {
			return false
		}
		v := val[formula.Original(id)]
		if formula.IsNegation(id) {
			return !v
		}
		return v
	}

	for i := 0; i < m; i++ {
		e := d.Entry(formula.ID(i))
		if isUncertain[i] {
			if e.Kind == formula.Until {
				si := val[i]
				sb := eval(e.B)
				sa := eval(e.A)
				// not (¬set[i] ∧ set[b])
				if !si && sb {
					return bitset.Set{}, false
				}
				// not (set[i] ∧ ¬set[a] ∧ ¬set[b])
				if si && !sa && !sb {
					return bitset.Set{}, false
				}
			}
			continue
		}
		switch e.Kind {
		case formula.Atomic:
			val[i] = false
		case formula.Conj:
			val[i] = eval(e.A) && eval(e.B)
		}
	}

	set := bitset.New(m)
	for i := 0; i < m; i++ {
		if val[i] {
			set = set.SetBit(i)
		}
	}
	return set, true
}
