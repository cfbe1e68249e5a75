package product

import (
	"github.com/ltlcheck/ltlcheck/automaton"
	"github.com/ltlcheck/ltlcheck/ts"
)

// preInitial is the sentinel TS index ⊥: the product search starts
// here so the outer DFS can hop from an NBA-initial state through a
// TS-initial state in a single step.
const preInitial = -1

// node is a product state (t, q).
type node struct {
	T, Q int
}

// HasAcceptingRun runs a nested depth-first search and reports whether
// the product of t and a admits an accepting run: a state in a.Final
// reachable from itself. This is the opposite of classical "emptiness"
// terminology — true means the product is non-empty.
func HasAcceptingRun(t *ts.System, a *automaton.NBA) bool {
	visited := make(map[node]bool)

	var outer func(n node) bool
	outer = func(n node) bool {
		visited[n] = true
		for _, succ := range postImage(n, t, a) {
			if !visited[succ] {
				if outer(succ) {
					return true
				}
			}
		}
		if n.T != preInitial && a.Final.Get(n.Q) {
			if innerCycleCheck(n, t, a) {
				return true
			}
		}
		return false
	}

	var start []node
	a.Initial.ForEach(func(q int) { start = append(start, node{T: preInitial, Q: q}) })

	for _, n := range start {
		if !visited[n] {
			if outer(n) {
				return true
			}
		}
	}
	return false
}

// innerCycleCheck searches for a path from start back to itself, using
// a visited set local to this single invocation.
func innerCycleCheck(start node, t *ts.System, a *automaton.NBA) bool {
	local := make(map[node]bool)

	var dfs func(n node) bool
	dfs = func(n node) bool {
		local[n] = true
		for _, succ := range postImage(n, t, a) {
			if succ == start {
				return true
			}
			if !local[succ] {
				if dfs(succ) {
					return true
				}
			}
		}
		return false
	}

	return dfs(start)
}

// postImage returns every product state reachable from n in one step,
// in ascending (ts-state, nba-state) order.
func postImage(n node, t *ts.System, a *automaton.NBA) []node {
	var reach func(func(int))
	if n.T == preInitial {
		reach = t.Initial.ForEach
	} else {
		reach = t.Transitions[n.T].ForEach
	}

	var out []node
	reach(func(tp int) {
		trigger := t.Atomics[tp].SlicePrefix(a.NumTriggers).And(a.UsedAP)
		succ, ok := a.Successors(n.Q, trigger)
		if !ok {
			return
		}
		succ.ForEach(func(qp int) {
			out = append(out, node{T: tp, Q: qp})
		})
	})
	return out
}
