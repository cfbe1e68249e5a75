package dotexport

import (
	"fmt"
	"strings"

	"github.com/ltlcheck/ltlcheck/automaton"
	"github.com/ltlcheck/ltlcheck/bitset"
	"github.com/ltlcheck/ltlcheck/ts"
)

// System renders t as a DOT digraph. atomicNames labels each state's
// node with the propositions that hold there; pass nil to fall back to
// numeric proposition indices.
func System(t *ts.System, atomicNames []string) string {
	var sb strings.Builder
	sb.WriteString("digraph ts {\n")
	sb.WriteString("  rankdir=LR;\n")

	for s := 0; s < t.NumStates; s++ {
		shape := "circle"
		if t.Initial.Get(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&sb, "  s%d [shape=%s, label=%q];\n", s, shape, stateLabel(s, t.Atomics[s], atomicNames))
	}
	for from := 0; from < t.NumStates; from++ {
		t.Transitions[from].ForEach(func(to int) {
			fmt.Fprintf(&sb, "  s%d -> s%d;\n", from, to)
		})
	}

	sb.WriteString("}\n")
	return sb.String()
}

// NBA renders a as a DOT digraph, marking accepting states with a
// double circle.
func NBA(a *automaton.NBA) string {
	var sb strings.Builder
	sb.WriteString("digraph nba {\n")
	sb.WriteString("  rankdir=LR;\n")

	for q := 0; q < a.NumStates; q++ {
		shape := "circle"
		if a.Final.Get(q) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&sb, "  q%d [shape=%s];\n", q, shape)
		if a.Initial.Get(q) {
			fmt.Fprintf(&sb, "  start%d [shape=point]; start%d -> q%d;\n", q, q, q)
		}
	}
	for q := 0; q < a.NumStates; q++ {
		tr := a.Transitions[q]
		tr.Successors.ForEach(func(to int) {
			fmt.Fprintf(&sb, "  q%d -> q%d [label=%q];\n", q, to, tr.Trigger.String())
		})
	}

	sb.WriteString("}\n")
	return sb.String()
}

func stateLabel(s int, props bitset.Set, names []string) string {
	var held []string
	props.ForEach(func(i int) {
		if names != nil && i < len(names) {
			held = append(held, names[i])
		} else {
			held = append(held, fmt.Sprintf("p%d", i))
		}
	})
	if len(held) == 0 {
		return fmt.Sprintf("s%d", s)
	}
	return fmt.Sprintf("s%d {%s}", s, strings.Join(held, ","))
}
