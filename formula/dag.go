package formula

import (
	"fmt"

	"github.com/ltlcheck/ltlcheck/internal/ltlerr"
)

// Kind is the tag of a primitive DAG entry.
type Kind uint8

const (
	Atomic Kind = iota
	Next
	Conj
	Until
)

// Entry is one primitive node of the DAG. For Atomic, A holds the
// proposition index and B is unused. For Next, A is the operand and B
// is unused. For Conj and Until, A and B are the two operands; Conj
// stores them in canonical order (A <= B by raw ID value).
type Entry struct {
	Kind Kind
	A, B ID
}

type consKey struct {
	kind Kind
	a, b ID
}

// DAG is the ordered, hash-consed list of formula entries. The first
// NumAP entries are always the atomic propositions in order.
type DAG struct {
	entries []Entry
	cons    map[consKey]ID
	NumAP   int
}

// NewDAG constructs a DAG pre-seeded with the numAP atomic propositions.
func NewDAG(numAP int) *DAG {
	d := &DAG{
		entries: make([]Entry, 0, numAP),
		cons:    make(map[consKey]ID),
	}
	d.NumAP = numAP
	for k := 0; k < numAP; k++ {
		d.intern(Entry{Kind: Atomic, A: ID(k)})
	}
	return d
}

// Len returns the number of entries in the DAG (including atomics).
func (d *DAG) Len() int { return len(d.entries) }

// Entry returns the primitive entry at index i (i must be a non-negative,
// non-sentinel original ID).
func (d *DAG) Entry(i ID) Entry {
	if i < 0 || int(i) >= len(d.entries) {
		panic(ltlerr.Invariant(fmt.Sprintf("formula: entry index %d out of range [0,%d)", i, len(d.entries))))
	}
	return d.entries[i]
}

func (d *DAG) intern(e Entry) ID {
	key := consKey{kind: e.Kind, a: e.A, b: e.B}
	if id, ok := d.cons[key]; ok {
		return id
	}
	id := ID(len(d.entries))
	d.entries = append(d.entries, e)
	d.cons[key] = id
	return id
}

// Atom returns the ID of the k-th atomic proposition.
func (d *DAG) Atom(k int) ID {
	if k < 0 || k >= d.NumAP {
		panic(ltlerr.Invariant(fmt.Sprintf("formula: atomic index %d out of range [0,%d)", k, d.NumAP)))
	}
	return ID(k)
}

// internNext interns NEXT(a). A sentinel operand is stored as-is, not
// folded.
func (d *DAG) internNext(a ID) ID {
	return d.intern(Entry{Kind: Next, A: a})
}

// internConj interns CONJ(a,b), storing operands in canonical order
// (a <= b by raw ID value) so that (a∧b) and (b∧a) hash-cons to the
// same node. Sentinel operands are stored as-is: their contribution to
// the elementary-set algebra is a constant, not a fold at construction
// time.
func (d *DAG) internConj(a, b ID) ID {
	if a > b {
		a, b = b, a
	}
	return d.intern(Entry{Kind: Conj, A: a, B: b})
}

// internUntil interns UNTIL(a,b).
func (d *DAG) internUntil(a, b ID) ID {
	return d.intern(Entry{Kind: Until, A: a, B: b})
}

// String renders the formula named by id for diagnostics. It has no
// bearing on checking: nothing in the algorithm consults it.
func (d *DAG) String(id ID) string {
	if id == True {
		return "true"
	}
	if id == False {
		return "false"
	}
	if IsNegation(id) {
		return "¬" + d.String(Neg(id))
	}
	e := d.Entry(id)
	switch e.Kind {
	case Atomic:
		return fmt.Sprintf("p%d", e.A)
	case Next:
		return fmt.Sprintf("X(%s)", d.String(e.A))
	case Conj:
		return fmt.Sprintf("(%s ∧ %s)", d.String(e.A), d.String(e.B))
	case Until:
		return fmt.Sprintf("(%s U %s)", d.String(e.A), d.String(e.B))
	default:
		return "?"
	}
}
