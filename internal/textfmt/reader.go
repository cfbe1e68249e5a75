package textfmt

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ltlcheck/ltlcheck/internal/ltlerr"
	"github.com/ltlcheck/ltlcheck/ts"
)

// Result is a parsed transition system together with the name tables
// carried alongside it. ActionNames exists only for alternative query
// shapes in surrounding tooling: the core verifier never consults it.
type Result struct {
	System      *ts.System
	ActionNames []string
	AtomicNames []string
}

// Read parses the reference text format from r.
func Read(r io.Reader) (*Result, error) {
	sc := &lineScanner{s: bufio.NewScanner(r)}

	numStates, numTransitions, err := sc.readTwoInts()
	if err != nil {
		return nil, err
	}

	initial, err := sc.readIndexSet(numStates)
	if err != nil {
		return nil, err
	}

	actionNames, err := sc.readFields()
	if err != nil {
		return nil, err
	}

	atomicNames, err := sc.readFields()
	if err != nil {
		return nil, err
	}

	sys := ts.New(numStates, len(atomicNames))
	actionIndex := make(map[string]int, len(actionNames))
	for i, name := range actionNames {
		actionIndex[name] = i
	}

	for _, s := range initial {
		if s < 0 || s >= numStates {
			return nil, ltlerr.Userf(ltlerr.CodeIndexOutOfRange, "textfmt: initial state %d out of range [0,%d)", s, numStates)
		}
		sys.SetInitial(s)
	}

	for i := 0; i < numTransitions; i++ {
		from, action, into, err := sc.readTransition()
		if err != nil {
			return nil, err
		}
		if from < 0 || from >= numStates || into < 0 || into >= numStates {
			return nil, ltlerr.Userf(ltlerr.CodeIndexOutOfRange, "textfmt: transition %d references an out-of-range state", i)
		}
		if _, ok := actionIndex[action]; !ok {
			return nil, ltlerr.Userf(ltlerr.CodeMalformedInput, "textfmt: transition %d references unknown action %q", i, action)
		}
		sys.AddTransition(from, into)
	}

	for s := 0; s < numStates; s++ {
		labels, err := sc.readIndexSet(len(atomicNames))
		if err != nil {
			return nil, err
		}
		for _, k := range labels {
			if k < 0 || k >= len(atomicNames) {
				return nil, ltlerr.Userf(ltlerr.CodeIndexOutOfRange, "textfmt: state %d labels out-of-range proposition %d", s, k)
			}
			sys.Label(s, k)
		}
	}

	return &Result{System: sys, ActionNames: actionNames, AtomicNames: atomicNames}, nil
}

type lineScanner struct {
	s *bufio.Scanner
}

func (l *lineScanner) nextLine() (string, error) {
	if !l.s.Scan() {
		if err := l.s.Err(); err != nil {
			return "", ltlerr.WrapUser(ltlerr.CodeMalformedInput, "textfmt: reading input", err)
		}
		return "", ltlerr.User(ltlerr.CodeMalformedInput, "textfmt: unexpected end of input")
	}
	return l.s.Text(), nil
}

func (l *lineScanner) readFields() ([]string, error) {
	line, err := l.nextLine()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if fields == nil {
		fields = []string{}
	}
	return fields, nil
}

func (l *lineScanner) readTwoInts() (int, int, error) {
	fields, err := l.readFields()
	if err != nil {
		return 0, 0, err
	}
	if len(fields) != 2 {
		return 0, 0, ltlerr.Userf(ltlerr.CodeMalformedInput, "textfmt: expected two integers, found %d fields", len(fields))
	}
	a, err1 := strconv.Atoi(fields[0])
	b, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return 0, 0, ltlerr.User(ltlerr.CodeMalformedInput, "textfmt: malformed integer header")
	}
	return a, b, nil
}

// readIndexSet reads a line of space-separated non-negative integers out
// of a universe of size n. A lone "-1" denotes the full set [0,n).
func (l *lineScanner) readIndexSet(n int) ([]int, error) {
	fields, err := l.readFields()
	if err != nil {
		return nil, err
	}
	if len(fields) == 1 && fields[0] == "-1" {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out, nil
	}
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, ltlerr.Userf(ltlerr.CodeMalformedInput, "textfmt: malformed index %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

func (l *lineScanner) readTransition() (from int, action string, into int, err error) {
	fields, err := l.readFields()
	if err != nil {
		return 0, "", 0, err
	}
	if len(fields) != 3 {
		return 0, "", 0, ltlerr.Userf(ltlerr.CodeMalformedInput, "textfmt: expected \"from action into\", found %d fields", len(fields))
	}
	from, err1 := strconv.Atoi(fields[0])
	into, err2 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil {
		return 0, "", 0, ltlerr.User(ltlerr.CodeMalformedInput, "textfmt: malformed transition state index")
	}
	return from, fields[1], into, nil
}
