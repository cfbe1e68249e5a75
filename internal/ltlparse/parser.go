package ltlparse

import (
	"github.com/ltlcheck/ltlcheck/formula"
	"github.com/ltlcheck/ltlcheck/internal/ltlerr"
)

// Parse reads an LTL formula from src, resolving atomic proposition
// names through atoms (name -> index). Single-letter names "u", "x",
// "f", "g" are reserved operator keywords and cannot name an atomic
// proposition.
func Parse(src string, atoms map[string]int) (formula.Node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, atoms: atoms}
	n, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, ltlerr.Userf(ltlerr.CodeMalformedInput, "ltlparse: unexpected trailing token %s", p.peek())
	}
	return n, nil
}

type parser struct {
	toks  []token
	pos   int
	atoms map[string]int
}

func (p *parser) peek() token { return p.toks[p.pos] }
func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(k tokenKind, what string) error {
	if p.peek().kind != k {
		return ltlerr.Userf(ltlerr.CodeMalformedInput, "ltlparse: expected %s, found %s", what, p.peek())
	}
	p.pos++
	return nil
}

// parseFormula is the entry production: conjunction is the loosest
// binding operator.
func (p *parser) parseFormula() (formula.Node, error) {
	return p.parseConjunction()
}

func (p *parser) parseConjunction() (formula.Node, error) {
	l, err := p.parseDisjunction()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		r, err := p.parseDisjunction()
		if err != nil {
			return nil, err
		}
		l = formula.AndNode{L: l, R: r}
	}
	return l, nil
}

func (p *parser) parseDisjunction() (formula.Node, error) {
	l, err := p.parseImplication()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		r, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		l = formula.OrNode{L: l, R: r}
	}
	return l, nil
}

// parseImplication is right-associative: a -> b -> c == a -> (b -> c).
func (p *parser) parseImplication() (formula.Node, error) {
	l, err := p.parseUntil()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokImplies {
		p.next()
		r, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		return formula.ImpliesNode{L: l, R: r}, nil
	}
	return l, nil
}

func (p *parser) parseUntil() (formula.Node, error) {
	l, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokUntil {
		p.next()
		r, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		l = formula.UntilNode{L: l, R: r}
	}
	return l, nil
}

func (p *parser) parseUnary() (formula.Node, error) {
	switch p.peek().kind {
	case tokNot:
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return formula.NotNode{X: x}, nil
	case tokNext:
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return formula.NextNode{X: x}, nil
	case tokFinally:
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return formula.EventuallyNode{X: x}, nil
	case tokGlobally:
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return formula.AlwaysNode{X: x}, nil
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() (formula.Node, error) {
	t := p.peek()
	switch t.kind {
	case tokTrue:
		p.next()
		return formula.TrueNode{}, nil
	case tokFalse:
		p.next()
		return formula.FalseNode{}, nil
	case tokLParen:
		p.next()
		n, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return n, nil
	case tokIdent:
		p.next()
		idx, ok := p.atoms[t.text]
		if !ok {
			return nil, ltlerr.Userf(ltlerr.CodeUnknownAtomic, "ltlparse: unknown atomic proposition %q", t.text)
		}
		return formula.AtomicNode{Index: idx}, nil
	default:
		return nil, ltlerr.Userf(ltlerr.CodeMalformedInput, "ltlparse: unexpected token %s", t)
	}
}
