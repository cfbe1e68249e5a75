package ltlparse

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ltlcheck/ltlcheck/internal/ltlerr"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokTrue
	tokFalse
	tokNot
	tokAnd
	tokOr
	tokImplies
	tokUntil
	tokNext
	tokFinally
	tokGlobally
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
}

// lex tokenizes the LTL source text. It accepts both the unicode
// operator glyphs and their ASCII spellings so a formula can be typed
// on a plain keyboard.
func lex(src string) ([]token, error) {
	var toks []token
	r := []rune(src)
	i := 0
	for i < len(r) {
		c := r[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '¬' || c == '!':
			toks = append(toks, token{tokNot, string(c)})
			i++
		case c == '∧' || c == '&':
			toks = append(toks, token{tokAnd, string(c)})
			i++
		case c == '∨' || c == '|':
			toks = append(toks, token{tokOr, string(c)})
			i++
		case c == '→':
			toks = append(toks, token{tokImplies, string(c)})
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, string(c)})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, string(c)})
			i++
		case c == '-' && i+1 < len(r) && r[i+1] == '>':
			toks = append(toks, token{tokImplies, "->"})
			i += 2
		case unicode.IsLetter(c) || c == '_':
			start := i
			for i < len(r) && (unicode.IsLetter(r[i]) || unicode.IsDigit(r[i]) || r[i] == '_') {
				i++
			}
			word := string(r[start:i])
			toks = append(toks, keywordOrIdent(word))
		default:
			return nil, ltlerr.Userf(ltlerr.CodeMalformedInput, "ltlparse: unexpected character %q at position %d", c, i)
		}
	}
	toks = append(toks, token{tokEOF, ""})
	return toks, nil
}

func keywordOrIdent(word string) token {
	switch strings.ToLower(word) {
	case "true":
		return token{tokTrue, word}
	case "false":
		return token{tokFalse, word}
	case "u":
		return token{tokUntil, word}
	case "x":
		return token{tokNext, word}
	case "f":
		return token{tokFinally, word}
	case "g":
		return token{tokGlobally, word}
	default:
		return token{tokIdent, word}
	}
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.text)
}
