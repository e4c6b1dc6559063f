package expr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// tokenKind enumerates the lexical classes of the formula language.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokComma
)

// token is one lexical unit with its source position (for error context).
type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

// lex splits the formula into tokens. Identifiers follow
// ^[A-Za-z][A-Za-z0-9_]*$; numbers are decimal with an optional fraction.
// Any other rune is a syntax error.
func lex(input string) ([]token, error) {
	var tokens []token
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++

		case r >= '0' && r <= '9' || r == '.':
			start := i
			for i < len(runes) && (runes[i] >= '0' && runes[i] <= '9' || runes[i] == '.') {
				i++
			}
			text := string(runes[start:i])
			num, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q at %d", ErrSyntax, text, start)
			}
			tokens = append(tokens, token{kind: tokNumber, text: text, num: num, pos: start})

		case r == '_' || unicode.IsLetter(r):
			if r == '_' {
				// Identifiers must start with a letter.
				return nil, fmt.Errorf("%w: identifier cannot start with '_' at %d", ErrSyntax, i)
			}
			start := i
			for i < len(runes) && (runes[i] == '_' || unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i])) {
				i++
			}
			tokens = append(tokens, token{kind: tokIdent, text: string(runes[start:i]), pos: start})

		default:
			kind, ok := operatorKind(r)
			if !ok {
				return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, string(r), i)
			}
			tokens = append(tokens, token{kind: kind, text: string(r), pos: i})
			i++
		}
	}
	tokens = append(tokens, token{kind: tokEOF, pos: len(runes)})

	return tokens, nil
}

// operatorKind maps a single operator rune to its token kind.
func operatorKind(r rune) (tokenKind, bool) {
	switch r {
	case '+':
		return tokPlus, true
	case '-':
		return tokMinus, true
	case '*':
		return tokStar, true
	case '/':
		return tokSlash, true
	case '^':
		return tokCaret, true
	case '(':
		return tokLParen, true
	case ')':
		return tokRParen, true
	case ',':
		return tokComma, true
	default:
		return tokEOF, false
	}
}

// Vars returns the distinct variable names a formula references, in order of
// first appearance. Function names from the whitelist are not variables.
// Used by the engine and the UI layer for dependency display; it does not
// require the identifiers to be bound in any scope.
func Vars(formula string) ([]string, error) {
	if strings.TrimSpace(formula) == "" {
		return nil, ErrEmptyFormula
	}
	tokens, err := lex(formula)
	if err != nil {
		return nil, err
	}

	var names []string
	seen := make(map[string]struct{})
	for i, tk := range tokens {
		if tk.kind != tokIdent {
			continue
		}
		// ident '(' is a function call, not a variable reference.
		if tokens[i+1].kind == tokLParen && IsFunction(tk.text) {
			continue
		}
		if _, dup := seen[tk.text]; dup {
			continue
		}
		seen[tk.text] = struct{}{}
		names = append(names, tk.text)
	}

	return names, nil
}
