package expr

import (
	"fmt"
	"math"
	"strings"
)

// Evaluate — safe arithmetic over a named scope
//
// Description:
//
//	Parses and computes a single formula string against the supplied
//	name→value scope. Pure function: the scope is the only state it sees,
//	assembled explicitly by the caller on every call.
//
// Grammar (recursive descent, ^ right-associative, unary ± prefix):
//
//	expr    = term   { ("+" | "-") term }
//	term    = unary  { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ "^" unary ]
//	primary = number | ident | ident "(" expr { "," expr } ")" | "(" expr ")"
//
// Result guarantees: a finite, non-negative float64, or exactly one of the
// sentinel errors in types.go (branch with errors.Is). Division by zero and
// math-domain failures surface as ErrNonFinite, never as a panic.
//
// Complexity: O(len(formula)) time and space.
func Evaluate(formula string, scope map[string]float64) (float64, error) {
	if strings.TrimSpace(formula) == "" {
		return 0, ErrEmptyFormula
	}
	tokens, err := lex(formula)
	if err != nil {
		return 0, err
	}

	p := &parser{tokens: tokens, scope: scope}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if tk := p.peek(); tk.kind != tokEOF {
		return 0, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, tk.text, tk.pos)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNonFinite
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %g", ErrNegative, v)
	}

	return v, nil
}

// parser walks the token stream and evaluates as it parses; the formula
// language has no constructs that would require an explicit AST.
type parser struct {
	tokens []token
	pos    int
	scope  map[string]float64
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) next() token {
	tk := p.tokens[p.pos]
	if tk.kind != tokEOF {
		p.pos++
	}
	return tk
}

// parseExpr handles the additive level.
func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += rhs
		case tokMinus:
			p.next()
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

// parseTerm handles the multiplicative level.
func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case tokSlash:
			p.next()
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			// Division by zero yields ±Inf here and ErrNonFinite at the top.
			v /= rhs
		default:
			return v, nil
		}
	}
}

// parseUnary handles prefix signs; "-W/2" negates the primary, not the term.
func (p *parser) parseUnary() (float64, error) {
	switch p.peek().kind {
	case tokMinus:
		p.next()
		v, err := p.parseUnary()
		return -v, err
	case tokPlus:
		p.next()
		return p.parseUnary()
	default:
		return p.parsePower()
	}
}

// parsePower handles exponentiation; right-associative so 2^3^2 = 2^(3^2).
func (p *parser) parsePower() (float64, error) {
	v, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	if p.peek().kind == tokCaret {
		p.next()
		exp, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return math.Pow(v, exp), nil
	}
	return v, nil
}

// parsePrimary handles literals, variable references, calls, and grouping.
func (p *parser) parsePrimary() (float64, error) {
	tk := p.next()
	switch tk.kind {
	case tokNumber:
		return tk.num, nil

	case tokIdent:
		if p.peek().kind == tokLParen {
			return p.parseCall(tk)
		}
		v, ok := p.scope[tk.text]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownIdent, tk.text)
		}
		return v, nil

	case tokLParen:
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return 0, fmt.Errorf("%w: expected ')' at %d", ErrSyntax, closing.pos)
		}
		return v, nil

	default:
		return 0, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, tk.text, tk.pos)
	}
}

// parseCall evaluates a whitelisted function call; name has been consumed
// and the current token is the opening parenthesis.
func (p *parser) parseCall(name token) (float64, error) {
	fn, ok := functions[name.text]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFunc, name.text)
	}
	p.next() // consume '('

	var args []float64
	if p.peek().kind != tokRParen {
		for {
			v, err := p.parseExpr()
			if err != nil {
				return 0, err
			}
			args = append(args, v)
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
	}
	if closing := p.next(); closing.kind != tokRParen {
		return 0, fmt.Errorf("%w: expected ')' at %d", ErrSyntax, closing.pos)
	}

	if len(args) < fn.minArity || (fn.maxArity >= 0 && len(args) > fn.maxArity) {
		return 0, fmt.Errorf("%w: %s takes %d argument(s), got %d",
			ErrArity, name.text, fn.minArity, len(args))
	}

	return fn.apply(args), nil
}
