// Package expr parses and evaluates a single arithmetic formula string
// against an explicit variable scope — the formula language of the
// parametric engine.
//
// The language is deliberately closed: numeric literals, identifiers bound
// in the caller-supplied scope, the operators + - * / ^, parentheses, and a
// fixed whitelist of math functions (sqrt, sin, cos, tan, abs, floor, ceil,
// round, pow, min, max). There is no escape into host-language evaluation,
// which keeps the failure taxonomy closed and removes any code-injection
// surface.
//
// Identifier references are whole-token matches produced by the lexer —
// "WL" never partially resolves against a variable named "W".
//
// Evaluation is a pure function of (formula, scope): no package state, no
// ambient globals. Results are guaranteed finite and non-negative, because
// every quantity in this domain is a length or a dimension; anything else
// is reported through the sentinel errors in types.go and the caller keeps
// its previous value.
package expr
