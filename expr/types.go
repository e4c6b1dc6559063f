// Package expr sentinel errors and the function whitelist.
package expr

import (
	"errors"
	"math"
)

// Sentinel errors for formula evaluation.
// Callers MUST branch with errors.Is; messages are part of the contract.
var (
	// ErrEmptyFormula indicates the trimmed formula string is empty.
	ErrEmptyFormula = errors.New("expr: formula is empty")
	// ErrSyntax indicates the formula cannot be parsed (bad token, unbalanced
	// parentheses, trailing input).
	ErrSyntax = errors.New("expr: syntax error")
	// ErrUnknownIdent indicates an identifier not present in the scope.
	ErrUnknownIdent = errors.New("expr: unknown variable")
	// ErrUnknownFunc indicates a call to a function outside the whitelist.
	ErrUnknownFunc = errors.New("expr: unknown function")
	// ErrArity indicates a whitelisted function called with a wrong number
	// of arguments.
	ErrArity = errors.New("expr: wrong argument count")
	// ErrNonFinite indicates the computed value is NaN or ±Inf
	// (division by zero, overflow, domain error).
	ErrNonFinite = errors.New("expr: result is not finite")
	// ErrNegative indicates the computed value is below zero; lengths and
	// dimensions are never negative in this domain.
	ErrNegative = errors.New("expr: result is negative")
)

// function describes one whitelisted math function.
// maxArity = -1 means variadic (at least minArity arguments).
type function struct {
	minArity int
	maxArity int
	apply    func(args []float64) float64
}

// functions is the closed whitelist of callable names.
// Adding an entry here is the only way to extend the formula language.
var functions = map[string]function{
	"sqrt":  {1, 1, func(a []float64) float64 { return math.Sqrt(a[0]) }},
	"sin":   {1, 1, func(a []float64) float64 { return math.Sin(a[0]) }},
	"cos":   {1, 1, func(a []float64) float64 { return math.Cos(a[0]) }},
	"tan":   {1, 1, func(a []float64) float64 { return math.Tan(a[0]) }},
	"abs":   {1, 1, func(a []float64) float64 { return math.Abs(a[0]) }},
	"floor": {1, 1, func(a []float64) float64 { return math.Floor(a[0]) }},
	"ceil":  {1, 1, func(a []float64) float64 { return math.Ceil(a[0]) }},
	"round": {1, 1, func(a []float64) float64 { return math.Round(a[0]) }},
	"pow":   {2, 2, func(a []float64) float64 { return math.Pow(a[0], a[1]) }},
	"min":   {2, -1, foldMin},
	"max":   {2, -1, foldMax},
}

// IsFunction reports whether name is a whitelisted function name.
// Variable names colliding with function names are unreachable from formulas;
// the UI layer uses this to reject such labels up front.
func IsFunction(name string) bool {
	_, ok := functions[name]
	return ok
}

func foldMin(args []float64) float64 {
	m := args[0]
	for _, v := range args[1:] {
		m = math.Min(m, v)
	}
	return m
}

func foldMax(args []float64) float64 {
	m := args[0]
	for _, v := range args[1:] {
		m = math.Max(m, v)
	}
	return m
}
