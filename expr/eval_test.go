package expr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paramesh/expr"
)

// TestEvaluate_Arithmetic covers operators, precedence, grouping, and the
// right-associativity of exponentiation.
func TestEvaluate_Arithmetic(t *testing.T) {
	scope := map[string]float64{"W": 500, "H": 720, "A": 100}

	cases := []struct {
		name    string
		formula string
		want    float64
	}{
		{"literal", "42", 42},
		{"decimal", "3.5", 3.5},
		{"addition", "A+50", 150},
		{"subtraction", "H-W", 220},
		{"multiplication", "A*2", 200},
		{"division", "W/2", 250},
		{"precedence", "2+3*4", 14},
		{"grouping", "(2+3)*4", 20},
		{"unary plus", "+A", 100},
		{"unary minus folds", "A*-1+200", 100},
		{"power", "2^10", 1024},
		{"power right assoc", "2^3^2", 512},
		{"sqrt", "sqrt(W*2)/2", math.Sqrt(1000) / 2},
		{"min variadic", "min(W, H, A)", 100},
		{"max", "max(W, H)", 720},
		{"pow fn", "pow(2, 8)", 256},
		{"round", "round(2.5)", 3},
		{"nested call", "max(min(W, H), sqrt(A)*10)", 500},
		{"trig", "cos(0)*A", 100},
		{"whitespace", "  W /  2 ", 250},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := expr.Evaluate(tc.formula, scope)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

// TestEvaluate_ErrorTaxonomy pins every sentinel in the closed failure set.
func TestEvaluate_ErrorTaxonomy(t *testing.T) {
	scope := map[string]float64{"W": 500}

	cases := []struct {
		name    string
		formula string
		want    error
	}{
		{"empty", "", expr.ErrEmptyFormula},
		{"whitespace only", "   \t ", expr.ErrEmptyFormula},
		{"dangling operator", "W+", expr.ErrSyntax},
		{"unbalanced paren", "(W/2", expr.ErrSyntax},
		{"trailing input", "W 2", expr.ErrSyntax},
		{"bad rune", "W $ 2", expr.ErrSyntax},
		{"bad number", "1.2.3", expr.ErrSyntax},
		{"leading underscore", "_W", expr.ErrSyntax},
		{"unknown variable", "W + L", expr.ErrUnknownIdent},
		{"unknown function", "cbrt(W)", expr.ErrUnknownFunc},
		{"arity low", "pow(2)", expr.ErrArity},
		{"arity high", "sqrt(1, 2)", expr.ErrArity},
		{"division by zero", "W / 0", expr.ErrNonFinite},
		{"nan", "0 / 0", expr.ErrNonFinite},
		{"negative result", "W - 600", expr.ErrNegative},
		{"negative literal", "-5", expr.ErrNegative},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := expr.Evaluate(tc.formula, scope)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestEvaluate_WholeTokenMatch guards against substring substitution: a
// variable named "W" must never resolve inside the identifier "WL".
func TestEvaluate_WholeTokenMatch(t *testing.T) {
	scope := map[string]float64{"W": 500}

	_, err := expr.Evaluate("WL/2", scope)
	assert.ErrorIs(t, err, expr.ErrUnknownIdent, "WL must be its own token")

	got, err := expr.Evaluate("WL/2", map[string]float64{"W": 500, "WL": 80})
	require.NoError(t, err)
	assert.InDelta(t, 40, got, 1e-9)
}

// TestEvaluate_IntermediateNegatives verifies only the final value is
// required to be non-negative.
func TestEvaluate_IntermediateNegatives(t *testing.T) {
	got, err := expr.Evaluate("(10-30)*-1", nil)
	require.NoError(t, err)
	assert.InDelta(t, 20, got, 1e-9)
}

// TestEvaluate_PureOverScope checks evaluation never writes to its scope.
func TestEvaluate_PureOverScope(t *testing.T) {
	scope := map[string]float64{"W": 500}
	_, err := expr.Evaluate("W*2", scope)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"W": 500}, scope)
}

// TestVars lists referenced identifiers in first-appearance order and
// excludes whitelisted function names.
func TestVars(t *testing.T) {
	names, err := expr.Vars("max(Shelf, W/2) + Shelf - sqrt(Depth)")
	require.NoError(t, err)
	assert.Equal(t, []string{"Shelf", "W", "Depth"}, names)

	_, err = expr.Vars("  ")
	assert.ErrorIs(t, err, expr.ErrEmptyFormula)

	names, err = expr.Vars("12 * 3")
	require.NoError(t, err)
	assert.Empty(t, names)
}

// TestIsFunction covers the whitelist probe used by the UI layer.
func TestIsFunction(t *testing.T) {
	assert.True(t, expr.IsFunction("sqrt"))
	assert.False(t, expr.IsFunction("Shelf"))
}
