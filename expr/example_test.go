package expr_test

import (
	"fmt"

	"github.com/katalvlaran/paramesh/expr"
)

// ExampleEvaluate shows a shelf formula evaluated against the current
// cabinet dimensions.
func ExampleEvaluate() {
	scope := map[string]float64{
		"W": 500, // cabinet width, display units
		"H": 720, // cabinet height
	}

	v, err := expr.Evaluate("min(W, H)/2 + 10", scope)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.2f\n", v)
	// Output:
	// 260.00
}

// ExampleVars lists the variables a formula depends on, for dependency
// display in the parameter panel.
func ExampleVars() {
	names, _ := expr.Vars("max(Shelf, W/2) - Inset")
	fmt.Println(names)
	// Output:
	// [Shelf W Inset]
}
