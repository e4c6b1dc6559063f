// Package converge input/output types, options, warnings, sentinel errors.
package converge

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/paramesh/edges"
	"github.com/katalvlaran/paramesh/mesh"
	"github.com/katalvlaran/paramesh/units"
)

// Sentinel errors for recalculation.
var (
	// ErrBadOptions indicates MaxIterations < 1 or Tolerance <= 0.
	ErrBadOptions = errors.New("converge: invalid options")
)

// Default option values.
const (
	// DefaultMaxIterations caps the fixed-point loop.
	DefaultMaxIterations = 10
	// DefaultTolerance is the convergence and cycle-match tolerance, in
	// display units.
	DefaultTolerance = 0.01
)

// Dimensions are the current base box dimensions, in base length units.
type Dimensions struct {
	W, H, D float64
}

// Parameter is one user-defined named value driven by a formula.
//
// Result is the last evaluated value; nil means the parameter has never
// been evaluated successfully. Only Recalculate writes Result.
type Parameter struct {
	// ID identifies the parameter record; stable across recalculations.
	ID string
	// Name is the variable name the user assigned.
	Name string
	// Formula is the value expression; may reference other variables.
	Formula string
	// Result is the last evaluated numeric result, nil if none yet.
	Result *float64
}

// Input is the complete state one convergence pass operates on. The engine
// never mutates it: parameters, edges, and meshes are copied or cloned
// before any write.
type Input struct {
	// Dims are the current base dimensions, in base units.
	Dims Dimensions
	// Parameters are the custom parameters, in user-defined order.
	Parameters []Parameter
	// Edges are the registered edge lines (see edges.Registry.Lines).
	Edges []edges.Line
	// Meshes maps shape id to that shape's current mesh, base units.
	Meshes map[string]*mesh.Mesh
	// Units converts between formula/display values and base-unit
	// geometry. Zero value falls back to units.Identity().
	Units units.Converter
}

// WarnKind classifies a recoverable condition reported by Recalculate.
type WarnKind int

const (
	// WarnFormula — a formula failed to evaluate (syntax, unknown name,
	// non-finite, negative, or non-positive edge length); the previous
	// value was kept.
	WarnFormula WarnKind = iota
	// WarnCycle — a circular dependency was detected for an edge; the edge
	// was frozen at its last stable value for the rest of the pass.
	WarnCycle
	// WarnMaxIterations — the pass hit the iteration cap before reaching a
	// fixed point; the best current state was returned.
	WarnMaxIterations
	// WarnShadowedBuiltin — a parameter name or edge label collides with a
	// built-in dimension variable; the built-in value won.
	WarnShadowedBuiltin
	// WarnMissingMesh — an edge references a shape id with no mesh; the
	// edge was skipped.
	WarnMissingMesh
)

// String returns a stable identifier for k, used in logs and UI surfaces.
func (k WarnKind) String() string {
	switch k {
	case WarnFormula:
		return "formula"
	case WarnCycle:
		return "circular-dependency"
	case WarnMaxIterations:
		return "reached-maximum-iterations"
	case WarnShadowedBuiltin:
		return "shadowed-builtin"
	case WarnMissingMesh:
		return "missing-mesh"
	default:
		return "unknown"
	}
}

// Warning is one structured recoverable condition from a pass. Callers
// surface these to the user ("formulas did not fully stabilize") instead of
// treating them as errors.
type Warning struct {
	// Kind classifies the condition.
	Kind WarnKind
	// EdgeID names the affected edge, when edge-scoped.
	EdgeID string
	// Name is the affected variable/parameter name or edge label, if any.
	Name string
	// Detail is a human-readable explanation.
	Detail string
}

// Result is the explicit diff of one convergence pass: updated records plus
// replacement meshes for exactly the shapes whose geometry changed. Callers
// decide how to propagate it; nothing relies on reference identity.
type Result struct {
	// Parameters are the updated parameter records, same order as Input.
	Parameters []Parameter
	// Edges are the updated edge records, same order as Input.
	Edges []edges.Line
	// Meshes holds a replacement mesh per shape whose geometry changed;
	// untouched shapes are absent. Ownership transfers to the caller.
	Meshes map[string]*mesh.Mesh
	// Warnings are the recoverable conditions encountered, in order.
	Warnings []Warning
	// Iterations is the number of loop iterations executed.
	Iterations int
}

// Options configures one recalculation pass.
//
// Fields:
//   - MaxIterations — fixed-point loop cap (≥ 1); reaching it is a soft
//     failure reported as WarnMaxIterations.
//   - Tolerance     — convergence and cycle-match tolerance in display
//     units (> 0).
//   - Logger        — destination for warning logs; nil means zap.NewNop().
//
// Example:
//
//	opts := converge.DefaultOptions()
//	opts.Logger = logger
//	res, err := converge.Recalculate(in, &opts)
type Options struct {
	MaxIterations int
	Tolerance     float64
	Logger        *zap.Logger
}

// DefaultOptions returns the canonical option values (cap 10, tolerance
// 0.01, no-op logger).
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Logger:        zap.NewNop(),
	}
}
