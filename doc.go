// Package paramesh keeps named scalar quantities and the mesh vertices
// that encode them mutually consistent — change one parameter, and every
// formula and geometric edge that depends on it is re-derived until the
// whole design reaches a stable fixed point.
//
// 🚀 What is paramesh?
//
//	A synchronous, in-memory engine for parametric volume/furniture design:
//		• Expression evaluator: safe arithmetic over named variables (no eval)
//		• Variable store: W/H/D built-ins + custom parameters + edge labels
//		• Edge registry: user-selected mesh edges with labels and formulas
//		• Convergence engine: bounded fixed-point iteration with cycle detection
//		• Geometry mutator: clone-and-rewrite vertex relocation with fresh
//		  bounds and normals
//
// ✨ Why choose paramesh?
//
//   - Closed failure taxonomy – every bad formula degrades to "keep the last
//     good value and continue"; nothing in the core panics or blocks
//   - Deterministic – same inputs and options produce the same meshes,
//     values, and warnings
//   - Pure Go core – the rendering layer and the boolean/meshing kernel stay
//     behind mesh-buffer boundaries
//   - Injectable – caller-owned stores, loggers, and unit converters; no
//     hidden global state
//
// Under the hood, everything is organized per concern:
//
//	expr/       — formula lexer, parser, and evaluator (whitelisted functions)
//	vars/       — name→value scope with strict identifier validation
//	edges/      — registry of measurable, parametrically-controlled edges
//	units/      — display-unit ↔ base-unit conversion boundary
//	mesh/       — vertex/index buffers, bounds, normals, vertex relocation
//	converge/   — the recalculation loop: sync, evaluate, move, re-measure
//	primitives/ — deterministic box/panel mesh factories for tests & demos
//
// Quick ASCII example:
//
//	    W────────┐            formula "W/2"
//	    │  panel │   shelf ───────────────▶ tracks half the cabinet width
//	    └────────┘
//
// Dive into examples/ for full propagation scenarios, and into each
// package's doc.go for contracts, tolerances, and error policies.
//
//	go get github.com/katalvlaran/paramesh
package paramesh
