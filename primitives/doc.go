// SPDX-License-Identifier: MIT
// Package: paramesh/primitives
//
// Package primitives builds deterministic triangle meshes for the box-like
// shapes the design tool works with: cuboids, panels, and bars. In
// production the boolean/meshing kernel produces these buffers; tests,
// examples, and offline tooling use this package as a drop-in stand-in for
// that kernel boundary (createPrimitive → triangulate), so the convergence
// engine can be exercised without any native dependency.
//
// Design contract (strict):
//   - One orchestrator: BuildMesh(opts, cons...). Creates an empty mesh,
//     resolves options into an immutable config, applies constructors in
//     order, recomputes derived attributes once at the end.
//   - Determinism: the same constructors, order, and options always produce
//     byte-identical vertex and index buffers — vertex order is documented
//     per constructor and is part of the contract (edge picking relies on
//     stable positions).
//   - Safety: constructors never panic; invalid dimensions return sentinel
//     errors (errors.Is against ErrBadDimension and friends).
//
// All dimensions are in base length units; meshes come out with bounds and
// area-weighted vertex normals already computed.
package primitives
