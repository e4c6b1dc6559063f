// SPDX-License-Identifier: MIT
// Package: paramesh/primitives
//
// api.go - thin public entry-points for the primitives package.
//
// Design contract (strict):
//   - One orchestrator: BuildMesh(opts, cons...). Creates the mesh, resolves
//     the config, runs constructors in order, recomputes derived attributes.
//   - Factories are declared and implemented in impl_*.go; each documents
//     its exact vertex order (the stability contract edge picking needs).
//   - Determinism: same constructors/options/order ⇒ identical buffers.
//   - Safety: never panic; sentinel errors only.

package primitives

import (
	"fmt"

	"github.com/katalvlaran/paramesh/mesh"
)

// Constructor appends one primitive's vertices and triangles to m using the
// resolved config. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit vertices and indices in the documented, stable order.
//   - Leave derived attributes (bounds, normals) to the orchestrator.
type Constructor func(m *mesh.Mesh, cfg config) error

// BuildMesh creates a mesh, resolves opts, and applies all constructors in
// order. Any constructor error is wrapped with "BuildMesh: %w" and returned
// immediately; no partial cleanup is attempted by design.
//
// Complexity: O(len(opts)) resolution + Σ cost of each constructor + one
// O(V + T) recompute of bounds and normals.
func BuildMesh(opts []Option, cons ...Constructor) (*mesh.Mesh, error) {
	cfg := newConfig(opts...)
	m := &mesh.Mesh{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMesh: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMesh: %w", err)
		}
	}
	m.Recompute()

	return m, nil
}
