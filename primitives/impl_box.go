// SPDX-License-Identifier: MIT
// Package: paramesh/primitives
//
// impl_box.go — cuboid-family constructors: Box, Panel, Bar.

package primitives

import (
	"fmt"

	"github.com/katalvlaran/paramesh/mesh"
)

// Box builds a w×h×d cuboid with its minimum corner at the config origin:
// width along x, height along y, depth along z.
//
// Vertex order (stable contract, origin-relative):
//
//	0:(0,0,0) 1:(w,0,0) 2:(w,h,0) 3:(0,h,0)   — back face, z = 0
//	4:(0,0,d) 5:(w,0,d) 6:(w,h,d) 7:(0,h,d)   — front face, z = d
//
// Twelve triangles, outward counter-clockwise winding, emitted face by
// face: front, back, left, right, bottom, top.
//
// Complexity: O(1) — 8 vertices + 36 indices.
func Box(w, h, d float64) Constructor {
	return func(m *mesh.Mesh, cfg config) error {
		if w <= 0 || h <= 0 || d <= 0 {
			return fmt.Errorf("Box(%g, %g, %g): %w", w, h, d, ErrBadDimension)
		}

		base := uint32(len(m.Vertices))
		o := cfg.origin
		m.Vertices = append(m.Vertices,
			mesh.Vec3{X: o.X, Y: o.Y, Z: o.Z},
			mesh.Vec3{X: o.X + w, Y: o.Y, Z: o.Z},
			mesh.Vec3{X: o.X + w, Y: o.Y + h, Z: o.Z},
			mesh.Vec3{X: o.X, Y: o.Y + h, Z: o.Z},
			mesh.Vec3{X: o.X, Y: o.Y, Z: o.Z + d},
			mesh.Vec3{X: o.X + w, Y: o.Y, Z: o.Z + d},
			mesh.Vec3{X: o.X + w, Y: o.Y + h, Z: o.Z + d},
			mesh.Vec3{X: o.X, Y: o.Y + h, Z: o.Z + d},
		)

		for _, tri := range [][3]uint32{
			{4, 5, 6}, {4, 6, 7}, // front  z = d
			{1, 0, 3}, {1, 3, 2}, // back   z = 0
			{0, 4, 7}, {0, 7, 3}, // left   x = 0
			{5, 1, 2}, {5, 2, 6}, // right  x = w
			{0, 1, 5}, {0, 5, 4}, // bottom y = 0
			{3, 7, 6}, {3, 6, 2}, // top    y = h
		} {
			m.Indices = append(m.Indices, base+tri[0], base+tri[1], base+tri[2])
		}

		return nil
	}
}

// Panel builds a w×h board of the given thickness: a Box whose depth is the
// material thickness. Same vertex-order contract as Box.
func Panel(w, h, thickness float64) Constructor {
	return func(m *mesh.Mesh, cfg config) error {
		if thickness <= 0 {
			return fmt.Errorf("Panel(%g, %g, %g): %w", w, h, thickness, ErrBadDimension)
		}
		return Box(w, h, thickness)(m, cfg)
	}
}

// Bar builds a length×section×section strip along x. Same vertex-order
// contract as Box.
func Bar(length, section float64) Constructor {
	return func(m *mesh.Mesh, cfg config) error {
		if section <= 0 {
			return fmt.Errorf("Bar(%g, %g): %w", length, section, ErrBadDimension)
		}
		return Box(length, section, section)(m, cfg)
	}
}
