// Package mesh core types: Vec3, Box, Mesh, VertexMove, sentinel errors.
package mesh

import (
	"errors"
	"math"
)

// MatchTolerance is the per-axis tolerance used when matching a mesh vertex
// against a VertexMove's Old position. It mirrors the engine-wide convergence
// tolerance: positions closer than this are the same point.
const MatchTolerance = 0.01

// Sentinel errors for mesh operations.
var (
	// ErrEmptyMesh indicates an operation on a mesh with no vertices.
	ErrEmptyMesh = errors.New("mesh: mesh has no vertices")
	// ErrBadIndex indicates an index buffer entry referencing a missing vertex.
	ErrBadIndex = errors.New("mesh: index out of vertex range")
)

// Vec3 is a point or direction in the shape's local space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product v·o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v×o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Distance returns the Euclidean distance between v and o.
func (v Vec3) Distance(o Vec3) float64 { return v.Sub(o).Length() }

// Normalize returns v scaled to unit length, or the zero vector when v is
// shorter than the smallest meaningful length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < 1e-12 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// AlmostEqual reports whether every coordinate of v is within eps of o.
func (v Vec3) AlmostEqual(o Vec3, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps &&
		math.Abs(v.Y-o.Y) <= eps &&
		math.Abs(v.Z-o.Z) <= eps
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vec3
}

// Size returns the extents of b along each axis.
func (b Box) Size() Vec3 { return b.Max.Sub(b.Min) }

// Center returns the midpoint of b.
func (b Box) Center() Vec3 { return b.Min.Add(b.Max).Scale(0.5) }

// VertexMove instructs the mutator to relocate every vertex matching Old
// (within MatchTolerance per axis) to New.
type VertexMove struct {
	Old Vec3
	New Vec3
}

// Mesh is a triangle mesh: a vertex buffer, an index buffer (triples of
// vertex indices), per-vertex normals, and a cached bounding box.
//
// Normals and Bounds are derived data; Recompute refreshes both after any
// coordinate change. Indices length is always a multiple of three.
type Mesh struct {
	Vertices []Vec3
	Indices  []uint32
	Normals  []Vec3
	Bounds   Box
}
