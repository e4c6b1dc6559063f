package mesh

import "math"

// ApplyVertexMoves — batched vertex relocation
//
// Description:
//
//	Produces a new mesh in which every vertex whose position matches a
//	move's Old position (within MatchTolerance on all three axes) is
//	overwritten with that move's New position. The receiver is never
//	mutated; callers may still hold it for undo or diffing.
//
// Algorithm Outline:
//  1. Deep-clone the receiver (vertices, indices, normals, bounds).
//  2. For each cloned vertex, scan moves in order; first match wins and
//     the vertex is rewritten.
//  3. After all moves are applied, recompute bounds and vertex normals
//     once for the whole mesh — batched, never per-move, so intermediate
//     normals are never observed.
//
// Complexity:
//
//	Time   = O(V·M + V + T) for V vertices, M moves, T triangles
//	Memory = O(V + T) for the clone
//
// A nil receiver or an empty move list returns the clone unchanged.
func (m *Mesh) ApplyVertexMoves(moves []VertexMove) *Mesh {
	clone := m.Clone()
	if clone == nil || len(moves) == 0 {
		return clone
	}

	var moved bool
	for i := range clone.Vertices {
		for j := range moves {
			if clone.Vertices[i].AlmostEqual(moves[j].Old, MatchTolerance) {
				clone.Vertices[i] = moves[j].New
				moved = true
				break
			}
		}
	}
	if moved {
		clone.Recompute()
	}

	return clone
}

// Clone returns a deep copy of the mesh: vertex, index, and normal buffers
// are freshly allocated; the bounding box is copied by value.
// Complexity: O(V + T).
func (m *Mesh) Clone() *Mesh {
	if m == nil {
		return nil
	}
	clone := &Mesh{
		Vertices: make([]Vec3, len(m.Vertices)),
		Indices:  make([]uint32, len(m.Indices)),
		Normals:  make([]Vec3, len(m.Normals)),
		Bounds:   m.Bounds,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Indices, m.Indices)
	copy(clone.Normals, m.Normals)

	return clone
}

// Recompute refreshes the derived attributes of the mesh in place:
// the axis-aligned bounding box and the area-weighted vertex normals.
// Index entries referencing missing vertices are skipped rather than
// panicking; degenerate triangles contribute nothing to the normals.
// Complexity: O(V + T).
func (m *Mesh) Recompute() {
	if m == nil || len(m.Vertices) == 0 {
		return
	}

	// Bounds: running min/max over the vertex buffer.
	bounds := Box{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		bounds.Min.X = math.Min(bounds.Min.X, v.X)
		bounds.Min.Y = math.Min(bounds.Min.Y, v.Y)
		bounds.Min.Z = math.Min(bounds.Min.Z, v.Z)
		bounds.Max.X = math.Max(bounds.Max.X, v.X)
		bounds.Max.Y = math.Max(bounds.Max.Y, v.Y)
		bounds.Max.Z = math.Max(bounds.Max.Z, v.Z)
	}
	m.Bounds = bounds

	// Normals: accumulate the unnormalized face normal (cross product, whose
	// magnitude is twice the triangle area) onto each corner vertex, then
	// normalize. Larger faces therefore weigh more, matching renderer
	// expectations for flat furniture panels.
	normals := make([]Vec3, len(m.Vertices))
	n := uint32(len(m.Vertices))
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		if a >= n || b >= n || c >= n {
			continue
		}
		face := m.Vertices[b].Sub(m.Vertices[a]).Cross(m.Vertices[c].Sub(m.Vertices[a]))
		normals[a] = normals[a].Add(face)
		normals[b] = normals[b].Add(face)
		normals[c] = normals[c].Add(face)
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	m.Normals = normals
}

// ClosestVertex returns the index and position of the mesh vertex nearest to
// p. Used by the convergence loop to re-attach an edge endpoint after other
// edges have rewritten the shape's geometry.
// Returns index -1 and ErrEmptyMesh when the mesh is nil or has no vertices.
// Complexity: O(V).
func (m *Mesh) ClosestVertex(p Vec3) (int, Vec3, error) {
	if m == nil || len(m.Vertices) == 0 {
		return -1, Vec3{}, ErrEmptyMesh
	}
	best := 0
	bestDist := m.Vertices[0].Distance(p)
	for i := 1; i < len(m.Vertices); i++ {
		if d := m.Vertices[i].Distance(p); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best, m.Vertices[best], nil
}
