// Package mesh defines the vertex/index buffer representation shared by the
// whole engine, together with the geometry mutator: a clone-and-rewrite
// operation that relocates matching vertices and recomputes derived mesh
// attributes (bounding box, vertex normals) in one batch.
//
// Contracts:
//
//   - A Mesh is owned by exactly one party at a time. ApplyVertexMoves never
//     mutates its receiver; it returns a fresh deep clone with the moves
//     applied, so callers may keep the original for diffing or undo.
//   - Vertex matching is positional: a vertex matches a move's Old position
//     when every coordinate differs by at most MatchTolerance. All duplicated
//     positions (shared corners of adjacent faces) relocate together.
//   - Topology is preserved: the returned mesh has the same vertex count and
//     index buffer as the input; only coordinates, bounds, and normals change.
//
// All coordinates are in the shape's local space, expressed in the base
// length unit (see package units for the display boundary).
package mesh
