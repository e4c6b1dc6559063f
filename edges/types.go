// Package edges core types and sentinel errors.
package edges

import (
	"errors"

	"github.com/google/uuid"

	"github.com/katalvlaran/paramesh/mesh"
	"github.com/katalvlaran/paramesh/units"
)

// Sentinel errors for registry operations.
var (
	// ErrDuplicateID indicates an Add with an ID already present.
	ErrDuplicateID = errors.New("edges: duplicate edge id")
	// ErrLineNotFound indicates an operation referenced a missing edge id.
	ErrLineNotFound = errors.New("edges: edge not found")
)

// Line is one user-selected edge.
//
// Identity is ID; it never changes once minted. Start and End are rewritten
// by the convergence engine after a successful update, and Value (display
// units) is always kept consistent with them.
type Line struct {
	// ID uniquely identifies this edge across recalculations.
	ID string

	// ShapeID names the shape whose mesh contains this edge; all edges with
	// the same ShapeID are updated together in one cloned mesh.
	ShapeID string

	// EdgeIndex is the index of this edge within the shape's topology, as
	// reported by the picking layer.
	EdgeIndex int

	// Label is the optional user-assigned variable name. Empty means the
	// edge is measured but not referenced by formulas.
	Label string

	// Formula is the optional arithmetic expression driving this edge's
	// length. Empty means the edge is measurement-only.
	Formula string

	// Value is the current length in display units.
	Value float64

	// Start and End are the endpoint coordinates in the shape's local
	// space, base units.
	Start, End mesh.Vec3
}

// NewLine mints a Line for a freshly picked edge: a new uuid identity and a
// Value measured from the endpoints through the supplied converter.
func NewLine(shapeID string, edgeIndex int, start, end mesh.Vec3, conv units.Converter) Line {
	return Line{
		ID:        uuid.NewString(),
		ShapeID:   shapeID,
		EdgeIndex: edgeIndex,
		Value:     conv.ToDisplay(start.Distance(end)),
		Start:     start,
		End:       end,
	}
}
