package converge

import (
	"math"

	"github.com/katalvlaran/paramesh/mesh"
)

// Axis identifies the dominant local axis of an edge.
type Axis int

const (
	// AxisX — the edge mostly runs along local x.
	AxisX Axis = iota
	// AxisY — the edge mostly runs along local y.
	AxisY
	// AxisZ — the edge mostly runs along local z.
	AxisZ
)

// String returns the lowercase axis letter.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// DominantAxis returns the axis with the largest absolute component of
// delta. Ties are broken by checking y first, then x, then z — so a
// perfect diagonal in the xy plane is treated as a y edge.
func DominantAxis(delta mesh.Vec3) Axis {
	ax, ay, az := math.Abs(delta.X), math.Abs(delta.Y), math.Abs(delta.Z)
	switch {
	case ay >= ax && ay >= az:
		return AxisY
	case ax >= az:
		return AxisX
	default:
		return AxisZ
	}
}

// AnchorVertices is the fixed/moving endpoint policy: given an edge's
// endpoints it decides which one stays anchored and which one the engine
// relocates when the edge's formula produces a new length.
//
// Per-axis rule (pinned by tests, deliberately asymmetric to preserve the
// established resize behavior):
//   - dominant x: the endpoint with the HIGHER x coordinate is fixed;
//   - dominant y: the endpoint with the lower y coordinate is fixed;
//   - dominant z: the endpoint with the lower z coordinate is fixed.
//
// movingIsEnd reports whether the moving endpoint is the edge's End vertex
// (false means Start moves). The new moving position keeps the fixed→moving
// direction and rescales the distance to the new length.
func AnchorVertices(start, end mesh.Vec3) (fixed, moving mesh.Vec3, movingIsEnd bool) {
	switch DominantAxis(end.Sub(start)) {
	case AxisX:
		if start.X > end.X {
			return start, end, true
		}
		return end, start, false
	case AxisY:
		if start.Y < end.Y {
			return start, end, true
		}
		return end, start, false
	default:
		if start.Z < end.Z {
			return start, end, true
		}
		return end, start, false
	}
}
