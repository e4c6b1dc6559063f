package converge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/paramesh/converge"
	"github.com/katalvlaran/paramesh/mesh"
)

// TestDominantAxis pins the tie-break order: y beats x beats z.
func TestDominantAxis(t *testing.T) {
	cases := []struct {
		name  string
		delta mesh.Vec3
		want  converge.Axis
	}{
		{"pure x", mesh.Vec3{X: 5}, converge.AxisX},
		{"pure y", mesh.Vec3{Y: 5}, converge.AxisY},
		{"pure z", mesh.Vec3{Z: 5}, converge.AxisZ},
		{"negative counts by magnitude", mesh.Vec3{X: -9, Y: 2}, converge.AxisX},
		{"x/y tie goes to y", mesh.Vec3{X: 3, Y: 3}, converge.AxisY},
		{"y/z tie goes to y", mesh.Vec3{Y: 3, Z: 3}, converge.AxisY},
		{"x/z tie goes to x", mesh.Vec3{X: 3, Z: 3}, converge.AxisX},
		{"all equal goes to y", mesh.Vec3{X: 1, Y: 1, Z: 1}, converge.AxisY},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, converge.DominantAxis(tc.delta))
		})
	}
}

// TestAnchorVertices pins the per-axis anchoring rules, including the
// deliberate x asymmetry: along x the higher-coordinate endpoint is the
// anchor, along y and z the lower one is.
func TestAnchorVertices(t *testing.T) {
	cases := []struct {
		name          string
		start, end    mesh.Vec3
		wantFixed     mesh.Vec3
		wantMovingEnd bool
	}{
		{
			name:  "x edge: higher-x endpoint fixed",
			start: mesh.Vec3{X: 0}, end: mesh.Vec3{X: 500},
			wantFixed: mesh.Vec3{X: 500}, wantMovingEnd: false,
		},
		{
			name:  "x edge reversed: still higher-x fixed",
			start: mesh.Vec3{X: 500}, end: mesh.Vec3{X: 0},
			wantFixed: mesh.Vec3{X: 500}, wantMovingEnd: true,
		},
		{
			name:  "y edge: lower-y endpoint fixed",
			start: mesh.Vec3{Y: 0}, end: mesh.Vec3{Y: 720},
			wantFixed: mesh.Vec3{Y: 0}, wantMovingEnd: true,
		},
		{
			name:  "y edge reversed",
			start: mesh.Vec3{Y: 720}, end: mesh.Vec3{Y: 0},
			wantFixed: mesh.Vec3{Y: 0}, wantMovingEnd: false,
		},
		{
			name:  "z edge: lower-z endpoint fixed",
			start: mesh.Vec3{Z: 0}, end: mesh.Vec3{Z: 300},
			wantFixed: mesh.Vec3{Z: 0}, wantMovingEnd: true,
		},
		{
			name:  "z edge reversed",
			start: mesh.Vec3{Z: 300}, end: mesh.Vec3{Z: 0},
			wantFixed: mesh.Vec3{Z: 0}, wantMovingEnd: false,
		},
		{
			name:  "diagonal anchors by dominant axis",
			start: mesh.Vec3{X: 10, Y: 100, Z: 5}, end: mesh.Vec3{X: 40, Y: 0, Z: 5},
			wantFixed: mesh.Vec3{X: 40, Y: 0, Z: 5}, wantMovingEnd: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fixed, moving, movingEnd := converge.AnchorVertices(tc.start, tc.end)
			assert.Equal(t, tc.wantFixed, fixed)
			assert.Equal(t, tc.wantMovingEnd, movingEnd)
			if movingEnd {
				assert.Equal(t, tc.end, moving)
			} else {
				assert.Equal(t, tc.start, moving)
			}
		})
	}
}

// TestAxisString covers the Stringer.
func TestAxisString(t *testing.T) {
	assert.Equal(t, "x", converge.AxisX.String())
	assert.Equal(t, "y", converge.AxisY.String())
	assert.Equal(t, "z", converge.AxisZ.String())
}
