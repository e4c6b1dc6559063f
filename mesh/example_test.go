package mesh_test

import (
	"fmt"

	"github.com/katalvlaran/paramesh/mesh"
)

// ExampleMesh_ApplyVertexMoves demonstrates the clone-and-rewrite
// contract: the engine relocates every vertex matching a move's old
// position and hands back a new mesh; the original is untouched.
func ExampleMesh_ApplyVertexMoves() {
	m := &mesh.Mesh{
		Vertices: []mesh.Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: 500, Y: 0, Z: 0},
			{X: 0, Y: 720, Z: 0},
		},
		Indices: []uint32{0, 1, 2},
	}
	m.Recompute()

	// Shorten the bottom edge: 500 mm becomes 250 mm.
	moved := m.ApplyVertexMoves([]mesh.VertexMove{
		{Old: mesh.Vec3{X: 500, Y: 0, Z: 0}, New: mesh.Vec3{X: 250, Y: 0, Z: 0}},
	})

	fmt.Printf("moved vertex:    (%.0f, %.0f, %.0f)\n",
		moved.Vertices[1].X, moved.Vertices[1].Y, moved.Vertices[1].Z)
	fmt.Printf("new bounds max:  %.0f mm wide\n", moved.Bounds.Max.X)
	fmt.Printf("original intact: %.0f mm wide\n", m.Bounds.Max.X)
	// Output:
	// moved vertex:    (250, 0, 0)
	// new bounds max:  250 mm wide
	// original intact: 500 mm wide
}
