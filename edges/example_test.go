package edges_test

import (
	"fmt"

	"github.com/katalvlaran/paramesh/edges"
	"github.com/katalvlaran/paramesh/mesh"
	"github.com/katalvlaran/paramesh/units"
)

// ExampleRegistry demonstrates the tracking lifecycle of one picked edge:
// mint a Line from its endpoints, register it, give it a label, and look
// it up again.
func ExampleRegistry() {
	reg := edges.NewRegistry()

	// The picking layer reports a 500 mm edge on the cabinet carcass.
	line := edges.NewLine("cabinet", 3,
		mesh.Vec3{X: 0, Y: 0, Z: 0},
		mesh.Vec3{X: 500, Y: 0, Z: 0},
		units.Identity(),
	)
	if err := reg.Add(line); err != nil {
		fmt.Println("add:", err)
		return
	}

	// The user names it so formulas can reference it.
	if err := reg.UpdateLabel(line.ID, "Plinth"); err != nil {
		fmt.Println("label:", err)
		return
	}

	got, err := reg.Get(line.ID)
	if err != nil {
		fmt.Println("get:", err)
		return
	}
	fmt.Printf("tracked edges:  %d\n", reg.Len())
	fmt.Printf("label in use:   %v\n", reg.HasLabel("Plinth"))
	fmt.Printf("measured value: %.0f mm\n", got.Value)
	// Output:
	// tracked edges:  1
	// label in use:   true
	// measured value: 500 mm
}
