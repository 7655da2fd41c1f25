package export_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/bladegen/blade"
	"github.com/katalvlaran/bladegen/export"
)

// ExampleWriteCSV writes a one-section, one-point surface.
func ExampleWriteCSV() {
	s := &blade.Surface{
		Upper: [][]blade.Point3{{{X: 0.1, Y: 0.02, Z: 0.005}}},
		Lower: [][]blade.Point3{{{X: 0.1, Y: 0.018, Z: -0.005}}},
	}
	if err := export.WriteCSV(os.Stdout, s); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// surface,section,point,x,y,z
	// upper,0,0,0.1,0.02,0.005
	// lower,0,0,0.1,0.018,-0.005
}
