package airfoil_test

import (
	"fmt"

	"github.com/katalvlaran/bladegen/airfoil"
)

// ExampleNew builds a section and samples its boundaries and centroid.
func ExampleNew() {
	s, err := airfoil.New(airfoil.Params{
		Chord: 1, Camber: 0, CamberLoc: 0.4,
		Thickness: 0.12, ThicknessLoc: 0.3,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	top, bottom := s.Upper(0.3), s.Lower(0.3)
	fmt.Printf("upper(0.3) = (%.3f, %.3f)\n", top.U, top.W)
	fmt.Printf("lower(0.3) = (%.3f, %.3f)\n", bottom.U, bottom.W)

	u, _, err := s.Centroid()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("centroid u = %.4f\n", u)

	// Output:
	// upper(0.3) = (0.300, 0.120)
	// lower(0.3) = (0.300, -0.120)
	// centroid u = 0.3931
}
