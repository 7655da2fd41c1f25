package interp_test

import (
	"fmt"

	"github.com/katalvlaran/bladegen/interp"
)

// ExampleFit fits the line through two points.
func ExampleFit() {
	p, err := interp.Fit([]float64{0, 2}, []float64{1, 5})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p)
	fmt.Println(p.Eval(1))

	// Output:
	// 1 + 2·t
	// 3
}

// ExampleLinspace samples five values on [0, 1].
func ExampleLinspace() {
	fmt.Println(interp.Linspace(0, 1, 5))

	// Output:
	// [0 0.25 0.5 0.75 1]
}
