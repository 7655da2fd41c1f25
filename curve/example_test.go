package curve_test

import (
	"fmt"

	"github.com/katalvlaran/bladegen/curve"
)

// ExamplePolynomial shows ascending-order coefficients.
func ExamplePolynomial() {
	p := curve.Polynomial{1, 0, 3, 0} // 1 + 3t²

	fmt.Println(p)
	fmt.Println(p.Degree())
	fmt.Println(p.Eval(2))

	// Output:
	// 1 + 3·t^2
	// 2
	// 13
}

// ExampleNewPiecewise splits a function at t = 0.5.
func ExampleNewPiecewise() {
	pw, err := curve.NewPiecewise(
		[]curve.Func{curve.Polynomial{0, 2}, curve.Polynomial{2, -2}},
		[]float64{0.5},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(pw.Eval(0.25), pw.Eval(0.5), pw.Eval(0.75))

	// Output:
	// 0.5 1 0.5
}
