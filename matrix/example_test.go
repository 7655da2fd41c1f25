package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/bladegen/matrix"
)

// ExampleSolve solves a 2×2 system through the adjugate inverse.
func ExampleSolve() {
	A, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 3}})

	x, err := matrix.Solve(A, matrix.Vector{3, 5})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("x = [%.1f %.1f]\n", x[0], x[1])

	// Output:
	// x = [0.8 1.4]
}

// ExampleAdjugate prints the adjugate and determinant of a 2×2 matrix.
func ExampleAdjugate() {
	A, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})

	adj, _ := matrix.Adjugate(A)
	det, _ := matrix.Det(A)
	fmt.Print(adj)
	fmt.Println("det =", det)

	// Output:
	// [4, -2]
	// [-3, 1]
	// det = -2
}
