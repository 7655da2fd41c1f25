// Package matrix is the small dense linear-algebra kernel behind the blade
// pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning At/Set and a
//     finite-value guard.
//   - Vector, the single-column operand of MatVec and Solve.
//   - Mul, MatVec, Transpose, Scale, Divide and AllClose.
//   - Cofactor kernels: Submatrix, Minor, Cofactor, Det (Laplace expansion
//     along the first row), Adjugate, Inverse (adjugate / determinant) and
//     Solve (inverse · rhs).
//
// The cofactor path is exponential in n and is meant for the systems that
// interpolation and airfoil thickness matching produce (n ≤ 8). Singular input
// is reported as ErrSingular; there is no pivoting.
//
//	A, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 3}})
//	x, err := matrix.Solve(A, matrix.Vector{3, 5})
//	// x ≈ [0.8 1.4]
package matrix
