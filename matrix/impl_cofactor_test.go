// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/bladegen/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestDetKnownValues covers the 1×1 scalar rule, the 2×2/3×3 closed forms and
// an upper-triangular 4×4 whose determinant is the diagonal product.
func TestDetKnownValues(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-7.5}}, -7.5},
		{"2x2", [][]float64{{4, 6}, {3, 8}}, 14},
		{"3x3", [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"4x4-triangular", [][]float64{{2, 3, 1, 5}, {0, 4, 2, 1}, {0, 0, 3, 7}, {0, 0, 0, 0.5}}, 12},
		{"zero-leading-row-entry", [][]float64{{0, 2, 0}, {1, 0, 3}, {4, 5, 6}}, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := matrix.Det(mustRows(t, tc.rows))
			require.NoError(t, err)
			require.InDelta(t, tc.want, d, tol)
		})
	}
}

// TestDetNonSquare ensures non-square input is rejected by every cofactor kernel.
func TestDetNonSquare(t *testing.T) {
	m := mustDense(t, 2, 3)

	_, err := matrix.Det(m)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Adjugate(m)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Inverse(m)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Solve(m, matrix.Vector{1, 2})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Det(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSubmatrixMinorCofactor checks strike order and the checkerboard sign.
func TestSubmatrixMinorCofactor(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})

	sub, err := matrix.Submatrix(m, 1, 0)
	require.NoError(t, err)
	require.Equal(t, "[2, 3]\n[8, 10]\n", sub.String())

	minor, err := matrix.Minor(m, 1, 0)
	require.NoError(t, err)
	require.InDelta(t, -4.0, minor, tol) // 2*10 - 3*8

	cof, err := matrix.Cofactor(m, 1, 0)
	require.NoError(t, err)
	require.InDelta(t, 4.0, cof, tol) // (-1)^(1+0) flips the sign

	_, err = matrix.Submatrix(m, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Submatrix(mustDense(t, 1, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAdjugate checks the transpose-of-cofactors layout and the 1×1 convention.
func TestAdjugate(t *testing.T) {
	adj, err := matrix.Adjugate(mustRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	require.Equal(t, "[4, -2]\n[-3, 1]\n", adj.String())

	one, err := matrix.Adjugate(mustRows(t, [][]float64{{5}}))
	require.NoError(t, err)
	require.Equal(t, "[1]\n", one.String())
}

// TestInverseTimesSelfIsIdentity checks A·A⁻¹ = I for seeded dominant systems.
func TestInverseTimesSelfIsIdentity(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			A := mustDense(t, n, n)
			fillDominant(t, A, int64(100+n))

			inv, err := matrix.Inverse(A)
			require.NoError(t, err)
			prod, err := matrix.Mul(A, inv)
			require.NoError(t, err)
			id, err := matrix.NewIdentity(n)
			require.NoError(t, err)

			ok, err := matrix.AllClose(prod, id, 0, tol)
			require.NoError(t, err)
			assert.True(t, ok, "A·A⁻¹ != I:\n%s", prod)
		})
	}
}

// TestSolveRoundTrip checks Solve(A, A·x) ≈ x and agreement with gonum's
// independent LU solver for every size the pipeline uses.
func TestSolveRoundTrip(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			A := mustDense(t, n, n)
			fillDominant(t, A, int64(n))
			x := randVec(n, int64(42+n))

			b, err := matrix.MatVec(A, x)
			require.NoError(t, err)

			got, err := matrix.Solve(A, b)
			require.NoError(t, err)
			require.InDeltaSlice(t, []float64(x), []float64(got), tol)

			// Oracle: gonum's LU-based solve on the same data.
			raw := make([]float64, 0, n*n)
			for i := 0; i < n; i++ {
				row, err := A.Row(i)
				require.NoError(t, err)
				raw = append(raw, row...)
			}
			var want mat.VecDense
			require.NoError(t, want.SolveVec(mat.NewDense(n, n, raw), mat.NewVecDense(n, b.Clone())))
			for i := 0; i < n; i++ {
				require.InDelta(t, want.AtVec(i), got[i], tol)
			}
		})
	}
}

// TestSolveSingular ensures duplicate rows are reported as ErrSingular.
func TestSolveSingular(t *testing.T) {
	A := mustRows(t, [][]float64{{1, 2, 3}, {2, 4, 6}, {0, 1, 1}})

	_, err := matrix.Solve(A, matrix.Vector{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.Contains(t, err.Error(), "Solve")
}

// TestSolveRhsValidation checks length and finiteness of the right-hand side.
func TestSolveRhsValidation(t *testing.T) {
	A := mustRows(t, [][]float64{{1, 0}, {0, 1}})

	_, err := matrix.Solve(A, matrix.Vector{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Solve(A, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Solve(A, matrix.Vector{math.NaN(), 1})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCofactorKernelsAcceptAnyMatrix checks the non-*Dense path gives identical results.
func TestCofactorKernelsAcceptAnyMatrix(t *testing.T) {
	A := mustDense(t, 4, 4)
	fillDominant(t, A, 7)

	want, err := matrix.Det(A)
	require.NoError(t, err)
	got, err := matrix.Det(hide{A})
	require.NoError(t, err)
	require.Equal(t, want, got)
}
