// SPDX-License-Identifier: MIT

// Package matrix - cofactor kernels for tiny square systems.
//
// Purpose:
//   - Determinant by recursive Laplace expansion along the first row.
//   - Adjugate as the transpose of the cofactor matrix.
//   - Inverse = Adjugate / Det and Solve = Inverse · b.
//
// These kernels are exponential in n and intended for n ≤ 8 (interpolation
// and section-shape systems). There is no pivoting and no conditioning; the
// only failure signal is an exactly zero determinant (ErrSingular). Generated
// geometry must match adjugate arithmetic to the last bit, so this path is not
// interchangeable with a decomposition-based solver.
//
// Complexity quicksheet:
//   - Submatrix: O(n²); Det: O(n!); Adjugate/Inverse/Solve: O(n²·(n-1)!).

package matrix

import (
	"github.com/cockroachdb/errors"
)

// Submatrix returns a copy of m with row i and column j struck out.
//
// Implementation:
//   - Stage 1: validate m non-nil, at least 2×2, and (i,j) in range.
//   - Stage 2: copy every element whose row ≠ i and column ≠ j, preserving order.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (1-row or 1-col input), ErrOutOfRange.
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func Submatrix(m Matrix, i, j int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if _, err = d.indexOf(i, j); err != nil {
		return nil, matrixErrorf(opSubmatrix, denseErrorf(ctxAt, i, j, err))
	}
	if d.r < 2 || d.c < 2 {
		return nil, matrixErrorf(opSubmatrix, ErrInvalidDimensions)
	}

	return strike(d, i, j), nil
}

// strike is the unchecked core of Submatrix: callers guarantee d is at least
// 2×2 and (i,j) is in range.
func strike(d *Dense, i, j int) *Dense {
	out := &Dense{
		r:              d.r - 1,
		c:              d.c - 1,
		data:           make([]float64, (d.r-1)*(d.c-1)),
		validateNaNInf: d.validateNaNInf,
	}
	var row, col, k int
	for row = 0; row < d.r; row++ {
		if row == i {
			continue
		}
		for col = 0; col < d.c; col++ {
			if col == j {
				continue
			}
			out.data[k] = d.data[row*d.c+col]
			k++
		}
	}

	return out
}

// det is the unchecked recursive Laplace expansion along row 0.
func det(d *Dense) float64 {
	if d.r == 1 {
		return d.data[0]
	}
	if d.r == 2 {
		return d.data[0]*d.data[3] - d.data[1]*d.data[2]
	}

	sum := ZeroSum
	sign := 1.0
	for col := 0; col < d.c; col++ {
		if a := d.data[col]; a != 0 {
			sum += sign * a * det(strike(d, 0, col))
		}
		sign = -sign
	}

	return sum
}

// cofactor is the unchecked signed minor (-1)^(i+j) · det(strike(d,i,j)).
func cofactor(d *Dense, i, j int) float64 {
	minor := det(strike(d, i, j))
	if (i+j)%2 == 1 {
		return -minor
	}

	return minor
}

// Det returns the determinant of a square matrix.
//
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: 1×1 returns the scalar; otherwise Laplace expansion along the
//     first row, recursing on struck submatrices (2×2 closed form at the leaves).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func Det(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return det(d), nil
}

// Minor returns det(Submatrix(m, i, j)) for a square matrix of size ≥ 2.
// Errors: ErrNilMatrix, ErrNonSquare, ErrOutOfRange, ErrInvalidDimensions.
// Complexity: O((n-1)!).
func Minor(m Matrix, i, j int) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	sub, err := Submatrix(m, i, j)
	if err != nil {
		return 0, matrixErrorf(opMinor, err)
	}

	return det(sub), nil
}

// Cofactor returns (-1)^(i+j) · Minor(m, i, j).
// Errors: as Minor.
// Complexity: O((n-1)!).
func Cofactor(m Matrix, i, j int) (float64, error) {
	minor, err := Minor(m, i, j)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if (i+j)%2 == 1 {
		return -minor, nil
	}

	return minor, nil
}

// Adjugate returns the transpose of the cofactor matrix of m.
//
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: 1×1 yields [[1]] (empty minor has determinant 1).
//   - Stage 3: adj[j][i] = cofactor(i, j) for all (i, j).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n²·(n-1)!), Space O(n²).
func Adjugate(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	n := d.r
	adj, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	if n == 1 {
		adj.data[0] = 1

		return adj, nil
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			adj.data[j*n+i] = cofactor(d, i, j) // transpose on write
		}
	}

	return adj, nil
}

// Inverse returns Adjugate(m) / Det(m).
//
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: compute the determinant; exactly zero → ErrSingular.
//   - Stage 3: divide the adjugate by the determinant.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular, ErrNaNInf (determinant so small
//     that the quotient overflows).
//
// Complexity:
//   - Time O(n²·(n-1)! + n!), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	dt := det(d)
	if dt == ZeroDet {
		return nil, matrixErrorf(opInverse, errors.Wrapf(ErrSingular, "%d×%d determinant is zero", d.r, d.c))
	}
	adj, err := Adjugate(d)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Divide(adj, dt)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv.(*Dense), nil
}

// Solve returns x such that a·x = b, computed as Inverse(a)·b.
//
// Implementation:
//   - Stage 1: validate a square, len(b) == a.Rows(), b finite.
//   - Stage 2: invert through the adjugate, then MatVec.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNaNInf, ErrSingular.
//
// Complexity:
//   - Dominated by Inverse; O(n²) for the product.
//
// Notes:
//   - Callers must not pass duplicate interpolation nodes or otherwise dependent
//     rows: the singular check is exact and there is no fallback.
func Solve(a Matrix, b Vector) (Vector, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	inv, err := Inverse(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := MatVec(inv, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}
