// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, matrix-vector product, transpose, scalar scaling and
// division, and tolerance comparison. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - The cofactor kernels (Det, Adjugate, Inverse, Solve) live in impl_cofactor.go.
//   - All kernels use central validators and wrap failures via matrixErrorf.

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opDivide    = "Divide"
	opMatVec    = "MatVec"
	opSubmatrix = "Submatrix"
	opMinor     = "Minor"
	opCofactor  = "Cofactor"
	opDet       = "Det"
	opAdjugate  = "Adjugate"
	opInverse   = "Inverse"
	opSolve     = "Solve"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// toDense returns m itself when it is a *Dense, otherwise a Dense copy.
// Kernels call it once so the hot loops below can index the flat buffer.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop over row-major buffers, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	var av float64
	var rowOffsetA, rowOffsetB, rowOffsetR int
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := dm.r, dm.c
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix with every element multiplied by alpha.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when alpha drives an entry non-finite.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	return scaleBy(m, alpha, opScale)
}

// Divide returns a new matrix with every element divided by alpha. Each
// entry is divided on its own, never multiplied by 1/alpha, so the result
// is the correctly rounded quotient. Dividing by exactly zero is rejected.
//
// Errors:
//   - ErrNilMatrix, ErrDivideByZero, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Divide(m Matrix, alpha float64) (Matrix, error) {
	if alpha == 0 {
		return nil, matrixErrorf(opDivide, ErrDivideByZero)
	}

	return scaleBy(m, alpha, opDivide)
}

// scaleBy is the shared kernel of Scale and Divide; opDivide divides by
// alpha, every other tag multiplies.
func scaleBy(m Matrix, alpha float64, opTag string) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(dm.r, dm.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	divide := opTag == opDivide
	var v float64
	for idx := range dm.data {
		if divide {
			v = dm.data[idx] / alpha
		} else {
			v = dm.data[idx] * alpha
		}
		if res.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return nil, matrixErrorf(opTag, denseErrorf(ctxSet, idx/dm.c, idx%dm.c, ErrNaNInf))
		}
		res.data[idx] = v
	}

	return res, nil
}

// MatVec computes y = m·x for a vector x of length m.Cols().
//
// Implementation:
//   - Stage 1: Validate m not nil and len(x) == m.Cols().
//   - Stage 2: row-major dot products in fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x Vector) (Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make(Vector, d.r)
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// AllClose reports whether |a[i,j] - b[i,j]| ≤ atol + rtol·|b[i,j]| for all
// entries. A negative atol selects DefaultEpsilon.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense operands.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}
	if atol < 0 {
		atol = DefaultEpsilon
	}
	da, err := toDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := toDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range da.data {
		if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}
