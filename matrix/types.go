// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by dense storage and the kernels.
// Errors and numeric defaults live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Vector is an ordered sequence of reals used as the single-column operand
// of MatVec and as the right-hand side and result of Solve.
type Vector []float64

// Len returns the number of entries.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// AsColumn materializes v as an n×1 Dense so it can take part in Mul.
// Returns ErrInvalidDimensions for an empty vector.
// Complexity: O(n).
func (v Vector) AsColumn() (*Dense, error) {
	d, err := NewDense(len(v), 1)
	if err != nil {
		return nil, err
	}
	copy(d.data, v) // n×1 row-major layout is the vector itself

	return d, nil
}
