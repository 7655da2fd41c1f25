// SPDX-License-Identifier: MIT

// Package interp fits the unique polynomial through a small point set and
// provides the evenly spaced sampling used across the blade pipeline.
//
// Fit builds the Vandermonde system V·c = y with V[i][j] = xs[i]^j and solves
// it with the cofactor kernel from package matrix. Point counts are tiny
// (radial profiles carry at most eight knots), so the solve stays in exact cofactor
// arithmetic and duplicate abscissae surface as matrix.ErrSingular.
package interp

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/bladegen/curve"
	"github.com/katalvlaran/bladegen/matrix"
	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced values from first to last inclusive.
// n == 1 yields [first]; n < 1 yields an empty slice.
//
// Complexity: O(n).
func Linspace(first, last float64, n int) []float64 {
	switch {
	case n < 1:
		return []float64{}
	case n == 1:
		return []float64{first}
	}

	return floats.Span(make([]float64, n), first, last)
}

// Fit returns the polynomial of degree len(xs)-1 passing through every
// (xs[i], ys[i]).
//
// Implementation:
//   - Stage 1: validate lengths; one point is returned as a constant without a solve.
//   - Stage 2: build the n×n Vandermonde matrix, each entry from curve.IntPow.
//   - Stage 3: matrix.Solve; the solution is the ascending coefficient vector.
//
// Errors:
//   - ErrDimensionMismatch, ErrNoPoints.
//   - matrix.ErrSingular (wrapped) for repeated x values.
//   - matrix.ErrNaNInf (wrapped) for non-finite input.
//
// Complexity:
//   - Dominated by the cofactor solve, O(n²·(n-1)!).
func Fit(xs, ys []float64) (curve.Polynomial, error) {
	if len(xs) != len(ys) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "Fit: %d xs, %d ys", len(xs), len(ys))
	}
	n := len(xs)
	if n == 0 {
		return nil, ErrNoPoints
	}
	if n == 1 {
		if math.IsNaN(ys[0]) || math.IsInf(ys[0], 0) {
			return nil, errors.Wrap(matrix.ErrNaNInf, "Fit")
		}

		return curve.Polynomial{ys[0]}, nil
	}

	v, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, errors.Wrap(err, "Fit")
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = v.Set(i, j, curve.IntPow(xs[i], j)); err != nil {
				return nil, errors.Wrapf(err, "Fit: x[%d]=%g", i, xs[i])
			}
		}
	}

	coeffs, err := matrix.Solve(v, ys)
	if err != nil {
		return nil, errors.Wrap(err, "Fit")
	}

	return curve.Polynomial(coeffs), nil
}

// Radial fits a radial profile: the values are taken at evenly spaced radii
// from rHub to rTip inclusive.
func Radial(rHub, rTip float64, values []float64) (curve.Polynomial, error) {
	return Fit(Linspace(rHub, rTip, len(values)), values)
}
