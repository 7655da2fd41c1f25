// SPDX-License-Identifier: MIT

package airfoil

import (
	"math"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/bladegen/curve"
	"github.com/katalvlaran/bladegen/interp"
	"github.com/katalvlaran/bladegen/matrix"
)

// Params are the geometric parameters of one section.
type Params struct {
	Chord        float64 // c, absolute length
	Camber       float64 // k, maximum camber as a fraction of chord
	CamberLoc    float64 // tk ∈ (0,1)
	Thickness    float64 // a, maximum thickness as a fraction of chord
	ThicknessLoc float64 // ta ∈ (0,1)
}

// Validate checks that every field is finite, the chord is positive and
// both locations lie strictly inside (0, 1).
func (p Params) Validate() error {
	fields := [...]struct {
		name string
		v    float64
	}{
		{"chord", p.Chord},
		{"camber", p.Camber},
		{"camber location", p.CamberLoc},
		{"thickness", p.Thickness},
		{"thickness location", p.ThicknessLoc},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errors.Wrapf(ErrInvalidParams, "%s is %g", f.name, f.v)
		}
	}
	if p.Chord <= 0 {
		return errors.Wrapf(ErrInvalidParams, "chord %g must be positive", p.Chord)
	}
	if p.CamberLoc <= 0 || p.CamberLoc >= 1 {
		return errors.Wrapf(ErrInvalidParams, "camber location %g outside (0,1)", p.CamberLoc)
	}
	if p.ThicknessLoc <= 0 || p.ThicknessLoc >= 1 {
		return errors.Wrapf(ErrInvalidParams, "thickness location %g outside (0,1)", p.ThicknessLoc)
	}

	return nil
}

// Leading-edge and trailing-edge constants of the modified 4-digit family.
const (
	leadingEdgeRadiusFactor = 2.2038 // a0 = sqrt(2.2038)·a
	trailingEdgeFactor      = 0.01   // d0 = 0.01·a
)

// Tabulated aft-slope ratios d1/a at evenly spaced ta from 0.2 to 0.6.
const ratioLocFirst, ratioLocLast = 0.2, 0.6

var ratioTable = []float64{1, 1.17, 1.575, 2.325, 3.5}

// aftSlopeRatio is the degree-4 interpolant through ratioTable, fitted once.
var aftSlopeRatio = sync.OnceValues(func() (curve.Polynomial, error) {
	return interp.Fit(interp.Linspace(ratioLocFirst, ratioLocLast, len(ratioTable)), ratioTable)
})

// Coefficient indices into the array returned by Coefficients.
const (
	A0 = iota
	A1
	A2
	A3
	D0
	D1
	D2
	D3
)

// Coefficients returns the thickness coefficients [a0 a1 a2 a3 d0 d1 d2 d3]
// for maximum thickness a at location ta.
//
// Implementation:
//   - Stage 1: a0 = sqrt(2.2038)·a, d0 = 0.01·a, d1 = a·ratio(ta).
//   - Stage 2: solve the 5×5 system for (a1,a2,a3,d2,d3): the value a at ta
//     from both sides, zero slope at ta from both sides, and the fifth
//     matching equation 2a2 + 6ta·a3 - 2d2 + 6(1-ta)·d3 = a0/(4·ta^1.5).
//     This is not curvature continuity, which would need -6(1-ta)·d3.
//
// Errors:
//   - ErrInvalidParams when ta ∉ (0,1) or a is not finite.
//   - matrix.ErrSingular (wrapped) if the matching system degenerates.
//
// Complexity:
//   - O(1); one 5×5 cofactor solve.
func Coefficients(a, ta float64) ([8]float64, error) {
	var out [8]float64
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return out, errors.Wrapf(ErrInvalidParams, "thickness is %g", a)
	}
	if !(ta > 0 && ta < 1) {
		return out, errors.Wrapf(ErrInvalidParams, "thickness location %g outside (0,1)", ta)
	}

	ratio, err := aftSlopeRatio()
	if err != nil {
		return out, errors.Wrap(err, "aft slope ratio")
	}
	a0 := math.Sqrt(leadingEdgeRadiusFactor) * a
	d0 := trailingEdgeFactor * a
	d1 := a * ratio.Eval(ta)

	sqrtTa := math.Sqrt(ta)
	u := 1 - ta
	sys, err := matrix.NewDenseFromRows([][]float64{
		{ta, ta * ta, curve.IntPow(ta, 3), 0, 0},
		{0, 0, 0, u * u, curve.IntPow(u, 3)},
		{1, 2 * ta, 3 * (ta * ta), 0, 0},
		{0, 0, 0, 2 * u, 3 * (u * u)},
		{0, 2, 6 * ta, -2, 6 * u},
	})
	if err != nil {
		return out, errors.Wrap(err, "thickness system")
	}
	rhs := matrix.Vector{
		a - sqrtTa*a0,
		a - d0 - u*d1,
		-0.5 * a0 / sqrtTa,
		-d1,
		0.25 * a0 / math.Sqrt(curve.IntPow(ta, 3)),
	}
	x, err := matrix.Solve(sys, rhs)
	if err != nil {
		return out, errors.Wrapf(err, "thickness system at ta=%g", ta)
	}

	out[A0], out[A1], out[A2], out[A3] = a0, x[0], x[1], x[2]
	out[D0], out[D1], out[D2], out[D3] = d0, d1, x[3], x[4]

	return out, nil
}
