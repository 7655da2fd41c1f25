// SPDX-License-Identifier: MIT

package airfoil

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/bladegen/curve"
)

// Point is a position in the section plane: U along the chord, W normal to it.
type Point struct {
	U, W float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{U: p.U - q.U, W: p.W - q.W} }

// Dist returns the Euclidean distance √(du² + dw²) between p and q.
func (p Point) Dist(q Point) float64 {
	du, dw := q.U-p.U, q.W-p.W

	return math.Sqrt(du*du + dw*dw)
}

// Section is an immutable modified NACA 4-digit section.
// It is safe for concurrent use.
type Section struct {
	params    Params
	coeffs    [8]float64
	camber    curve.Func
	slope     curve.Func
	thickness curve.Func
	origin    Point
}

// New builds a section from p.
//
// Implementation:
//   - Stage 1: validate p.
//   - Stage 2: thickness coefficients from Coefficients(p.Thickness, p.ThicknessLoc).
//   - Stage 3: assemble camber, slope and thickness as two-piece functions.
//
// Errors:
//   - ErrInvalidParams; anything Coefficients returns, wrapped.
func New(p Params) (*Section, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	coeffs, err := Coefficients(p.Thickness, p.ThicknessLoc)
	if err != nil {
		return nil, errors.Wrap(err, "airfoil.New")
	}

	s := &Section{params: p, coeffs: coeffs}
	if s.camber, err = camberLine(p); err != nil {
		return nil, errors.Wrap(err, "camber line")
	}
	if s.slope, err = camberSlope(p); err != nil {
		return nil, errors.Wrap(err, "camber slope")
	}
	if s.thickness, err = halfThickness(p.Chord, p.ThicknessLoc, coeffs); err != nil {
		return nil, errors.Wrap(err, "thickness")
	}

	return s, nil
}

// camberLine: c·k(2tk·t - t²)/tk² forward of tk, c·k(1 - 2tk + 2tk·t - t²)/(1-tk)² aft.
func camberLine(p Params) (curve.Func, error) {
	c, k, tk := p.Chord, p.Camber, p.CamberLoc

	return curve.NewPiecewise(
		[]curve.Func{
			curve.FuncOf(func(t float64) float64 {
				return c * k * (2*tk*t - t*t) / (tk * tk)
			}),
			curve.FuncOf(func(t float64) float64 {
				return c * k * (1 - 2*tk + 2*tk*t - t*t) / ((1 - tk) * (1 - tk))
			}),
		},
		[]float64{tk},
	)
}

// camberSlope: 2k/tk²·(tk - t) forward, 2k/(1-tk)²·(tk - t) aft.
func camberSlope(p Params) (curve.Func, error) {
	k, tk := p.Camber, p.CamberLoc

	return curve.NewPiecewise(
		[]curve.Func{
			curve.FuncOf(func(t float64) float64 { return 2 * k / (tk * tk) * (tk - t) }),
			curve.FuncOf(func(t float64) float64 { return 2 * k / ((1 - tk) * (1 - tk)) * (tk - t) }),
		},
		[]float64{tk},
	)
}

// halfThickness: c(a0√t + a1 t + a2 t² + a3 t³) forward of ta, c·Σ di(1-t)^i aft.
// The chord multiplies the finished sum.
func halfThickness(c, ta float64, k [8]float64) (curve.Func, error) {
	fore := curve.Scaled{K: c, Of: curve.Sum{
		curve.Power{Coeff: k[A0], Exp: 0.5},
		curve.Power{Coeff: k[A1], Exp: 1},
		curve.Power{Coeff: k[A2], Exp: 2},
		curve.Power{Coeff: k[A3], Exp: 3},
	}}
	aft := curve.Scaled{K: c, Of: curve.Composite{
		Outer: curve.Sum{
			curve.Power{Coeff: k[D0], Exp: 0},
			curve.Power{Coeff: k[D1], Exp: 1},
			curve.Power{Coeff: k[D2], Exp: 2},
			curve.Power{Coeff: k[D3], Exp: 3},
		},
		Inner: curve.Polynomial{1, -1},
	}}

	return curve.NewPiecewise([]curve.Func{fore, aft}, []float64{ta})
}

// Params returns the parameters the section was built from.
func (s *Section) Params() Params { return s.params }

// Chord returns the absolute chord length.
func (s *Section) Chord() float64 { return s.params.Chord }

// Coefficients returns [a0 a1 a2 a3 d0 d1 d2 d3].
func (s *Section) Coefficients() [8]float64 { return s.coeffs }

// Camber returns the camber line wc(t).
func (s *Section) Camber() curve.Func { return s.camber }

// Slope returns the camber slope m(t).
func (s *Section) Slope() curve.Func { return s.slope }

// Thickness returns the half-thickness h(t), already scaled by the chord.
func (s *Section) Thickness() curve.Func { return s.thickness }

// QuarterChord returns 0.25·c, the usual spanwise stacking reference.
func (s *Section) QuarterChord() float64 { return 0.25 * s.params.Chord }

// Origin returns the point subtracted from every boundary position; zero
// unless the section came from Recentered.
func (s *Section) Origin() Point { return s.origin }

// Upper returns the upper boundary at t: (c·t - h·sinθ, wc + h·cosθ), θ = atan(m).
func (s *Section) Upper(t float64) Point {
	h, wc, theta := s.thickness.Eval(t), s.camber.Eval(t), math.Atan(s.slope.Eval(t))
	sin, cos := math.Sin(theta), math.Cos(theta)

	return Point{
		U: s.params.Chord*t - h*sin - s.origin.U,
		W: wc + h*cos - s.origin.W,
	}
}

// Lower returns the lower boundary at t: (c·t + h·sinθ, wc - h·cosθ), θ = atan(m).
func (s *Section) Lower(t float64) Point {
	h, wc, theta := s.thickness.Eval(t), s.camber.Eval(t), math.Atan(s.slope.Eval(t))
	sin, cos := math.Sin(theta), math.Cos(theta)

	return Point{
		U: s.params.Chord*t + h*sin - s.origin.U,
		W: wc - h*cos - s.origin.W,
	}
}

// UpperCurve returns the upper boundary as a planar curve.
func (s *Section) UpperCurve() curve.Curve {
	return curve.Curve{
		U: curve.FuncOf(func(t float64) float64 { return s.Upper(t).U }),
		W: curve.FuncOf(func(t float64) float64 { return s.Upper(t).W }),
	}
}

// LowerCurve returns the lower boundary as a planar curve.
func (s *Section) LowerCurve() curve.Curve {
	return curve.Curve{
		U: curve.FuncOf(func(t float64) float64 { return s.Lower(t).U }),
		W: curve.FuncOf(func(t float64) float64 { return s.Lower(t).W }),
	}
}

// Recentered returns a copy of s whose boundaries are expressed relative to
// origin, i.e. every Upper/Lower point has origin subtracted. Offsets compose:
// recentering an already recentered section subtracts both origins.
func (s *Section) Recentered(origin Point) *Section {
	out := *s
	out.origin = Point{U: s.origin.U + origin.U, W: s.origin.W + origin.W}

	return &out
}

// Area returns the section area ∫ 2·h(t)·c dt over [0, 1], integrated on
// samples evenly spaced points with the trapezoidal rule.
//
// Errors:
//   - curve.ErrTooFewSamples when samples < 2.
func (s *Section) Area(samples int) (float64, error) {
	thick := curve.Scaled{K: 2 * s.params.Chord, Of: s.thickness}

	return curve.Trapezoid(thick, 0, 1, samples)
}
