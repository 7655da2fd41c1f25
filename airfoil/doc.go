// Package airfoil models a modified NACA 4-digit blade section.
//
// A section is described by five numbers (Params): chord c, maximum camber k
// at chordwise location tk, and maximum thickness a at chordwise location ta,
// both locations normalized to (0, 1). From them the package builds three
// piecewise functions of the chordwise parameter t ∈ [0, 1]:
//
//   - camber line wc(t), split at tk,
//   - camber slope m(t), split at tk,
//   - half-thickness h(t), split at ta: a0√t + a1 t + a2 t² + a3 t³ forward,
//     d0 + d1(1-t) + d2(1-t)² + d3(1-t)³ aft, both scaled by c.
//
// The eight thickness coefficients come from Coefficients: a0, d0 and d1 are
// closed-form (d1 through a degree-4 interpolant of tabulated ratios) and the
// remaining four are the solution of a 5×5 matching system: value and slope
// from both sides of ta, plus a fifth equation tying a2, a3, d2 and d3 to
// a0/ta^1.5.
//
// The upper and lower boundaries offset the camber line by ±h along the
// normal at angle atan(m). Centroid integrates the area between them
// numerically; Recentered shifts both boundaries so that a given point
// becomes the origin.
//
//	s, err := airfoil.New(airfoil.Params{
//		Chord: 0.0486, Camber: 0.02, CamberLoc: 0.4,
//		Thickness: 0.1, ThicknessLoc: 0.3,
//	})
//	top := s.Upper(0.1)
//	cu, cw, err := s.Centroid()
package airfoil
