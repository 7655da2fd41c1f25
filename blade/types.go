// SPDX-License-Identifier: MIT

// Package blade: design input, stations and surface output.
package blade

import (
	"math"

	"github.com/cockroachdb/errors"
)

// MaxProfileKnots bounds the length of every radial parameter list. Profiles
// are fitted with the cofactor solver, whose cost grows factorially.
const MaxProfileKnots = 8

// Design holds the hub-to-tip aerodynamic parameters of a blade.
//
// Every list is a set of values at evenly spaced radii from the hub
// (HubRatio·Diameter/2) to the tip (Diameter/2), both inclusive; a single
// value means a constant profile. Angles are in radians.
type Design struct {
	Diameter        float64   // tip diameter, absolute length
	HubRatio        float64   // hub radius / tip radius, in (0,1)
	FlowCoefficient float64   // φ, sets the inflow angle of the twist law
	ChordRatio      []float64 // chord / (2·r)
	Camber          []float64 // maximum camber, fraction of chord
	CamberLoc       []float64 // chordwise location of maximum camber, (0,1)
	Thickness       []float64 // maximum thickness, fraction of chord
	ThicknessLoc    []float64 // chordwise location of maximum thickness, (0,1)
	AngleOfAttack   []float64 // radians
	Sweep           []float64 // radians
}

// profiles lists the named radial lists in a fixed order.
func (d Design) profiles() []struct {
	name   string
	values []float64
} {
	return []struct {
		name   string
		values []float64
	}{
		{"chord ratio", d.ChordRatio},
		{"camber", d.Camber},
		{"camber location", d.CamberLoc},
		{"thickness", d.Thickness},
		{"thickness location", d.ThicknessLoc},
		{"angle of attack", d.AngleOfAttack},
		{"sweep", d.Sweep},
	}
}

// Validate checks the scalar fields and every radial list.
//
// Errors:
//   - ErrInvalidDesign, wrapped with the offending field.
func (d Design) Validate() error {
	if !finite(d.Diameter) || d.Diameter <= 0 {
		return errors.Wrapf(ErrInvalidDesign, "diameter %g must be positive", d.Diameter)
	}
	if !finite(d.HubRatio) || d.HubRatio <= 0 || d.HubRatio >= 1 {
		return errors.Wrapf(ErrInvalidDesign, "hub ratio %g outside (0,1)", d.HubRatio)
	}
	if !finite(d.FlowCoefficient) {
		return errors.Wrapf(ErrInvalidDesign, "flow coefficient is %g", d.FlowCoefficient)
	}
	for _, p := range d.profiles() {
		switch n := len(p.values); {
		case n == 0:
			return errors.Wrapf(ErrInvalidDesign, "%s: no values", p.name)
		case n > MaxProfileKnots:
			return errors.Wrapf(ErrInvalidDesign, "%s: %d values, at most %d", p.name, n, MaxProfileKnots)
		}
		for i, v := range p.values {
			if !finite(v) {
				return errors.Wrapf(ErrInvalidDesign, "%s[%d] is %g", p.name, i, v)
			}
		}
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Point3 is a Cartesian point; Z runs along the machine axis.
type Point3 struct {
	X, Y, Z float64
}

// Radius returns the distance from the machine axis, √(X² + Y²).
func (p Point3) Radius() float64 { return math.Hypot(p.X, p.Y) }

// Station is the spanwise state of one section after the sequential scan.
type Station struct {
	Index   int     // 0 at the root
	Radius  float64 // r
	Twist   float64 // stagger angle, radians
	Azimuth float64 // accumulated azimuthal lean offset az0, radians
	Axial   float64 // accumulated axial lean offset z0
}

// Surface is the generator output: one row per station, one column per
// chordwise argument, for each of the two boundaries.
type Surface struct {
	Upper    [][]Point3
	Lower    [][]Point3
	Stations []Station
}

// Dims returns the number of sections (rows) and points per section (columns).
func (s *Surface) Dims() (sections, points int) {
	if len(s.Upper) == 0 {
		return 0, 0
	}

	return len(s.Upper), len(s.Upper[0])
}
