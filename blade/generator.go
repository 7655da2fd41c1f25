// SPDX-License-Identifier: MIT

package blade

import (
	"context"
	"log/slog"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/bladegen/airfoil"
	"github.com/katalvlaran/bladegen/curve"
	"github.com/katalvlaran/bladegen/interp"
)

// Generator turns a Design into blade surfaces. It is immutable after
// NewGenerator and safe for concurrent use.
type Generator struct {
	design Design
	rHub   float64
	rTip   float64

	chordRatio   curve.Polynomial
	camber       curve.Polynomial
	camberLoc    curve.Polynomial
	thickness    curve.Polynomial
	thicknessLoc curve.Polynomial
	aoa          curve.Polynomial
	sweep        curve.Polynomial

	opts Options
}

// NewGenerator validates d and fits its seven radial profiles.
//
// Implementation:
//   - Stage 1: validate d; rTip = Diameter/2, rHub = HubRatio·rTip.
//   - Stage 2: apply opts over DefaultOptions.
//   - Stage 3: fit each list over evenly spaced radii rHub..rTip, logging
//     every fitted polynomial at debug level.
//
// Errors:
//   - ErrInvalidDesign.
//   - matrix.ErrSingular or other fit errors, wrapped with the profile name.
func NewGenerator(d Design, opts ...Option) (*Generator, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{design: d, opts: DefaultOptions()}
	g.rTip = 0.5 * d.Diameter
	g.rHub = d.HubRatio * g.rTip
	for _, opt := range opts {
		opt(&g.opts)
	}

	targets := []*curve.Polynomial{
		&g.chordRatio, &g.camber, &g.camberLoc, &g.thickness,
		&g.thicknessLoc, &g.aoa, &g.sweep,
	}
	for i, p := range d.profiles() {
		fit, err := interp.Radial(g.rHub, g.rTip, p.values)
		if err != nil {
			return nil, errors.Wrapf(err, "profile %q", p.name)
		}
		*targets[i] = fit
		g.opts.Logger.LogAttrs(context.Background(), slog.LevelDebug, "profile fitted",
			slog.String("profile", p.name),
			slog.Int("degree", fit.Degree()),
			slog.String("poly", fit.String()))
	}

	return g, nil
}

// Design returns the design the generator was built from.
func (g *Generator) Design() Design { return g.design }

// HubRadius returns HubRatio·Diameter/2.
func (g *Generator) HubRadius() float64 { return g.rHub }

// TipRadius returns Diameter/2.
func (g *Generator) TipRadius() float64 { return g.rTip }

// Chord returns the absolute chord at radius r: 2·r·chordRatio(r).
func (g *Generator) Chord(r float64) float64 { return 2 * r * g.chordRatio.Eval(r) }

// Twist returns the stagger angle at r: aoa(r) + atan(φ·rTip / (r·(1 - (rHub/rTip)²))).
func (g *Generator) Twist(r float64) float64 {
	hub := g.rHub / g.rTip

	return g.aoa.Eval(r) + math.Atan(g.design.FlowCoefficient*g.rTip/(r*(1-hub*hub)))
}

// Params returns the interpolated section parameters at radius r.
func (g *Generator) Params(r float64) airfoil.Params {
	return airfoil.Params{
		Chord:        g.Chord(r),
		Camber:       g.camber.Eval(r),
		CamberLoc:    g.camberLoc.Eval(r),
		Thickness:    g.thickness.Eval(r),
		ThicknessLoc: g.thicknessLoc.Eval(r),
	}
}

// Section builds the airfoil section at radius r.
//
// Errors:
//   - airfoil.ErrInvalidParams (wrapped with r) when the interpolated profiles
//     leave their valid range at r.
func (g *Generator) Section(r float64) (*airfoil.Section, error) {
	s, err := airfoil.New(g.Params(r))
	if err != nil {
		return nil, errors.Wrapf(err, "section at r=%g", r)
	}

	return s, nil
}
