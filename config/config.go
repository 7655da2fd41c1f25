// SPDX-License-Identifier: MIT

// Package config reads blade design files.
//
// A design file is a YAML document holding the scalar design inputs, the
// seven radial parameter lists and an optional sampling block:
//
//	diameter: 0.381
//	hub_ratio: 0.387
//	flow_coefficient: 0.2
//	chord_ratio: [0.33, 0.13, 0.12]
//	camber: [0, 0.056, 0.059]
//	camber_location: [0.7, 0.2, 0.56]
//	thickness: [0.12, 0.05, 0.051]
//	thickness_location: [0.13, 0.1, 0.33]
//	angle_of_attack: [0, 0.0855, 0.0681, 0.0297, 0]
//	sweep: [0.209, -0.279, 0.768]
//	angle_unit: rad
//	sampling:
//	  sections: 11
//	  points: 101
//	  reparam: identity
//
// Unknown keys are rejected so that a misspelt field cannot silently fall
// back to a default.
package config

import (
	"bytes"
	"io"
	"math"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/bladegen/blade"
	"github.com/katalvlaran/bladegen/curve"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a design file that does not decode or carries
// an unsupported unit, reparametrization or sampling value.
var ErrInvalidConfig = errors.New("config: invalid design file")

// Angle units.
const (
	UnitRadians = "rad"
	UnitDegrees = "deg"
)

// Reparametrization names.
const (
	ReparamIdentity = "identity"
	ReparamCosine   = "cosine"
	ReparamPower    = "power"
)

// File is the decoded design file.
type File struct {
	Diameter        float64   `yaml:"diameter"`
	HubRatio        float64   `yaml:"hub_ratio"`
	FlowCoefficient float64   `yaml:"flow_coefficient"`
	ChordRatio      []float64 `yaml:"chord_ratio"`
	Camber          []float64 `yaml:"camber"`
	CamberLocation  []float64 `yaml:"camber_location"`
	Thickness       []float64 `yaml:"thickness"`
	ThicknessLoc    []float64 `yaml:"thickness_location"`
	AngleOfAttack   []float64 `yaml:"angle_of_attack"`
	Sweep           []float64 `yaml:"sweep"`
	AngleUnit       string    `yaml:"angle_unit"`
	Sampling        Sampling  `yaml:"sampling"`
}

// Sampling controls the generated grid. Zero values select the defaults.
type Sampling struct {
	Sections        int     `yaml:"sections"`
	Points          int     `yaml:"points"`
	Reparam         string  `yaml:"reparam"`
	Exponent        float64 `yaml:"exponent"`
	Workers         int     `yaml:"workers"`
	CentroidSamples int     `yaml:"centroid_samples"`
	CentroidStep    float64 `yaml:"centroid_step"`
}

// Load reads and parses the design file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading design file %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return f, nil
}

// Parse decodes a design file, applies sampling defaults and checks the
// fields that only the file format knows about. Design-level checks are left
// to blade.Design.Validate.
//
// Errors:
//   - ErrInvalidConfig for empty input, decode failures, unknown keys,
//     unsupported units or reparametrizations, and negative sampling values.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrInvalidConfig, "empty document")
		}

		return nil, errors.Wrapf(ErrInvalidConfig, "decode: %v", err)
	}
	if err := f.normalize(); err != nil {
		return nil, err
	}

	return &f, nil
}

// normalize fills defaults and validates the enumerations.
func (f *File) normalize() error {
	f.AngleUnit = strings.ToLower(strings.TrimSpace(f.AngleUnit))
	switch f.AngleUnit {
	case "":
		f.AngleUnit = UnitRadians
	case UnitRadians, UnitDegrees:
	default:
		return errors.Wrapf(ErrInvalidConfig, "angle_unit %q: want %q or %q", f.AngleUnit, UnitRadians, UnitDegrees)
	}

	s := &f.Sampling
	if s.Sections < 0 || s.Points < 0 || s.Workers < 0 || s.CentroidSamples < 0 || s.CentroidStep < 0 {
		return errors.Wrap(ErrInvalidConfig, "sampling values must not be negative")
	}
	if s.Sections == 0 {
		s.Sections = blade.DefaultSections
	}
	if s.Points == 0 {
		s.Points = blade.DefaultPoints
	}

	s.Reparam = strings.ToLower(strings.TrimSpace(s.Reparam))
	switch s.Reparam {
	case "":
		s.Reparam = ReparamIdentity
	case ReparamIdentity, ReparamCosine:
	case ReparamPower:
		if s.Exponent == 0 {
			s.Exponent = 1
		}
		if !(s.Exponent > 0) || math.IsInf(s.Exponent, 0) {
			return errors.Wrapf(ErrInvalidConfig, "power exponent %g must be positive", s.Exponent)
		}
	default:
		return errors.Wrapf(ErrInvalidConfig, "reparam %q: want identity, cosine or power", s.Reparam)
	}

	return nil
}

// Design converts the file into a blade.Design, converting angle lists to
// radians when angle_unit is deg. Lists are copied.
func (f *File) Design() blade.Design {
	angles := func(in []float64) []float64 {
		out := append([]float64(nil), in...)
		if f.AngleUnit == UnitDegrees {
			for i := range out {
				out[i] *= math.Pi / 180
			}
		}

		return out
	}

	return blade.Design{
		Diameter:        f.Diameter,
		HubRatio:        f.HubRatio,
		FlowCoefficient: f.FlowCoefficient,
		ChordRatio:      append([]float64(nil), f.ChordRatio...),
		Camber:          append([]float64(nil), f.Camber...),
		CamberLoc:       append([]float64(nil), f.CamberLocation...),
		Thickness:       append([]float64(nil), f.Thickness...),
		ThicknessLoc:    append([]float64(nil), f.ThicknessLoc...),
		AngleOfAttack:   angles(f.AngleOfAttack),
		Sweep:           angles(f.Sweep),
	}
}

// Reparam resolves the named chordwise reparametrization.
func (f *File) Reparam() curve.Func {
	switch f.Sampling.Reparam {
	case ReparamCosine:
		return blade.Cosine()
	case ReparamPower:
		return blade.Power(f.Sampling.Exponent)
	default:
		return blade.Identity()
	}
}

// Options returns the generator options the sampling block asks for.
func (f *File) Options() []blade.Option {
	opts := []blade.Option{blade.WithReparam(f.Reparam())}
	if f.Sampling.Workers > 0 {
		opts = append(opts, blade.WithWorkers(f.Sampling.Workers))
	}
	if f.Sampling.CentroidSamples > 0 || f.Sampling.CentroidStep > 0 {
		opts = append(opts, blade.WithCentroid(f.Sampling.CentroidSamples, f.Sampling.CentroidStep))
	}

	return opts
}
