// SPDX-License-Identifier: MIT

// Package blade: functional options for Generator and Generate.
package blade

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/bladegen/airfoil"
	"github.com/katalvlaran/bladegen/curve"
)

// Defaults for the sampling knobs.
const (
	DefaultSections = 11  // spanwise stations
	DefaultPoints   = 101 // chordwise arguments per boundary
)

// Options configures generation.
//
// Reparam   – chordwise reparametrization applied to evenly spaced t.
// Centroid  – options forwarded to airfoil.Section.Centroid.
// Workers   – upper bound on concurrently mapped stations.
// Logger    – structured logger; discards by default.
type Options struct {
	Reparam  curve.Func
	Centroid []airfoil.CentroidOption
	Workers  int
	Logger   *slog.Logger
}

// Option represents a functional option for configuring generation.
type Option func(*Options)

// DefaultOptions returns identity reparametrization, default centroid
// sampling, GOMAXPROCS workers and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Reparam: Identity(),
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithReparam sets the chordwise reparametrization. It must be strictly
// increasing on [0,1]; Generate checks this before any station work.
// Panics on nil.
func WithReparam(f curve.Func) Option {
	return func(o *Options) {
		if f == nil {
			panic("blade: nil reparametrization")
		}
		o.Reparam = f
	}
}

// WithCentroid sets the centroid sampling used to recentre each section.
// Non-positive values keep the airfoil defaults.
func WithCentroid(samples int, step float64) Option {
	return func(o *Options) {
		o.Centroid = []airfoil.CentroidOption{airfoil.WithSamples(samples), airfoil.WithStep(step)}
	}
}

// WithWorkers bounds the number of stations mapped concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("blade: workers must be at least 1")
		}
		o.Workers = n
	}
}

// WithLogger installs a structured logger. A nil logger keeps the current one.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
