// SPDX-License-Identifier: MIT
// Package export: sentinel errors.

package export

import "github.com/cockroachdb/errors"

var (
	// ErrEmptySurface indicates a nil surface or one with no sections.
	ErrEmptySurface = errors.New("export: empty surface")

	// ErrRaggedGrid indicates rows of unequal length, or upper and lower grids
	// of different shape.
	ErrRaggedGrid = errors.New("export: ragged point grid")

	// ErrTooFewSamples indicates a section plot with fewer than two samples.
	ErrTooFewSamples = errors.New("export: at least two samples required")
)
