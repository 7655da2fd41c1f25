// SPDX-License-Identifier: MIT
// Package curve: sentinel errors for piecewise construction and quadrature.

package curve

import "github.com/cockroachdb/errors"

var (
	// ErrBadPieces is returned when a Piecewise gets a bound count other than
	// len(funcs)-1, a nil piece, or bounds that are not strictly increasing.
	ErrBadPieces = errors.New("curve: malformed piecewise definition")

	// ErrTooFewSamples is returned when a quadrature is asked for fewer than
	// two samples.
	ErrTooFewSamples = errors.New("curve: too few samples")
)
