// SPDX-License-Identifier: MIT
// Package blade: sentinel errors.

package blade

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidDesign indicates a design that cannot describe a blade: a
	// non-positive or non-finite diameter, a hub ratio outside (0,1), or an
	// empty, oversized or non-finite parameter list.
	ErrInvalidDesign = errors.New("blade: invalid design")

	// ErrInvalidSampling indicates fewer than one section or one point.
	ErrInvalidSampling = errors.New("blade: section and point counts must be at least 1")

	// ErrNonMonotonic indicates that the reparametrized chordwise arguments
	// are not strictly increasing on [0, 1].
	ErrNonMonotonic = errors.New("blade: reparametrization must increase strictly on [0,1]")
)
