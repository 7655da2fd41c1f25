// SPDX-License-Identifier: MIT
// Package airfoil: sentinel errors.

package airfoil

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidParams indicates a non-finite parameter, a non-positive chord,
	// or a camber/thickness location outside the open interval (0, 1).
	ErrInvalidParams = errors.New("airfoil: invalid section parameters")

	// ErrDegenerateCentroid indicates that no interior sample fell between the
	// boundaries, so the centroid average has an empty denominator.
	ErrDegenerateCentroid = errors.New("airfoil: centroid has no interior samples")
)
