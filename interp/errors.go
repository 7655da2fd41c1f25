// SPDX-License-Identifier: MIT
// Package interp: sentinel errors.

package interp

import "github.com/cockroachdb/errors"

var (
	// ErrDimensionMismatch indicates xs and ys differ in length.
	ErrDimensionMismatch = errors.New("interp: xs and ys length mismatch")

	// ErrNoPoints indicates an empty point set.
	ErrNoPoints = errors.New("interp: no points to fit")
)
