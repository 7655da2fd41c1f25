// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
//
// Systems built by the blade pipeline are at most 8×8. The policy covers a
// finite-value guard on Set and the tolerance used by AllClose.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultEpsilon is the absolute tolerance used by AllClose when callers
	// pass a negative atol.
	DefaultEpsilon = 1e-9
)

// ZeroSum is the initial sum value for dot products and Laplace expansion.
const ZeroSum = 0.0

// ZeroDet is the sentinel determinant value signalling a singular system.
// The comparison is exact: no conditioning is attempted at this scale.
const ZeroDet = 0.0
