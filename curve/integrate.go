// SPDX-License-Identifier: MIT

package curve

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Trapezoid integrates f over [a, b] with the composite trapezoidal rule on
// n evenly spaced samples (both ends included). b < a yields the negated
// integral over [b, a].
//
// Errors:
//   - ErrTooFewSamples when n < 2.
//
// Complexity:
//   - Time O(n) evaluations, Space O(n).
func Trapezoid(f Func, a, b float64, n int) (float64, error) {
	if n < 2 {
		return 0, errors.Wrapf(ErrTooFewSamples, "trapezoid needs n ≥ 2, got %d", n)
	}
	if a == b {
		return 0, nil
	}
	sign := 1.0
	if b < a {
		a, b, sign = b, a, -1
	}
	xs := floats.Span(make([]float64, n), a, b)

	return sign * integrate.Trapezoidal(xs, Sample(f, xs)), nil
}
