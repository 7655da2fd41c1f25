// SPDX-License-Identifier: MIT

package airfoil

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/bladegen/interp"
)

// Centroid defaults.
const (
	DefaultCentroidSamples = 101  // chordwise parameter samples
	DefaultCentroidStep    = 1e-4 // spacing of interior fill points, absolute length
)

// CentroidOption customizes Centroid.
type CentroidOption func(*centroidOptions)

type centroidOptions struct {
	samples int
	step    float64
}

// WithSamples sets the number of chordwise samples (default 101).
// Values below 1 are ignored.
func WithSamples(n int) CentroidOption {
	return func(o *centroidOptions) {
		if n >= 1 {
			o.samples = n
		}
	}
}

// WithStep sets the fill spacing between upper and lower points (default 1e-4).
// Non-positive values are ignored.
func WithStep(step float64) CentroidOption {
	return func(o *centroidOptions) {
		if step > 0 {
			o.step = step
		}
	}
}

// Centroid returns the numerical area centroid (u, w) of the section.
//
// Implementation:
//   - Stage 1: sample t evenly on [0, 1].
//   - Stage 2: for each t take top = Upper(t), bottom = Lower(t) and
//     n = ⌊|top - bottom| / step⌋ (truncation).
//   - Stage 3: accumulate the sums of n evenly spaced points from top to
//     bottom in both coordinates, each added in order, and n into the count.
//   - Stage 4: divide the sums by the count.
//
// Errors:
//   - ErrDegenerateCentroid when every segment is shorter than step, which
//     happens for zero or near-zero thickness.
//
// Complexity:
//   - Time O(samples · maxThickness/step).
func (s *Section) Centroid(opts ...CentroidOption) (u, w float64, err error) {
	o := centroidOptions{samples: DefaultCentroidSamples, step: DefaultCentroidStep}
	for _, opt := range opts {
		opt(&o)
	}

	var uSum, wSum float64
	count := 0
	for _, t := range interp.Linspace(0, 1, o.samples) {
		top, bottom := s.Upper(t), s.Lower(t)
		n := int(top.Dist(bottom) / o.step)
		if n == 0 {
			continue
		}
		uSum += sumInOrder(interp.Linspace(top.U, bottom.U, n))
		wSum += sumInOrder(interp.Linspace(top.W, bottom.W, n))
		count += n
	}
	if count == 0 {
		return 0, 0, errors.Wrapf(ErrDegenerateCentroid,
			"%d samples at step %g", o.samples, o.step)
	}

	return uSum / float64(count), wSum / float64(count), nil
}

// sumInOrder adds xs left to right into a single accumulator.
func sumInOrder(xs []float64) float64 {
	acc := 0.0
	for _, x := range xs {
		acc += x
	}

	return acc
}

// CentroidPoint is Centroid returning a Point.
func (s *Section) CentroidPoint(opts ...CentroidOption) (Point, error) {
	u, w, err := s.Centroid(opts...)
	if err != nil {
		return Point{}, err
	}

	return Point{U: u, W: w}, nil
}
