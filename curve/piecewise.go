// SPDX-License-Identifier: MIT

package curve

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Piecewise selects one of N functions by comparing t against N-1 strictly
// increasing bounds: funcs[i] is used for the first i with t < bounds[i],
// and the last function for everything at or past the final bound.
//
// A bound therefore belongs to the piece on its right.
type Piecewise struct {
	funcs  []Func
	bounds []float64
}

// NewPiecewise validates and copies funcs and bounds.
//
// Errors:
//   - ErrBadPieces when len(bounds) != len(funcs)-1, funcs is empty, any func
//     is nil, or bounds are non-finite or not strictly increasing.
//
// Complexity:
//   - Time O(N), Space O(N).
func NewPiecewise(funcs []Func, bounds []float64) (*Piecewise, error) {
	if len(funcs) == 0 || len(bounds) != len(funcs)-1 {
		return nil, errors.Wrapf(ErrBadPieces, "%d funcs, %d bounds", len(funcs), len(bounds))
	}
	for i, f := range funcs {
		if f == nil {
			return nil, errors.Wrapf(ErrBadPieces, "func %d is nil", i)
		}
	}
	for i, b := range bounds {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return nil, errors.Wrapf(ErrBadPieces, "bound %d is not finite", i)
		}
		if i > 0 && b <= bounds[i-1] {
			return nil, errors.Wrapf(ErrBadPieces, "bound %d (%g) not above bound %d (%g)", i, b, i-1, bounds[i-1])
		}
	}

	return &Piecewise{
		funcs:  append([]Func(nil), funcs...),
		bounds: append([]float64(nil), bounds...),
	}, nil
}

// Eval evaluates the piece that owns t.
//
// Complexity: O(N) linear scan; N is 2 for every section function.
func (p *Piecewise) Eval(t float64) float64 {
	for i, b := range p.bounds {
		if t < b {
			return p.funcs[i].Eval(t)
		}
	}

	return p.funcs[len(p.funcs)-1].Eval(t)
}

// Pieces returns the number of functions.
func (p *Piecewise) Pieces() int { return len(p.funcs) }
