// SPDX-License-Identifier: MIT

package blade

import (
	"math"

	"github.com/katalvlaran/bladegen/curve"
)

// Identity returns the chordwise reparametrization t ↦ t.
func Identity() curve.Func { return curve.Identity() }

// Cosine returns t ↦ 0.5·(1 - cos πt), which clusters points at both the
// leading and trailing edges.
func Cosine() curve.Func {
	return curve.Sum{
		curve.Constant(0.5),
		curve.Sinusoid{Kind: curve.Cos, Amp: -0.5, Freq: math.Pi},
	}
}

// Power returns t ↦ t^p. p > 1 clusters points at the leading edge, p < 1 at
// the trailing edge. It panics if p is not a positive finite number.
func Power(p float64) curve.Func {
	if !(p > 0) || math.IsInf(p, 0) {
		panic("blade: power reparametrization exponent must be positive and finite")
	}

	return curve.Power{Coeff: 1, Exp: p}
}
