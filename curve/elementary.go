// SPDX-License-Identifier: MIT

package curve

import "math"

// Power is Coeff·t^Exp for a real exponent. Non-negative integer exponents
// go through IntPow; anything else goes through math.Pow, so negative t with
// a non-integer exponent yields NaN.
type Power struct {
	Coeff float64
	Exp   float64
}

// Eval returns Coeff·t^Exp.
func (p Power) Eval(t float64) float64 {
	if n := int(p.Exp); float64(n) == p.Exp && n >= 0 && n <= maxIntPow {
		return p.Coeff * IntPow(t, n)
	}

	return p.Coeff * math.Pow(t, p.Exp)
}

// maxIntPow bounds the exponents IntPow evaluates by repeated multiplication.
const maxIntPow = 64

// IntPow returns x^n rounded once to the nearest float64.
//
// Implementation:
//   - Stage 1: n = 0 → 1, n = 1 → x; negative n, large n and non-finite or
//     zero x fall back to math.Pow.
//   - Stage 2: multiply in double-double form, carrying the exact rounding
//     error of every product (math.FMA) in a low word.
//   - Stage 3: the high word of the final renormalisation is the result.
//
// math.Pow rounds after every squaring step, so x³ and higher can be off by
// an ulp; IntPow is what a correctly rounded libm pow returns.
//
// Complexity:
//   - Time O(n), Space O(1).
func IntPow(x float64, n int) float64 {
	switch {
	case n == 0:
		return 1
	case n == 1:
		return x
	case n < 0 || n > maxIntPow || x == 0 || math.IsNaN(x) || math.IsInf(x, 0):
		return math.Pow(x, float64(n))
	}

	hi, lo := x, 0.0
	for i := 1; i < n; i++ {
		p := hi * x
		if math.IsInf(p, 0) {
			return p
		}
		lo = lo*x + math.FMA(hi, x, -p)
		s := p + lo
		lo -= s - p
		hi = s
	}

	return hi
}

// Trig selects the circular function applied by a Sinusoid.
type Trig int

const (
	// Sin selects math.Sin.
	Sin Trig = iota
	// Cos selects math.Cos.
	Cos
	// Tan selects math.Tan.
	Tan
)

// Sinusoid is Amp·trig(Freq·t + Phase).
type Sinusoid struct {
	Kind  Trig
	Amp   float64
	Freq  float64
	Phase float64
}

// Eval returns Amp·trig(Freq·t + Phase).
func (s Sinusoid) Eval(t float64) float64 {
	arg := s.Freq*t + s.Phase
	switch s.Kind {
	case Cos:
		return s.Amp * math.Cos(arg)
	case Tan:
		return s.Amp * math.Tan(arg)
	default:
		return s.Amp * math.Sin(arg)
	}
}
