// SPDX-License-Identifier: MIT

package curve

// Func is a real function of one real variable.
type Func interface {
	// Eval returns the function value at t.
	Eval(t float64) float64
}

// FuncOf adapts an ordinary Go function to Func.
type FuncOf func(t float64) float64

// Eval calls f(t).
func (f FuncOf) Eval(t float64) float64 { return f(t) }

// Identity returns the function t ↦ t.
func Identity() Func { return Polynomial{0, 1} }

// Constant is the function t ↦ C.
type Constant float64

// Eval returns the constant.
func (c Constant) Eval(float64) float64 { return float64(c) }

// Sum evaluates to the sum of its terms; an empty Sum is 0.
type Sum []Func

// Eval adds the term values in order.
func (s Sum) Eval(t float64) float64 {
	acc := 0.0
	for _, f := range s {
		acc += f.Eval(t)
	}

	return acc
}

// Scaled is K·Of(t).
type Scaled struct {
	K  float64
	Of Func
}

// Eval returns K·Of(t).
func (s Scaled) Eval(t float64) float64 { return s.K * s.Of.Eval(t) }

// Composite is Outer(Inner(t)).
type Composite struct {
	Outer Func
	Inner Func
}

// Eval returns Outer(Inner(t)).
func (c Composite) Eval(t float64) float64 { return c.Outer.Eval(c.Inner.Eval(t)) }

// Sample evaluates f at every point of ts into a new slice.
func Sample(f Func, ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = f.Eval(t)
	}

	return out
}
