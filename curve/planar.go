// SPDX-License-Identifier: MIT

package curve

// Curve is a planar parametric curve t ↦ (U(t), W(t)).
type Curve struct {
	U Func
	W Func
}

// At returns both coordinates at t.
func (c Curve) At(t float64) (u, w float64) {
	return c.U.Eval(t), c.W.Eval(t)
}

