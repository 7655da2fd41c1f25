// Package curve provides small composable real functions of one variable and
// planar parametric curves built from them.
//
// Everything here satisfies a single capability, Func, whose only method is
// Eval(t). Concrete variants cover what the section and blade models need:
//
//   - Polynomial (ascending coefficients) and Power,
//   - Constant, FuncOf and Sinusoid,
//   - the combinators Sum, Scaled and Composite,
//   - Piecewise for functions split at strictly increasing bounds.
//
// Curve pairs two Funcs into a planar (U, W) curve. Trapezoid integrates any
// Func numerically. IntPow is the integer power every Polynomial and integral
// Power goes through.
//
// There is no symbolic simplification or differentiation: combinators
// evaluate their operands on every call.
//
//	p := curve.Polynomial{1, 0, 3} // 1 + 3t²
//	f := curve.Composite{Outer: curve.Sinusoid{Kind: curve.Sin, Amp: 1, Freq: 1}, Inner: p}
//	y := f.Eval(0.5)              // sin(1.75)
package curve
