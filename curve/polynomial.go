// SPDX-License-Identifier: MIT

package curve

import (
	"strconv"
	"strings"
)

// Polynomial holds coefficients in ascending order of power:
// p[0] + p[1]·t + p[2]·t² + ...
//
// A nil or empty Polynomial is the zero function.
type Polynomial []float64

// Eval evaluates Σ p[i]·t^i term by term in ascending order, each power
// taken with IntPow.
//
// Complexity: O(len(p)²) multiplications; len(p) never exceeds nine here.
func (p Polynomial) Eval(t float64) float64 {
	acc := 0.0
	for i, c := range p {
		acc += c * IntPow(t, i)
	}

	return acc
}

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}

	return -1
}

// String renders the polynomial as "c0 + c1·t + c2·t^2", skipping zero terms.
func (p Polynomial) String() string {
	var b strings.Builder
	for i, c := range p {
		if c == 0 {
			continue
		}
		if b.Len() > 0 {
			if c < 0 {
				b.WriteString(" - ")
				c = -c
			} else {
				b.WriteString(" + ")
			}
		}
		b.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		switch i {
		case 0:
		case 1:
			b.WriteString("·t")
		default:
			b.WriteString("·t^")
			b.WriteString(strconv.Itoa(i))
		}
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}
