package interp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bladegen/interp"
	"github.com/katalvlaran/bladegen/matrix"
	"github.com/stretchr/testify/require"
)

// TestLinspace covers the endpoints, the single-sample case and empty output.
func TestLinspace(t *testing.T) {
	require.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, interp.Linspace(0, 1, 5))
	require.Equal(t, []float64{3}, interp.Linspace(3, 7, 1))
	require.Empty(t, interp.Linspace(0, 1, 0))
	require.Empty(t, interp.Linspace(0, 1, -2))

	desc := interp.Linspace(1, -1, 3)
	require.Equal(t, []float64{1, 0, -1}, desc)
}

// TestFitExactness checks that the fitted polynomial reproduces every knot,
// for every size the pipeline uses.
func TestFitExactness(t *testing.T) {
	cases := []struct {
		name   string
		xs, ys []float64
	}{
		{"two", []float64{0.0737, 0.1905}, []float64{0.209, 0.768}},
		{"three", []float64{0.0737, 0.1321, 0.1905}, []float64{0.33, 0.13, 0.12}},
		{"five-thickness-ratio", interp.Linspace(0.2, 0.6, 5), []float64{1, 1.17, 1.575, 2.325, 3.5}},
		{"six", []float64{-1, -0.5, 0, 0.5, 1, 2}, []float64{3, -1, 0, 2, 5, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := interp.Fit(tc.xs, tc.ys)
			require.NoError(t, err)
			require.Len(t, p, len(tc.xs))
			for i, x := range tc.xs {
				require.InDelta(t, tc.ys[i], p.Eval(x), 1e-9, "knot %d", i)
			}
		})
	}
}

// TestFitRecoversPolynomial checks that samples of a cubic give back its coefficients.
func TestFitRecoversPolynomial(t *testing.T) {
	xs := []float64{-2, -1, 1, 3}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2 - x + 0.5*x*x*x
	}

	p, err := interp.Fit(xs, ys)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2, -1, 0, 0.5}, []float64(p), 1e-9)
}

// TestFitSinglePoint returns a constant without solving.
func TestFitSinglePoint(t *testing.T) {
	p, err := interp.Fit([]float64{0.4}, []float64{-1.25})
	require.NoError(t, err)
	require.Equal(t, -1.25, p.Eval(123))

	_, err = interp.Fit([]float64{0.4}, []float64{math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestFitErrors covers length mismatch, empty input and repeated abscissae.
func TestFitErrors(t *testing.T) {
	_, err := interp.Fit([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, interp.ErrDimensionMismatch)

	_, err = interp.Fit(nil, nil)
	require.ErrorIs(t, err, interp.ErrNoPoints)

	_, err = interp.Fit([]float64{1, 1, 2}, []float64{0, 1, 2})
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestRadial checks hub and tip values of a radial profile.
func TestRadial(t *testing.T) {
	const rHub, rTip = 0.0737, 0.1905
	p, err := interp.Radial(rHub, rTip, []float64{0.33, 0.13, 0.12})
	require.NoError(t, err)

	require.InDelta(t, 0.33, p.Eval(rHub), 1e-9)
	require.InDelta(t, 0.13, p.Eval((rHub+rTip)/2), 1e-9)
	require.InDelta(t, 0.12, p.Eval(rTip), 1e-9)

	_, err = interp.Radial(rHub, rTip, nil)
	require.ErrorIs(t, err, interp.ErrNoPoints)
}
