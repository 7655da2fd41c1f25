// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures for the kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bladegen/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for round-trip checks on well-conditioned
// systems of size ≤ 6.
const tol = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the copy-to-Dense path inside the kernels.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return m
}

// fillDominant fills m (n×n) with seeded values in [-1,1) and then makes the
// diagonal strictly dominant, which guarantees a non-singular system.
func fillDominant(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(tb, m.Set(i, j, 2*rng.Float64()-1))
		}
		require.NoError(tb, m.Set(i, i, float64(n)+rng.Float64()))
	}
}

// randVec returns a seeded vector of length n with entries in [-5,5).
func randVec(n int, seed int64) matrix.Vector {
	rng := rand.New(rand.NewSource(seed))
	v := make(matrix.Vector, n)
	for i := range v {
		v[i] = 10*rng.Float64() - 5
	}

	return v
}
