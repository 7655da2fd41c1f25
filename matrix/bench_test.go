// Package matrix_test provides benchmarks for the cofactor kernels,
// using deterministic dominant fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/bladegen/matrix"
)

// benchSizes are the system sizes the blade pipeline actually solves.
var benchSizes = []int{2, 3, 5, 6}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV matrix.Vector
	sinkF float64
)

func BenchmarkDet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDominant(b, A, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Det(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDominant(b, A, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDominant(b, A, 11)
			rhs := randVec(n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := matrix.Solve(A, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}
