package airfoil_test

import (
	"testing"

	"github.com/katalvlaran/bladegen/airfoil"
)

var (
	sinkS *airfoil.Section
	sinkF float64
)

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s, err := airfoil.New(cambered)
		if err != nil {
			b.Fatal(err)
		}
		sinkS = s
	}
}

func BenchmarkCentroid(b *testing.B) {
	s := mustSection(b, cambered)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u, _, err := s.Centroid()
		if err != nil {
			b.Fatal(err)
		}
		sinkF = u
	}
}
