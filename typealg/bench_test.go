package typealg_test

import (
	"testing"

	"github.com/katalvlaran/twofold/typealg"
)

// BenchmarkResult_Scalars measures the pure pairing path.
func BenchmarkResult_Scalars(b *testing.B) {
	x := typealg.ScalarFor[int]()
	y := typealg.ScalarFor[float64]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := typealg.Result(x, y); err != nil {
			b.Fatalf("Result failed: %v", err)
		}
	}
}

// BenchmarkFold_FourCandidates measures the fold a dual⊗dual broadcast runs.
func BenchmarkFold_FourCandidates(b *testing.B) {
	intT := typealg.ScalarFor[int]()
	floatT := typealg.ScalarFor[float64]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := typealg.Fold(intT, floatT, intT, floatT); err != nil {
			b.Fatalf("Fold failed: %v", err)
		}
	}
}
