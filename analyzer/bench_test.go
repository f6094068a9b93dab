package analyzer_test

import (
	"testing"

	"github.com/katalvlaran/seacanal/analyzer"
)

// BenchmarkFindPatterns_Alternating measures the plain search on a long
// two-phase sequence.
func BenchmarkFindPatterns_Alternating(b *testing.B) {
	seq := make([]int64, 0, 200)
	for i := 0; i < 100; i++ {
		seq = append(seq, 2, 4)
	}
	a := analyzer.FromSlice(seq)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.FindPatterns(8)
	}
}

// BenchmarkFindPatterns_Meta measures meta search with nested increments at
// two offsets.
func BenchmarkFindPatterns_Meta(b *testing.B) {
	seq := []int64{0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0}
	for _, par := range []int{1, 4} {
		a := analyzer.New(seq, analyzer.WithMeta(), analyzer.WithParallelism(par))
		b.Run(map[int]string{1: "sequential", 4: "parallel"}[par], func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = a.FindPatterns(4)
			}
		})
	}
}
