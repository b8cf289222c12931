package seqs_test

import (
	"lazychain/seqs"
	"slices"
	"testing"
)

// BenchmarkMapFilterFold measures a composed pipeline against the
// equivalent hand-written loop.
func BenchmarkMapFilterFold(b *testing.B) {
	size := 100_000
	input := make([]int, size)
	for i := 0; i < size; i++ {
		input[i] = i
	}

	b.Run("Seqs", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			mapped := seqs.Map(slices.Values(input), func(x int) int { return x * 2 })
			kept := seqs.Filter(mapped, func(x int) bool { return x%3 != 0 })
			_ = seqs.Fold(kept, 0, func(a, v int) int { return a + v })
		}
	})

	b.Run("Loop", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			total := 0
			for _, x := range input {
				v := x * 2
				if v%3 != 0 {
					total += v
				}
			}
			_ = total
		}
	})
}

func BenchmarkUnique(b *testing.B) {
	size := 100_000
	input := make([]int, size)
	for i := 0; i < size; i++ {
		input[i] = i % 1000
	}

	b.Run("Ordered", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = slices.Collect(seqs.Unique(slices.Values(input), true))
		}
	})

	b.Run("Unordered", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = slices.Collect(seqs.Unique(slices.Values(input), false))
		}
	})
}
