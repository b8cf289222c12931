package seqs_test

import (
	"lazychain/seqs"
	"slices"
	"testing"
)

func TestUnique(t *testing.T) {
	input := []int{3, 0, 5, 7, 0, 4, 3, 4}

	t.Run("Ordered", func(t *testing.T) {
		got := slices.Collect(seqs.Unique(slices.Values(input), true))
		if !slices.Equal(got, []int{3, 0, 5, 7, 4}) {
			t.Errorf("Unique(ordered) = %v, want first-occurrence order", got)
		}
	})

	t.Run("Unordered", func(t *testing.T) {
		got := slices.Collect(seqs.Unique(slices.Values(input), false))
		// Arbitrary order: compare as sets.
		slices.Sort(got)
		if !slices.Equal(got, []int{0, 3, 4, 5, 7}) {
			t.Errorf("Unique(unordered) as set = %v, want [0 3 4 5 7]", got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		got := slices.Collect(seqs.Unique(slices.Values([]int{}), true))
		if len(got) != 0 {
			t.Errorf("Unique(empty) = %v, want empty", got)
		}
	})
}

func TestUniqueOrderedStreams(t *testing.T) {
	// The ordered mode must not buffer: it should work on an unbounded
	// source as long as the consumer stops pulling.
	got := slices.Collect(seqs.Take(seqs.Unique(seqs.CountFrom(0, 1), true), 3))
	if !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("Unique over infinite source = %v, want [0 1 2]", got)
	}
}

func TestUniqueBy(t *testing.T) {
	t.Run("Mod3", func(t *testing.T) {
		input := []int{3, 0, 5, 7, 0, 4, 3, 4}
		got := slices.Collect(seqs.UniqueBy(slices.Values(input), func(x int) int { return x % 3 }, true))
		if !slices.Equal(got, []int{3, 5, 7}) {
			t.Errorf("UniqueBy(%%3) = %v, want [3 5 7]", got)
		}
	})

	t.Run("ByLength", func(t *testing.T) {
		input := []string{"apple", "scream", "white", "bay", "pea"}
		got := slices.Collect(seqs.UniqueBy(slices.Values(input), func(s string) int { return len(s) }, true))
		if !slices.Equal(got, []string{"apple", "scream", "bay"}) {
			t.Errorf("UniqueBy(len) = %v, want first string per length", got)
		}
	})

	t.Run("UnorderedRetainsFirst", func(t *testing.T) {
		input := []string{"apple", "scream", "white", "bay", "pea"}
		got := slices.Collect(seqs.UniqueBy(slices.Values(input), func(s string) int { return len(s) }, false))
		slices.Sort(got)
		if !slices.Equal(got, []string{"apple", "bay", "scream"}) {
			t.Errorf("UniqueBy(unordered) as set = %v, want first occurrences", got)
		}
	})
}

func TestUniqueFunc(t *testing.T) {
	// Slices are not comparable; dedup through an equality function.
	input := [][]int{{1, 2}, {3}, {1, 2}, {}, {3}}
	got := slices.Collect(seqs.UniqueFunc(slices.Values(input), slices.Equal))

	want := [][]int{{1, 2}, {3}, {}}
	if len(got) != len(want) {
		t.Fatalf("UniqueFunc = %v, want %v", got, want)
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("UniqueFunc[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
