package seqs

import "iter"

// Group is one key/members pair produced by GroupBy or GroupRuns.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupBy groups all elements of seq that share a key into a single group,
// regardless of where they appear in the source. Groups are yielded in
// first-occurrence order of their keys, and the members of each group keep
// their source order.
//
// GroupBy must buffer the entire source before yielding anything; it does not
// stream and must not be used on infinite sequences. For a streaming variant
// that only groups adjacent elements, see GroupRuns.
func GroupBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[Group[K, T]] {
	if key == nil {
		panic("seqs.GroupBy: nil key selector")
	}
	return func(yield func(Group[K, T]) bool) {
		index := make(map[K]int)
		var groups []Group[K, T]
		for v := range seq {
			k := key(v)
			i, ok := index[k]
			if !ok {
				i = len(groups)
				index[k] = i
				groups = append(groups, Group[K, T]{Key: k})
			}
			groups[i].Items = append(groups[i].Items, v)
		}
		for _, g := range groups {
			if !yield(g) {
				return
			}
		}
	}
}

// GroupRuns groups consecutive elements of seq that share a key. When the key
// changes, the current group is emitted and a new one is started.
//
// GroupRuns streams and never reorders: it relies on the source already being
// ordered by key if one group per key is desired. A key that repeats in
// non-adjacent runs produces a separate group per run. For example, keying by
// parity:
//
//	1, 3, 2, 2, 5, 3, 4, 6
//
// yields
//
//	(1, [1 3]), (0, [2 2]), (1, [5 3]), (0, [4 6])
func GroupRuns[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[Group[K, T]] {
	if key == nil {
		panic("seqs.GroupRuns: nil key selector")
	}
	return func(yield func(Group[K, T]) bool) {
		var current Group[K, T]
		started := false
		for v := range seq {
			k := key(v)
			if started && k != current.Key {
				if !yield(current) {
					return
				}
				current = Group[K, T]{}
			}
			started = true
			current.Key = k
			current.Items = append(current.Items, v)
		}
		if started {
			yield(current)
		}
	}
}
