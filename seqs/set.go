package seqs

import "iter"

// Unique yields each distinct element of seq exactly once.
//
// With ordered=true the sequence streams: each element is yielded the first
// time it is seen, so first-occurrence order is preserved and memory usage is
// proportional to the number of distinct elements.
//
// With ordered=false the whole source is buffered into a set first and the
// distinct elements are yielded in arbitrary (map iteration) order.
func Unique[T comparable](seq iter.Seq[T], ordered bool) iter.Seq[T] {
	if ordered {
		return func(yield func(T) bool) {
			seen := make(map[T]struct{})
			for v := range seq {
				if _, ok := seen[v]; !ok {
					seen[v] = struct{}{}
					if !yield(v) {
						return
					}
				}
			}
		}
	}
	return func(yield func(T) bool) {
		set := make(map[T]struct{})
		for v := range seq {
			set[v] = struct{}{}
		}
		for v := range set {
			if !yield(v) {
				return
			}
		}
	}
}

// UniqueBy yields the elements of seq whose keys are distinct under the key
// selector. When a key repeats, the element of its first occurrence is the
// one retained, in both ordered and unordered modes.
//
// With ordered=true elements stream in first-occurrence order; with
// ordered=false the retained elements are buffered and yielded in arbitrary
// order.
func UniqueBy[T any, K comparable](seq iter.Seq[T], key func(T) K, ordered bool) iter.Seq[T] {
	if key == nil {
		panic("seqs.UniqueBy: nil key selector")
	}
	if ordered {
		return func(yield func(T) bool) {
			seen := make(map[K]struct{})
			for v := range seq {
				k := key(v)
				if _, ok := seen[k]; !ok {
					seen[k] = struct{}{}
					if !yield(v) {
						return
					}
				}
			}
		}
	}
	return func(yield func(T) bool) {
		kept := make(map[K]T)
		for v := range seq {
			k := key(v)
			if _, ok := kept[k]; !ok {
				kept[k] = v
			}
		}
		for _, v := range kept {
			if !yield(v) {
				return
			}
		}
	}
}

// UniqueFunc is the dedup fallback for element types that cannot be map keys.
// Each new element is compared by eq against all previously retained
// elements, so the cost is O(n²) in the number of distinct elements. The
// result always preserves first-occurrence order.
func UniqueFunc[T any](seq iter.Seq[T], eq func(a, b T) bool) iter.Seq[T] {
	if eq == nil {
		panic("seqs.UniqueFunc: nil equality function")
	}
	return func(yield func(T) bool) {
		var retained []T
	next:
		for v := range seq {
			for _, r := range retained {
				if eq(r, v) {
					continue next
				}
			}
			retained = append(retained, v)
			if !yield(v) {
				return
			}
		}
	}
}
