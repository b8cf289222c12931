package chain

import (
	"iter"

	"lazychain/fn"
	"lazychain/seqs"
)

// Transformations are package-level functions rather than methods because a
// method cannot introduce new type parameters. Each one returns a new Chain
// over a lazily derived sequence; the input chain's source is consumed when
// the derived chain is forced.

// Map applies transform to each element.
func Map[T, R any](c Chain[T], transform func(T) R) Chain[R] {
	return Chain[R]{src: seqs.Map(c.src, transform)}
}

// Filter keeps the elements that satisfy predicate.
func Filter[T any](c Chain[T], predicate func(T) bool) Chain[T] {
	return Chain[T]{src: seqs.Filter(c.src, predicate)}
}

// Reject drops the elements that satisfy predicate; it is the logical
// complement of Filter.
func Reject[T any](c Chain[T], predicate func(T) bool) Chain[T] {
	return Chain[T]{src: seqs.Reject(c.src, predicate)}
}

// Unique keeps each distinct element once. See seqs.Unique for the ordered
// and unordered modes.
func Unique[T comparable](c Chain[T], ordered bool) Chain[T] {
	return Chain[T]{src: seqs.Unique(c.src, ordered)}
}

// UniqueBy keeps the first element seen for each distinct key.
func UniqueBy[T any, K comparable](c Chain[T], key func(T) K) Chain[T] {
	return Chain[T]{src: seqs.UniqueBy(c.src, key, true)}
}

// UniqueFunc deduplicates with an equality function instead of map keys;
// O(n²) in the number of distinct elements.
func UniqueFunc[T any](c Chain[T], eq func(a, b T) bool) Chain[T] {
	return Chain[T]{src: seqs.UniqueFunc(c.src, eq)}
}

// Zip pairs the chain's elements positionally with another sequence,
// stopping at the shorter of the two.
func Zip[T, U any](c Chain[T], other iter.Seq[U]) Chain[seqs.Pair[T, U]] {
	return Chain[seqs.Pair[T, U]]{src: seqs.Zip(c.src, other)}
}

// Enumerate pairs each element with a counter value start, start+step, …
// A zero step panics.
func Enumerate[T any](c Chain[T], start, step int) Chain[seqs.Pair[int, T]] {
	if step == 0 {
		panic("chain.Enumerate: zero step")
	}
	return Chain[seqs.Pair[int, T]]{src: seqs.Zip(seqs.CountFrom(start, step), c.src)}
}

// GroupBy merges all same-key elements into one group per key, in
// first-occurrence order of keys. Buffers the whole source.
func GroupBy[T any, K comparable](c Chain[T], key func(T) K) Chain[seqs.Group[K, T]] {
	return Chain[seqs.Group[K, T]]{src: seqs.GroupBy(c.src, key)}
}

// GroupRuns groups only adjacent same-key elements; one group per run.
// Streams, but leaves pre-sorting by key to the caller.
func GroupRuns[T any, K comparable](c Chain[T], key func(T) K) Chain[seqs.Group[K, T]] {
	return Chain[seqs.Group[K, T]]{src: seqs.GroupRuns(c.src, key)}
}

// Take bounds the chain to its first n elements.
func Take[T any](c Chain[T], n int) Chain[T] {
	return Chain[T]{src: seqs.Take(c.src, n)}
}

// Skip drops the chain's first n elements.
func Skip[T any](c Chain[T], n int) Chain[T] {
	return Chain[T]{src: seqs.Skip(c.src, n)}
}

// Tap runs action on each element as it flows through, without modifying
// the stream. Useful for debugging.
func (c Chain[T]) Tap(action func(T)) Chain[T] {
	return Chain[T]{src: seqs.Peek(c.src, action)}
}

// Fold eagerly folds the chain left-to-right from initial, consuming the
// entire source.
func Fold[T any](c Chain[T], initial T, f func(T, T) T) T {
	return seqs.Fold(c.src, initial, f)
}

// FoldTo is Fold with an accumulator type different from the element type.
func FoldTo[T, R any](c Chain[T], initial R, f func(R, T) R) R {
	return seqs.Fold(c.src, initial, f)
}

// FoldWith returns a function that takes the initial value and performs the
// fold when invoked; the source is not consumed until then.
func FoldWith[T, R any](c Chain[T], f func(R, T) R) func(R) R {
	return seqs.FoldWith(c.src, f)
}

// FoldCurried is FoldWith for a fold function in curried form, as produced
// by fn.Curry2.
func FoldCurried[T, R any](c Chain[T], f func(R) func(T) R) func(R) R {
	if f == nil {
		panic("chain.FoldCurried: nil fold function")
	}
	return seqs.FoldWith(c.src, fn.Uncurry2(f))
}
