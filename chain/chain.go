package chain

import (
	"iter"
	"slices"
)

// Chain wraps exactly one sequence source and defers all work until the
// chain is forced. Construction takes ownership of the source: the chain
// (or a chain derived from it) becomes its sole consumer, and the source is
// only ever iterated once. Use Persist to opt into re-iteration.
type Chain[T any] struct {
	src iter.Seq[T]
}

// Wrap takes ownership of seq and returns a chain over it.
//
// The source is guarded against double consumption: after a chain over it
// has been forced once, forcing again yields an empty result instead of
// re-running a possibly one-shot producer.
func Wrap[T any](seq iter.Seq[T]) Chain[T] {
	return Chain[T]{src: once(seq)}
}

// FromSlice wraps the elements of s. The chain is still single-pass; the
// slice itself is not retained beyond iteration.
func FromSlice[T any](s []T) Chain[T] {
	return Wrap(slices.Values(s))
}

// once wraps seq so that only the first iteration produces elements.
func once[T any](seq iter.Seq[T]) iter.Seq[T] {
	consumed := false
	return func(yield func(T) bool) {
		if consumed {
			return
		}
		consumed = true
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

// Values exposes the chain's current lazy sequence for direct range-over-func
// iteration. Iterating it counts as the source's single consumption.
func (c Chain[T]) Values() iter.Seq[T] {
	return c.src
}

// Force materializes the chain into an ordered slice. This is the default
// materializer and the point at which the underlying source is consumed.
func (c Chain[T]) Force() []T {
	return slices.Collect(c.src)
}

// Into forces the chain through a caller-supplied materializer, e.g. a
// set-collector or a sink such as seqs.Sum.
func Into[T, R any](c Chain[T], collect func(iter.Seq[T]) R) R {
	if collect == nil {
		panic("chain.Into: nil materializer")
	}
	return collect(c.src)
}

// Persist eagerly materializes the current source into a slice and wraps it
// in a new chain that may be forced or iterated any number of times. This is
// the only supported escape from the single-consumption contract.
func (c Chain[T]) Persist() Chain[T] {
	return Chain[T]{src: slices.Values(slices.Collect(c.src))}
}
