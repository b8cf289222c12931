package seqs

import "iter"

// Filter applies predicate to each element of seq, yielding only those that satisfy the predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	if predicate == nil {
		panic("seqs.Filter: nil predicate")
	}
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Reject is the complement of Filter: it yields only the elements that do NOT
// satisfy the predicate.
func Reject[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	if predicate == nil {
		panic("seqs.Reject: nil predicate")
	}
	return func(yield func(T) bool) {
		for v := range seq {
			if !predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// TryFilter returns a sequence of elements that satisfy the predicate.
// The predicate function can return an error.
//
// The resulting sequence yields pairs of (element, error).
// If the predicate returns an error:
//   - The error is yielded to the consumer along with the element 'v' that caused it.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TryFilter[T any](seq iter.Seq[T], predicate func(T) (bool, error)) iter.Seq2[T, error] {
	if predicate == nil {
		panic("seqs.TryFilter: nil predicate")
	}
	return func(yield func(T, error) bool) {
		for v := range seq {
			keep, err := predicate(v)
			if err != nil {
				if !yield(v, err) {
					return
				}
				continue
			}

			if keep {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}

// Map applies transform to each element of seq, yielding the transformed elements.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	if transform == nil {
		panic("seqs.Map: nil transform")
	}
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// TryMap applies transform to each element of seq, yielding the transformed elements.
// The transform function can return an error.
// The resulting sequence yields pairs of (transformed element, error).
// If transform returns an error:
//   - The error is yielded to the consumer along with a zero-value of type R.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TryMap[T, R any](seq iter.Seq[T], transform func(T) (R, error)) iter.Seq2[R, error] {
	if transform == nil {
		panic("seqs.TryMap: nil transform")
	}
	return func(yield func(R, error) bool) {
		for v := range seq {
			res, err := transform(v)
			if !yield(res, err) {
				return
			}
		}
	}
}

// Fold accumulates the elements of seq with a left-to-right fold, starting
// from the initial value. Elements are consumed in sequence order, so the
// result is deterministic for any f, associative or not.
func Fold[T, R any](seq iter.Seq[T], initial R, f func(R, T) R) R {
	if f == nil {
		panic("seqs.Fold: nil fold function")
	}
	acc := initial
	for v := range seq {
		acc = f(acc, v)
	}
	return acc
}

// FoldWith returns a function that takes an initial value and performs the
// left fold of seq when invoked, deferring both the initial value and the
// consumption of the source.
func FoldWith[T, R any](seq iter.Seq[T], f func(R, T) R) func(R) R {
	if f == nil {
		panic("seqs.FoldWith: nil fold function")
	}
	return func(initial R) R {
		return Fold(seq, initial, f)
	}
}

// TryFold accumulates the elements of seq like Fold, but f may return an
// error, which stops the fold immediately and is returned alongside the
// partial accumulator.
func TryFold[T, R any](seq iter.Seq[T], initial R, f func(R, T) (R, error)) (R, error) {
	if f == nil {
		panic("seqs.TryFold: nil fold function")
	}
	acc := initial
	for v := range seq {
		var err error
		acc, err = f(acc, v)
		if err != nil {
			return acc, err
		}
	}
	return acc, nil
}
