package chain

import "iter"

// Template is a parametrized lazy-sequence expression: a function from a
// source sequence to a derived sequence. The parameter is the template's
// single rebindable source; Apply binds it to a chain's current source.
//
// Building one usually means closing over everything except the source:
//
//	doubled := chain.Template[int](func(src iter.Seq[int]) iter.Seq[int] {
//		return seqs.Map(src, func(v int) int { return v * 2 })
//	})
type Template[T any] func(iter.Seq[T]) iter.Seq[T]

// Apply rebinds the template's source to the chain's current source and
// wraps the derived sequence in a new chain. The template is not invoked
// until then; a nil template panics immediately.
func (c Chain[T]) Apply(t Template[T]) Chain[T] {
	if t == nil {
		panic("chain.Apply: nil template")
	}
	return Chain[T]{src: t(c.src)}
}

// ApplyTo is Apply for templates whose derived sequence has a different
// element type.
func ApplyTo[T, U any](c Chain[T], t func(iter.Seq[T]) iter.Seq[U]) Chain[U] {
	if t == nil {
		panic("chain.ApplyTo: nil template")
	}
	return Chain[U]{src: t(c.src)}
}
