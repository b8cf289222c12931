/*
Package chain wraps a single-use sequence source in a fluent, lazily
evaluated transformation pipeline.

A [Chain] is an immutable handle on one iter.Seq source. Transformations
(Map, Filter, GroupBy, …) each return a new Chain over a lazily derived
sequence; nothing is computed until the chain is forced. Forcing — via
[Chain.Force], [Into], or ranging over [Chain.Values] — is the single point
at which the underlying source is consumed.

	got := chain.Map(
		chain.Filter(chain.FromSlice([]int{2, 0, -3, 5, 7}),
			func(v int) bool { return v > 0 }),
		func(v int) int { return v * 10 },
	).Force() // [20 50 70]

# Single consumption

A wrapped source is consumed at most once: forcing any chain over it a
second time yields an empty result. [Chain.Persist] is the one escape —
it materializes the current sequence into a slice and returns a chain that
may be forced repeatedly.

# Templates

A [Template] is a reusable pipeline fragment: a function from a source
sequence to a derived sequence whose source is bound late, by
[Chain.Apply] or [ApplyTo].

# Errors

Misuse (nil transform, predicate, key selector, template, or materializer;
zero Enumerate step) panics eagerly at the call site, before any element is
consumed. There is no recovery layer; the caller sees the original failure.
*/
package chain
