/*
Package seqs provides lazy, pull-based combinators for Go 1.23+ iterators
(iter.Seq).

Every transformation is demand-driven: nothing is computed until the
resulting sequence is iterated, and each step pulls one element at a time
from its upstream source. The package includes:

  - **Transformations**: [Map], [Filter], [Reject], [FlatMap], [Zip],
    [Concat], [Scan], [Peek].
  - **Deduplication and grouping**: [Unique], [UniqueBy], [UniqueFunc],
    [GroupBy], [GroupRuns].
  - **Folds**: [Fold], [FoldWith] (deferred initial value), [TryFold].
  - **Counters and generators**: [Enumerate], [CountFrom], [Range], [Repeat].
  - **Flow control**: [Take], [Skip], [TakeWhile], [DropWhile].
  - **Sinks**: [First], [Last], [Any], [All], [Count], [Sum], [Min], [Max].

# Error Handling

Functions handed a nil transform, predicate, or key selector panic
immediately, before any element of the source is consumed. Data-dependent
failures are handled by the "Try" variants ([TryMap], [TryFilter],
[TryFold]), which surface errors as values to the consumer.

# Buffering

Most combinators stream. The exceptions are documented per function:
[GroupBy] and the unordered modes of [Unique] and [UniqueBy] buffer the
entire source before yielding, and must not be used on infinite sequences.

All evaluation is single-threaded and synchronous; no combinator spawns
goroutines.
*/
package seqs
