package seqs

import "iter"

// Enumerate pairs each element of seq with a counter value start,
// start+step, start+2*step, … For start=0 and step=1 this is ordinary
// enumeration. The counter sequence is infinite, so the result always stops
// with the source.
//
// Enumerate is implemented by zipping a CountFrom counter against the
// source; a zero step is a contract violation and panics.
func Enumerate[T any](seq iter.Seq[T], start, step int) iter.Seq2[int, T] {
	if step == 0 {
		panic("seqs.Enumerate: zero step")
	}
	return func(yield func(int, T) bool) {
		for p := range Zip(CountFrom(start, step), seq) {
			if !yield(p.V1, p.V2) {
				return
			}
		}
	}
}
