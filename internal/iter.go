package internal

import (
	"iter"
	"slices"
)

// Permutations yields every ordering of items, in Heap's algorithm order.
// Each yielded slice is a fresh copy the consumer may keep.
func Permutations[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		work := slices.Clone(items)
		n := len(work)
		if !yield(slices.Clone(work)) {
			return
		}

		c := make([]int, n)
		for i := 0; i < n; {
			if c[i] < i {
				if i%2 == 0 {
					work[0], work[i] = work[i], work[0]
				} else {
					work[c[i]], work[i] = work[i], work[c[i]]
				}
				if !yield(slices.Clone(work)) {
					return
				}
				c[i]++
				i = 0
			} else {
				c[i] = 0
				i++
			}
		}
	}
}
