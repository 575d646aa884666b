package ranges

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *Range[T]) bool {
	return slices.Equal(a.data, b.data)
}

// Compare compares a and b lexicographically, returning -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Range[T]) int {
	return slices.Compare(a.data, b.data)
}
