// File: vector/compare.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Structural equality and lexicographic ordering.

package vector

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same size and equal elements at
// every offset. A nil vector equals an empty one.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// NotEqual is !Equal(a, b).
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// Compare orders a and b lexicographically. A vector that is a strict prefix
// of the other sorts first. The result is -1, 0 or +1.
//
// Floating-point elements follow cmp.Compare: NaN sorts before every other
// value and equals itself. Use CompareFunc for a different NaN ordering.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Data(), b.Data())
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T any](a, b *Vector[T], compare func(T, T) int) int {
	return slices.CompareFunc(a.Data(), b.Data(), compare)
}

// Less reports whether a sorts before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual is !(b < a).
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater is b < a.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterOrEqual is !(a < b).
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
