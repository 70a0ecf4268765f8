// File: vector/iter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Range-over-func traversals of the live elements. Each call starts a new
// traversal. Changing the size or storage of the vector while a traversal is
// running is a contract violation and trips an assertion on the next step.
// A nil vector yields nothing.

package vector

import (
	"iter"

	"github.com/momentics/hioload-vec/internal/assert"
)

const modifiedMsg = "vector: modified during iteration"

// All yields (offset, element) pairs in offset order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v == nil {
			return
		}
		layout := v.layout
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.Get(i)) {
				return
			}
			assert.That(v.layout == layout, modifiedMsg, "offset", i)
		}
	}
}

// Values yields the elements in offset order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward yields (offset, element) pairs from the last element to the first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v == nil {
			return
		}
		layout := v.layout
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf.Get(i)) {
				return
			}
			assert.That(v.layout == layout, modifiedMsg, "offset", i)
		}
	}
}

// Mutable yields (offset, pointer) pairs in offset order. Writes through the
// pointer update the vector in place.
func (v *Vector[T]) Mutable() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		if v == nil {
			return
		}
		layout := v.layout
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.At(i)) {
				return
			}
			assert.That(v.layout == layout, modifiedMsg, "offset", i)
		}
	}
}
