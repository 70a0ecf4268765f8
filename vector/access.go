// File: vector/access.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Checked and unchecked element access.

package vector

import (
	"github.com/momentics/hioload-vec/api"
	"github.com/momentics/hioload-vec/internal/assert"
)

// At returns the element at index, or an error wrapping api.ErrOutOfRange
// when index is not within [0, Size()).
func (v *Vector[T]) At(index int) (T, error) {
	if index < 0 || index >= v.size {
		var zero T
		return zero, api.OutOfRange(index, v.size)
	}
	return v.buf.Get(index), nil
}

// Ref is the mutable form of At.
func (v *Vector[T]) Ref(index int) (*T, error) {
	if index < 0 || index >= v.size {
		return nil, api.OutOfRange(index, v.size)
	}
	return v.buf.At(index), nil
}

// Index returns the element at i without validating it against Size().
// Callers guarantee 0 <= i < Size().
func (v *Vector[T]) Index(i int) T {
	assert.InRange(i, 0, v.size, "vector: index out of range")
	return v.buf.Get(i)
}

// Get is Index, for api.Sequence.
func (v *Vector[T]) Get(i int) T { return v.Index(i) }

// Ptr returns a pointer to the element at i. The pointer is invalidated by
// any reallocation.
func (v *Vector[T]) Ptr(i int) *T {
	assert.InRange(i, 0, v.size, "vector: index out of range")
	return v.buf.At(i)
}

// Set stores value at i. Callers guarantee 0 <= i < Size().
func (v *Vector[T]) Set(i int, value T) {
	assert.InRange(i, 0, v.size, "vector: index out of range")
	v.buf.Set(i, value)
}

// Front returns the first element. The vector must not be empty.
func (v *Vector[T]) Front() T {
	assert.That(v.size > 0, "vector: front of empty vector")
	return v.buf.Get(0)
}

// Back returns the last element. The vector must not be empty.
func (v *Vector[T]) Back() T {
	assert.That(v.size > 0, "vector: back of empty vector")
	return v.buf.Get(v.size - 1)
}
