// File: vector/vector.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vector

import (
	"fmt"
	"reflect"

	"github.com/momentics/hioload-vec/api"
	"github.com/momentics/hioload-vec/internal/assert"
	"github.com/momentics/hioload-vec/owned"
)

// Ensure compile-time interface compliance.
var _ api.Sequence[int] = (*Vector[int])(nil)

// Cloner is implemented by element types that need a deep copy when a vector
// is copied. Elements that do not implement it are copied by assignment.
type Cloner[T any] interface {
	Clone() T
}

// Vector is a growable array of T. The zero value is an empty vector ready to use.
type Vector[T any] struct {
	size     int
	capacity int
	buf      owned.Buffer[T]
	observer api.GrowthObserver
	layout   uint64 // bumped on every size or storage change; guards iteration
}

// New returns an empty vector.
func New[T any](opts ...Option) *Vector[T] {
	return newVector[T](0, buildOptions(opts))
}

// NewSized returns a vector of n zero-valued elements.
func NewSized[T any](n int, opts ...Option) *Vector[T] {
	assert.That(n >= 0, "vector: negative size", "n", n)
	return newVector[T](n, buildOptions(opts))
}

// NewFilled returns a vector of n copies of value.
func NewFilled[T any](n int, value T, opts ...Option) *Vector[T] {
	assert.That(n >= 0, "vector: negative size", "n", n)
	v := newVector[T](n, buildOptions(opts))
	live := v.Data()
	for i := range live {
		live[i] = cloneElem(value)
	}
	return v
}

// NewReserved returns an empty vector with capacity for exactly n elements.
func NewReserved[T any](n int, opts ...Option) *Vector[T] {
	assert.That(n >= 0, "vector: negative capacity", "n", n)
	o := buildOptions(opts)
	o.reserve = max(o.reserve, n)
	return newVector[T](0, o)
}

// Of returns a vector holding copies of values, in order. Size and capacity
// both equal len(values).
func Of[T any](values ...T) *Vector[T] {
	v := newVector[T](len(values), options{})
	cloneInto(v.Data(), values)
	return v
}

func newVector[T any](size int, o options) *Vector[T] {
	v := &Vector[T]{observer: o.observer}
	capacity := max(size, o.reserve)
	if capacity > 0 {
		v.buf = owned.New[T](capacity)
	}
	v.size = size
	v.capacity = capacity
	return v
}

// Clone returns a deep copy of v: same size and contents in a freshly
// allocated buffer whose capacity equals the size. The growth observer is
// carried over. Cloning a nil vector yields nil.
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return nil
	}
	c := &Vector[T]{observer: v.observer}
	if v.size > 0 {
		c.buf = owned.New[T](v.size)
		cloneInto(c.buf.Block(), v.Data())
	}
	c.size = v.size
	c.capacity = v.size
	return c
}

// Move transfers v's storage, size and capacity into a new vector. v is left
// valid and empty, with size and capacity 0.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{
		size:     v.size,
		capacity: v.capacity,
		observer: v.observer,
	}
	m.buf = v.buf.Move()
	v.size, v.capacity = 0, 0
	v.layout++
	return m
}

// CopyFrom replaces v's contents with a copy of src. A fresh copy is built
// first and swapped in, so v keeps its old state if copying an element panics.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := src.Clone()
	tmp.observer = v.observer
	v.Swap(tmp)
	tmp.Free()
}

// MoveFrom frees v's storage and takes over src's storage, size and capacity.
// src is left empty.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.buf.MoveFrom(&src.buf)
	v.size, v.capacity = src.size, src.capacity
	src.size, src.capacity = 0, 0
	v.layout++
	src.layout++
}

// Swap exchanges size, capacity, storage and observer of v and other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
	v.observer, other.observer = other.observer, v.observer
	v.buf.Swap(&other.buf)
	v.layout++
	other.layout++
}

// Free drops the storage and leaves v empty with capacity 0. Calling Free
// more than once is harmless.
func (v *Vector[T]) Free() {
	v.buf.Free()
	v.size, v.capacity = 0, 0
	v.layout++
}

// SetObserver replaces the growth observer; nil disables reporting.
func (v *Vector[T]) SetObserver(obs api.GrowthObserver) {
	v.observer = obs
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Len is Size, for api.Sequence.
func (v *Vector[T]) Len() int { return v.Size() }

// Capacity returns the number of elements the current storage can hold.
func (v *Vector[T]) Capacity() int {
	if v == nil {
		return 0
	}
	return v.capacity
}

// IsEmpty reports whether the vector holds no live elements.
func (v *Vector[T]) IsEmpty() bool { return v.Size() == 0 }

// Data returns the live elements as a slice sharing the vector's storage.
// The slice is invalidated by any reallocation.
func (v *Vector[T]) Data() []T {
	if v == nil || v.size == 0 {
		return nil
	}
	return v.buf.Slice(0, v.size)
}

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Data())
}

// cloneElem deep-copies x through Cloner. Nil pointers are copied as is so
// pointer-receiver Clone methods are never called on nil.
func cloneElem[T any](x T) T {
	c, ok := any(x).(Cloner[T])
	if !ok {
		return x
	}
	if rv := reflect.ValueOf(c); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return x
	}
	return c.Clone()
}

func cloneInto[T any](dst, src []T) {
	for i := range src {
		dst[i] = cloneElem(src[i])
	}
}
