// File: owned/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package owned

import "github.com/momentics/hioload-vec/api"

// Ensure compile-time interface compliance.
var _ api.Owner[any] = (*Buffer[any])(nil)

// Buffer is the sole owner of a fixed-length block of T, or of nothing.
// The zero value is an empty Buffer.
type Buffer[T any] struct {
	_     noCopy
	block []T
}

// New returns a Buffer owning exactly n zero-valued elements.
// n == 0 yields an empty Buffer without allocating; n < 0 panics.
func New[T any](n int) Buffer[T] {
	if n < 0 {
		panic(api.NewError(api.ErrCodeInvalidArgument, "owned: negative length").WithContext("n", n))
	}
	if n == 0 {
		return Buffer[T]{}
	}
	return Buffer[T]{block: make([]T, n)}
}

// Adopt takes ownership of block. The caller must not touch block afterwards.
// A zero-length block yields an empty Buffer.
func Adopt[T any](block []T) Buffer[T] {
	if len(block) == 0 {
		return Buffer[T]{}
	}
	return Buffer[T]{block: block[:len(block):len(block)]}
}

// Len returns the element count of the owned block.
func (b *Buffer[T]) Len() int { return len(b.block) }

// IsEmpty reports whether b owns no storage.
func (b *Buffer[T]) IsEmpty() bool { return b.block == nil }

// At returns a pointer to the element at offset i.
func (b *Buffer[T]) At(i int) *T { return &b.block[i] }

// Get returns the element at offset i.
func (b *Buffer[T]) Get(i int) T { return b.block[i] }

// Set stores v at offset i.
func (b *Buffer[T]) Set(i int, v T) { b.block[i] = v }

// Slice returns a view of [from, to) of the owned block. The view is only
// valid while b keeps owning the block.
func (b *Buffer[T]) Slice(from, to int) []T { return b.block[from:to:to] }

// Block returns the whole owned block without giving up ownership.
func (b *Buffer[T]) Block() []T { return b.block }

// Release hands the block to the caller and leaves b empty. Nothing is freed.
func (b *Buffer[T]) Release() []T {
	block := b.block
	b.block = nil
	return block
}

// Move transfers ownership into a new Buffer and leaves b empty.
func (b *Buffer[T]) Move() Buffer[T] {
	return Buffer[T]{block: b.Release()}
}

// MoveFrom frees b's block, then takes src's block and leaves src empty.
func (b *Buffer[T]) MoveFrom(src *Buffer[T]) {
	if b == src {
		return
	}
	b.Free()
	b.block = src.Release()
}

// Swap exchanges the owned blocks of b and other in constant time.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.block, other.block = other.block, b.block
}

// Free drops the owned block and leaves b empty. Freeing an empty Buffer is a no-op.
// Elements are cleared first so stale views do not pin what they reference.
func (b *Buffer[T]) Free() {
	if b.block == nil {
		return
	}
	clear(b.block)
	b.block = nil
}
