// File: vector/mutate.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Size-changing operations and the growth policy.

package vector

import (
	"unsafe"

	"github.com/momentics/hioload-vec/api"
	"github.com/momentics/hioload-vec/internal/assert"
	"github.com/momentics/hioload-vec/owned"
)

// noGap marks a reallocation that keeps every element at its offset.
const noGap = -1

// nextCapacity is the append/insert growth step.
func nextCapacity(old int) int {
	return max(1, old*2)
}

// targetCapacity is the growth step when a specific size is requested.
func targetCapacity(requested, old int) int {
	return max(requested, old*2)
}

// PushBack appends value at offset Size().
func (v *Vector[T]) PushBack(value T) {
	if v.size == v.capacity {
		v.reallocate(nextCapacity(v.capacity), api.GrowPushBack, noGap)
	}
	v.buf.Set(v.size, value)
	v.size++
	v.layout++
}

// Insert shifts the elements at and after pos one slot right and stores
// value at pos. pos must be within [0, Size()]; pos == Size() appends.
// It returns pos, the offset of the inserted element.
func (v *Vector[T]) Insert(pos int, value T) int {
	assert.That(pos >= 0 && pos <= v.size, "vector: insert position out of range", "pos", pos, "size", v.size)
	if v.size == v.capacity {
		v.reallocate(nextCapacity(v.capacity), api.GrowInsert, pos)
	} else {
		tail := v.buf.Slice(pos, v.size+1)
		copy(tail[1:], tail)
	}
	v.buf.Set(pos, value)
	v.size++
	v.layout++
	return pos
}

// PopBack removes the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	assert.That(v.size > 0, "vector: pop from empty vector")
	v.size--
	var zero T
	v.buf.Set(v.size, zero)
	v.layout++
}

// Erase removes the element at pos, shifting later elements one slot left.
// pos must be within [0, Size()). It returns pos, which now holds the element
// that followed the erased one (or equals Size() if the last was erased).
func (v *Vector[T]) Erase(pos int) int {
	assert.That(v.size > 0, "vector: erase from empty vector")
	assert.InRange(pos, 0, v.size, "vector: erase position out of range")
	live := v.buf.Slice(0, v.size)
	copy(live[pos:], live[pos+1:])
	v.size--
	var zero T
	v.buf.Set(v.size, zero)
	v.layout++
	return pos
}

// Reserve grows the capacity to exactly n when n exceeds it. Size and
// contents are unchanged; n <= Capacity() is a no-op.
func (v *Vector[T]) Reserve(n int) {
	if n > v.capacity {
		v.reallocate(n, api.GrowReserve, noGap)
	}
}

// Resize sets the size to n. Newly exposed slots are zero-valued; shrinking
// only lowers the size. Capacity grows to max(n, 2*Capacity()) when n exceeds it.
func (v *Vector[T]) Resize(n int) {
	assert.That(n >= 0, "vector: negative size", "n", n)
	if n > v.capacity {
		v.reallocate(targetCapacity(n, v.capacity), api.GrowResize, noGap)
	}
	if n > v.size {
		// Slots past size may hold stale values after Clear.
		clear(v.buf.Slice(v.size, n))
	}
	if n != v.size {
		v.size = n
		v.layout++
	}
}

// Clear sets the size to 0. Capacity and storage are kept.
func (v *Vector[T]) Clear() {
	v.size = 0
	v.layout++
}

// reallocate moves the live elements into a new buffer of newCap slots and
// frees the old one. With gap >= 0, elements at and after gap land one slot
// to the right, leaving gap free for an insert.
func (v *Vector[T]) reallocate(newCap int, cause api.GrowCause, gap int) {
	next := owned.New[T](newCap)
	live := v.buf.Slice(0, v.size)
	if gap == noGap {
		copy(next.Block(), live)
	} else {
		copy(next.Slice(0, gap), live[:gap])
		copy(next.Slice(gap+1, v.size+1), live[gap:])
	}

	oldCap := v.capacity
	v.buf.Swap(&next)
	next.Free()
	v.capacity = newCap
	v.layout++

	if v.observer != nil {
		var zero T
		v.observer.ObserveGrowth(api.GrowthEvent{
			Cause:       cause,
			OldCapacity: oldCap,
			NewCapacity: newCap,
			Moved:       v.size,
			ElemSize:    unsafe.Sizeof(zero),
		})
	}
}
