package owned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var b Buffer[int]
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.Len())
	assert.Nil(t, b.Block())
}

func TestNewZeroLengthDoesNotAllocate(t *testing.T) {
	b := New[string](0)
	assert.True(t, b.IsEmpty())
	assert.Nil(t, b.Release())
}

func TestNewDefaultInitialized(t *testing.T) {
	b := New[int](4)
	require.False(t, b.IsEmpty())
	require.Equal(t, 4, b.Len())
	for i := 0; i < b.Len(); i++ {
		assert.Zero(t, b.Get(i))
	}
}

func TestNewNegativePanics(t *testing.T) {
	assert.Panics(t, func() { _ = New[int](-1) })
}

func TestAccessByOffset(t *testing.T) {
	b := New[int](3)
	b.Set(0, 10)
	*b.At(1) = 20
	b.Set(2, 30)
	assert.Equal(t, []int{10, 20, 30}, b.Block())
	assert.Equal(t, []int{20, 30}, b.Slice(1, 3))
	assert.Equal(t, 20, b.Get(1))
}

func TestSliceCapacityIsClipped(t *testing.T) {
	b := New[int](4)
	s := b.Slice(0, 2)
	assert.Equal(t, 2, cap(s))
}

func TestReleaseLeavesEmpty(t *testing.T) {
	b := New[int](2)
	b.Set(1, 7)

	block := b.Release()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, []int{0, 7}, block)

	// Freeing after release must not touch the handed-out block.
	b.Free()
	assert.Equal(t, []int{0, 7}, block)
}

func TestMoveTransfersOwnership(t *testing.T) {
	src := New[int](2)
	src.Set(0, 1)

	dst := src.Move()
	assert.True(t, src.IsEmpty())
	assert.Equal(t, 2, dst.Len())
	assert.Equal(t, 1, dst.Get(0))

	// Destroying the moved-from source is harmless.
	src.Free()
	assert.Equal(t, 1, dst.Get(0))
}

func TestMoveFrom(t *testing.T) {
	dst := New[int](1)
	src := New[int](3)
	src.Set(2, 9)

	dst.MoveFrom(&src)
	assert.True(t, src.IsEmpty())
	assert.Equal(t, 3, dst.Len())
	assert.Equal(t, 9, dst.Get(2))

	dst.MoveFrom(&dst)
	assert.Equal(t, 3, dst.Len(), "self move must keep the block")
}

func TestSwap(t *testing.T) {
	a := New[int](1)
	b := New[int](5)
	a.Set(0, 42)

	a.Swap(&b)
	assert.Equal(t, 5, a.Len())
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 42, b.Get(0))

	var empty Buffer[int]
	a.Swap(&empty)
	assert.True(t, a.IsEmpty())
	assert.Equal(t, 5, empty.Len())
}

func TestFreeIsIdempotent(t *testing.T) {
	b := New[*int](2)
	x := 1
	b.Set(0, &x)
	view := b.Block()

	b.Free()
	assert.True(t, b.IsEmpty())
	assert.Nil(t, view[0], "free clears pointers held by the block")

	b.Free()
	assert.True(t, b.IsEmpty())
}

func TestAdopt(t *testing.T) {
	raw := make([]int, 3, 8)
	raw[0] = 5

	b := Adopt(raw)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 3, cap(b.Block()))
	assert.Equal(t, 5, b.Get(0))

	assert.True(t, func() bool { e := Adopt([]int{}); return e.IsEmpty() }())
}
