//go:build !vecrelease

package vector

import (
	"testing"

	"github.com/momentics/hioload-vec/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requirePrecondition(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a precondition panic")
		err, ok := r.(*api.Error)
		require.True(t, ok, "panic value %T is not *api.Error", r)
		assert.Equal(t, api.ErrCodePrecondition, err.Code)
	}()
	fn()
}

func TestPopBackEmptyAsserts(t *testing.T) {
	requirePrecondition(t, func() { New[int]().PopBack() })
}

func TestEraseEmptyAsserts(t *testing.T) {
	requirePrecondition(t, func() { New[int]().Erase(0) })
}

func TestEraseEndAsserts(t *testing.T) {
	requirePrecondition(t, func() { Of(1, 2).Erase(2) })
}

func TestInsertPastEndAsserts(t *testing.T) {
	requirePrecondition(t, func() { Of(1, 2).Insert(3, 0) })
	requirePrecondition(t, func() { Of(1, 2).Insert(-1, 0) })
}

func TestUncheckedIndexAsserts(t *testing.T) {
	v := NewReserved[int](4)
	v.PushBack(1)
	requirePrecondition(t, func() { v.Index(1) })
	requirePrecondition(t, func() { v.Set(1, 0) })
	requirePrecondition(t, func() { v.Ptr(-1) })
}

func TestFrontBackEmptyAsserts(t *testing.T) {
	requirePrecondition(t, func() { New[int]().Front() })
	requirePrecondition(t, func() { New[int]().Back() })
}

func TestNegativeSizesAssert(t *testing.T) {
	requirePrecondition(t, func() { NewSized[int](-1) })
	requirePrecondition(t, func() { NewReserved[int](-1) })
	requirePrecondition(t, func() { New[int]().Resize(-1) })
}

func TestModifiedDuringIterationAsserts(t *testing.T) {
	v := Of(1, 2, 3)
	requirePrecondition(t, func() {
		for range v.All() {
			v.PushBack(4)
		}
	})

	w := Of(1, 2, 3)
	requirePrecondition(t, func() {
		for range w.Mutable() {
			w.Erase(0)
		}
	})
}

func TestWritesDuringIterationAllowed(t *testing.T) {
	v := Of(1, 2, 3)
	assert.NotPanics(t, func() {
		for i, x := range v.All() {
			v.Set(i, x+1)
		}
	})
	assert.Equal(t, []int{2, 3, 4}, v.Data())
}
