package vector

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-vec/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtBounds(t *testing.T) {
	v := Of(10, 20, 30)

	x, err := v.At(2)
	require.NoError(t, err)
	assert.Equal(t, 30, x)

	_, err = v.At(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrOutOfRange))

	var se *api.Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 3, se.Context["index"])
	assert.Equal(t, 3, se.Context["size"])

	_, err = v.At(-1)
	assert.ErrorIs(t, err, api.ErrOutOfRange)
}

func TestAtRespectsSizeNotCapacity(t *testing.T) {
	v := NewReserved[int](8)
	v.PushBack(1)
	_, err := v.At(1)
	assert.ErrorIs(t, err, api.ErrOutOfRange)
}

func TestRef(t *testing.T) {
	v := Of(1, 2)
	p, err := v.Ref(1)
	require.NoError(t, err)
	*p = 5
	assert.Equal(t, []int{1, 5}, v.Data())

	p, err = v.Ref(2)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, api.ErrOutOfRange)
}

func TestUncheckedAccess(t *testing.T) {
	v := Of("a", "b", "c")
	assert.Equal(t, "b", v.Index(1))

	v.Set(1, "B")
	*v.Ptr(2) = "C"
	assert.Equal(t, []string{"a", "B", "C"}, v.Data())
	assert.Equal(t, "a", v.Front())
	assert.Equal(t, "C", v.Back())
}
