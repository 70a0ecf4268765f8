package vector

import (
	"cmp"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualSameLiteral(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(1, 2, 3)
	assert.True(t, Equal(a, b))
	assert.False(t, NotEqual(a, b))
	assert.Equal(t, 0, Compare(a, b))
}

func TestEqualIgnoresCapacity(t *testing.T) {
	a := Of(1, 2)
	b := NewReserved[int](16)
	b.PushBack(1)
	b.PushBack(2)
	assert.True(t, Equal(a, b))
}

func TestLongerSortsAfterEqualPrefix(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(1, 2, 3)
	b.PushBack(4)

	assert.False(t, Equal(a, b))
	assert.True(t, NotEqual(a, b))
	assert.True(t, Less(a, b))
	assert.True(t, LessOrEqual(a, b))
	assert.False(t, Greater(a, b))
	assert.False(t, GreaterOrEqual(a, b))
	assert.True(t, Greater(b, a))
	assert.True(t, GreaterOrEqual(b, a))
}

func TestLexicographicOrder(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"both empty", nil, nil, 0},
		{"empty first", nil, []int{0}, -1},
		{"first element decides", []int{2}, []int{1, 9, 9}, 1},
		{"later element decides", []int{1, 2, 3}, []int{1, 2, 4}, -1},
		{"equal", []int{5, 5}, []int{5, 5}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := Of(tt.a...), Of(tt.b...)
			assert.Equal(t, tt.want, Compare(a, b))
			assert.Equal(t, -tt.want, Compare(b, a))
			assert.Equal(t, tt.want < 0, Less(a, b))
			assert.Equal(t, tt.want <= 0, LessOrEqual(a, b))
			assert.Equal(t, tt.want > 0, Greater(a, b))
			assert.Equal(t, tt.want >= 0, GreaterOrEqual(a, b))
		})
	}
}

func TestNilEqualsEmpty(t *testing.T) {
	var a *Vector[int]
	assert.True(t, Equal(a, New[int]()))
	assert.Equal(t, 0, Compare(a, New[int]()))
}

func TestFuncVariants(t *testing.T) {
	a := Of("Go", "VEC")
	b := Of("go", "vec")
	assert.False(t, Equal(a, b))
	assert.True(t, EqualFunc(a, b, strings.EqualFold))

	fold := func(x, y string) int { return strings.Compare(strings.ToLower(x), strings.ToLower(y)) }
	assert.Equal(t, 0, CompareFunc(a, b, fold))
	assert.Equal(t, -1, CompareFunc(a, Of("go", "vec", "x"), fold))
}

func TestCompareNaN(t *testing.T) {
	nan := math.NaN()
	a := Of(nan)
	b := Of(1.0)
	assert.Equal(t, -1, Compare(a, b), "NaN sorts first")
	assert.Equal(t, 0, Compare(a, Of(nan)))

	nanLast := func(x, y float64) int {
		switch {
		case math.IsNaN(x) && math.IsNaN(y):
			return 0
		case math.IsNaN(x):
			return 1
		case math.IsNaN(y):
			return -1
		}
		return cmp.Compare(x, y)
	}
	assert.Equal(t, 1, CompareFunc(a, b, nanLast))
}
