package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/vista/pkg/num"
)

func TestSlice_Index(t *testing.T) {
	s := SliceOfInts(1, 2, 3)
	//           index 2  1  0

	assert.Equal(t, 3, s.Length())
	assert.Equal(t, 3.0, s.Index(0).Float64())
	assert.Equal(t, 2.0, s.Index(1).Float64())
	assert.Equal(t, 1.0, s.Index(2).Float64())
	assert.True(t, s.Index(3).IsNA())
	assert.True(t, s.Index(-1).IsNA())
	assert.Equal(t, 3, s.Length(), "reading out of range must not grow the series")
}

func TestSliceFromStrings(t *testing.T) {
	s := SliceFromStrings("1.5", "n/a", "3")
	assert.Equal(t, 3.0, s.Index(0).Float64())
	assert.True(t, s.Index(1).IsNA())
	assert.Equal(t, 1.5, s.Index(2).Float64())
}

func TestSliceOfRange(t *testing.T) {
	s := SliceOfRange(1, 9)
	assert.Equal(t, 9, s.Length())
	assert.Equal(t, 9.0, s.Index(0).Float64())
	assert.Equal(t, 1.0, s.Index(8).Float64())
}

func TestOperators_NAPropagation(t *testing.T) {
	a := Slice{num.New(1), num.NA, num.New(3), num.New(4)}
	b := Slice{num.New(2), num.New(2), num.NA, num.New(5)}

	ops := map[string]func(a, b interface{}) SeriesExtend{
		"add": Add,
		"sub": Sub,
		"mul": Mul,
		"div": Div,
		"max": Max,
		"min": Min,
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			r := op(a, b)
			assert.Equal(t, 4, r.Length())
			for i := 0; i < r.Length(); i++ {
				if a.Index(i).IsNA() || b.Index(i).IsNA() {
					assert.True(t, r.Index(i).IsNA(), "index %d", i)
				} else {
					assert.False(t, r.Index(i).IsNA(), "index %d", i)
				}
			}
		})
	}
}

func TestOperators_Values(t *testing.T) {
	a := SliceOfInts(1, 2, 3)
	b := SliceOfInts(4, 5, 6)

	assert.Equal(t, 9.0, Add(a, b).Index(0).Float64())
	assert.Equal(t, -3.0, Sub(a, b).Index(1).Float64())
	assert.Equal(t, 4.0, Mul(a, b).Index(2).Float64())
	assert.Equal(t, 0.5, Div(a, b).Index(0).Float64())
	assert.Equal(t, 6.0, Max(a, b).Index(0).Float64())
	assert.Equal(t, 1.0, Min(a, b).Index(2).Float64())
	assert.Equal(t, -2.0, Neg(a).Index(1).Float64())
	assert.Equal(t, 2.0, Abs(Neg(a)).Index(1).Float64())
}

func TestOperators_Scalar(t *testing.T) {
	close := SliceOfRange(1, 9)

	high := Mul(close, 1.5)
	low := Mul(close, 0.5)

	assert.Equal(t, 9, high.Length())
	assert.Equal(t, 13.5, high.Index(0).Float64())
	assert.Equal(t, 4.5, low.Index(0).Float64())
	assert.Equal(t, 10.0, Add(close, 1).Index(0).Float64())
	assert.Equal(t, 8.0, Sub(close, num.One).Index(0).Float64())
	assert.Equal(t, 3.0, Div(close, int64(3)).Index(0).Float64())
	assert.Equal(t, 1.0, Sub(10, close).Index(0).Float64())
	assert.True(t, Div(close, 0).Index(0).IsNA())
	assert.True(t, high.Index(9).IsNA())
}

func TestOperators_InvalidOperand(t *testing.T) {
	assert.Panics(t, func() {
		Add(SliceOfInts(1), "1")
	})
}

func TestOperators_LengthIsMinimum(t *testing.T) {
	a := SliceOfInts(1, 2, 3, 4, 5)
	b := SliceOfInts(1, 2, 3)

	r := Add(a, b)
	assert.Equal(t, 3, r.Length())
	assert.Equal(t, 8.0, r.Index(0).Float64())
	assert.True(t, r.Index(3).IsNA())
}

func TestDiv_ZeroAtOneIndex(t *testing.T) {
	a := SliceOfInts(4, 6, 8, 10)
	b := SliceOfInts(2, 0, 4, 5)

	r := Div(a, b)
	assert.Equal(t, 2.0, r.Index(0).Float64())
	assert.Equal(t, 2.0, r.Index(1).Float64())
	assert.True(t, r.Index(2).IsNA())
	assert.Equal(t, 2.0, r.Index(3).Float64())
}

func TestOperators_Chaining(t *testing.T) {
	a := SliceOfInts(1, 2, 3).Extend()

	r := a.Mul(2).Sub(a).Add(1).Div(a.Add(1))
	// (2a - a + 1) / (a + 1) == 1
	for i := 0; i < r.Length(); i++ {
		assert.Equal(t, 1.0, r.Index(i).Float64())
	}

	assert.Equal(t, 1.0, r.Last().Float64())
}

func TestShift(t *testing.T) {
	s := SliceOfInts(1, 2, 3, 4)

	older := Shift(s, 1)
	assert.Equal(t, 4, older.Length())
	assert.Equal(t, 3.0, older.Index(0).Float64())
	assert.Equal(t, 1.0, older.Index(2).Float64())
	assert.True(t, older.Index(3).IsNA())

	newer := Shift(s, -2)
	assert.True(t, newer.Index(0).IsNA())
	assert.True(t, newer.Index(1).IsNA())
	assert.Equal(t, 4.0, newer.Index(2).Float64())
	assert.Equal(t, 3.0, newer.Index(3).Float64())
	assert.True(t, newer.Index(4).IsNA())
}

func TestChange(t *testing.T) {
	s := SliceOfInts(1, 4, 2, 7)

	c := Change(s)
	assert.Equal(t, 5.0, c.Index(0).Float64())
	assert.Equal(t, -2.0, c.Index(1).Float64())
	assert.Equal(t, 3.0, c.Index(2).Float64())
	assert.True(t, c.Index(3).IsNA())

	c2 := NewSeries(s).Change(2)
	assert.Equal(t, 3.0, c2.Index(0).Float64())
	assert.True(t, c2.Index(2).IsNA())
}

func TestMap(t *testing.T) {
	s := SliceOfInts(1, 4, 9)
	r := Map(s, num.Num.Sqrt)
	assert.Equal(t, []num.Num{num.New(3), num.New(2), num.New(1)}, r.Array())
}

func TestArrayAndReverse(t *testing.T) {
	s := SliceOfInts(1, 2, 3, 4)

	assert.Equal(t, []num.Num{num.New(4), num.New(3)}, Array(s, 2))
	assert.Len(t, Array(s), 4)
	assert.Equal(t, Slice{num.New(3), num.New(4)}, Reverse(s, 2))
	assert.Equal(t, s, Reverse(s))
	assert.Len(t, Array(s, 10), 4)
}

func TestNewSeries_KeepsExtend(t *testing.T) {
	ext := NewSeries(SliceOfInts(1))
	assert.Same(t, ext, NewSeries(ext))
}
