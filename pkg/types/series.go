package types

import (
	"github.com/c9s/vista/pkg/num"
)

//go:generate mockgen -destination=mocks/mock_series.go -package=mocks . Series

// Series is a fixed length, read-only sequence of values.
// Index 0 is the most recent value, Length()-1 the oldest one.
// Reading an index outside of [0, Length()) returns num.NA.
type Series interface {
	Index(i int) num.Num
	Length() int
}

// SeriesExtend is a Series with the composition helpers attached, so that
// expressions can be chained: close.Mul(2).Sub(ema).
type SeriesExtend interface {
	Series
	Last() num.Num
	Add(b interface{}) SeriesExtend
	Sub(b interface{}) SeriesExtend
	Mul(b interface{}) SeriesExtend
	Div(b interface{}) SeriesExtend
	Neg() SeriesExtend
	Abs() SeriesExtend
	Map(f func(v num.Num) num.Num) SeriesExtend
	Shift(offset int) SeriesExtend
	Change(offset ...int) SeriesExtend
	Array(limit ...int) []num.Num
}

// SeriesBase implements SeriesExtend on top of the embedded Series.
// Types that embed it must point SeriesBase.Series to themselves.
type SeriesBase struct {
	Series
}

// NewSeries wraps a Series into a SeriesExtend.
func NewSeries(a Series) SeriesExtend {
	if ext, ok := a.(SeriesExtend); ok {
		return ext
	}
	return &SeriesBase{Series: a}
}

func (s *SeriesBase) Last() num.Num {
	return s.Series.Index(0)
}

func (s *SeriesBase) Add(b interface{}) SeriesExtend {
	return Add(s.Series, b)
}

func (s *SeriesBase) Sub(b interface{}) SeriesExtend {
	return Sub(s.Series, b)
}

func (s *SeriesBase) Mul(b interface{}) SeriesExtend {
	return Mul(s.Series, b)
}

func (s *SeriesBase) Div(b interface{}) SeriesExtend {
	return Div(s.Series, b)
}

func (s *SeriesBase) Neg() SeriesExtend {
	return Neg(s.Series)
}

func (s *SeriesBase) Abs() SeriesExtend {
	return Abs(s.Series)
}

func (s *SeriesBase) Map(f func(v num.Num) num.Num) SeriesExtend {
	return Map(s.Series, f)
}

func (s *SeriesBase) Shift(offset int) SeriesExtend {
	return Shift(s.Series, offset)
}

func (s *SeriesBase) Change(offset ...int) SeriesExtend {
	return Change(s.Series, offset...)
}

func (s *SeriesBase) Array(limit ...int) []num.Num {
	return Array(s.Series, limit...)
}

var _ SeriesExtend = &SeriesBase{}
