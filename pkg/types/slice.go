package types

import (
	"github.com/c9s/vista/pkg/num"
)

// Slice is a materialized base series. Values are stored oldest first,
// so the last element is Index(0).
type Slice []num.Num

// SliceOf builds a Slice from values given oldest first.
func SliceOf(values ...float64) Slice {
	s := make(Slice, len(values))
	for i, v := range values {
		s[i] = num.New(v)
	}
	return s
}

func SliceOfInts(values ...int) Slice {
	s := make(Slice, len(values))
	for i, v := range values {
		s[i] = num.NewFromInt(v)
	}
	return s
}

// SliceOfRange returns the integers from..to (inclusive), oldest first.
func SliceOfRange(from, to int) Slice {
	var s Slice
	for i := from; i <= to; i++ {
		s = append(s, num.NewFromInt(i))
	}
	return s
}

// SliceFromStrings parses every value, a value that can not be parsed becomes NA.
func SliceFromStrings(values ...string) Slice {
	s := make(Slice, len(values))
	for i, v := range values {
		s[i] = num.Parse(v)
	}
	return s
}

func (s Slice) Index(i int) num.Num {
	if i < 0 || i >= len(s) {
		return num.NA
	}
	return s[len(s)-1-i]
}

func (s Slice) Length() int {
	return len(s)
}

func (s Slice) Extend() SeriesExtend {
	return NewSeries(s)
}

var _ Series = Slice{}
