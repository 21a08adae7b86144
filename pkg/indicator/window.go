package indicator

import (
	"github.com/c9s/vista/pkg/types"
)

// oldestValid returns the oldest index of source once the run of NA values
// at its oldest end is skipped, or -1 when source holds no value at all.
func oldestValid(source types.Series) int {
	for i := source.Length() - 1; i >= 0; i-- {
		if !source.Index(i).IsNA() {
			return i
		}
	}
	return -1
}

// window collects source[index..index+n-1], newest first.
// ok is false when the window reaches past the oldest value or holds an NA.
func window(source types.Series, index, n int) (values []float64, ok bool) {
	if index < 0 || index+n > source.Length() {
		return nil, false
	}

	values = make([]float64, n)
	for i := 0; i < n; i++ {
		v := source.Index(index + i)
		if v.IsNA() {
			return nil, false
		}
		values[i] = v.Float64()
	}
	return values, true
}
