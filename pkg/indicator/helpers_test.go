package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/vista/pkg/types"
)

var na = math.NaN()

// assertSeries compares the newest values of s with want, NaN meaning NA.
func assertSeries(t *testing.T, want []float64, s types.Series, delta float64) {
	t.Helper()
	for i, w := range want {
		got := s.Index(i)
		if math.IsNaN(w) {
			assert.True(t, got.IsNA(), "expected index %d to be NA, got %v", i, got)
			continue
		}
		if assert.False(t, got.IsNA(), "expected index %d to be %v, got NA", i, w) {
			assert.InDelta(t, w, got.Float64(), delta, "index %d", i)
		}
	}
}
