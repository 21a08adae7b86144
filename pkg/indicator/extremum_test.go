package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/vista/pkg/types"
)

func Test_HighestLowest(t *testing.T) {
	source := types.SliceOf(1, 3, 2, 5, 4)

	highest, err := Highest(source, 3)
	require.NoError(t, err)
	assertSeries(t, []float64{5, 5, 3, na, na}, highest, 1e-9)

	lowest, err := Lowest(source, 3)
	require.NoError(t, err)
	assertSeries(t, []float64{2, 2, 1, na, na}, lowest, 1e-9)
}

func Test_Stdev(t *testing.T) {
	source := types.SliceOf(2, 4, 4, 4, 5, 5, 7, 9)

	stdev, err := Stdev(source, 8)
	require.NoError(t, err)
	assertSeries(t, []float64{2, na}, stdev, 1e-9)

	one, err := Stdev(source, 1)
	require.NoError(t, err)
	assertSeries(t, []float64{0, 0, 0}, one, 1e-9)
}

func Test_Bollinger(t *testing.T) {
	source := types.SliceOf(2, 4, 4, 4, 5, 5, 7, 9)

	bb, err := Bollinger(source, BollingerParams{Length: 8, Multiplier: 2})
	require.NoError(t, err)
	assertSeries(t, []float64{5, na}, bb.Basis, 1e-9)
	assertSeries(t, []float64{9, na}, bb.Upper, 1e-9)
	assertSeries(t, []float64{1, na}, bb.Lower, 1e-9)

	_, err = Bollinger(source, BollingerParams{Length: 8, Multiplier: 0})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func Test_Ichimoku(t *testing.T) {
	price := types.SliceOfRange(1, 10)

	r, err := Ichimoku(price, price, price, IchimokuParams{Conversion: 1, Base: 2, SpanB: 3, Displacement: 2})
	require.NoError(t, err)

	assertSeries(t, []float64{10, 9}, r.TenkanSen, 1e-9)
	assertSeries(t, []float64{9.5, 8.5}, r.KijunSen, 1e-9)

	// the leading spans show the values of the previous bar
	assertSeries(t, []float64{8.75, 7.75}, r.SenkouSpanA, 1e-9)
	assertSeries(t, []float64{8, 7, 6, 5, 4, 3, 2, na}, r.SenkouSpanB, 1e-9)

	// the lagging span shows the close of the next bar
	assertSeries(t, []float64{na, 10, 9}, r.ChikouSpan, 1e-9)
	assert.True(t, r.ChikouSpan.Index(10).IsNA())

	_, err = Ichimoku(price, price, price, IchimokuParams{})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}
