package indicator

import (
	"github.com/c9s/vista/pkg/types"
)

type IchimokuResult struct {
	// TenkanSen is the conversion line, the donchian middle over Conversion bars
	TenkanSen types.SeriesExtend
	// KijunSen is the base line, the donchian middle over Base bars
	KijunSen types.SeriesExtend
	// SenkouSpanA is (tenkan + kijun) / 2 plotted Displacement-1 bars ahead
	SenkouSpanA types.SeriesExtend
	// SenkouSpanB is the donchian middle over SpanB bars plotted Displacement-1 bars ahead
	SenkouSpanB types.SeriesExtend
	// ChikouSpan is the close plotted Displacement-1 bars behind
	ChikouSpan types.SeriesExtend
}

// Ichimoku builds the Ichimoku cloud lines. The leading spans at index i are
// the values computed Displacement-1 bars earlier; the lagging span at index i
// is the close Displacement-1 bars later, NA for the newest bars.
//
// Refer: https://www.investopedia.com/terms/i/ichimoku-cloud.asp
func Ichimoku(high, low, close types.Series, params IchimokuParams) (*IchimokuResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	tenkan, err := Donchian(high, low, params.Conversion)
	if err != nil {
		return nil, err
	}

	kijun, err := Donchian(high, low, params.Base)
	if err != nil {
		return nil, err
	}

	spanB, err := Donchian(high, low, params.SpanB)
	if err != nil {
		return nil, err
	}

	offset := params.Displacement - 1
	return &IchimokuResult{
		TenkanSen:   tenkan,
		KijunSen:    kijun,
		SenkouSpanA: tenkan.Add(kijun).Div(2).Shift(offset),
		SenkouSpanB: spanB.Shift(offset),
		ChikouSpan:  types.Shift(close, -offset),
	}, nil
}
