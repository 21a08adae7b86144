package indicator

import (
	"github.com/c9s/vista/pkg/types"
)

type MACDResult struct {
	MACD      types.SeriesExtend
	Signal    types.SeriesExtend
	Histogram types.SeriesExtend
}

// MACD is the moving average convergence divergence:
//
//	macd      = ema(fast) - ema(slow)
//	signal    = ema(macd, signal)
//	histogram = macd - signal
//
// Refer: https://www.investopedia.com/terms/m/macd.asp
func MACD(source types.Series, params MACDParams) (*MACDResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	fast, err := EMA(source, params.Fast)
	if err != nil {
		return nil, err
	}

	slow, err := EMA(source, params.Slow)
	if err != nil {
		return nil, err
	}

	macd := fast.Sub(slow)
	signal, err := EMA(macd, params.Signal)
	if err != nil {
		return nil, err
	}

	return &MACDResult{
		MACD:      macd,
		Signal:    signal,
		Histogram: macd.Sub(signal),
	}, nil
}
