package indicator

import (
	"github.com/c9s/vista/pkg/types"
)

type StochRSIResult struct {
	// K is the smoothed %K line
	K types.SeriesExtend
	// D is the moving average of K
	D types.SeriesExtend
}

// StochRSI is the stochastic oscillator applied to the RSI, used for
// identifying overbought and oversold conditions.
//
//	k = sma(100 * (rsi - lowest(rsi)) / (highest(rsi) - lowest(rsi)), K)
//	d = sma(k, D)
//
// A flat rsi window has no range and is NA.
//
// Refer: https://www.investopedia.com/terms/s/stochrsi.asp
func StochRSI(source types.Series, params StochRSIParams) (*StochRSIResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	rsi, err := RSI(source, params.RSILength)
	if err != nil {
		return nil, err
	}

	lowest, err := Lowest(rsi, params.StochLength)
	if err != nil {
		return nil, err
	}

	highest, err := Highest(rsi, params.StochLength)
	if err != nil {
		return nil, err
	}

	stoch := rsi.Sub(lowest).Div(highest.Sub(lowest)).Mul(100)

	k, err := SMA(stoch, params.K)
	if err != nil {
		return nil, err
	}

	d, err := SMA(k, params.D)
	if err != nil {
		return nil, err
	}

	return &StochRSIResult{K: k, D: d}, nil
}
