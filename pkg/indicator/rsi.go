package indicator

import (
	"github.com/c9s/vista/pkg/num"
	"github.com/c9s/vista/pkg/types"
)

var hundred = num.New(100)

// RSI is the relative strength index of source over n bars, using Wilder's
// smoothing (RMA) of the gains and losses:
//
//	rs  = rma(max(change, 0), n) / rma(max(-change, 0), n)
//	rsi = 100 - 100 / (1 + rs)
//
// The oldest bar has no change, so the first value is available n+1 bars in.
//
// Refer: https://www.investopedia.com/terms/r/rsi.asp
// Refer: https://www.tradingview.com/pine-script-reference/#fun_rsi
func RSI(source types.Series, n int) (types.SeriesExtend, error) {
	if err := checkWindow("rsi", n); err != nil {
		return nil, err
	}

	change := types.Change(source)

	up, err := RMA(types.Max(change, 0), n)
	if err != nil {
		return nil, err
	}

	down, err := RMA(types.Max(change.Neg(), 0), n)
	if err != nil {
		return nil, err
	}

	return types.Combine(up, down, func(u, d num.Num) num.Num {
		switch {
		case u.IsNA() || d.IsNA():
			return num.NA
		case d.IsZero():
			return hundred
		case u.IsZero():
			return num.Zero
		}
		return hundred.Sub(hundred.Div(num.One.Add(u.Div(d))))
	}), nil
}
