package indicator

import (
	"github.com/c9s/vista/pkg/num"
	"github.com/c9s/vista/pkg/types"
)

// RMA is the running moving average used by RSI and ATR, an exponential
// average with alpha = 1 / n (Wilder's smoothing).
//
// Refer: https://www.tradingview.com/pine-script-reference/#fun_rma
// Refer: https://github.com/twopirllc/pandas-ta/blob/main/pandas_ta/overlap/rma.py#L5
func RMA(source types.Series, n int) (*types.Recurrence, error) {
	if err := checkWindow("rma", n); err != nil {
		return nil, err
	}
	return exponential("rma", source, n, num.One.DivFloat64(float64(n)))
}
