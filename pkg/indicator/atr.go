package indicator

import (
	"sync"

	"github.com/c9s/vista/pkg/num"
	"github.com/c9s/vista/pkg/types"
)

// TR is the true range of a bar:
//
//	max(high - low, abs(high - close[1]), abs(low - close[1]))
//
// The oldest close has no previous close and falls back to high - low.
// A missing close after it makes the next range NA.
//
// Refer: https://www.investopedia.com/terms/a/atr.asp
func TR(close, high, low types.Series) (*types.Recurrence, error) {
	oldestClose := sync.OnceValue(func() int {
		return oldestValid(close)
	})

	// the sum is never read, it bounds the length to the shortest input
	bounds := types.Add(high, low).Add(close)

	return types.NewRecurrence("tr", bounds, 1, func(self *types.Recurrence, index int) num.Num {
		h := high.Index(index)
		l := low.Index(index)
		hl := h.Sub(l)

		if index >= oldestClose() {
			return hl
		}

		prevClose := close.Index(index + 1)
		return num.Max(hl, num.Max(h.Sub(prevClose).Abs(), l.Sub(prevClose).Abs()))
	})
}

// ATR is the average true range over n bars, smoothed with RMA.
//
// Refer: https://www.investopedia.com/terms/a/atr.asp
// Refer: https://www.tradingview.com/pine-script-reference/#fun_atr
func ATR(close, high, low types.Series, n int) (*types.Recurrence, error) {
	if err := checkWindow("atr", n); err != nil {
		return nil, err
	}

	tr, err := TR(close, high, low)
	if err != nil {
		return nil, err
	}

	return RMA(tr, n)
}
