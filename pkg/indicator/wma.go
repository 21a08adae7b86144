package indicator

import (
	"gonum.org/v1/gonum/stat"

	"github.com/c9s/vista/pkg/num"
	"github.com/c9s/vista/pkg/types"
)

// WMA is the linearly weighted moving average: the newest bar has weight n,
// the oldest bar of the window weight 1.
//
// Refer: https://www.tradingview.com/pine-script-reference/#fun_wma
func WMA(source types.Series, n int) (*types.Recurrence, error) {
	if err := checkWindow("wma", n); err != nil {
		return nil, err
	}

	weights := make([]float64, n)
	for i := range weights {
		weights[i] = float64(n - i)
	}

	return types.NewRecurrence("wma", source, n, func(self *types.Recurrence, index int) num.Num {
		if index > self.SeedIndex() {
			return num.NA
		}

		values, ok := window(source, index, n)
		if !ok {
			return num.NA
		}
		return num.New(stat.Mean(values, weights))
	})
}
