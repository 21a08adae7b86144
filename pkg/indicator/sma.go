package indicator

import (
	"gonum.org/v1/gonum/stat"

	"github.com/c9s/vista/pkg/num"
	"github.com/c9s/vista/pkg/types"
)

// SMA is the simple moving average of source over n bars.
// The oldest n-1 bars have no full window and are NA.
//
// Refer: https://www.investopedia.com/terms/s/sma.asp
func SMA(source types.Series, n int) (*types.Recurrence, error) {
	if err := checkWindow("sma", n); err != nil {
		return nil, err
	}

	return types.NewRecurrence("sma", source, n, func(self *types.Recurrence, index int) num.Num {
		if index > self.SeedIndex() {
			return num.NA
		}

		values, ok := window(source, index, n)
		if !ok {
			return num.NA
		}
		return num.New(stat.Mean(values, nil))
	})
}
