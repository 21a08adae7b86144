package indicator

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/c9s/vista/pkg/num"
	"github.com/c9s/vista/pkg/types"
)

// Stdev is the population standard deviation of source over n bars.
//
// Refer: https://www.tradingview.com/pine-script-reference/#fun_stdev
func Stdev(source types.Series, n int) (*types.Recurrence, error) {
	if err := checkWindow("stdev", n); err != nil {
		return nil, err
	}

	return types.NewRecurrence("stdev", source, n, func(self *types.Recurrence, index int) num.Num {
		if index > self.SeedIndex() {
			return num.NA
		}

		values, ok := window(source, index, n)
		if !ok {
			return num.NA
		}

		if n == 1 {
			return num.Zero
		}

		// stat.Variance is the unbiased estimator, scale it back to the population variance
		variance := stat.Variance(values, nil) * float64(n-1) / float64(n)
		return num.New(math.Sqrt(variance))
	})
}
