package indicator

import (
	"sync"

	"github.com/c9s/vista/pkg/num"
	"github.com/c9s/vista/pkg/types"
)

// EMA is the exponential moving average, which places a greater weight on the
// most recent values. It uses alpha = 2 / (n + 1).
//
// Refer: https://www.investopedia.com/terms/e/ema.asp
// Refer: https://www.tradingview.com/pine-script-reference/#fun_ema
func EMA(source types.Series, n int) (*types.Recurrence, error) {
	if err := checkWindow("ema", n); err != nil {
		return nil, err
	}
	return exponential("ema", source, n, num.New(2).DivFloat64(float64(n+1)))
}

// exponential builds value[i] = alpha*source[i] + (1-alpha)*value[i+1].
//
// The recurrence is seeded with the simple moving average of the first full
// window. For a source without leading NA values that is the bar Length()-n;
// for a source that is itself NA on its oldest bars, such as another moving
// average, the seed moves past that run. An NA after the seed propagates.
func exponential(name string, source types.Series, n int, alpha num.Num) (*types.Recurrence, error) {
	seed, err := SMA(source, n)
	if err != nil {
		return nil, err
	}

	seedIndex := sync.OnceValue(func() int {
		return oldestValid(source) - (n - 1)
	})

	beta := num.One.Sub(alpha)
	return types.NewRecurrence(name, source, n, func(self *types.Recurrence, index int) num.Num {
		if index > self.SeedIndex() {
			return num.NA
		}

		switch start := seedIndex(); {
		case index > start:
			return num.NA
		case index == start:
			return seed.Index(index)
		}

		return alpha.Mul(source.Index(index)).Add(beta.Mul(self.Index(index + 1)))
	})
}
