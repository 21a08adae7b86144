package indicator

import (
	"sync"

	"github.com/c9s/vista/pkg/num"
	"github.com/c9s/vista/pkg/types"
)

/*
OBV implements on-balance volume indicator

	obv = cum(sign(change(close)) * volume)

The oldest bar has no change and is NA; the accumulation starts on the bar after it.
A missing close or volume later on leaves every newer value NA.

On-Balance Volume (OBV) Definition
- https://www.investopedia.com/terms/o/onbalancevolume.asp
*/
func OBV(close, volume types.Series) (*types.Recurrence, error) {
	flow := types.Change(close).Map(num.Num.Sign).Mul(volume)

	start := sync.OnceValue(func() int {
		return oldestValid(flow)
	})

	return types.NewRecurrence("obv", flow, 2, func(self *types.Recurrence, index int) num.Num {
		if index > self.SeedIndex() {
			return num.NA
		}

		switch s := start(); {
		case index > s:
			return num.NA
		case index == s:
			return flow.Index(index)
		}
		return self.Index(index + 1).Add(flow.Index(index))
	})
}
