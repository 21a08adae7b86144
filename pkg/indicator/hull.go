package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c9s/vista/pkg/types"
)

// HMA is the Hull moving average, which reduces the lag of traditional moving averages:
//
//	hma = wma(2*wma(n/2) - wma(n), sqrt(n))
//
// n must be at least 2 so that the half window is not empty.
//
// Refer: https://fidelity.com/learning-center/trading-investing/technical-analysis/technical-indicator-guide/hull-moving-average
func HMA(source types.Series, n int) (types.SeriesExtend, error) {
	if n < 2 {
		return nil, errors.Wrapf(ErrInvalidWindow, "hma: %d, at least 2 bars are required", n)
	}

	half, err := WMA(source, n/2)
	if err != nil {
		return nil, err
	}

	full, err := WMA(source, n)
	if err != nil {
		return nil, err
	}

	length := int(math.Sqrt(float64(n)))
	hma, err := WMA(half.Mul(2).Sub(full), length)
	if err != nil {
		return nil, err
	}
	return hma, nil
}
