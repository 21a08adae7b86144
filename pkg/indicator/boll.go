package indicator

import (
	"github.com/c9s/vista/pkg/types"
)

// BollingerResult holds the three bands.
type BollingerResult struct {
	Basis types.SeriesExtend
	Upper types.SeriesExtend
	Lower types.SeriesExtend
}

// Bollinger builds the bollinger bands: the simple moving average of source
// plus and minus Multiplier standard deviations over the same window.
//
// Refer: https://www.investopedia.com/terms/b/bollingerbands.asp
func Bollinger(source types.Series, params BollingerParams) (*BollingerResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	basis, err := SMA(source, params.Length)
	if err != nil {
		return nil, err
	}

	stdev, err := Stdev(source, params.Length)
	if err != nil {
		return nil, err
	}

	deviation := stdev.Mul(params.Multiplier)
	return &BollingerResult{
		Basis: basis,
		Upper: basis.Add(deviation),
		Lower: basis.Sub(deviation),
	}, nil
}
