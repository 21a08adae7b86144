package indicator

import (
	"gonum.org/v1/gonum/floats"

	"github.com/c9s/vista/pkg/num"
	"github.com/c9s/vista/pkg/types"
)

// Highest is the highest value of source over the last n bars.
func Highest(source types.Series, n int) (*types.Recurrence, error) {
	return extremum("highest", source, n, floats.Max)
}

// Lowest is the lowest value of source over the last n bars.
func Lowest(source types.Series, n int) (*types.Recurrence, error) {
	return extremum("lowest", source, n, floats.Min)
}

func extremum(name string, source types.Series, n int, pick func([]float64) float64) (*types.Recurrence, error) {
	if err := checkWindow(name, n); err != nil {
		return nil, err
	}

	return types.NewRecurrence(name, source, n, func(self *types.Recurrence, index int) num.Num {
		if index > self.SeedIndex() {
			return num.NA
		}

		values, ok := window(source, index, n)
		if !ok {
			return num.NA
		}
		return num.New(pick(values))
	})
}

// Donchian is the middle of the Donchian channel, (highest(high, n) + lowest(low, n)) / 2.
func Donchian(high, low types.Series, n int) (types.SeriesExtend, error) {
	upper, err := Highest(high, n)
	if err != nil {
		return nil, err
	}

	lower, err := Lowest(low, n)
	if err != nil {
		return nil, err
	}

	return upper.Add(lower).Div(2), nil
}
