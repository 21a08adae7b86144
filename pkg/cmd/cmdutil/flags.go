package cmdutil

import (
	"github.com/spf13/pflag"
)

// DataFlags defines the flags selecting the market data and the evaluated bars
func DataFlags(flags *pflag.FlagSet) {
	flags.String("data", "", "csv file or http(s) url of the market data")
	flags.String("source", "close", "price source: open, high, low, close, volume, hl2, hlc3 or ohlc4")
	flags.Int("limit", 20, "number of the most recent bars to output, 0 for all")
}

// IndicatorFlags defines the flags selecting one indicator
func IndicatorFlags(flags *pflag.FlagSet) {
	flags.StringP("indicator", "i", "", "indicator name, see the list command")
	flags.StringToStringP("param", "p", nil, "indicator parameter, e.g. --param length=14")
}
