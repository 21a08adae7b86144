package data

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/vista/pkg/types"
)

var ErrUnknownSource = errors.New("unknown price source")

// Data bundles aligned OHLCV series of identical size.
// Index 0 of every series is the most recent bar.
type Data struct {
	Date   []time.Time
	Open   types.Slice
	High   types.Slice
	Low    types.Slice
	Close  types.Slice
	Volume types.Slice
}

// Bar is one decoded row.
type Bar struct {
	Date   time.Time
	Open   string
	High   string
	Low    string
	Close  string
	Volume string
}

// Size is the number of bars.
func (d *Data) Size() int {
	return len(d.Close)
}

// Append adds a bar as the most recent one. Values that can not be parsed become NA.
func (d *Data) Append(bar Bar) {
	d.Date = append(d.Date, bar.Date)
	d.Open = append(d.Open, parse("open", bar.Open))
	d.High = append(d.High, parse("high", bar.High))
	d.Low = append(d.Low, parse("low", bar.Low))
	d.Close = append(d.Close, parse("close", bar.Close))
	d.Volume = append(d.Volume, parse("volume", bar.Volume))
}

// DateAt returns the date of the bar at index, index 0 being the most recent one.
func (d *Data) DateAt(index int) (time.Time, bool) {
	if index < 0 || index >= len(d.Date) {
		return time.Time{}, false
	}
	return d.Date[len(d.Date)-1-index], true
}

// Sources lists the names accepted by Source.
var Sources = []string{"open", "high", "low", "close", "volume", "hl2", "hlc3", "ohlc4"}

// Source returns a price series by name: one of the columns, or one of the
// usual averages hl2, hlc3 and ohlc4.
func (d *Data) Source(name string) (types.SeriesExtend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "close":
		return d.Close.Extend(), nil
	case "open":
		return d.Open.Extend(), nil
	case "high":
		return d.High.Extend(), nil
	case "low":
		return d.Low.Extend(), nil
	case "volume":
		return d.Volume.Extend(), nil
	case "hl2":
		return types.Add(d.High, d.Low).Div(2), nil
	case "hlc3":
		return types.Add(d.High, d.Low).Add(d.Close).Div(3), nil
	case "ohlc4":
		return types.Add(d.Open, d.High).Add(d.Low).Add(d.Close).Div(4), nil
	}
	return nil, errors.Wrapf(ErrUnknownSource, "%q", name)
}
