package indicator

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/c9s/vista/pkg/types"
)

// ErrInvalidWindow is returned by constructors given a non-positive window length.
var ErrInvalidWindow = types.ErrInvalidWindow

var ErrInvalidParameter = errors.New("invalid indicator parameter")

// Default window lengths, the same values the usual charting packages use.
const (
	DefaultLength = 9

	DefaultRSILength   = 14
	DefaultATRLength   = 14
	DefaultStochLength = 14
	DefaultStochK      = 3
	DefaultStochD      = 3

	DefaultMACDFast   = 12
	DefaultMACDSlow   = 26
	DefaultMACDSignal = 9

	DefaultBollingerLength     = 20
	DefaultBollingerMultiplier = 2.0

	DefaultIchimokuConversion   = 9
	DefaultIchimokuBase         = 26
	DefaultIchimokuSpanB        = 52
	DefaultIchimokuDisplacement = 26
)

func checkWindow(name string, n int) error {
	if n < 1 {
		return errors.Wrapf(ErrInvalidWindow, "%s: %d", name, n)
	}
	return nil
}

type StochRSIParams struct {
	// K is the %K smoothing length
	K int
	// D is the %D moving average length
	D int
	// RSILength is the window of the underlying rsi
	RSILength int
	// StochLength is the window of the stochastic oscillator applied on the rsi
	StochLength int
}

func DefaultStochRSIParams() StochRSIParams {
	return StochRSIParams{
		K:           DefaultStochK,
		D:           DefaultStochD,
		RSILength:   DefaultRSILength,
		StochLength: DefaultStochLength,
	}
}

func (p StochRSIParams) Validate() (err error) {
	err = multierr.Append(err, checkWindow("stochrsi k", p.K))
	err = multierr.Append(err, checkWindow("stochrsi d", p.D))
	err = multierr.Append(err, checkWindow("stochrsi rsi length", p.RSILength))
	err = multierr.Append(err, checkWindow("stochrsi stoch length", p.StochLength))
	return err
}

type MACDParams struct {
	Fast   int
	Slow   int
	Signal int
}

func DefaultMACDParams() MACDParams {
	return MACDParams{Fast: DefaultMACDFast, Slow: DefaultMACDSlow, Signal: DefaultMACDSignal}
}

func (p MACDParams) Validate() (err error) {
	err = multierr.Append(err, checkWindow("macd fast", p.Fast))
	err = multierr.Append(err, checkWindow("macd slow", p.Slow))
	err = multierr.Append(err, checkWindow("macd signal", p.Signal))
	if p.Fast >= 1 && p.Slow >= 1 && p.Fast >= p.Slow {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidParameter, "macd fast %d must be shorter than slow %d", p.Fast, p.Slow))
	}
	return err
}

type BollingerParams struct {
	Length     int
	Multiplier float64
}

func DefaultBollingerParams() BollingerParams {
	return BollingerParams{Length: DefaultBollingerLength, Multiplier: DefaultBollingerMultiplier}
}

func (p BollingerParams) Validate() (err error) {
	err = multierr.Append(err, checkWindow("bollinger length", p.Length))
	if p.Multiplier <= 0 {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidParameter, "bollinger multiplier %v must be positive", p.Multiplier))
	}
	return err
}

type IchimokuParams struct {
	// Conversion is the Tenkan-sen window
	Conversion int
	// Base is the Kijun-sen window
	Base int
	// SpanB is the Senkou span B window
	SpanB int
	// Displacement is how far the leading spans are plotted ahead and the lagging span behind
	Displacement int
}

func DefaultIchimokuParams() IchimokuParams {
	return IchimokuParams{
		Conversion:   DefaultIchimokuConversion,
		Base:         DefaultIchimokuBase,
		SpanB:        DefaultIchimokuSpanB,
		Displacement: DefaultIchimokuDisplacement,
	}
}

func (p IchimokuParams) Validate() (err error) {
	err = multierr.Append(err, checkWindow("ichimoku conversion", p.Conversion))
	err = multierr.Append(err, checkWindow("ichimoku base", p.Base))
	err = multierr.Append(err, checkWindow("ichimoku span b", p.SpanB))
	err = multierr.Append(err, checkWindow("ichimoku displacement", p.Displacement))
	return err
}
