package indicator

import (
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/vista/pkg/data"
	"github.com/c9s/vista/pkg/metrics"
	"github.com/c9s/vista/pkg/types"
)

var log = logrus.WithField("component", "indicator")

var (
	ErrIndicatorNotFound   = errors.New("indicator not found")
	ErrIndicatorRegistered = errors.New("indicator already registered")
)

// Params are the numeric parameters of an indicator, keyed by name.
type Params map[string]float64

// Int returns the parameter truncated to an int.
func (p Params) Int(key string) int {
	return int(p[key])
}

func (p Params) Float(key string) float64 {
	return p[key]
}

// Output is one named line produced by an indicator.
type Output struct {
	Name   string
	Series types.SeriesExtend
}

// BuildFunc constructs the indicator lines on top of the market data.
// source is the price series selected for single input indicators.
type BuildFunc func(d *data.Data, source types.Series, p Params) ([]Output, error)

// Definition describes an indicator available through a Registry.
type Definition struct {
	Name        string
	Description string
	// Defaults lists every accepted parameter with its default value
	Defaults Params
	// Fractional lists the parameters that accept non integer values
	Fractional []string
	// Outputs names the lines returned by Build, in order
	Outputs []string
	Build   BuildFunc
}

// Request selects an indicator, its price source and parameter overrides.
type Request struct {
	Name   string `json:"name" yaml:"name" validate:"required"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Params Params `json:"params,omitempty" yaml:"params,omitempty"`
}

// String renders the request as name(source,key=value,...).
func (r Request) String() string {
	var sb strings.Builder
	sb.WriteString(r.Name)

	var args []string
	if r.Source != "" {
		args = append(args, r.Source)
	}

	keys := make([]string, 0, len(r.Params))
	for k := range r.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, k+"="+formatParam(r.Params[k]))
	}

	if len(args) > 0 {
		sb.WriteString("(" + strings.Join(args, ",") + ")")
	}
	return sb.String()
}

func formatParam(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Registry manages the available indicators.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]Definition
}

func NewRegistry() *Registry {
	return &Registry{
		definitions: make(map[string]Definition),
	}
}

// Register adds a definition. Names are case-insensitive.
func (r *Registry) Register(def Definition) error {
	if def.Name == "" || def.Build == nil {
		return errors.Wrap(ErrInvalidParameter, "definition requires a name and a build function")
	}

	name := strings.ToLower(def.Name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[name]; exists {
		return errors.Wrapf(ErrIndicatorRegistered, "%s", name)
	}

	r.definitions[name] = def
	return nil
}

// Get retrieves a definition by name.
func (r *Registry) Get(name string) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, exists := r.definitions[strings.ToLower(name)]
	if !exists {
		return Definition{}, errors.Wrapf(ErrIndicatorNotFound, "%s", name)
	}
	return def, nil
}

// List returns the registered names in alphabetical order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.definitions))
	for name := range r.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named indicator on the close prices of d.
func (r *Registry) Build(name string, d *data.Data, params Params) ([]Output, error) {
	return r.BuildRequest(Request{Name: name, Params: params}, d)
}

// BuildRequest constructs the requested indicator. Parameters missing from
// the request take their defaults, unknown parameters are rejected.
func (r *Registry) BuildRequest(req Request, d *data.Data) ([]Output, error) {
	def, err := r.Get(req.Name)
	if err != nil {
		return nil, err
	}

	params := Params{}
	for k, v := range def.Defaults {
		params[k] = v
	}

	for k, v := range req.Params {
		k = strings.ToLower(k)
		if _, ok := def.Defaults[k]; !ok {
			return nil, errors.Wrapf(ErrInvalidParameter, "%s does not accept parameter %q", def.Name, k)
		}
		if v != math.Trunc(v) && !slices.Contains(def.Fractional, k) {
			return nil, errors.Wrapf(ErrInvalidParameter, "%s parameter %q must be an integer, got %s", def.Name, k, formatParam(v))
		}
		params[k] = v
	}

	source, err := d.Source(req.Source)
	if err != nil {
		return nil, err
	}

	outputs, err := def.Build(d, source, params)
	if err != nil {
		return nil, errors.Wrapf(err, "can not build %s", req)
	}

	metrics.IndicatorBuildsMetrics.WithLabelValues(def.Name).Inc()
	log.Debugf("built %s with %d outputs", req, len(outputs))
	return outputs, nil
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the registry carrying the built-in indicators.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, def := range builtinDefinitions() {
			if err := defaultRegistry.Register(def); err != nil {
				panic(err)
			}
		}
	})
	return defaultRegistry
}

func single(name string, s types.SeriesExtend, err error) ([]Output, error) {
	if err != nil {
		return nil, err
	}
	return []Output{{Name: name, Series: s}}, nil
}

// windowed defines an indicator of one price series and a length parameter.
func windowed(name, description string, length int, ctor func(types.Series, int) (*types.Recurrence, error)) Definition {
	return Definition{
		Name:        name,
		Description: description,
		Defaults:    Params{"length": float64(length)},
		Outputs:     []string{name},
		Build: func(_ *data.Data, source types.Series, p Params) ([]Output, error) {
			s, err := ctor(source, p.Int("length"))
			if err != nil {
				return nil, err
			}
			return []Output{{Name: name, Series: s}}, nil
		},
	}
}

func builtinDefinitions() []Definition {
	return []Definition{
		windowed("sma", "simple moving average", DefaultLength, SMA),
		windowed("ema", "exponential moving average", DefaultLength, EMA),
		windowed("rma", "running moving average (Wilder smoothing)", DefaultLength, RMA),
		windowed("wma", "linearly weighted moving average", DefaultLength, WMA),
		windowed("highest", "highest value over the window", DefaultLength, Highest),
		windowed("lowest", "lowest value over the window", DefaultLength, Lowest),
		windowed("stdev", "population standard deviation over the window", DefaultLength, Stdev),
		{
			Name:        "hma",
			Description: "hull moving average",
			Defaults:    Params{"length": DefaultLength},
			Outputs:     []string{"hma"},
			Build: func(_ *data.Data, source types.Series, p Params) ([]Output, error) {
				s, err := HMA(source, p.Int("length"))
				return single("hma", s, err)
			},
		},
		{
			Name:        "rsi",
			Description: "relative strength index",
			Defaults:    Params{"length": DefaultRSILength},
			Outputs:     []string{"rsi"},
			Build: func(_ *data.Data, source types.Series, p Params) ([]Output, error) {
				s, err := RSI(source, p.Int("length"))
				return single("rsi", s, err)
			},
		},
		{
			Name:        "stochrsi",
			Description: "stochastic rsi",
			Defaults: Params{
				"k":            DefaultStochK,
				"d":            DefaultStochD,
				"rsi_length":   DefaultRSILength,
				"stoch_length": DefaultStochLength,
			},
			Outputs: []string{"k", "d"},
			Build: func(_ *data.Data, source types.Series, p Params) ([]Output, error) {
				r, err := StochRSI(source, StochRSIParams{
					K:           p.Int("k"),
					D:           p.Int("d"),
					RSILength:   p.Int("rsi_length"),
					StochLength: p.Int("stoch_length"),
				})
				if err != nil {
					return nil, err
				}
				return []Output{{"k", r.K}, {"d", r.D}}, nil
			},
		},
		{
			Name:        "tr",
			Description: "true range, uses high, low and close",
			Defaults:    Params{},
			Outputs:     []string{"tr"},
			Build: func(d *data.Data, _ types.Series, _ Params) ([]Output, error) {
				s, err := TR(d.Close, d.High, d.Low)
				if err != nil {
					return nil, err
				}
				return []Output{{"tr", s}}, nil
			},
		},
		{
			Name:        "atr",
			Description: "average true range, uses high, low and close",
			Defaults:    Params{"length": DefaultATRLength},
			Outputs:     []string{"atr"},
			Build: func(d *data.Data, _ types.Series, p Params) ([]Output, error) {
				s, err := ATR(d.Close, d.High, d.Low, p.Int("length"))
				if err != nil {
					return nil, err
				}
				return []Output{{"atr", s}}, nil
			},
		},
		{
			Name:        "obv",
			Description: "on-balance volume, uses close and volume",
			Defaults:    Params{},
			Outputs:     []string{"obv"},
			Build: func(d *data.Data, _ types.Series, _ Params) ([]Output, error) {
				s, err := OBV(d.Close, d.Volume)
				if err != nil {
					return nil, err
				}
				return []Output{{"obv", s}}, nil
			},
		},
		{
			Name:        "macd",
			Description: "moving average convergence divergence",
			Defaults: Params{
				"fast":   DefaultMACDFast,
				"slow":   DefaultMACDSlow,
				"signal": DefaultMACDSignal,
			},
			Outputs: []string{"macd", "signal", "histogram"},
			Build: func(_ *data.Data, source types.Series, p Params) ([]Output, error) {
				r, err := MACD(source, MACDParams{
					Fast:   p.Int("fast"),
					Slow:   p.Int("slow"),
					Signal: p.Int("signal"),
				})
				if err != nil {
					return nil, err
				}
				return []Output{{"macd", r.MACD}, {"signal", r.Signal}, {"histogram", r.Histogram}}, nil
			},
		},
		{
			Name:        "bb",
			Description: "bollinger bands",
			Defaults: Params{
				"length":     DefaultBollingerLength,
				"multiplier": DefaultBollingerMultiplier,
			},
			Fractional: []string{"multiplier"},
			Outputs: []string{"basis", "upper", "lower"},
			Build: func(_ *data.Data, source types.Series, p Params) ([]Output, error) {
				r, err := Bollinger(source, BollingerParams{
					Length:     p.Int("length"),
					Multiplier: p.Float("multiplier"),
				})
				if err != nil {
					return nil, err
				}
				return []Output{{"basis", r.Basis}, {"upper", r.Upper}, {"lower", r.Lower}}, nil
			},
		},
		{
			Name:        "ichimoku",
			Description: "ichimoku cloud, uses high, low and close",
			Defaults: Params{
				"conversion":   DefaultIchimokuConversion,
				"base":         DefaultIchimokuBase,
				"span_b":       DefaultIchimokuSpanB,
				"displacement": DefaultIchimokuDisplacement,
			},
			Outputs: []string{"tenkan", "kijun", "span_a", "span_b", "chikou"},
			Build: func(d *data.Data, _ types.Series, p Params) ([]Output, error) {
				r, err := Ichimoku(d.High, d.Low, d.Close, IchimokuParams{
					Conversion:   p.Int("conversion"),
					Base:         p.Int("base"),
					SpanB:        p.Int("span_b"),
					Displacement: p.Int("displacement"),
				})
				if err != nil {
					return nil, err
				}
				return []Output{
					{"tenkan", r.TenkanSen},
					{"kijun", r.KijunSen},
					{"span_a", r.SenkouSpanA},
					{"span_b", r.SenkouSpanB},
					{"chikou", r.ChikouSpan},
				}, nil
			},
		},
	}
}
