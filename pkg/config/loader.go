package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/c9s/vista/pkg/indicator"
	"github.com/c9s/vista/pkg/num"
)

const (
	FormatTable = "table"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
)

// Config describes a calculation run: where the market data comes from,
// which indicators to evaluate and how to present them.
type Config struct {
	Data       string              `yaml:"data" validate:"required"`
	Limit      int                 `yaml:"limit" validate:"gte=0"`
	Format     string              `yaml:"format" validate:"omitempty,oneof=table tsv json"`
	Output     string              `yaml:"output,omitempty"`
	Round      *int                `yaml:"round,omitempty" validate:"omitempty,gte=0,lte=15"`
	RoundMode  string              `yaml:"roundMode,omitempty"`
	Indicators []indicator.Request `yaml:"indicators" validate:"required,min=1,dive"`
	Chart      *ChartConfig        `yaml:"chart,omitempty"`
}

type ChartConfig struct {
	Title  string `yaml:"title,omitempty"`
	Output string `yaml:"output" validate:"required"`
	// Overlay adds the price source to the chart
	Overlay bool `yaml:"overlay,omitempty"`
}

// Rounding returns the rounding mode, half-up when none is set.
func (c *Config) Rounding() num.RoundMode {
	if c.RoundMode == "" {
		return num.HalfUp
	}

	mode, err := num.ParseRoundMode(c.RoundMode)
	if err != nil {
		return num.HalfUp
	}
	return mode
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	if c.RoundMode != "" {
		if _, err := num.ParseRoundMode(c.RoundMode); err != nil {
			return errors.Wrap(err, "invalid config")
		}
	}
	return nil
}

// Load reads a YAML run file. Environment variables in the file are expanded.
func Load(configFile string) (*Config, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	return LoadFromYAML([]byte(os.ExpandEnv(string(content))))
}

func LoadFromYAML(content []byte) (*Config, error) {
	config := &Config{Format: FormatTable}
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, errors.Wrap(err, "can not decode config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
