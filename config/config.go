// SPDX-License-Identifier: MIT

// Package config holds the static settings of a colexnet run.
//
// Values resolve in viper's order: explicit overrides (bound CLI flags),
// environment variables prefixed COLEXNET_, an optional config file, then
// the defaults below.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned by Validate and Load for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override, e.g. COLEXNET_SEED.
const EnvPrefix = "COLEXNET"

// Keys.
const (
	KeyInput            = "input"
	KeyMinLanguageCount = "min_language_count"
	KeySeparator        = "separator"
	KeyDebug            = "debug"
	KeyWeightThreshold  = "weight_threshold"
	KeyRandomWalkCount  = "random_walk_count"
	KeyRandomWalkLength = "random_walk_length"
	KeySmoothingFactor  = "smoothing_factor"
	KeyWorkers          = "workers"
	KeySeed             = "seed"
	KeyOutputDir        = "output_dir"
	KeyResultsDir       = "results_dir"
	KeyFormat           = "format"
)

// Config is the resolved settings.
type Config struct {
	// Input is the CSV file of colexification records.
	Input string `mapstructure:"input"`
	// MinLanguageCount drops concepts attested in fewer languages.
	MinLanguageCount int `mapstructure:"min_language_count"`
	// Separator splits concept IDs into name and definition.
	Separator string `mapstructure:"separator"`
	// Debug switches logging to DEBUG level.
	Debug bool `mapstructure:"debug"`
	// WeightThreshold drops edges with fewer translations.
	WeightThreshold int64 `mapstructure:"weight_threshold"`
	// RandomWalkCount is the number of walks per start concept.
	RandomWalkCount int `mapstructure:"random_walk_count"`
	// RandomWalkLength is the number of nodes per walk, start included.
	RandomWalkLength int `mapstructure:"random_walk_length"`
	// SmoothingFactor is the share of probability mass spread uniformly.
	SmoothingFactor float64 `mapstructure:"smoothing_factor"`
	// Workers bounds parallel tasks; 0 selects GOMAXPROCS.
	Workers int `mapstructure:"workers"`
	// Seed fixes the random source; 0 seeds from the clock.
	Seed int64 `mapstructure:"seed"`
	// OutputDir receives visualization listings.
	OutputDir string `mapstructure:"output_dir"`
	// ResultsDir receives persisted analysis results.
	ResultsDir string `mapstructure:"results_dir"`
	// Format is "json" or "yaml".
	Format string `mapstructure:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MinLanguageCount: 40,
		Separator:        ";;",
		Debug:            false,
		WeightThreshold:  2,
		RandomWalkCount:  10,
		RandomWalkLength: 10,
		SmoothingFactor:  0.1,
		Workers:          0,
		Seed:             0,
		OutputDir:        "networks",
		ResultsDir:       "results",
		Format:           "json",
	}
}

// SetDefaults registers Default() on v and enables COLEXNET_ env lookup.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyInput, d.Input)
	v.SetDefault(KeyMinLanguageCount, d.MinLanguageCount)
	v.SetDefault(KeySeparator, d.Separator)
	v.SetDefault(KeyDebug, d.Debug)
	v.SetDefault(KeyWeightThreshold, d.WeightThreshold)
	v.SetDefault(KeyRandomWalkCount, d.RandomWalkCount)
	v.SetDefault(KeyRandomWalkLength, d.RandomWalkLength)
	v.SetDefault(KeySmoothingFactor, d.SmoothingFactor)
	v.SetDefault(KeyWorkers, d.Workers)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyOutputDir, d.OutputDir)
	v.SetDefault(KeyResultsDir, d.ResultsDir)
	v.SetDefault(KeyFormat, d.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load resolves a Config from defaults, the optional file at path and the
// environment. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	return FromViper(v)
}

// FromViper decodes and validates the settings held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.Format = strings.ToLower(cfg.Format)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.MinLanguageCount < 0:
		return fmt.Errorf("%w: %s must be ≥ 0, got %d", ErrInvalidConfig, KeyMinLanguageCount, c.MinLanguageCount)
	case c.WeightThreshold < 0:
		return fmt.Errorf("%w: %s must be ≥ 0, got %d", ErrInvalidConfig, KeyWeightThreshold, c.WeightThreshold)
	case c.RandomWalkCount < 1:
		return fmt.Errorf("%w: %s must be ≥ 1, got %d", ErrInvalidConfig, KeyRandomWalkCount, c.RandomWalkCount)
	case c.RandomWalkLength < 1:
		return fmt.Errorf("%w: %s must be ≥ 1, got %d", ErrInvalidConfig, KeyRandomWalkLength, c.RandomWalkLength)
	case !(c.SmoothingFactor >= 0 && c.SmoothingFactor <= 1):
		return fmt.Errorf("%w: %s must be in [0,1], got %v", ErrInvalidConfig, KeySmoothingFactor, c.SmoothingFactor)
	case c.Workers < 0:
		return fmt.Errorf("%w: %s must be ≥ 0, got %d", ErrInvalidConfig, KeyWorkers, c.Workers)
	case c.Format != "json" && c.Format != "yaml":
		return fmt.Errorf("%w: %s must be json or yaml, got %q", ErrInvalidConfig, KeyFormat, c.Format)
	}

	return nil
}
