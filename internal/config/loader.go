package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if OLY_CONFIG is set
//  3. env (prefix OLY_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("OLY_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: OLY_ADDR, OLY_ATHLETES_CSV, ...
	// Map env keys like OLY_ATHLETES_CSV -> athletes_csv (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("OLY_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "oly_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the service cannot start with.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.AthletesCSV == "":
		return fmt.Errorf("%w: athletes_csv must not be empty", ErrInvalidConfig)
	case c.RegionsCSV == "":
		return fmt.Errorf("%w: regions_csv must not be empty", ErrInvalidConfig)
	case c.DefaultTopN < 1:
		return fmt.Errorf("%w: default_top_n must be positive", ErrInvalidConfig)
	case c.MaxTopLimit < c.DefaultTopN:
		return fmt.Errorf("%w: max_top_limit must be >= default_top_n", ErrInvalidConfig)
	case c.MaxRecordsPage < 1:
		return fmt.Errorf("%w: max_records_page must be positive", ErrInvalidConfig)
	case c.HistogramBins < 1:
		return fmt.Errorf("%w: histogram_bins must be positive", ErrInvalidConfig)
	}
	return nil
}
