// SPDX-License-Identifier: MIT

// Package config loads matcalc settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds matcalc configuration. Command-line flags override it.
type Config struct {
	DBPath  string        `env:"MATCALC_DB"      envDefault:"matcalc.db"`
	Format  string        `env:"MATCALC_FORMAT"  envDefault:"text"`
	Lang    string        `env:"MATCALC_LANG"    envDefault:"en"`
	Verbose bool          `env:"MATCALC_VERBOSE"`
	Timeout time.Duration `env:"MATCALC_TIMEOUT" envDefault:"30s"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the values that can be checked without other packages.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("%w: database path is required", ErrInvalidConfig)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: format %q (want %s or %s)", ErrInvalidConfig, c.Format, FormatText, FormatJSON)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	}
	return nil
}
