// Package config provides configuration management for the baseconv CLI.
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/capitalone/baseconv"
)

// Defaults applied before any file, environment or flag.
const (
	DefaultFrom   = "10"
	DefaultTo     = "16"
	DefaultOutput = "text"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "BASECONV_"

// Config holds the settings of one baseconv invocation.
// Bases are kept as text and parsed by Bases so that malformed values report
// baseconv.ErrInvalidBase.
type Config struct {
	From    string `koanf:"from"`
	To      string `koanf:"to"`
	Output  string `koanf:"output"`
	Verbose bool   `koanf:"verbose"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// Default returns a Config populated with the default values.
func Default() *Config {
	return &Config{
		From:   DefaultFrom,
		To:     DefaultTo,
		Output: DefaultOutput,
	}
}

// Bases parses the source and target bases. As in baseconv.ConvertValue, a
// base that is not an integer is reported before one that is out of range.
func (c *Config) Bases() (from, to int, err error) {
	from, ferr := baseconv.ParseBase(c.From)
	to, terr := baseconv.ParseBase(c.To)
	switch {
	case errors.Is(ferr, baseconv.ErrInvalidBase):
		return 0, 0, fmt.Errorf("invalid source base: %w", ferr)
	case errors.Is(terr, baseconv.ErrInvalidBase):
		return 0, 0, fmt.Errorf("invalid target base: %w", terr)
	case ferr != nil:
		return 0, 0, fmt.Errorf("invalid source base: %w", ferr)
	case terr != nil:
		return 0, 0, fmt.Errorf("invalid target base: %w", terr)
	}
	return from, to, nil
}

type configKey struct{}

// WithConfig stores cfg in ctx.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config stored by WithConfig, or the defaults.
func FromContext(ctx context.Context) *Config {
	if ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*Config); ok {
			return c
		}
	}
	return Default()
}
