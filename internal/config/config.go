// Package config loads the statvis command line configuration.
package config

import (
	"errors"
	"fmt"

	"github.com/vdobler/statvis"
)

// Output formats.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// Log levels.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// ErrInvalidFormat is returned for an unknown output format.
var ErrInvalidFormat = errors.New("invalid output format")

// ErrInvalidLogLevel is returned for an unknown log level.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Config is the top-level configuration struct for statvis.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Widget statvis.Options `mapstructure:"widget"`
	Output OutputConfig    `mapstructure:"output"`
	Log    LogConfig       `mapstructure:"log"`
}

// OutputConfig selects how results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatTable, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.Format)
	}

	switch c.Log.Level {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}

	err := c.Widget.Validate()
	if err != nil {
		return fmt.Errorf("widget: %w", err)
	}

	return nil
}
