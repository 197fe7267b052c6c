// Package config defines traitsort's runtime configuration.
package config

import (
	"fmt"
	"slices"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile is where structured logs go. Empty disables logging, since the
	// terminal UI owns stdout and stderr.
	LogFile string `koanf:"log_file"`

	// BankFile is an optional question bank JSON file replacing the built-in
	// bank.
	BankFile string `koanf:"bank_file"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("log_level %q must be one of %v", c.LogLevel, logLevels)
	}
	return nil
}
