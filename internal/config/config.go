// Package config provides configuration management for int.
package config

import (
	"errors"
	"fmt"
)

// Config holds the settings for one invocation of int.
type Config struct {
	// FailFast stops at the first argument that cannot be converted.
	// By default every argument is converted and failures are reported inline.
	FailFast bool

	// MaxBits caps the two's complement width used for negative values (default: 0 = no cap).
	// Must be 0 or a multiple of 8.
	MaxBits int

	// NoColor disables colour output. Also set when NO_COLOR is in the environment.
	NoColor bool

	// Separator is the character repeated to draw the rule between results (default: "─").
	Separator string

	// NoSeparator suppresses the rule between results.
	NoSeparator bool

	// Width is the width of the separator rule (default: 0 = terminal width).
	Width int

	// Quiet suppresses everything except results and errors.
	Quiet bool

	// Verbose prints parsing diagnostics to stderr.
	Verbose bool
}

// DefaultSeparator is the rule character printed between results.
const DefaultSeparator = "─"

// DefaultWidth is used for the separator when the terminal width is unknown.
const DefaultWidth = 80

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Separator: DefaultSeparator,
	}
}

// Validate checks that the configuration is valid.
// Returns an error if validation fails.
func (c *Config) Validate() error {
	if c.MaxBits < 0 {
		return errors.New("max bits cannot be negative")
	}
	if c.MaxBits%8 != 0 {
		return fmt.Errorf("max bits must be a multiple of 8, got %d", c.MaxBits)
	}
	if c.Width < 0 {
		return errors.New("width cannot be negative")
	}
	if c.Separator == "" {
		return errors.New("separator cannot be empty")
	}
	if c.Quiet && c.Verbose {
		return errors.New("quiet and verbose are mutually exclusive")
	}
	return nil
}
