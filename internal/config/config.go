package config

import (
	"fmt"

	"github.com/Noxtal/my-binary-search-tree/internal/sample"
	"github.com/rs/zerolog"
)

// Config drives a single bstdemo run.
type Config struct {
	// Count is the number of sampled values inserted after the root.
	Count int
	Range sample.Range
	// Root is the value the tree is created with.
	Root float64
	// Probe is the value looked up with Has once the tree is populated.
	Probe float64
	// Seed for the sample generator; 0 seeds from the clock.
	Seed     int64
	LogLevel zerolog.Level
}

// Default returns the stock demo configuration: ten values drawn
// from [0, 1) under a root of 0.5, probing for 0.5.
func Default() *Config {
	return &Config{
		Count:    10,
		Range:    sample.Range{Min: 0, Max: 1},
		Root:     0.5,
		Probe:    0.5,
		LogLevel: zerolog.InfoLevel,
	}
}

// Validate checks the fields that flags and TOML cannot check on their own.
func (c *Config) Validate() error {
	if err := validateCount(c.Count); err != nil {
		return fmt.Errorf("count: %w", err)
	}
	if err := c.Range.Validate(); err != nil {
		return fmt.Errorf("range: %w", err)
	}
	if err := validateLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}
