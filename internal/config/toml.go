package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// tomlConfig mirrors Config with optional fields so that only the keys
// present in the file override the defaults.
type tomlConfig struct {
	Count    *int     `toml:"count"`
	Min      *float64 `toml:"min"`
	Max      *float64 `toml:"max"`
	Root     *float64 `toml:"root"`
	Probe    *float64 `toml:"probe"`
	Seed     *int64   `toml:"seed"`
	LogLevel *string  `toml:"log-level"`
}

func fromTomlFile(path string) (*tomlConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no such file: %s", path)
	}

	var tc tomlConfig
	md, err := toml.DecodeFile(path, &tc)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}

	return &tc, nil
}

// apply overwrites the fields of cfg that are set in tc.
func (tc *tomlConfig) apply(cfg *Config) error {
	if tc.Count != nil {
		cfg.Count = *tc.Count
	}
	if tc.Min != nil {
		cfg.Range.Min = *tc.Min
	}
	if tc.Max != nil {
		cfg.Range.Max = *tc.Max
	}
	if tc.Root != nil {
		cfg.Root = *tc.Root
	}
	if tc.Probe != nil {
		cfg.Probe = *tc.Probe
	}
	if tc.Seed != nil {
		cfg.Seed = *tc.Seed
	}
	if tc.LogLevel != nil {
		l, err := zerolog.ParseLevel(*tc.LogLevel)
		if err != nil {
			return fmt.Errorf("field %q: %w", "log-level", err)
		}
		cfg.LogLevel = l
	}
	return nil
}
