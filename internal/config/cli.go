package config

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

// CreateCommand builds the bstdemo command, which calls runFunc with the
// merged and validated Config.
func CreateCommand(
	runFunc func(ctx context.Context, cfg *Config) error,
	version string,
) *cli.Command {
	cmd := &cli.Command{
		Name:        "bstdemo",
		Usage:       "populate a binary tree with random values and inspect it",
		Description: "Inserts uniformly drawn values into a binary tree, draws it and reports its in-order sequence, balance and membership of a probe value.",
		Version:     version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage: `
				Location of a TOML config file. Options given through the command line
				flags will override the options set in this file.`,
				OnlyOnce: true,
				Sources:  cli.EnvVars("BSTDEMO_CONFIG"),
			},

			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage: `
				Number of values to insert after the root`,
				Value:     10,
				OnlyOnce:  true,
				Validator: validateCount,
			},

			&cli.StringFlag{
				Name: "log-level",
				Usage: `
				Set the log level (trace, debug, info, warn, error)`,
				Value:     "info",
				OnlyOnce:  true,
				Validator: validateLogLevel,
			},

			&cli.FloatFlag{
				Name: "max",
				Usage: `
				Exclusive upper bound of the sampled values`,
				Value:    1,
				OnlyOnce: true,
			},

			&cli.FloatFlag{
				Name: "min",
				Usage: `
				Inclusive lower bound of the sampled values`,
				Value:    0,
				OnlyOnce: true,
			},

			&cli.FloatFlag{
				Name: "probe",
				Usage: `
				Value looked up in the populated tree`,
				Value:    0.5,
				OnlyOnce: true,
			},

			&cli.FloatFlag{
				Name: "root",
				Usage: `
				Value of the root node`,
				Value:    0.5,
				OnlyOnce: true,
			},

			&cli.Int64Flag{
				Name: "seed",
				Usage: `
				Seed for the value generator; 0 seeds from the current time`,
				OnlyOnce: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := parseConfig(cmd)
			if err != nil {
				return err
			}
			return runFunc(ctx, cfg)
		},
	}

	return cmd
}

// parseConfig layers the TOML file, if any, and then the explicitly set
// flags over the defaults.
func parseConfig(cmd *cli.Command) (*Config, error) {
	cfg := Default()

	if path := cmd.String("config"); path != "" {
		tc, err := fromTomlFile(path)
		if err != nil {
			return nil, fmt.Errorf("error parsing toml config: %w", err)
		}
		if err := tc.apply(cfg); err != nil {
			return nil, fmt.Errorf("error parsing toml config: %w", err)
		}
	}

	if cmd.IsSet("count") {
		cfg.Count = cmd.Int("count")
	}
	if cmd.IsSet("min") {
		cfg.Range.Min = cmd.Float("min")
	}
	if cmd.IsSet("max") {
		cfg.Range.Max = cmd.Float("max")
	}
	if cmd.IsSet("root") {
		cfg.Root = cmd.Float("root")
	}
	if cmd.IsSet("probe") {
		cfg.Probe = cmd.Float("probe")
	}
	if cmd.IsSet("seed") {
		cfg.Seed = cmd.Int64("seed")
	}
	if cmd.IsSet("log-level") {
		l, err := zerolog.ParseLevel(cmd.String("log-level"))
		if err != nil {
			return nil, err
		}
		cfg.LogLevel = l
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
