package main

import (
	"context"
	"fmt"
	"io"
	"os"

	bst "github.com/Noxtal/my-binary-search-tree"
	"github.com/Noxtal/my-binary-search-tree/internal/config"
	"github.com/Noxtal/my-binary-search-tree/internal/logging"
	"github.com/Noxtal/my-binary-search-tree/internal/report"
	"github.com/Noxtal/my-binary-search-tree/internal/sample"
	"github.com/rs/zerolog/log"
)

// Version is set at build time.
var Version = "dev"

func main() {
	cmd := config.CreateCommand(func(ctx context.Context, cfg *config.Config) error {
		return runApp(ctx, os.Stdout, cfg)
	}, Version)

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run")
	}
}

func runApp(_ context.Context, out io.Writer, cfg *config.Config) error {
	logging.SetGlobalLogger(cfg.LogLevel)
	logger := logging.WithScope(log.Logger, "TREE")

	gen, err := sample.NewGenerator(cfg.Range, cfg.Seed)
	if err != nil {
		return err
	}

	tree := bst.New(cfg.Root)
	for _, v := range gen.Fill(cfg.Count) {
		logger.Trace().Float64("value", v).Msg("insert")
		tree.Insert(v)
	}
	logger.Debug().
		Int("count", cfg.Count).
		Str("range", cfg.Range.String()).
		Float64("root", cfg.Root).
		Msg("populated")

	if err := tree.Draw(out, 0); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}

	s, err := report.Build(tree, cfg.Probe)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("height", s.Height).
		Bool("balanced", s.Balanced).
		Msg("queried")

	return report.Render(out, s)
}
