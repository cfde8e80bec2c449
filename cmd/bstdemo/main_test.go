package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Noxtal/my-binary-search-tree/internal/config"
	"github.com/Noxtal/my-binary-search-tree/internal/sample"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunApp(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	cfg := config.Default()
	cfg.Seed = 42
	cfg.LogLevel = zerolog.Disabled

	var first, second bytes.Buffer
	require.NoError(t, runApp(context.Background(), &first, cfg))
	require.NoError(t, runApp(context.Background(), &second, cfg))

	out := first.String()
	assert.Equal(t, out, second.String())
	assert.True(t, strings.HasPrefix(out, "\n"))
	// Root is drawn flush-left.
	assert.Contains(t, out, "\n0.5 \n")
	assert.Contains(t, out, "nodes    : 11")
	assert.Contains(t, out, "has(0.5) : true")
}

func TestRunAppOverflow(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 1
	cfg.Count = 1
	cfg.Root = 0
	cfg.Range = sample.Range{Min: 1e10, Max: 1e11}
	cfg.LogLevel = zerolog.Disabled

	var buf bytes.Buffer
	err := runApp(context.Background(), &buf, cfg)
	assert.Error(t, err)
}
