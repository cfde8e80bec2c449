package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithScope(t *testing.T) {
	tcs := []struct {
		name  string
		scope string
		want  string
	}{
		{"named scope", "TREE", "[TREE]"},
		{"default scope", "", "[app]"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, zerolog.InfoLevel)
			if tc.scope != "" {
				logger = WithScope(logger, tc.scope)
			}
			logger.Info().Int("count", 3).Msg("populated")

			out := buf.String()
			assert.Contains(t, out, tc.want)
			assert.Contains(t, out, "populated")
			assert.Contains(t, out, "count=")
			assert.NotContains(t, out, "scope=")
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	global := zerolog.GlobalLevel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, zerolog.WarnLevel)
	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")

	// Building a logger leaves the process-wide level alone.
	assert.Equal(t, global, zerolog.GlobalLevel())
}
