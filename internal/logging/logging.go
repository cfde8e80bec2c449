package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// scopeFieldName defines the key for the "scope" field in structured logs.
const scopeFieldName = "scope"

// SetGlobalLogger configures the global zerolog.Logger. Logs go to stderr so
// that stdout only carries the rendered tree.
func SetGlobalLogger(l zerolog.Level) {
	zerolog.SetGlobalLevel(l)
	log.Logger = NewLogger(os.Stderr, l)
}

// NewLogger returns a human-readable logger writing to w at level l.
func NewLogger(w io.Writer, l zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		// FormatPrepare wraps the scope in brackets, e.g. [TREE].
		FormatPrepare: func(m map[string]any) error {
			if v, ok := m[scopeFieldName].(string); ok && v != "" {
				m[scopeFieldName] = fmt.Sprintf("[%s]", v)
			} else {
				m[scopeFieldName] = "[app]"
			}
			return nil
		},
		FieldsExclude: []string{scopeFieldName},
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			scopeFieldName,
			zerolog.MessageFieldName,
		},
	}

	return zerolog.New(consoleWriter).Level(l).With().Timestamp().Logger()
}

// WithScope creates a sub-logger tagged with a component name.
func WithScope(logger zerolog.Logger, scope string) zerolog.Logger {
	return logger.With().Str(scopeFieldName, scope).Logger()
}
