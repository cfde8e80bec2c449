package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

func validateCount(v int) error {
	if v < 0 {
		return fmt.Errorf("must not be negative, got %d", v)
	}
	return nil
}

func validateLogLevel(v string) error {
	_, err := zerolog.ParseLevel(v)
	if err != nil {
		return fmt.Errorf("invalid level string %s", v)
	}

	return nil
}

func validateLevel(l zerolog.Level) error {
	if l == zerolog.NoLevel || l < zerolog.TraceLevel || l > zerolog.Disabled {
		return fmt.Errorf("invalid level %d", l)
	}

	return nil
}
