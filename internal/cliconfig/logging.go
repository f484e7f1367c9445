package cliconfig

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/crtools/internal/domain"
)

// DefaultLogLevel is used when no level is configured.
const DefaultLogLevel = "info"

// Logger returns a console logger on stderr at the default level.
func Logger() zerolog.Logger {
	return NewLogger(os.Stderr, zerolog.InfoLevel)
}

// NewLogger returns a console logger writing to w.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

// ParseLogLevel converts a level name such as "debug" or "warn".
func ParseLogLevel(s string) (zerolog.Level, error) {
	if s == "" {
		s = DefaultLogLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log level %q", domain.ErrInvalidConfiguration, s)
	}
	return level, nil
}
