// Package logging configures structured logging for taxsync using zerolog.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Recognized log level names, from quietest to noisiest.
const (
	LevelNone  = "none"
	LevelError = "error"
	LevelWarn  = "warn"
	LevelInfo  = "info"
	LevelDebug = "debug"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = LevelInfo

// ParseLevel converts a level string (case-insensitive) to a zerolog.Level.
// Returns InfoLevel and an error for unrecognized input.
func ParseLevel(levelStr string) (zerolog.Level, error) {
	switch strings.ToLower(levelStr) {
	case LevelNone:
		return zerolog.Disabled, nil
	case LevelError:
		return zerolog.ErrorLevel, nil
	case LevelWarn, "warning":
		return zerolog.WarnLevel, nil
	case LevelInfo:
		return zerolog.InfoLevel, nil
	case LevelDebug:
		return zerolog.DebugLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("invalid log level string: '%s'", levelStr)
	}
}

// Setup configures the global logger to write human-readable lines to w
// at the given level. An invalid level string falls back to info after
// emitting a warning through the freshly configured logger.
func Setup(levelStr string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, err := ParseLevel(levelStr)
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	log.Logger = logger

	if err != nil {
		logger.Warn().Str("loglevel", levelStr).Msg("Invalid log level, defaulting to 'info'")
	}
	return logger
}

// NewLogger returns a child of the global logger tagged with a component name.
func NewLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
