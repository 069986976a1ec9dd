// Package logging builds the structured logger the rest of the tool writes to.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// EnvLogLevel is the environment variable overriding the configured log level.
const EnvLogLevel = "SPENDNOTE_LOG_LEVEL"

// New creates a console logger at the given level.
func New(level string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// NewWithWriter creates a logger with a custom writer, for tests.
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// ResolveLevel picks the effective log level: the environment wins over the
// configured value. A .env file in the working directory is honored if present.
func ResolveLevel(configured string) string {
	_ = godotenv.Load() // best effort; absence is the normal case

	if env := os.Getenv(EnvLogLevel); env != "" {
		return env
	}
	return configured
}

// ParseLevel maps a level name onto zerolog, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "error":
		return zerolog.ErrorLevel
	case "info", "":
		return zerolog.InfoLevel
	default:
		return zerolog.InfoLevel
	}
}
