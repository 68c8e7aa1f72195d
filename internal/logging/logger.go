// Package logging configures the structured logger shared by the CLI.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a zerolog logger writing to output (stderr when nil) at level.
// An unparsable level falls back to info.
func New(output io.Writer, level string) zerolog.Logger {
	if output == nil {
		output = os.Stderr
	}
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(output).Level(lvl).With().
		Timestamp().
		Str("service", "cryptotour").
		Logger()
}

// Console is New with human-readable output for terminals.
func Console(output io.Writer, level string) zerolog.Logger {
	if output == nil {
		output = os.Stderr
	}
	return New(zerolog.ConsoleWriter{Out: output, TimeFormat: time.Kitchen}, level)
}
