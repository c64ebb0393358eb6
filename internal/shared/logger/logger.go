package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New initializes a new zerolog.Logger writing to stderr.
// 'devMode' enables human-readable console logging.
func New(devMode bool, level zerolog.Level) zerolog.Logger {
	return NewWithWriter(os.Stderr, devMode, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(out io.Writer, devMode bool, level zerolog.Level) zerolog.Logger {
	if devMode {
		// Human-readable, colorful output for local development
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}
	// Efficient JSON output otherwise
	return zerolog.New(out).Level(level).With().Timestamp().Str("app", "nadi").Logger()
}
