package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup routes the global zerolog logger to the given file and returns a
// close function. The TUI owns the terminal, so nothing may write to stdout
// or stderr while the program runs.
func Setup(path string, level string) (func(), error) {
	zerolog.TimeFieldFormat = time.RFC3339

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	zerolog.SetGlobalLevel(ParseLevel(level))
	log.Logger = zerolog.New(f).With().Timestamp().Logger()

	return func() { _ = f.Close() }, nil
}

// ParseLevel maps a config string to a zerolog level, defaulting to info
func ParseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
