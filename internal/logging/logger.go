// Package logging builds the process logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// EnvLevel names the environment variable that overrides the log level.
const EnvLevel = "HELLO_LOG_LEVEL"

// New returns a text logger writing to w. verbose forces debug level;
// otherwise the level comes from HELLO_LOG_LEVEL and defaults to error.
func New(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: Level(verbose)}))
}

// Level resolves the effective level.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	level := slog.LevelError
	if env := os.Getenv(EnvLevel); env != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(env)); err == nil {
			level = parsed
		}
	}
	return level
}
