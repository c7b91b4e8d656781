package log

import (
	"io"
	"log/slog"
)

// Config holds logger configuration.
type Config struct {
	Level     slog.Level
	Component string
	Writer    io.Writer
}

// New returns a text logger with the component attribute attached to every record.
func New(config Config) *slog.Logger {
	handler := slog.NewTextHandler(config.Writer, &slog.HandlerOptions{
		Level: config.Level,
	})
	return slog.New(handler).With(FieldComponent, config.Component)
}

// Level returns the level for the verbosity requested on the command line.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
