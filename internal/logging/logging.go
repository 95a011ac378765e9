// Package logging builds the zerolog logger. The TUI owns stdout, so logs go
// to a file under the data directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// NewFile returns a JSON logger appending to the file at path, creating
// parent directories as needed.
func NewFile(path, level string) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	log := zerolog.New(f).Level(parseLevel(level)).With().Timestamp().Logger()
	return log, f, nil
}

// NewConsole returns a human-readable logger for non-TUI commands.
func NewConsole(out io.Writer, level string) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: out}
	return zerolog.New(cw).Level(parseLevel(level)).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
