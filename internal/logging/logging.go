// Package logging builds the leveled console logger shared by commands and the session.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix is printed before every log line.
const Prefix = "todomatic"

// Options holds configuration for console logging.
type Options struct {
	Level           string
	Debug           bool
	Quiet           bool
	ReportTimestamp bool
}

// New creates a text logger writing to w.
// Debug forces the debug level and Quiet raises the level to error;
// otherwise Level is parsed, falling back to info.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(opts),
		Formatter:       log.TextFormatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          Prefix,
	})
}

// ParseLevel resolves the effective level for opts.
func ParseLevel(opts Options) log.Level {
	switch {
	case opts.Debug:
		return log.DebugLevel
	case opts.Quiet:
		return log.ErrorLevel
	}

	switch strings.ToLower(strings.TrimSpace(opts.Level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
