// Package logging builds the application's loggers.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a [log.Logger] writing to w with timestamps enabled. The
// writer defaults to [os.Stderr]. An unparsable level falls back to warn.
func New(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
	})
}

// With creates a child logger with the given key-value pairs and prefix.
func With(l *log.Logger, prefix string, kv ...any) *log.Logger {
	child := l.With(kv...)
	child.SetPrefix(prefix)
	return child
}
