// Package logging builds the structured loggers the game writes to stderr.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// New creates a logger writing to stderr at the named level
// ("debug", "info", "warn", "error").
func New(prefix, level string) (*log.Logger, error) {
	return NewWriter(os.Stderr, prefix, level)
}

// NewWriter creates a logger writing to w
func NewWriter(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
	logger.SetStyles(styles())
	return logger, nil
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.New(io.Discard)
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.DebugLevel] = levelStyle("DEBUG", "63")
	s.Levels[log.InfoLevel] = levelStyle("INFO", "86")
	s.Levels[log.WarnLevel] = levelStyle("WARN", "192")
	s.Levels[log.ErrorLevel] = levelStyle("ERROR", "204")
	s.Levels[log.FatalLevel] = levelStyle("FATAL", "134")
	return s
}

func levelStyle(label, color string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Bold(true).
		MaxWidth(5).
		Foreground(lipgloss.Color(color))
}
