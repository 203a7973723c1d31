package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// New builds the process logger. It is constructed once in main and handed to
// every component that logs; nothing in this codebase reaches for a global.
func New(level string) *log.Logger {
	return NewWithSink(os.Stderr, level)
}

// NewWithSink builds a logger writing to an arbitrary sink. Tests and
// telemetry forwarders plug in here.
func NewWithSink(w io.Writer, level string) *log.Logger {
	l := log.New(w)
	l.SetReportTimestamp(true)

	switch strings.ToLower(level) {
	case "debug":
		l.SetLevel(log.DebugLevel)
	case "warn", "warning":
		l.SetLevel(log.WarnLevel)
	case "error":
		l.SetLevel(log.ErrorLevel)
	default:
		l.SetLevel(log.InfoLevel)
	}

	return l
}
