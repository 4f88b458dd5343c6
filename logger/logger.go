package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger
// Discards output until Init runs so packages and tests can log freely
var Log = newDiscard()

// file is the open log file, closed by Close
var file *os.File

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init configures the global logger to write to path
// level comes from the caller (flag), falling back to LOG_LEVEL, then "info"
// LOG_FORMAT=json selects JSON output; text otherwise
// The terminal belongs to the renderer, so output never goes to stdout
func Init(path, level string) error {
	l := logrus.New()

	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	l.SetOutput(io.Discard)
	Log = l

	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	file = f
	l.SetOutput(f)
	return nil
}

// Close flushes and releases the log file, if any
func Close() {
	if file != nil {
		file.Close()
		file = nil
	}
	Log.SetOutput(io.Discard)
}
