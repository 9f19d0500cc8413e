// Package logger configures the process-wide logrus logger.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Options controls Setup.
type Options struct {
	Level    string // logrus level name; "" means info
	Debug    bool   // overrides Level
	JSON     bool
	FilePath string // additionally append logs to this file
}

// Setup configures the standard logrus logger. Logs always go to stderr so stdout
// stays free for rendered reports.
func Setup(opts Options) error {
	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}
	if opts.Debug {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)

	if opts.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if opts.FilePath == "" {
		logrus.SetOutput(os.Stderr)
		return nil
	}
	file, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.SetOutput(os.Stderr)
		logrus.WithError(err).Error("Could not create file for logging")
		return nil
	}
	logrus.SetOutput(io.MultiWriter(os.Stderr, file))
	return nil
}

// For returns a logger tagged with the component name.
func For(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}

// Discard returns a logger that drops everything, for tests and library callers
// that did not ask for logs.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
