// Package logging configures the logrus logger shared by all commands.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Options controls where and how much is logged.
type Options struct {
	Level  string
	File   string    // when set, logs are appended here instead of Output
	Output io.Writer // defaults to os.Stderr
}

// New builds a text-formatted logger. An unknown level falls back to warn.
// The returned close func releases the log file, if any.
func New(opts Options) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	closeFn := func() error { return nil }

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}
	logger.SetOutput(out)

	return logger, closeFn, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
