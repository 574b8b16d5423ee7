// Package logger configures the logrus logger shared by the element engine
// and the CLI.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to stderr with timestamped plain-text output.
func New(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "060102:150405",
	})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// NewWithFile returns a logger that writes to both stderr and the given log
// file, plus a closer for the file. The file is appended to across runs.
func NewWithFile(path string, verbose bool) (*logrus.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log := New(verbose)
	log.SetOutput(io.MultiWriter(os.Stderr, f))
	return log, f, nil
}
