// Package util provides common utilities including logging helpers,
// file system operations, and small value helpers.
package util

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

func init() {
	// The TUI owns stdout; stay quiet until InitLogging points us at a file.
	logger.SetOutput(io.Discard)
}

// InitLogging routes logs to a file under dir. Failures leave logging
// disabled rather than corrupting the TUI.
func InitLogging(dir string) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "tempo.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	logger.SetOutput(f)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)
}

// Log exposes the shared logger for structured fields.
func Log() *logrus.Logger { return logger }

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		logger.WithError(err).Error(context)
	}
}
