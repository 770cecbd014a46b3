// Package logging provides the shared structured logger for Strategos
// services. Log level is controlled by the STRATEGOS_LOG_LEVEL environment
// variable (debug, info, warn, error); default is info.
package logging

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger = newLogger()

func newLogger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           log.InfoLevel,
	})
	if lvl, err := log.ParseLevel(os.Getenv("STRATEGOS_LOG_LEVEL")); err == nil {
		l.SetLevel(lvl)
	}
	return l
}

// With returns a sub-logger carrying the given key/value pairs.
func With(keyvals ...any) *log.Logger {
	return logger.With(keyvals...)
}

// Debug logs at debug level with key/value pairs.
func Debug(msg string, keyvals ...any) { logger.Debug(msg, keyvals...) }

// Info logs at info level with key/value pairs.
func Info(msg string, keyvals ...any) { logger.Info(msg, keyvals...) }

// Warn logs at warn level with key/value pairs.
func Warn(msg string, keyvals ...any) { logger.Warn(msg, keyvals...) }

// Error logs at error level with key/value pairs.
func Error(msg string, keyvals ...any) { logger.Error(msg, keyvals...) }
