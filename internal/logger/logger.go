// Package logger owns the process-wide structured logger.
//
// The game draws with tcell, which owns the terminal: anything printed
// to stdout or stderr while the screen is live corrupts the display.
// Log output therefore goes to the file named by LOG_FILE, or nowhere.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger instance. It discards everything until Init
// configures it, which also keeps tests quiet.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init configures the global logger from the environment. Call once
// from main, before the screen is initialized.
//
//	LOG_LEVEL  - logrus level name, default "info"
//	LOG_FORMAT - "json" or "text", default "text"
//	LOG_FILE   - file to append logs to; unset leaves output discarded
func Init() error {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	path := os.Getenv("LOG_FILE")
	if path == "" {
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	Log.SetOutput(file)
	return nil
}
