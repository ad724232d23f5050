package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

const logPrefix = "polyroids"

// NewLogger creates a logger writing to w at the level named by LOG_LEVEL
// (debug, info, warn, error). Info is the default.
func NewLogger(w io.Writer) (*log.Logger, error) {
	level := log.InfoLevel
	if name := GetEnv("LOG_LEVEL", ""); name != "" {
		parsed, err := log.ParseLevel(name)
		if err != nil {
			return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
		}
		level = parsed
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          logPrefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	}), nil
}

// OpenLogFile opens the file named by LOG_FILE for appending. Hosts that own
// the terminal cannot log to it, so without LOG_FILE logs are discarded.
// The returned close function is never nil.
func OpenLogFile() (io.Writer, func() error, error) {
	path := GetEnv("LOG_FILE", "")
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}
