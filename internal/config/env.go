// Package config provides shared configuration utilities.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt64 parses the environment variable named by the key as an int64.
// An unset or empty variable yields fallback.
func GetEnvInt64(key string, fallback int64) (int64, error) {
	value := GetEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// NewLogger returns a logger writing to w at the level named by LOG_LEVEL
// (info when unset or invalid).
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		logger.Warn("unknown LOG_LEVEL, using info", "err", err)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
