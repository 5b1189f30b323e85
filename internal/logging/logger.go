// Package logging wraps zerolog with the conventions used across jumpkey:
// loggers travel inside context.Context and are configured from env or config.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg Config, out io.Writer) zerolog.Logger {
	if cfg.Format == FormatConsole {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(out).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewWithFile creates a logger that writes to stderr and to a rotated file in logDir.
// The returned cleanup closes the file.
func NewWithFile(cfg Config, logDir string, maxAgeDays int) (zerolog.Logger, func(), error) {
	const logDirPerm = 0o750

	if err := os.MkdirAll(logDir, logDirPerm); err != nil {
		return New(cfg), func() {}, fmt.Errorf("create log directory: %w", err)
	}

	rotator, err := NewLogRotator(logDir, "jumpkey.log", 10, 3, maxAgeDays, true)
	if err != nil {
		return New(cfg), func() {}, err
	}

	var console io.Writer = os.Stderr
	if cfg.Format == FormatConsole {
		console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
	}

	// The file always receives JSON so it stays greppable with jq.
	logger := zerolog.New(zerolog.MultiLevelWriter(console, rotator)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	cleanup := func() {
		if closeErr := rotator.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", closeErr)
		}
	}
	return logger, cleanup, nil
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromEnv creates a logger based on environment variables
// JUMPKEY_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// JUMPKEY_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("JUMPKEY_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("JUMPKEY_LOG_FORMAT"); format != "" {
		switch format {
		case FormatJSON, FormatConsole:
			cfg.Format = format
		}
	}

	return New(cfg)
}
