package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// File, when set, sends output to a rotating log file instead of stderr.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.WarnLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

// New creates a new zerolog logger writing to stderr
func New(cfg Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter creates a logger that writes to out in the configured format
func NewWithWriter(cfg Config, out io.Writer) zerolog.Logger {
	output := out

	switch cfg.Format {
	case "console":
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	case "json":
		// JSON is the default zerolog format
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromConfig builds a logger for cfg. When cfg.File is set the returned
// closer owns the log file and must be closed on shutdown.
func NewFromConfig(cfg Config) (zerolog.Logger, io.Closer, error) {
	if cfg.File == "" {
		return New(cfg), nopCloser{}, nil
	}

	fw, err := NewFileWriter(cfg.File, cfg.MaxSizeMB, cfg.MaxBackups)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	return NewWithWriter(cfg, fw), fw, nil
}

// NewFromConfigValues creates a logger from raw config strings
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// ParseLevel maps a level name to a zerolog level, defaulting to warn
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// ValidLevel reports whether level is a name ParseLevel understands
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
		return true
	}
	return false
}

// Discard returns a logger that drops everything.
func Discard() zerolog.Logger {
	return zerolog.Nop()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
