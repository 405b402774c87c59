package logger

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// Environment keys read by ConfigFromEnv.
const (
	EnvLevel         = "LOG_LEVEL"
	EnvColor         = "LOG_COLOR"
	EnvJournalStream = "JOURNAL_STREAM"
)

// Config defines how an Emitter filters and writes lines.
type Config struct {
	// Threshold is the least critical severity that is emitted.
	// Default: ErrorLevel (only errors)
	Threshold Severity
	// Colorize wraps the timestamp in an ANSI color chosen by severity.
	// Default: false
	Colorize bool
	// SyslogPrefix prepends the journald priority (<3>, <4>, <6>, <7>) to each line.
	// Default: false
	SyslogPrefix bool
	// Output receives the lines; nil writes to standard output.
	// Default: nil
	Output io.Writer
}

// ConfigFromEnv builds a Config from LOG_LEVEL, LOG_COLOR and JOURNAL_STREAM.
// Missing or malformed values fall back to their defaults.
func ConfigFromEnv() Config {
	threshold, err := ParseThreshold(os.Getenv(EnvLevel))
	if err != nil {
		threshold = ErrorLevel
	}
	return Config{
		Threshold:    threshold,
		Colorize:     colorFromEnv(os.Getenv(EnvColor), os.Stdout),
		SyslogPrefix: os.Getenv(EnvJournalStream) != "",
	}
}

// ParseThreshold parses a base-10 integer threshold.
// An empty value yields ErrorLevel without error.
func ParseThreshold(s string) (Severity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrorLevel, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return ErrorLevel, errors.Wrapf(err, "parse %s %q", EnvLevel, s)
	}
	return Severity(n), nil
}

func colorFromEnv(value string, out *os.File) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "auto" {
		return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	}
	enabled, err := strconv.ParseBool(value)
	return err == nil && enabled
}
