package logger

import "strconv"

// Severity is the criticality of a log line.
// Lower values are more critical; a line is emitted when its severity
// is less than or equal to the configured threshold.
type Severity int

const (
	// ErrorLevel is the most critical severity and the default threshold.
	ErrorLevel Severity = iota
	// WarningLevel marks unexpected but recoverable conditions.
	WarningLevel
	// InfoLevel marks normal progress messages.
	InfoLevel
	// DebugLevel is the least critical severity.
	DebugLevel
)

var severityNames = map[Severity]string{
	ErrorLevel:   "ERROR",
	WarningLevel: "WARNING",
	InfoLevel:    "INFO",
	DebugLevel:   "DEBUG",
}

// Severities returns all named severities, most critical first.
func Severities() []Severity {
	return []Severity{ErrorLevel, WarningLevel, InfoLevel, DebugLevel}
}

// String returns the severity name, or Severity(n) for unnamed values.
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "Severity(" + strconv.Itoa(int(s)) + ")"
}

// Label returns the name written into instance log lines.
// Unnamed severities are labeled DEBUG.
func (s Severity) Label() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "DEBUG"
}

// syslogPrefix returns the journald priority prefix for the severity.
func (s Severity) syslogPrefix() string {
	switch {
	case s <= ErrorLevel:
		return "<3>"
	case s == WarningLevel:
		return "<4>"
	case s == InfoLevel:
		return "<6>"
	default:
		return "<7>"
	}
}
