// Package logger provides a small leveled logger that writes single-line,
// timestamped messages to standard output, and a per-instance logger that
// tags each line with the owning class name and instance number.
//
// # Severities
//
// Four severities are defined, most critical first:
//
//	ErrorLevel (0), WarningLevel (1), InfoLevel (2), DebugLevel (3)
//
// A line is written when its severity is less than or equal to the
// threshold. The process-wide threshold is read once from LOG_LEVEL;
// missing or malformed values mean 0 (errors only):
//
//	LOG_LEVEL=2 ./myapp
//
// # Free function
//
//	logger.Log(logger.WarningLevel, "disk usage", 91.5, map[string]int{"free": 3})
//
// Strings have their line breaks escaped, numbers and booleans print as is,
// and other values are encoded as JSON. Values JSON cannot encode (cycles,
// channels, functions) fall back to a bounded Go-syntax dump. Formatting
// never fails and is skipped entirely when the severity is filtered out.
//
// # Instances
//
// Embed *Instance to get Log, LogError, LogWarning, LogInfo and LogDebug:
//
//	type Cache struct {
//		*logger.Instance
//	}
//
//	c := &Cache{Instance: logger.NewInstance("Cache")}
//	c.LogInfo("warmed", 128) // ... INFO Cache[1]: warmed 128
//
// Instance numbers come from a Registry; the process-wide one is returned
// by DefaultRegistry and can be reset between tests.
//
// # Call logging
//
// LogCalls and its fixed-arity variants wrap a method so each call is
// logged before it runs:
//
//	c.load = logger.LogCalls1E(c, "load", c.loadKey)
//
// # Output options
//
// LOG_COLOR (true, false or auto) colors the timestamp by severity, and a
// non-empty JOURNAL_STREAM prefixes lines with the journald priority.
package logger
