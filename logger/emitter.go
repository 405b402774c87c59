package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// TimestampLayout is the layout of the timestamp that starts every line.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	// outStdout is where emitters without a configured Output write.
	// Swapped in tests.
	outStdout io.Writer = os.Stdout

	// logMutex serializes writes from every emitter so lines never interleave.
	logMutex sync.Mutex

	// std is the process-wide emitter, configured once from the environment.
	std = NewEmitter(ConfigFromEnv())
)

var lineBreakEscaper = strings.NewReplacer("\r", `\r`, "\n", `\n`)

// fallbackFormatter renders values that cannot be encoded as JSON.
// MaxDepth bounds self-referencing maps and slices.
var fallbackFormatter = spew.ConfigState{
	MaxDepth:                5,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

var severityColors = map[Severity]*color.Color{
	ErrorLevel:   forcedColor(color.FgRed),
	WarningLevel: forcedColor(color.FgYellow),
	InfoLevel:    forcedColor(color.FgGreen),
	DebugLevel:   forcedColor(color.FgCyan),
}

func forcedColor(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()
	return c
}

// Emitter writes timestamped single-line messages at or above a severity threshold.
// The threshold is fixed when the Emitter is built.
type Emitter struct {
	threshold    Severity
	colorize     bool
	syslogPrefix bool
	out          io.Writer
	now          func() time.Time
}

// NewEmitter returns an Emitter configured by cfg.
func NewEmitter(cfg Config) *Emitter {
	return &Emitter{
		threshold:    cfg.Threshold,
		colorize:     cfg.Colorize,
		syslogPrefix: cfg.SyslogPrefix,
		out:          cfg.Output,
		now:          time.Now,
	}
}

// Default returns the process-wide emitter used by Log.
func Default() *Emitter {
	return std
}

// Threshold returns the least critical severity the emitter writes.
func (e *Emitter) Threshold() Severity {
	return e.threshold
}

// Enabled reports whether a line of the given severity would be written.
func (e *Emitter) Enabled(level Severity) bool {
	return level <= e.threshold
}

// Log writes the timestamp followed by each part, separated by single spaces.
// Nothing is formatted when level is filtered out.
// Thread-safe for concurrent use.
func (e *Emitter) Log(level Severity, parts ...any) {
	if !e.Enabled(level) {
		return
	}
	line := e.format(level, parts)

	logMutex.Lock()
	defer logMutex.Unlock()
	_, _ = io.WriteString(e.writer(), line)
}

func (e *Emitter) writer() io.Writer {
	if e.out != nil {
		return e.out
	}
	return outStdout
}

func (e *Emitter) format(level Severity, parts []any) string {
	var b strings.Builder
	if e.syslogPrefix {
		b.WriteString(level.syslogPrefix())
	}
	ts := e.now().UTC().Format(TimestampLayout)
	if e.colorize {
		if c, ok := severityColors[level]; ok {
			ts = c.Sprint(ts)
		}
	}
	b.WriteString(ts)
	for _, part := range parts {
		b.WriteByte(' ')
		b.WriteString(formatPart(part))
	}
	b.WriteByte('\n')
	return b.String()
}

// Log writes parts through the process-wide emitter.
// The threshold comes from LOG_LEVEL at startup.
func Log(level Severity, parts ...any) {
	std.Log(level, parts...)
}

// Enabled reports whether the process-wide emitter writes the given severity.
func Enabled(level Severity) bool {
	return std.Enabled(level)
}

// Threshold returns the threshold of the process-wide emitter.
func Threshold() Severity {
	return std.threshold
}

// formatPart turns one message part into printable text that never
// contains a line break. It does not panic.
func formatPart(v any) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fallbackString(v)
		}
	}()

	if v == nil {
		return "null"
	}
	switch x := v.(type) {
	case string:
		return escapeLineBreaks(x)
	case error:
		return escapeLineBreaks(x.Error())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.String:
		return escapeLineBreaks(rv.String())
	}

	text, err := marshalCanonical(v)
	if err != nil {
		return fallbackString(v)
	}
	return text
}

// marshalCanonical encodes v as compact JSON without HTML escaping.
func marshalCanonical(v any) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("marshal %T: %v", v, r)
		}
	}()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", errors.Wrapf(err, "marshal %T", v)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func fallbackString(v any) string {
	return escapeLineBreaks(fallbackFormatter.Sprint(v))
}

func escapeLineBreaks(s string) string {
	return lineBreakEscaper.Replace(s)
}
