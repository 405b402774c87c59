package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	*Instance
}

func resetDefaultRegistry(t *testing.T) {
	t.Helper()
	DefaultRegistry().Reset()
	t.Cleanup(DefaultRegistry().Reset)
}

func TestInstanceNumbering(t *testing.T) {
	resetDefaultRegistry(t)

	var prefixes []string
	for k := 0; k < 3; k++ {
		prefixes = append(prefixes, NewInstance("Foo").Prefix())
	}
	for k := 0; k < 2; k++ {
		prefixes = append(prefixes, NewInstance("Bar").Prefix())
	}

	assert.Equal(t, []string{"Foo[1]:", "Foo[2]:", "Foo[3]:", "Bar[1]:", "Bar[2]:"}, prefixes)
	assert.Equal(t, 3, DefaultRegistry().Count("Foo"))
}

func TestInstanceWithRegistry(t *testing.T) {
	r := NewRegistry()

	a := NewInstance("Foo", WithRegistry(r))
	b := NewInstance("Foo", WithRegistry(r))

	assert.Equal(t, "Foo", b.ClassName())
	assert.Equal(t, 1, a.Ordinal())
	assert.Equal(t, 2, b.Ordinal())
	assert.Equal(t, 2, r.Count("Foo"))
}

func TestInstanceUnknownClass(t *testing.T) {
	inst := NewInstance("", WithRegistry(NewRegistry()))

	assert.Equal(t, UnknownClass, inst.ClassName())
	assert.Equal(t, "Unknown[1]:", inst.Prefix())
}

func TestInstanceLogLine(t *testing.T) {
	e, buf := newTestEmitter(Config{Threshold: DebugLevel})
	w := widget{NewInstance("Widget", WithRegistry(NewRegistry()), WithEmitter(e))}

	w.LogInfo("ready", 3, map[string]bool{"ok": true})

	assert.Equal(t, fixedStamp()+` INFO Widget[1]: ready 3 {"ok":true}`+"\n", buf.String())
}

func TestInstanceConvenienceMethods(t *testing.T) {
	e, buf := newTestEmitter(Config{Threshold: DebugLevel})
	inst := NewInstance("Foo", WithRegistry(NewRegistry()), WithEmitter(e))

	inst.LogError("x")
	inst.LogWarning("x")
	inst.LogInfo("x")
	inst.LogDebug("x")

	lines := splitLines(buf)
	require.Len(t, lines, 4)
	assert.Equal(t, fixedStamp()+" ERROR Foo[1]: x", lines[0])
	assert.Equal(t, fixedStamp()+" WARNING Foo[1]: x", lines[1])
	assert.Equal(t, fixedStamp()+" INFO Foo[1]: x", lines[2])
	assert.Equal(t, fixedStamp()+" DEBUG Foo[1]: x", lines[3])
}

func TestInstanceConvenienceMatchesLog(t *testing.T) {
	for _, level := range Severities() {
		viaHelper, helperBuf := newTestEmitter(Config{Threshold: DebugLevel})
		viaLog, logBuf := newTestEmitter(Config{Threshold: DebugLevel})

		a := NewInstance("Foo", WithRegistry(NewRegistry()), WithEmitter(viaHelper))
		b := NewInstance("Foo", WithRegistry(NewRegistry()), WithEmitter(viaLog))

		switch level {
		case ErrorLevel:
			a.LogError("x")
		case WarningLevel:
			a.LogWarning("x")
		case InfoLevel:
			a.LogInfo("x")
		case DebugLevel:
			a.LogDebug("x")
		}
		b.Log(level, "x")

		assert.Equal(t, logBuf.Bytes(), helperBuf.Bytes(), "level %s", level)
	}
}

func TestInstanceUnnamedSeverityLabel(t *testing.T) {
	e, buf := newTestEmitter(Config{Threshold: Severity(10)})
	inst := NewInstance("Foo", WithRegistry(NewRegistry()), WithEmitter(e))

	inst.Log(Severity(7), "x")

	assert.Equal(t, fixedStamp()+" DEBUG Foo[1]: x\n", buf.String())
}

func TestInstanceRespectsThreshold(t *testing.T) {
	e, buf := newTestEmitter(Config{Threshold: WarningLevel})
	inst := NewInstance("Foo", WithRegistry(NewRegistry()), WithEmitter(e))

	inst.LogInfo("hidden")
	inst.LogDebug("hidden")
	assert.Zero(t, buf.Len())

	inst.LogWarning("shown")
	assert.Contains(t, buf.String(), "WARNING Foo[1]: shown")
}

func TestInstanceDefaultsToStdout(t *testing.T) {
	resetDefaultRegistry(t)
	buf := captureStdout(t)

	NewInstance("Stdout").LogError("hello\nworld")

	assert.Contains(t, buf.String(), ` ERROR Stdout[1]: hello\nworld`+"\n")
}

func TestNilOptionsAreIgnored(t *testing.T) {
	resetDefaultRegistry(t)

	inst := NewInstance("Foo", WithRegistry(nil), WithEmitter(nil))

	assert.Equal(t, 1, DefaultRegistry().Count("Foo"))
	assert.Same(t, std, inst.emitter)
}

type unwiredStore struct {
	*Instance
}

func TestZeroInstanceLogsAsUnknown(t *testing.T) {
	buf := captureStdout(t)
	inst := &Instance{}

	require.NotPanics(t, func() { inst.LogError("zero\nvalue") })

	assert.Equal(t, UnknownClass, inst.ClassName())
	assert.Zero(t, inst.Ordinal())
	assert.Equal(t, "Unknown[0]:", inst.Prefix())
	assert.Contains(t, buf.String(), ` ERROR Unknown[0]: zero\nvalue`+"\n")
}

func TestEmbedderWithoutInstanceLogsAsUnknown(t *testing.T) {
	buf := captureStdout(t)
	s := &unwiredStore{}

	require.NotPanics(t, func() {
		s.LogError("not wired")
		s.LogDebug("filtered or not, never a panic")
	})

	assert.Equal(t, "Unknown[0]:", s.Prefix())
	assert.Contains(t, buf.String(), " ERROR Unknown[0]: not wired\n")
}
