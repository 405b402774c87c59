package logger

import (
	"reflect"
	"strconv"
)

// CallLogger is implemented by *Instance and by types that embed it.
type CallLogger interface {
	Log(level Severity, messages ...any)
}

// LogCalls wraps fn so every call is logged at DebugLevel through l
// before fn runs. Results and panics of fn pass through unchanged.
//
//	w.process = logger.LogCalls(w, "process", w.processItems)
//
// A nil l or fn returns fn as is.
func LogCalls[R any](l CallLogger, name string, fn func(args ...any) R) func(args ...any) R {
	return LogCallsAt(l, DebugLevel, name, fn)
}

// LogCallsAt is LogCalls with an explicit severity.
func LogCallsAt[R any](l CallLogger, level Severity, name string, fn func(args ...any) R) func(args ...any) R {
	if fn == nil || isNilLogger(l) {
		return fn
	}
	return func(args ...any) R {
		logCall(l, level, name, args...)
		return fn(args...)
	}
}

// LogCalls0 wraps a method without arguments.
func LogCalls0[R any](l CallLogger, name string, fn func() R) func() R {
	if fn == nil || isNilLogger(l) {
		return fn
	}
	return func() R {
		logCall(l, DebugLevel, name)
		return fn()
	}
}

// LogCalls1 wraps a method with one argument.
func LogCalls1[A, R any](l CallLogger, name string, fn func(A) R) func(A) R {
	if fn == nil || isNilLogger(l) {
		return fn
	}
	return func(a A) R {
		logCall(l, DebugLevel, name, a)
		return fn(a)
	}
}

// LogCalls1E wraps a method with one argument that can fail.
func LogCalls1E[A, R any](l CallLogger, name string, fn func(A) (R, error)) func(A) (R, error) {
	if fn == nil || isNilLogger(l) {
		return fn
	}
	return func(a A) (R, error) {
		logCall(l, DebugLevel, name, a)
		return fn(a)
	}
}

// LogCalls2 wraps a method with two arguments.
func LogCalls2[A, B, R any](l CallLogger, name string, fn func(A, B) R) func(A, B) R {
	if fn == nil || isNilLogger(l) {
		return fn
	}
	return func(a A, b B) R {
		logCall(l, DebugLevel, name, a, b)
		return fn(a, b)
	}
}

// LogCalls2E wraps a method with two arguments that can fail.
func LogCalls2E[A, B, R any](l CallLogger, name string, fn func(A, B) (R, error)) func(A, B) (R, error) {
	if fn == nil || isNilLogger(l) {
		return fn
	}
	return func(a A, b B) (R, error) {
		logCall(l, DebugLevel, name, a, b)
		return fn(a, b)
	}
}

// LogCallsDo0 wraps a method without arguments or results.
func LogCallsDo0(l CallLogger, name string, fn func()) func() {
	if fn == nil || isNilLogger(l) {
		return fn
	}
	return func() {
		logCall(l, DebugLevel, name)
		fn()
	}
}

// LogCallsDo1 wraps a method with one argument and no results.
func LogCallsDo1[A any](l CallLogger, name string, fn func(A)) func(A) {
	if fn == nil || isNilLogger(l) {
		return fn
	}
	return func(a A) {
		logCall(l, DebugLevel, name, a)
		fn(a)
	}
}

// LogCallsDo2 wraps a method with two arguments and no results.
func LogCallsDo2[A, B any](l CallLogger, name string, fn func(A, B)) func(A, B) {
	if fn == nil || isNilLogger(l) {
		return fn
	}
	return func(a A, b B) {
		logCall(l, DebugLevel, name, a, b)
		fn(a, b)
	}
}

func logCall(l CallLogger, level Severity, name string, args ...any) {
	messages := make([]any, 0, len(args)+1)
	messages = append(messages, "Method "+name+" called with "+strconv.Itoa(len(args))+" arguments:")
	messages = append(messages, args...)
	l.Log(level, messages...)
}

func isNilLogger(l CallLogger) bool {
	if l == nil {
		return true
	}
	v := reflect.ValueOf(l)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
