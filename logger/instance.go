package logger

import "strconv"

// UnknownClass names instances created without a class name.
const UnknownClass = "Unknown"

// Instance tags every line it logs with "ClassName[N]:", where N is the
// ordinal of this instance among all instances of the same class.
// Embed *Instance in a type to give it the logging methods:
//
//	type Worker struct {
//		*logger.Instance
//	}
//
//	func NewWorker() *Worker {
//		return &Worker{Instance: logger.NewInstance("Worker")}
//	}
type Instance struct {
	className string
	ordinal   int
	prefix    string
	emitter   *Emitter
}

// InstanceOption customizes NewInstance.
type InstanceOption func(*instanceOptions)

type instanceOptions struct {
	registry *Registry
	emitter  *Emitter
}

// WithRegistry numbers the instance from r instead of the default registry.
func WithRegistry(r *Registry) InstanceOption {
	return func(o *instanceOptions) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithEmitter writes the instance's lines through e instead of the default emitter.
func WithEmitter(e *Emitter) InstanceOption {
	return func(o *instanceOptions) {
		if e != nil {
			o.emitter = e
		}
	}
}

// NewInstance registers a new instance of className and returns its logger.
// An empty className is recorded as "Unknown".
func NewInstance(className string, opts ...InstanceOption) *Instance {
	o := instanceOptions{registry: defaultRegistry, emitter: std}
	for _, opt := range opts {
		opt(&o)
	}
	if className == "" {
		className = UnknownClass
	}

	ordinal := o.registry.Next(className)
	return &Instance{
		className: className,
		ordinal:   ordinal,
		prefix:    className + "[" + strconv.Itoa(ordinal) + "]:",
		emitter:   o.emitter,
	}
}

// unregisteredPrefix tags lines from an Instance that was not built by NewInstance.
const unregisteredPrefix = UnknownClass + "[0]:"

// ClassName returns the class name the instance was registered under.
func (i *Instance) ClassName() string {
	if i == nil || i.className == "" {
		return UnknownClass
	}
	return i.className
}

// Ordinal returns the 1-based instance number within the class,
// or 0 for an Instance not built by NewInstance.
func (i *Instance) Ordinal() int {
	if i == nil {
		return 0
	}
	return i.ordinal
}

// Prefix returns the "ClassName[N]:" tag.
func (i *Instance) Prefix() string {
	if i == nil || i.prefix == "" {
		return unregisteredPrefix
	}
	return i.prefix
}

// Log writes the severity label, the instance prefix and messages.
// A nil or zero Instance logs through the process-wide emitter as Unknown[0].
func (i *Instance) Log(level Severity, messages ...any) {
	e := i.emitterOrDefault()
	if !e.Enabled(level) {
		return
	}
	parts := make([]any, 0, len(messages)+2)
	parts = append(parts, level.Label(), i.Prefix())
	parts = append(parts, messages...)
	e.Log(level, parts...)
}

func (i *Instance) emitterOrDefault() *Emitter {
	if i == nil || i.emitter == nil {
		return std
	}
	return i.emitter
}

// LogError logs messages at ErrorLevel.
func (i *Instance) LogError(messages ...any) {
	i.Log(ErrorLevel, messages...)
}

// LogWarning logs messages at WarningLevel.
func (i *Instance) LogWarning(messages ...any) {
	i.Log(WarningLevel, messages...)
}

// LogInfo logs messages at InfoLevel.
func (i *Instance) LogInfo(messages ...any) {
	i.Log(InfoLevel, messages...)
}

// LogDebug logs messages at DebugLevel.
func (i *Instance) LogDebug(messages ...any) {
	i.Log(DebugLevel, messages...)
}
