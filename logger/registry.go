package logger

import (
	"sort"
	"sync"
)

// Registry hands out per-class instance ordinals.
// Ordinals start at 1 and increase by one per class with no gaps.
type Registry struct {
	mu     sync.Mutex
	counts map[string]int
}

// defaultRegistry is created at package initialization and never torn down.
var defaultRegistry = NewRegistry()

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{counts: make(map[string]int)}
}

// DefaultRegistry returns the process-wide Registry used by NewInstance.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Next records one more instance of className and returns its ordinal.
func (r *Registry) Next(className string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.counts[className] + 1
	r.counts[className] = n
	return n
}

// Count returns how many instances of className have been recorded.
func (r *Registry) Count(className string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[className]
}

// Names returns the recorded class names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	names := make([]string, 0, len(r.counts))
	for name := range r.counts {
		names = append(names, name)
	}
	r.mu.Unlock()

	sort.Strings(names)
	return names
}

// Reset forgets every recorded class. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts = make(map[string]int)
}
