package schema

import (
	"fmt"
	"sort"
	"sync"
)

// Registry resolves root descriptors by name. It is the lookup used by the
// CLI and the HTTP API to turn a textual identifier into a documentable
// type.
type Registry struct {
	mu    sync.RWMutex
	types map[string]Descriptor
}

func NewRegistry() *Registry {
	return &Registry{types: make(map[string]Descriptor)}
}

// Register adds a named root descriptor. Registering the same name twice is
// an error.
func (r *Registry) Register(name string, d Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[name]; ok {
		return fmt.Errorf("type %q already registered", name)
	}
	r.types[name] = d
	return nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.types[name]
	return d, ok
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
