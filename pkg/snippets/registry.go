package snippets

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores snippets by name, providing discovery and duplication
// safeguards. Callers can embed or wrap this for dependency injection.
type Registry struct {
	mu       sync.RWMutex
	snippets map[string]Snippet
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		snippets: make(map[string]Snippet),
	}
}

// Register adds a snippet by its Name(). Duplicate names return an error.
func (r *Registry) Register(snippet Snippet) error {
	if snippet == nil {
		return fmt.Errorf("snippets: snippet is required")
	}
	name := snippet.Name()
	if name == "" {
		return fmt.Errorf("snippets: snippet name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.snippets[name]; exists {
		return fmt.Errorf("snippets: snippet %q already registered", name)
	}

	r.snippets[name] = snippet
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(snippet Snippet) {
	if err := r.Register(snippet); err != nil {
		panic(err)
	}
}

// Get retrieves a snippet by name.
func (r *Registry) Get(name string) (Snippet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snippet, ok := r.snippets[name]
	if !ok {
		return nil, fmt.Errorf("snippets: snippet %q not found", name)
	}
	return snippet, nil
}

// MustGet panics if the snippet is missing.
func (r *Registry) MustGet(name string) Snippet {
	snippet, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return snippet
}

// List returns a sorted list of snippet names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.snippets))
	for name := range r.snippets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a snippet is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.snippets[name]
	return ok
}
