package gamedata

import (
	"context"
	"sync"
)

// Registry is an in-memory Source of tables built by factories.
type Registry struct {
	mu       sync.RWMutex
	versions map[string]func() (*Table, error)
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{versions: map[string]func() (*Table, error){}}
}

// Register adds or replaces the factory for version.
func (r *Registry) Register(version string, factory func() (*Table, error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.versions[version] = factory
}

// Load builds the table of version with its factory.
func (r *Registry) Load(_ context.Context, version string) (*Table, error) {
	r.mu.RLock()
	f, ok := r.versions[version]
	r.mu.RUnlock()
	if !ok {
		return nil, &MissingVersionError{Version: version}
	}
	return f()
}

// Versions returns the registered versions, oldest first.
func (r *Registry) Versions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.versions))
	for name := range r.versions {
		names = append(names, name)
	}
	SortVersions(names)
	return names
}
