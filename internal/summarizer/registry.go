package summarizer

import (
	"context"
	"fmt"
	"sync"

	"github.com/nguyentantai21042004/deepthink/internal/model"
)

// Registry maps each BackendID to its capability. Backends are constructed
// lazily on first lookup and cached; a construction failure is not cached so
// the next lookup retries. Safe for concurrent use.
type Registry struct {
	mu        sync.Mutex
	factories map[model.BackendID]Factory
	backends  map[model.BackendID]Backend
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[model.BackendID]Factory),
		backends:  make(map[model.BackendID]Backend),
	}
}

// Register installs a lazily-built backend for id, replacing any earlier one.
func (r *Registry) Register(id model.BackendID, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[id] = factory
	delete(r.backends, id)
}

// RegisterBackend installs an already-built backend for id.
func (r *Registry) RegisterBackend(id model.BackendID, backend Backend) {
	r.Register(id, func(context.Context) (Backend, error) { return backend, nil })
}

// Get returns the backend for id, building it if needed.
func (r *Registry) Get(ctx context.Context, id model.BackendID) (Backend, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b, ok := r.backends[id]; ok {
		return b, nil
	}

	factory, ok := r.factories[id]
	if !ok {
		return nil, fmt.Errorf("backend %s is not configured", id)
	}

	b, err := factory(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize backend %s: %w", id, err)
	}
	r.backends[id] = b
	return b, nil
}
