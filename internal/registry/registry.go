package registry

import (
	"errors"
	"fmt"

	"github.com/drakos74/ris-channel/internal/math/ml"
)

// ErrKeyNotFound is returned when the requested model is not registered.
var ErrKeyNotFound = errors.New("key not found")

// Entry is a named model transform.
type Entry struct {
	Name      string
	Transform ml.Transform
}

// Registry holds the model transforms for the lifetime of the process.
// It is built once and never mutated afterwards.
type Registry struct {
	names      []string
	transforms map[string]ml.Transform
}

// New creates a new registry with the given entries.
// Names keep the registration order, a repeated name replaces the earlier transform.
func New(entries ...Entry) *Registry {
	r := &Registry{
		names:      make([]string, 0, len(entries)),
		transforms: make(map[string]ml.Transform, len(entries)),
	}
	for _, entry := range entries {
		if _, ok := r.transforms[entry.Name]; !ok {
			r.names = append(r.names, entry.Name)
		}
		r.transforms[entry.Name] = entry.Transform
	}
	return r
}

// Get returns the transform registered under the given name.
func (r *Registry) Get(name string) (ml.Transform, error) {
	t, ok := r.transforms[name]
	if !ok {
		return nil, fmt.Errorf("model '%s': %w", name, ErrKeyNotFound)
	}
	return t, nil
}

// Names returns the registered model names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}
