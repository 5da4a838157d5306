package entity

import (
	"errors"
	"fmt"
)

// MaxRegistered caps how many entities the renderer will walk. Like the
// view cap, exceeding it indicates a configuration bug and is fatal.
const MaxRegistered = 25

// ErrRegistryFull is returned by Add past MaxRegistered.
var ErrRegistryFull = errors.New("entity: registry full")

// Registry is the ordered list of entity references the renderer paints.
// Insertion order is paint order: later-registered entities draw over
// earlier ones. The registry does not own the entities.
type Registry struct {
	entries []*Entity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make([]*Entity, 0, MaxRegistered)}
}

// Add appends an entity to the paint order.
func (r *Registry) Add(e *Entity) error {
	if len(r.entries) >= MaxRegistered {
		return fmt.Errorf("%w: cap is %d", ErrRegistryFull, MaxRegistered)
	}
	r.entries = append(r.entries, e)
	return nil
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entities returns the registered entities in paint order. The slice is
// shared; callers must not mutate it.
func (r *Registry) Entities() []*Entity {
	return r.entries
}
