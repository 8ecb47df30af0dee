// Package registry provides the enemy prototype registry.
// Templates are registered once and every lookup hands out an independent
// clone, so callers can never modify the stored templates.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/creational-arcade/internal/core"
)

// ErrUnknownPrototype is matched by every UnknownPrototypeError.
var ErrUnknownPrototype = errors.New("unknown prototype")

// UnknownPrototypeError is returned when no template is registered for Kind.
type UnknownPrototypeError struct {
	Kind string
}

func (e *UnknownPrototypeError) Error() string {
	return fmt.Sprintf("registry: no prototype for %q", e.Kind)
}

// Is reports whether target is ErrUnknownPrototype.
func (e *UnknownPrototypeError) Is(target error) bool {
	return target == ErrUnknownPrototype
}

// Registry holds canonical enemy templates keyed by kind.
type Registry struct {
	mu     sync.RWMutex
	protos map[string]core.Enemy
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{protos: make(map[string]core.Enemy)}
}

// NewDefault creates a registry seeded with the standard six templates.
func NewDefault() *Registry {
	r := New()
	for _, e := range DefaultPrototypes() {
		r.Register(e)
	}
	return r
}

// DefaultPrototypes returns the standard enemy templates.
func DefaultPrototypes() []core.Enemy {
	return []core.Enemy{
		core.NewEnemy("orc", 20, 4),
		core.NewEnemy("dragon", 60, 10),
		core.NewEnemy("goblin", 12, 3),
		core.NewEnemy("drone", 18, 5),
		core.NewEnemy("android", 30, 6),
		core.NewEnemy("alien", 26, 7),
	}
}

var (
	shared     *Registry
	sharedOnce sync.Once
)

// Shared returns the process-wide registry, seeding it on first use.
func Shared() *Registry {
	sharedOnce.Do(func() {
		shared = NewDefault()
	})
	return shared
}

// Register adds a template to the registry.
// Panics if a template with the same kind is already registered.
func (r *Registry) Register(proto core.Enemy) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.protos[proto.Kind]; exists {
		panic(fmt.Sprintf("registry: prototype %q already registered", proto.Kind))
	}
	r.protos[proto.Kind] = proto.Clone()
}

// Get returns a fresh clone of the template registered for kind.
func (r *Registry) Get(kind string) (core.Enemy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	base, ok := r.protos[kind]
	if !ok {
		return core.Enemy{}, &UnknownPrototypeError{Kind: kind}
	}
	return base.Clone(), nil
}

// Kinds returns all registered kinds, sorted.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.protos))
	for k := range r.protos {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Exists checks if a template is registered for kind.
func (r *Registry) Exists(kind string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.protos[kind]
	return ok
}
