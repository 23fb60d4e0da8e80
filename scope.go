package gofac

import (
	"reflect"
	"sync"
)

// Scope caches Scoped instances: unique within one Scope, isolated between Scopes.
// Registrations are shared with the root container.
type Scope struct {
	root       *Container
	scopedInst map[*ServiceDef]reflect.Value // keyed by definition, so every identity of a service shares its instance
	mu         sync.RWMutex
}

// NewScope creates a scope bound to the container.
func (c *Container) NewScope() *Scope {
	return &Scope{
		root:       c,
		scopedInst: make(map[*ServiceDef]reflect.Value),
	}
}

// GlobalNewScope creates a scope on the global container.
func GlobalNewScope() *Scope {
	return Global.NewScope()
}

// Resolve fills out with the service registered for *out's type, handling every lifetime.
func (s *Scope) Resolve(out any) error {
	return resolveInto(out, func(svcType reflect.Type) (reflect.Value, error) {
		return s.root.resolve(svcType, s, make(map[reflect.Type]bool))
	})
}

// Reset drops every Scoped instance cached by this scope.
func (s *Scope) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scopedInst = make(map[*ServiceDef]reflect.Value)
}

func (s *Scope) cached(def *ServiceDef) (reflect.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inst, ok := s.scopedInst[def]
	return inst, ok && inst.IsValid()
}

func (s *Scope) store(def *ServiceDef, v reflect.Value) reflect.Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inst, ok := s.scopedInst[def]; ok && inst.IsValid() {
		return inst
	}
	s.scopedInst[def] = v
	return v
}
