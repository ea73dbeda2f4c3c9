package tag

import (
	"reflect"
	"sort"
	"sync"
)

// Applicator applies capabilities to sets by string name instead of by
// compile-time type. Connections are sometimes established from data that
// only carries a capability's name (a manifest, a drag payload from another
// process), and this is the runtime bridge that makes that possible.
type Applicator struct {
	mu       sync.Mutex
	registry *Registry
	byName   map[string]reflect.Type
}

// NewApplicator returns an applicator bound to the given slot registry.
func NewApplicator(r *Registry) *Applicator {
	return &Applicator{
		registry: r,
		byName:   make(map[string]reflect.Type),
	}
}

// RegisterType records the name binding for a capability type and assigns it
// a slot. Registering the same type twice is idempotent.
func (a *Applicator) RegisterType(t reflect.Type) error {
	if _, err := a.registry.Register(t); err != nil {
		return err
	}
	a.mu.Lock()
	a.byName[TypeName(t)] = t
	a.mu.Unlock()
	return nil
}

// RegisterTypes records name bindings for a whole list of capability types as
// one declarative step. Zero types is legal and a no-op. It stops at the
// first failure.
func (a *Applicator) RegisterTypes(types ...reflect.Type) error {
	for _, t := range types {
		if err := a.RegisterType(t); err != nil {
			return err
		}
	}
	return nil
}

// RegisterTag is the generic form of RegisterType. It panics when the slot
// table is full, matching SlotOf.
func RegisterTag[T any](a *Applicator) {
	if err := a.RegisterType(TypeOf[T]()); err != nil {
		panic(err)
	}
}

// Apply adds the capability with the given name to the set. It returns false
// without side effects when no capability of that name has been registered,
// or when the underlying slot can no longer be assigned.
func (a *Applicator) Apply(name string, s *Set) bool {
	a.mu.Lock()
	t, ok := a.byName[name]
	a.mu.Unlock()
	if !ok {
		return false
	}

	// Resolve through the registry on every call rather than caching the
	// slot: a Release or Reset in between invalidates old slot numbers.
	slot, err := a.registry.Register(t)
	if err != nil {
		return false
	}
	s.Add(slot)
	return true
}

// Known reports whether a capability with the given name has been registered.
func (a *Applicator) Known(name string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.byName[name]
	return ok
}

// Names returns the sorted names of every registered capability.
func (a *Applicator) Names() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	names := make([]string, 0, len(a.byName))
	for name := range a.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
