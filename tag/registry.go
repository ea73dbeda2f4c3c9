package tag

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// MaxSlots is the capacity of a Registry and the width of a Set. Capability
// types beyond this bound are a hard failure, not a runtime condition.
const MaxSlots = 32

// Slot is the small integer assigned to a capability type. It doubles as the
// bit position of that capability inside a Set.
type Slot int

// InvalidSlot is returned alongside a non-nil error from Register.
const InvalidSlot Slot = -1

// ErrCapacity is returned when a new capability type is requested but the
// slot table is already full.
var ErrCapacity = errors.New("tag: capability slot table is full")

// Registry assigns capability types their slots. Assignment is lazy and
// monotonic: the first request for a type allocates the lowest free slot, and
// every later request returns the same slot until the type is released or the
// registry is reset.
//
// A Registry is an explicit object rather than package state so tests and
// embedders can hold independent instances. It is safe for concurrent use;
// independent goroutines may register different types during startup without
// risking duplicate slots.
type Registry struct {
	mu    sync.Mutex
	slots map[reflect.Type]Slot
	names [MaxSlots]string
}

// NewRegistry returns an empty capability registry.
func NewRegistry() *Registry {
	return &Registry{
		slots: make(map[reflect.Type]Slot),
	}
}

// Register returns the slot for the given capability type, assigning one if
// the type has not been seen before. It fails with ErrCapacity when all
// MaxSlots slots are taken by other types.
func (r *Registry) Register(t reflect.Type) (Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.slots[t]; ok {
		return s, nil
	}
	for i := 0; i < MaxSlots; i++ {
		if r.names[i] == "" {
			r.slots[t] = Slot(i)
			r.names[i] = TypeName(t)
			return Slot(i), nil
		}
	}
	return InvalidSlot, fmt.Errorf("%w: cannot assign a slot to %s (%d types registered)", ErrCapacity, TypeName(t), MaxSlots)
}

// NameOf returns the canonical name of the capability occupying the given
// slot, or "" when the slot is unassigned, released, or out of range.
func (r *Registry) NameOf(s Slot) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s < 0 || s >= MaxSlots {
		return ""
	}
	return r.names[s]
}

// Count reports the number of live slot assignments.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}

// Release frees the slot held by the given type. A later Register of the same
// type assigns a fresh slot, not necessarily the same number. Releasing an
// unregistered type is a no-op.
func (r *Registry) Release(t reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[t]
	if !ok {
		return
	}
	delete(r.slots, t)
	r.names[s] = ""
}

// Reset frees every slot. All previously issued slots are invalid afterwards
// and their names resolve to "". Intended for test isolation.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots = make(map[reflect.Type]Slot)
	r.names = [MaxSlots]string{}
}

// TypeName returns the canonical, package-qualified name of a capability
// type. It is stable for the lifetime of the process and does not require the
// type to be registered.
func TypeName(t reflect.Type) string {
	return t.String()
}

// TypeOf returns the reflect.Type descriptor for a capability type without
// allocating a value of it.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// NameFor is the generic form of TypeName.
func NameFor[T any]() string {
	return TypeName(TypeOf[T]())
}

// SlotOf returns the slot for the capability type T, registering it on first
// use. It panics when the registry is full: exceeding MaxSlots concurrent
// capability types is a programming error, not something callers recover
// from.
func SlotOf[T any](r *Registry) Slot {
	s, err := r.Register(TypeOf[T]())
	if err != nil {
		panic(err)
	}
	return s
}
