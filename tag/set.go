package tag

import "math/bits"

// Set is the fixed-width capability bitmask carried by every port-like
// entity. Bit i is set exactly when the entity declares the capability whose
// slot is i. The zero value is the empty set; all operations are O(1) bit
// manipulation and never allocate.
type Set uint32

func (s Set) mask(slots []Slot) Set {
	var m Set
	for _, sl := range slots {
		if sl >= 0 && sl < MaxSlots {
			m |= 1 << uint(sl)
		}
	}
	return m
}

// Add sets the bits for the given slots.
func (s *Set) Add(slots ...Slot) {
	*s |= s.mask(slots)
}

// Remove clears the bits for the given slots.
func (s *Set) Remove(slots ...Slot) {
	*s &^= s.mask(slots)
}

// Toggle flips the bits for the given slots.
func (s *Set) Toggle(slots ...Slot) {
	*s ^= s.mask(slots)
}

// Clear empties the set.
func (s *Set) Clear() {
	*s = 0
}

// Has reports whether the bit for the given slot is set.
func (s Set) Has(slot Slot) bool {
	if slot < 0 || slot >= MaxSlots {
		return false
	}
	return s&(1<<uint(slot)) != 0
}

// HasAll reports whether every given slot is set.
func (s Set) HasAll(slots ...Slot) bool {
	m := s.mask(slots)
	return s&m == m
}

// HasAny reports whether at least one of the given slots is set.
func (s Set) HasAny(slots ...Slot) bool {
	return s&s.mask(slots) != 0
}

// HasNone reports whether none of the given slots are set.
func (s Set) HasNone(slots ...Slot) bool {
	return s&s.mask(slots) == 0
}

// Count returns the number of set bits.
func (s Set) Count() int {
	return bits.OnesCount32(uint32(s))
}

// CopyFrom overwrites the set with the contents of other.
func (s *Set) CopyFrom(other Set) {
	*s = other
}

// MergeFrom unions other into the set.
func (s *Set) MergeFrom(other Set) {
	*s |= other
}

// MoveFrom copies other's bits into the set and clears other.
func (s *Set) MoveFrom(other *Set) {
	*s = *other
	*other = 0
}

// SwapWith exchanges the contents of the two sets.
func (s *Set) SwapWith(other *Set) {
	*s, *other = *other, *s
}

// AnyCommonTag reports whether a and b share at least one capability.
func AnyCommonTag(a, b Set) bool {
	return a&b != 0
}

// SameTags reports whether a and b are bit-for-bit equal. This, not mere
// overlap, is the match rule the compatibility predicate uses.
func SameTags(a, b Set) bool {
	return a == b
}

// HasAllTagsOf reports whether every capability of b is also present in a.
func HasAllTagsOf(a, b Set) bool {
	return a&b == b
}

// Add sets the bit for capability type T, registering the type on first use.
func Add[T any](r *Registry, s *Set) {
	s.Add(SlotOf[T](r))
}

// Remove clears the bit for capability type T.
func Remove[T any](r *Registry, s *Set) {
	s.Remove(SlotOf[T](r))
}

// Toggle flips the bit for capability type T.
func Toggle[T any](r *Registry, s *Set) {
	s.Toggle(SlotOf[T](r))
}

// Has reports whether the set declares capability type T.
func Has[T any](r *Registry, s Set) bool {
	return s.Has(SlotOf[T](r))
}
