package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSet_AddRemoveToggle(t *testing.T) {
	r := NewRegistry()
	var s Set

	Add[tagAlpha](r, &s)
	assert.True(t, Has[tagAlpha](r, s))
	assert.False(t, Has[tagBeta](r, s))

	Remove[tagAlpha](r, &s)
	assert.False(t, Has[tagAlpha](r, s))

	Toggle[tagAlpha](r, &s)
	assert.True(t, Has[tagAlpha](r, s))
	Toggle[tagAlpha](r, &s)
	assert.False(t, Has[tagAlpha](r, s))
}

func TestSet_Variadic(t *testing.T) {
	r := NewRegistry()
	a, b, c := SlotOf[tagAlpha](r), SlotOf[tagBeta](r), SlotOf[tagGamma](r)

	var s Set
	s.Add(a, b, c)
	assert.True(t, s.HasAll(a, b, c))

	s.Remove(a, c)
	assert.False(t, s.Has(a))
	assert.True(t, s.Has(b))
	assert.False(t, s.Has(c))

	s.Toggle(a, b)
	assert.True(t, s.Has(a))
	assert.False(t, s.Has(b))
}

func TestSet_Queries(t *testing.T) {
	r := NewRegistry()
	a, b, c := SlotOf[tagAlpha](r), SlotOf[tagBeta](r), SlotOf[tagGamma](r)

	var s Set
	s.Add(a)

	assert.True(t, s.HasAny(a, b))
	assert.False(t, s.HasAny(b, c))
	assert.True(t, s.HasNone(b, c))
	assert.False(t, s.HasNone(a, b))
	assert.Equal(t, 1, s.Count())
}

func TestSet_OutOfRangeSlots(t *testing.T) {
	var s Set
	s.Add(-1, MaxSlots, MaxSlots+7)
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.Has(-1))
	assert.False(t, s.Has(MaxSlots))
}

func TestSet_CopyMergeMoveSwap(t *testing.T) {
	r := NewRegistry()
	a, b := SlotOf[tagAlpha](r), SlotOf[tagBeta](r)

	t.Run("copy overwrites", func(t *testing.T) {
		var src, dst Set
		src.Add(a, b)
		dst.Add(b)
		dst.CopyFrom(src)
		assert.True(t, SameTags(src, dst))
	})

	t.Run("merge is union", func(t *testing.T) {
		var x, y Set
		x.Add(a)
		y.Add(b)
		x.MergeFrom(y)
		assert.True(t, x.HasAll(a, b))
		assert.True(t, y.Has(b))
	})

	t.Run("move empties source", func(t *testing.T) {
		var src, dst Set
		src.Add(a, b)
		dst.MoveFrom(&src)
		assert.True(t, dst.HasAll(a, b))
		assert.Equal(t, 0, src.Count())
	})

	t.Run("swap exchanges", func(t *testing.T) {
		var x, y Set
		x.Add(a)
		y.Add(b)
		x.SwapWith(&y)
		assert.True(t, x.Has(b))
		assert.False(t, x.Has(a))
		assert.True(t, y.Has(a))
	})
}

func TestSet_FreePredicates(t *testing.T) {
	r := NewRegistry()
	a, b, c := SlotOf[tagAlpha](r), SlotOf[tagBeta](r), SlotOf[tagGamma](r)

	var x, y Set
	x.Add(a, b)
	y.Add(b, c)

	assert.True(t, AnyCommonTag(x, y))
	assert.False(t, SameTags(x, y))

	var z Set
	z.Add(b)
	assert.True(t, HasAllTagsOf(x, z))
	assert.False(t, HasAllTagsOf(z, x))

	var empty Set
	assert.False(t, AnyCommonTag(x, empty))
	assert.True(t, SameTags(empty, Set(0)))
}

func slotGen() *rapid.Generator[Slot] {
	return rapid.Custom(func(t *rapid.T) Slot {
		return Slot(rapid.IntRange(0, MaxSlots-1).Draw(t, "slot"))
	})
}

func TestSet_Properties(t *testing.T) {
	t.Run("toggle twice restores", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			s := Set(rapid.Uint32().Draw(t, "bits"))
			slot := slotGen().Draw(t, "s")
			orig := s
			s.Toggle(slot)
			s.Toggle(slot)
			if !SameTags(orig, s) {
				t.Fatalf("toggle twice changed set: %032b != %032b", orig, s)
			}
		})
	})

	t.Run("add then has", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			s := Set(rapid.Uint32().Draw(t, "bits"))
			slot := slotGen().Draw(t, "s")
			s.Add(slot)
			if !s.Has(slot) {
				t.Fatalf("slot %d missing after Add", slot)
			}
		})
	})

	t.Run("merge is commutative union", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			x := Set(rapid.Uint32().Draw(t, "x"))
			y := Set(rapid.Uint32().Draw(t, "y"))
			a, b := x, y
			a.MergeFrom(y)
			b.MergeFrom(x)
			if !SameTags(a, b) {
				t.Fatalf("union not commutative: %v != %v", a, b)
			}
			if !HasAllTagsOf(a, x) || !HasAllTagsOf(a, y) {
				t.Fatalf("union lost bits")
			}
		})
	})

	t.Run("move leaves exact bits and empty source", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			src := Set(rapid.Uint32().Draw(t, "src"))
			dst := Set(rapid.Uint32().Draw(t, "dst"))
			want := src
			dst.MoveFrom(&src)
			if !SameTags(dst, want) {
				t.Fatalf("destination bits %v, want %v", dst, want)
			}
			if src.Count() != 0 {
				t.Fatalf("source not emptied: %v", src)
			}
		})
	})
}
