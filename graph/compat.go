package graph

import "github.com/vk/nodewire/tag"

// Compatible decides whether two ports may be wired together. It is the
// gate evaluated before any connection attempt, and it is pure: safe to call
// repeatedly during interactive drag-hover feedback.
//
// The checks run in order with early exit:
//  1. both ports are visible,
//  2. the ports belong to different owners (no self-loops),
//  3. orientations are complementary: not both input-like, not both outputs,
//  4. neither capability set is empty (untagged ports are inert),
//  5. an input-like port that is already occupied (transitively, through
//     group forwarding) accepts nothing further,
//  6. the capability sets are bit-for-bit equal. Equality, not overlap, is
//     the type-matching rule of the editor.
func Compatible(r *Registry, p1, p2 Port) bool {
	if p1 == nil || p2 == nil {
		return false
	}
	if !p1.Visible() || !p2.Visible() {
		return false
	}
	if p1.ModuleName() == p2.ModuleName() {
		return false
	}
	if (p1.Orientation().IsInputLike() && p2.Orientation().IsInputLike()) ||
		(p1.Orientation() == Output && p2.Orientation() == Output) {
		return false
	}
	if p1.Tags().Count() == 0 || p2.Tags().Count() == 0 {
		return false
	}
	if p1.Orientation().IsInputLike() && r.HasConnection(p1) {
		return false
	}
	if p2.Orientation().IsInputLike() && r.HasConnection(p2) {
		return false
	}
	return tag.SameTags(*p1.Tags(), *p2.Tags())
}
