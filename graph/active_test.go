package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vk/nodewire/tag"
)

func TestActivation_CascadesToOutputConnections(t *testing.T) {
	r := NewRegistry(nil)

	src := newFakeNode("src")
	out := addPort(src, "out", Output, tag.Slot(0))
	in1Node := newFakeNode("dst1")
	in1 := addPort(in1Node, "in", Input, tag.Slot(0))
	in2Node := newFakeNode("dst2")
	in2 := addPort(in2Node, "in", Input, tag.Slot(0))

	for _, n := range []*fakeNode{src, in1Node, in2Node} {
		r.RegisterNode(n)
		registerNodePorts(r, n)
	}
	c1 := connect(r, out, in1)
	c2 := connect(r, out, in2)

	r.ActivateNode(src)
	assert.True(t, r.IsNodeActive(src))
	assert.True(t, c1.active)
	assert.True(t, c2.active)

	r.DeactivateNode(src)
	assert.False(t, r.IsNodeActive(src))
	assert.False(t, c1.active)
	assert.False(t, c2.active)
}

func TestActivation_InputConnectionsUntouched(t *testing.T) {
	r := NewRegistry(nil)

	src := newFakeNode("src")
	out := addPort(src, "out", Output, tag.Slot(0))
	dst := newFakeNode("dst")
	in := addPort(dst, "in", Input, tag.Slot(0))

	for _, n := range []*fakeNode{src, dst} {
		r.RegisterNode(n)
		registerNodePorts(r, n)
	}
	c := connect(r, out, in)

	// Activating the downstream node does not toggle its incoming wires.
	r.ActivateNode(dst)
	assert.True(t, r.IsNodeActive(dst))
	assert.False(t, c.active)
}

func TestActivation_UnregisteredNode(t *testing.T) {
	r := NewRegistry(nil)

	// The flag is carried by the node itself, so registration is not
	// required for it to toggle.
	n := newFakeNode("stranger")
	r.ActivateNode(n)
	assert.True(t, r.IsNodeActive(n))

	r.ActivateNode(nil)
	assert.False(t, r.IsNodeActive(nil))
}
