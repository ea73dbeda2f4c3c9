package graph

import (
	"github.com/vk/nodewire/tag"
)

// Test doubles for the entity interfaces. The registry only ever sees these
// through the interfaces, mirroring how an embedding UI layer would plug in.

type fakePort struct {
	name    string
	module  string
	orient  Orientation
	visible bool
	tags    tag.Set
	pos     Point
	bounds  Rect
}

func (p *fakePort) Name() string             { return p.name }
func (p *fakePort) ModuleName() string       { return p.module }
func (p *fakePort) Orientation() Orientation { return p.orient }
func (p *fakePort) Visible() bool            { return p.visible }
func (p *fakePort) Tags() *tag.Set           { return &p.tags }
func (p *fakePort) ScenePos() Point          { return p.pos }
func (p *fakePort) Bounds() Rect             { return p.bounds }

type fakeNode struct {
	name    string
	visible bool
	active  bool
	inputs  []Port
	outputs []Port
	params  []Port
}

func (n *fakeNode) NodeName() string   { return n.name }
func (n *fakeNode) Visible() bool      { return n.visible }
func (n *fakeNode) Inputs() []Port     { return n.inputs }
func (n *fakeNode) Outputs() []Port    { return n.outputs }
func (n *fakeNode) Parameters() []Port { return n.params }
func (n *fakeNode) SetActive(a bool)   { n.active = a }
func (n *fakeNode) Active() bool       { return n.active }

type fakeGroup struct {
	fakeNode
}

func (g *fakeGroup) GroupItem() {}

type moveEvent struct {
	inputSide bool
	pos       Point
	bounds    Rect
}

type fakeConn struct {
	in     PortRef
	out    PortRef
	active bool
	moves  []moveEvent
}

func (c *fakeConn) InputRef() PortRef  { return c.in }
func (c *fakeConn) OutputRef() PortRef { return c.out }
func (c *fakeConn) SetActive(a bool)   { c.active = a }
func (c *fakeConn) OnNodeMoved(inputSide bool, pos Point, bounds Rect) {
	c.moves = append(c.moves, moveEvent{inputSide: inputSide, pos: pos, bounds: bounds})
}

func newFakeNode(name string) *fakeNode {
	return &fakeNode{name: name, visible: true}
}

func newFakeGroup(name string) *fakeGroup {
	return &fakeGroup{fakeNode{name: name, visible: true}}
}

func addPort(n *fakeNode, name string, o Orientation, slots ...tag.Slot) *fakePort {
	p := &fakePort{
		name:    name,
		module:  n.name,
		orient:  o,
		visible: true,
		bounds:  Rect{W: 12, H: 12},
	}
	p.tags.Add(slots...)
	switch o {
	case Input:
		n.inputs = append(n.inputs, p)
	case Output:
		n.outputs = append(n.outputs, p)
	case Parameter:
		n.params = append(n.params, p)
	}
	return p
}

func addGroupPort(g *fakeGroup, name string, o Orientation) *fakePort {
	return addPort(&g.fakeNode, name, o)
}

// connect registers ports on their nodes, builds a connection value, and
// records it in the registry. Callers register the nodes themselves.
func connect(r *Registry, out, in Port) *fakeConn {
	c := &fakeConn{in: RefOf(in), out: RefOf(out)}
	r.RegisterConnection(out, in, c)
	return c
}

// registerNodePorts registers all of a fake node's ports in one go.
func registerNodePorts(r *Registry, n *fakeNode) {
	for _, p := range n.inputs {
		r.RegisterInput(n, p)
	}
	for _, p := range n.outputs {
		r.RegisterOutput(n, p)
	}
	for _, p := range n.params {
		r.RegisterParameter(n, p)
	}
}
