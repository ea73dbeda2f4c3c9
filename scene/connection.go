package scene

import (
	"github.com/google/uuid"

	"github.com/vk/nodewire/graph"
)

// Endpoint is the last geometry a connection saw for one of its sides,
// updated through OnNodeMoved. A renderer draws the wire between the two
// endpoints.
type Endpoint struct {
	Pos    graph.Point
	Bounds graph.Rect
}

// Connection is a wire between an output port and an input-like port. It
// stores references, not port values: the ports stay owned by their nodes.
type Connection struct {
	id     uuid.UUID
	in     graph.PortRef
	out    graph.PortRef
	active bool

	input  Endpoint
	output Endpoint
}

// NewConnection builds a wire between the given concrete ports, seeding the
// endpoint geometry from their current positions.
func NewConnection(out, in graph.Port) *Connection {
	return &Connection{
		id:     uuid.New(),
		in:     graph.RefOf(in),
		out:    graph.RefOf(out),
		input:  Endpoint{Pos: in.ScenePos(), Bounds: in.Bounds()},
		output: Endpoint{Pos: out.ScenePos(), Bounds: out.Bounds()},
	}
}

// ID is the connection's stable identity, assigned at creation.
func (c *Connection) ID() uuid.UUID { return c.id }

func (c *Connection) InputRef() graph.PortRef  { return c.in }
func (c *Connection) OutputRef() graph.PortRef { return c.out }

// OnNodeMoved records the new geometry for one side of the wire.
func (c *Connection) OnNodeMoved(inputSide bool, pos graph.Point, bounds graph.Rect) {
	if inputSide {
		c.input = Endpoint{Pos: pos, Bounds: bounds}
	} else {
		c.output = Endpoint{Pos: pos, Bounds: bounds}
	}
}

func (c *Connection) SetActive(a bool) { c.active = a }
func (c *Connection) Active() bool     { return c.active }

// InputEndpoint returns the input side's last known geometry.
func (c *Connection) InputEndpoint() Endpoint { return c.input }

// OutputEndpoint returns the output side's last known geometry.
func (c *Connection) OutputEndpoint() Endpoint { return c.output }
