package scene

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/nodewire/graph"
)

// Node is a concrete graph node: a named entity with a canvas position and
// ordered port slices. Port order is declaration order, which also fixes the
// vertical layout.
type Node struct {
	name     string
	pos      graph.Point
	visible  bool
	active   bool
	inputs   []graph.Port
	outputs  []graph.Port
	params   []graph.Port
	defaults map[string]cty.Value
}

// NewNode returns a visible node at the given position with no ports.
func NewNode(name string, pos graph.Point) *Node {
	return &Node{
		name:     name,
		pos:      pos,
		visible:  true,
		defaults: make(map[string]cty.Value),
	}
}

func (n *Node) NodeName() string         { return n.name }
func (n *Node) Visible() bool            { return n.visible }
func (n *Node) SetVisible(v bool)        { n.visible = v }
func (n *Node) Inputs() []graph.Port     { return n.inputs }
func (n *Node) Outputs() []graph.Port    { return n.outputs }
func (n *Node) Parameters() []graph.Port { return n.params }
func (n *Node) SetActive(a bool)         { n.active = a }
func (n *Node) Active() bool             { return n.active }

// Pos returns the node's canvas position.
func (n *Node) Pos() graph.Point { return n.pos }

// SetPos moves the node. Callers propagate the move through
// Registry.NodeMoved; Factory.MoveNode does both.
func (n *Node) SetPos(pos graph.Point) { n.pos = pos }

// AddInput appends an input port on the left edge.
func (n *Node) AddInput(name string) *Port {
	p := n.newPort(name, graph.Input, graph.Point{X: 0, Y: float64(len(n.inputs)) * portRow})
	n.inputs = append(n.inputs, p)
	return p
}

// AddOutput appends an output port on the right edge.
func (n *Node) AddOutput(name string) *Port {
	p := n.newPort(name, graph.Output, graph.Point{X: nodeWidth - portWidth, Y: float64(len(n.outputs)) * portRow})
	n.outputs = append(n.outputs, p)
	return p
}

// AddParameter appends a parameter port below the input rows.
func (n *Node) AddParameter(name string) *Port {
	offset := graph.Point{
		X: 0,
		Y: float64(len(n.inputs))*portRow + float64(len(n.params))*portRow,
	}
	p := n.newPort(name, graph.Parameter, offset)
	n.params = append(n.params, p)
	return p
}

func (n *Node) newPort(name string, o graph.Orientation, offset graph.Point) *Port {
	return &Port{name: name, owner: n, orient: o, offset: offset}
}

// ParameterDefault returns the manifest default for a parameter port, if one
// was declared.
func (n *Node) ParameterDefault(portName string) (cty.Value, bool) {
	v, ok := n.defaults[portName]
	return v, ok
}

// SetParameterDefault records a default value for a parameter port. The
// value is opaque to the scene; parameter widgets interpret it.
func (n *Node) SetParameterDefault(portName string, v cty.Value) {
	n.defaults[portName] = v
}
