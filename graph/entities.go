package graph

import "github.com/vk/nodewire/tag"

// Orientation distinguishes the three kinds of ports a node can carry.
type Orientation int

const (
	// Input ports accept at most one incoming wire.
	Input Orientation = iota
	// Output ports fan out to any number of wires.
	Output
	// Parameter ports behave like inputs and additionally back an external
	// control widget.
	Parameter
)

// IsInputLike reports whether the orientation accepts incoming wires
// (Input or Parameter).
func (o Orientation) IsInputLike() bool {
	return o == Input || o == Parameter
}

// String returns the lower-case name of the orientation.
func (o Orientation) String() string {
	switch o {
	case Input:
		return "input"
	case Output:
		return "output"
	case Parameter:
		return "parameter"
	default:
		return "unknown"
	}
}

// Point is a scene position. The registry passes positions through to
// connections without interpreting them.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned bounding box in scene coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Port is a named connection point on a node or group. Implementations must
// be comparable by identity (pointer types), as the registry keys its
// descriptor maps by Port values.
type Port interface {
	// Name is the port's own name, unique within its owner per orientation.
	Name() string
	// ModuleName is the name of the owning node or group.
	ModuleName() string
	Orientation() Orientation
	Visible() bool
	// Tags exposes the port's capability set. The registry copies it when
	// forwarding is established.
	Tags() *tag.Set
	ScenePos() Point
	Bounds() Rect
}

// Node is a registered graph entity that owns ports. Implementations must be
// comparable by identity.
type Node interface {
	NodeName() string
	Visible() bool
	Inputs() []Port
	Outputs() []Port
	Parameters() []Port
	SetActive(bool)
	Active() bool
}

// Group is a composite node-like entity owning member nodes by reference.
// GroupItem is a marker: the registry uses the type assertion to keep groups
// out of the plain-node tables.
type Group interface {
	Node
	GroupItem()
}

// Connection is the value tying an input-like port to an output port. Its
// existence is tracked by the registry; its geometry belongs to rendering.
type Connection interface {
	// InputRef identifies the input-or-parameter-role endpoint.
	InputRef() PortRef
	// OutputRef identifies the output-role endpoint.
	OutputRef() PortRef
	// OnNodeMoved tells the connection one endpoint moved. inputSide says
	// which endpoint; pos and bounds locate the port after the move.
	OnNodeMoved(inputSide bool, pos Point, bounds Rect)
	SetActive(bool)
}
