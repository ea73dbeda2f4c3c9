package scene

import (
	"github.com/vk/nodewire/graph"
	"github.com/vk/nodewire/tag"
)

// Port geometry. Ports are laid out in rows on their owner; inputs on the
// left edge, outputs on the right, parameters below.
const (
	portWidth  = 12.0
	portHeight = 12.0
	portRow    = 18.0
	nodeWidth  = 140.0
)

// Port is a concrete connection point owned by a Node or Group. Its scene
// position is derived from the owner's position and a fixed offset, so
// moving the owner moves every port with it.
type Port struct {
	name   string
	owner  *Node
	orient graph.Orientation
	hidden bool
	offset graph.Point
	tags   tag.Set
}

func (p *Port) Name() string                   { return p.name }
func (p *Port) ModuleName() string             { return p.owner.name }
func (p *Port) Orientation() graph.Orientation { return p.orient }
func (p *Port) Tags() *tag.Set                 { return &p.tags }

// Visible reports whether the port can take part in new connections. A port
// hidden by its definition stays invisible even when its owner is shown.
func (p *Port) Visible() bool {
	return !p.hidden && p.owner.visible
}

// SetHidden overrides the port's own visibility flag.
func (p *Port) SetHidden(hidden bool) { p.hidden = hidden }

// ScenePos returns the port's absolute position.
func (p *Port) ScenePos() graph.Point {
	return graph.Point{X: p.owner.pos.X + p.offset.X, Y: p.owner.pos.Y + p.offset.Y}
}

// Bounds returns the port's bounding box in scene coordinates.
func (p *Port) Bounds() graph.Rect {
	pos := p.ScenePos()
	return graph.Rect{X: pos.X, Y: pos.Y, W: portWidth, H: portHeight}
}
