package scene

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vk/nodewire/graph"
	"github.com/vk/nodewire/manifest"
	"github.com/vk/nodewire/tag"
)

// ErrIncompatiblePorts is returned by Connect when the compatibility check
// rejects the pair.
var ErrIncompatiblePorts = errors.New("ports are not compatible")

// ErrAlreadyConnected is returned by Connect when the two ports are already
// wired, directly or through group forwarding.
var ErrAlreadyConnected = errors.New("ports are already connected")

// Factory builds scene entities from manifest definitions and registers them
// with the graph registry. It owns the wiring rules: compatibility,
// duplicate rejection and forward-port resolution all happen here.
type Factory struct {
	registry *graph.Registry
	tags     *tag.Applicator
	logger   *slog.Logger
}

// NewFactory returns a Factory. A nil logger falls back to slog.Default.
func NewFactory(registry *graph.Registry, tags *tag.Applicator, logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{registry: registry, tags: tags, logger: logger}
}

// BuildNode realizes a manifest node definition: the node and its ports are
// created, capabilities applied by name, and everything registered. An
// unknown capability name leaves the port untagged, which makes it inert; it
// is logged, not fatal, so a scene can load with a degraded palette.
func (f *Factory) BuildNode(def *manifest.NodeDef) (*Node, error) {
	if def == nil {
		return nil, fmt.Errorf("nil node definition")
	}
	if f.registry.FindNode(def.Name) != nil {
		return nil, fmt.Errorf("node '%s' is already registered", def.Name)
	}

	n := NewNode(def.Name, graph.Point{X: def.X, Y: def.Y})

	for _, pd := range def.Inputs {
		p := n.AddInput(pd.Name)
		p.SetHidden(pd.Hidden)
		f.applyCapabilities(def.Name, pd.Name, pd.Capabilities, p)
	}
	for _, pd := range def.Outputs {
		p := n.AddOutput(pd.Name)
		p.SetHidden(pd.Hidden)
		f.applyCapabilities(def.Name, pd.Name, pd.Capabilities, p)
	}
	for _, pd := range def.Parameters {
		p := n.AddParameter(pd.Name)
		p.SetHidden(pd.Hidden)
		f.applyCapabilities(def.Name, pd.Name, pd.Capabilities, p)
		if !pd.Default.IsNull() {
			n.SetParameterDefault(pd.Name, pd.Default)
		}
	}

	f.registry.RegisterNode(n)
	for _, p := range n.Inputs() {
		f.registry.RegisterInput(n, p)
	}
	for _, p := range n.Outputs() {
		f.registry.RegisterOutput(n, p)
	}
	for _, p := range n.Parameters() {
		f.registry.RegisterParameter(n, p)
	}

	return n, nil
}

func (f *Factory) applyCapabilities(nodeName, portName string, caps []string, p *Port) {
	for _, name := range caps {
		if !f.tags.Apply(name, p.Tags()) {
			f.logger.Warn("Unknown capability name, port left untagged",
				"node", nodeName, "port", portName, "capability", name)
		}
	}
}

// Connect wires two ports, the drag-release path of the editor. Both ports
// may be group forward ports; the connection is always recorded on the
// concrete member ports behind them. After registration both owners get a
// NodeMoved so the new wire picks up its geometry.
func (f *Factory) Connect(from, to graph.Port) (*Connection, error) {
	if !graph.Compatible(f.registry, from, to) {
		return nil, ErrIncompatiblePorts
	}
	if f.registry.HasConnectionBetween(from, to) {
		return nil, ErrAlreadyConnected
	}

	concreteFrom := f.resolveConcrete(from)
	concreteTo := f.resolveConcrete(to)

	out, in := concreteFrom, concreteTo
	if out.Orientation().IsInputLike() {
		out, in = in, out
	}

	c := NewConnection(out, in)
	f.registry.RegisterConnection(concreteFrom, concreteTo, c)

	f.refreshOwner(from.ModuleName())
	f.refreshOwner(to.ModuleName())

	return c, nil
}

// resolveConcrete maps a group forward port to the member port it mirrors.
// The member is found by its mirrored name; a plain port resolves to itself.
func (f *Factory) resolveConcrete(p graph.Port) graph.Port {
	for _, actual := range f.registry.ForwardedPortsFrom(p) {
		if forwardName(actual) == p.Name() {
			return actual
		}
	}
	return p
}

// refreshOwner pushes a NodeMoved to whatever owns the named module, group
// or plain node.
func (f *Factory) refreshOwner(moduleName string) {
	if gd := f.registry.FindGroup(moduleName); gd != nil {
		f.registry.NodeMoved(gd.Group)
		return
	}
	if nd := f.registry.FindNode(moduleName); nd != nil {
		f.registry.NodeMoved(nd.Node)
	}
}

// Disconnect removes a wire from the registry. Removing an unknown wire is
// a no-op.
func (f *Factory) Disconnect(c *Connection) {
	f.registry.UnregisterConnection(c)
}

// Wire applies a manifest wire: both endpoints are resolved through the
// registry, then connected like any interactive wire.
func (f *Factory) Wire(from, to graph.PortRef) (*Connection, error) {
	fromPort := f.registry.ResolvePort(from.Module, from.Port)
	if fromPort == nil {
		return nil, fmt.Errorf("wire endpoint %s: no such port", from)
	}
	toPort := f.registry.ResolvePort(to.Module, to.Port)
	if toPort == nil {
		return nil, fmt.Errorf("wire endpoint %s: no such port", to)
	}

	c, err := f.Connect(fromPort, toPort)
	if err != nil {
		return nil, fmt.Errorf("wire %s -> %s: %w", from, to, err)
	}
	return c, nil
}

// BuildGroup collapses the given nodes into a group. Every member port is
// mirrored as a forward port named after the member and its port; the
// registry snapshots the capability set at mirror time. Members are hidden
// while grouped.
func (f *Factory) BuildGroup(members ...*Node) (*Group, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("a group needs at least one member")
	}
	for _, m := range members {
		if f.registry.GetNode(m) == nil {
			return nil, fmt.Errorf("node '%s' is not registered", m.name)
		}
	}

	g := &Group{
		Node:    *NewNode(groupTitle(members), groupCenter(members)),
		members: members,
	}
	f.registry.RegisterGroup(g)

	for _, m := range members {
		f.registry.AddNodeToGroup(g, m)
		m.SetVisible(false)

		for _, p := range m.Inputs() {
			fp := g.AddInput(forwardName(p))
			f.registry.RegisterForwardInput(g, fp, p)
		}
		for _, p := range m.Outputs() {
			fp := g.AddOutput(forwardName(p))
			f.registry.RegisterForwardOutput(g, fp, p)
		}
		for _, p := range m.Parameters() {
			fp := g.AddParameter(forwardName(p))
			f.registry.RegisterForwardParameter(g, fp, p)
		}
	}

	f.registry.NodeMoved(g)
	return g, nil
}

// Ungroup dissolves a group: forward ports are dropped, members become
// visible again and their wires snap back to the member ports' own
// geometry. Connections survive ungrouping because they were recorded on
// the concrete ports all along.
func (f *Factory) Ungroup(g *Group) {
	for _, ports := range [][]graph.Port{g.Inputs(), g.Outputs(), g.Parameters()} {
		for _, fp := range ports {
			f.registry.UnregisterForwardPort(g, fp)
		}
	}

	for _, m := range g.members {
		m.SetVisible(true)
		f.registry.RemoveNodeFromGroup(g, m)
		f.registry.NodeMoved(m)
	}
	g.members = nil

	f.registry.UnregisterGroup(g)
}

// MoveNode repositions a node and propagates the move to its wires.
func (f *Factory) MoveNode(n *Node, pos graph.Point) {
	n.SetPos(pos)
	f.registry.NodeMoved(n)
}

// MoveGroup repositions a group; wires attached through its forward ports
// follow the group.
func (f *Factory) MoveGroup(g *Group, pos graph.Point) {
	g.SetPos(pos)
	f.registry.NodeMoved(g)
}
