package graph

import (
	"log/slog"
	"sync"
)

// Registry tracks every node, group, port, and connection participating in
// the graph. It assigns unique ids, maintains group membership and port
// forwarding rules, and answers lookups by name, port, or ownership.
//
// All public operations are atomic with respect to the registry's internal
// lock. Malformed requests are logged as warnings and rejected with a
// sentinel result; they never panic. Redundant operations (double register,
// unregister of something absent) are silently tolerated.
//
// The registry does not own entity lifetime. Callers must pair object
// lifetime with registration: forgetting to unregister leaves a dangling
// descriptor behind.
type Registry struct {
	mu     sync.Mutex
	logger *slog.Logger

	nodes  map[Node]*NodeDescriptor
	groups map[Group]*GroupDescriptor

	// nodeOrder and groupOrder keep registration order so that name lookups
	// have deterministic first-match semantics. Node names are not forced to
	// be unique; the earliest registered match wins.
	nodeOrder  []*NodeDescriptor
	groupOrder []*GroupDescriptor

	nextNodeID  int64
	nextGroupID int64
}

// NewRegistry returns an empty registry. A nil logger falls back to
// slog.Default.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger:      logger,
		nodes:       make(map[Node]*NodeDescriptor),
		groups:      make(map[Group]*GroupDescriptor),
		nextNodeID:  1,
		nextGroupID: 1,
	}
}

// RegisterNode inserts a descriptor for the node and returns its assigned id.
// Registering twice returns the existing id. A Group is never a plain node;
// passing one returns InvalidID.
func (r *Registry) RegisterNode(n Node) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n == nil {
		return InvalidID
	}
	if _, ok := n.(Group); ok {
		return InvalidID
	}
	if d, ok := r.nodes[n]; ok {
		return d.UID
	}

	d := newNodeDescriptor(r.nextNodeID, n)
	r.nextNodeID++
	r.nodes[n] = d
	r.nodeOrder = append(r.nodeOrder, d)
	return d.UID
}

// UnregisterNode removes the node's descriptor, dropping the record of its
// ports and their connection lists. Unknown nodes are a no-op.
func (r *Registry) UnregisterNode(n Node) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := n.(Group); ok {
		return
	}
	d, ok := r.nodes[n]
	if !ok {
		return
	}
	delete(r.nodes, n)
	r.nodeOrder = removeDescriptor(r.nodeOrder, d)
}

// GetNode returns the descriptor for the given node, or nil if not
// registered.
func (r *Registry) GetNode(n Node) *NodeDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookupNode(n)
}

// AllNodes returns every node descriptor in registration order.
func (r *Registry) AllNodes() []*NodeDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*NodeDescriptor, len(r.nodeOrder))
	copy(out, r.nodeOrder)
	return out
}

// AllGroups returns every group descriptor in registration order.
func (r *Registry) AllGroups() []*GroupDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*GroupDescriptor, len(r.groupOrder))
	copy(out, r.groupOrder)
	return out
}

// FindNode returns the earliest registered node with the given name, or nil.
func (r *Registry) FindNode(name string) *NodeDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findNode(name)
}

// FindGroup returns the earliest registered group with the given name, or
// nil.
func (r *Registry) FindGroup(name string) *GroupDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findGroup(name)
}

// FindNodeInGroup finds a node by name among the members of the given group.
func (r *Registry) FindNodeInGroup(name string, g Group) *NodeDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()

	gd := r.lookupGroup(g)
	if gd == nil {
		return nil
	}
	for _, nd := range gd.Members {
		if nd.Node != nil && nd.Node.NodeName() == name {
			return nd
		}
	}
	return nil
}

// RegisterInput records an input port on the node's descriptor with an empty
// connection list. Ports whose orientation is not Input are rejected with a
// warning.
func (r *Registry) RegisterInput(n Node, p Port) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.Orientation() != Input {
		r.logger.Warn("port is not an input port", "port", p.Name(), "node", n.NodeName())
		return
	}
	if d := r.lookupNode(n); d != nil {
		d.Inputs[p] = nil
	}
}

// RegisterOutput records an output port on the node's descriptor.
func (r *Registry) RegisterOutput(n Node, p Port) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.Orientation() != Output {
		r.logger.Warn("port is not an output port", "port", p.Name(), "node", n.NodeName())
		return
	}
	if d := r.lookupNode(n); d != nil {
		d.Outputs[p] = nil
	}
}

// RegisterParameter records a parameter port on the node's descriptor.
func (r *Registry) RegisterParameter(n Node, p Port) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.Orientation() != Parameter {
		r.logger.Warn("port is not a parameter port", "port", p.Name(), "node", n.NodeName())
		return
	}
	if d := r.lookupNode(n); d != nil {
		d.Params[p] = nil
	}
}

// UnregisterInput removes an input port entry and its connection list.
func (r *Registry) UnregisterInput(n Node, p Port) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.Orientation() != Input {
		return
	}
	if d := r.lookupNode(n); d != nil {
		delete(d.Inputs, p)
	}
}

// UnregisterOutput removes an output port entry and its connection list.
func (r *Registry) UnregisterOutput(n Node, p Port) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.Orientation() != Output {
		return
	}
	if d := r.lookupNode(n); d != nil {
		delete(d.Outputs, p)
	}
}

// UnregisterParameter removes a parameter port entry. Unlike the register
// side there is no orientation check here; removal is tolerated for any port.
func (r *Registry) UnregisterParameter(n Node, p Port) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d := r.lookupNode(n); d != nil {
		delete(d.Params, p)
	}
}

// ResolvePort returns the port with the given name on the node with the given
// name, scanning inputs, then outputs, then parameters. Returns nil when no
// live descriptor matches.
func (r *Registry) ResolvePort(nodeName, portName string) Port {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, nd := range r.nodeOrder {
		if nd.Node == nil || nd.Node.NodeName() != nodeName {
			continue
		}
		for _, m := range []map[Port][]Connection{nd.Inputs, nd.Outputs, nd.Params} {
			for p := range m {
				if p.Name() == portName && p.ModuleName() == nodeName {
					return p
				}
			}
		}
	}
	return nil
}

// InputPortByName finds an input port on the node itself by name.
func (r *Registry) InputPortByName(n Node, portName string) Port {
	return portByName(n.Inputs(), portName)
}

// OutputPortByName finds an output port on the node itself by name.
func (r *Registry) OutputPortByName(n Node, portName string) Port {
	return portByName(n.Outputs(), portName)
}

// ParameterPortByName finds a parameter port on the node itself by name.
func (r *Registry) ParameterPortByName(n Node, portName string) Port {
	return portByName(n.Parameters(), portName)
}

func portByName(ports []Port, name string) Port {
	for _, p := range ports {
		if p != nil && p.Name() == name {
			return p
		}
	}
	return nil
}

func removeDescriptor[T comparable](s []T, v T) []T {
	for i, e := range s {
		if e == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// lookupNode must be called with the lock held.
func (r *Registry) lookupNode(n Node) *NodeDescriptor {
	if n == nil {
		return nil
	}
	return r.nodes[n]
}

// lookupGroup must be called with the lock held.
func (r *Registry) lookupGroup(g Group) *GroupDescriptor {
	if g == nil {
		return nil
	}
	return r.groups[g]
}

// findNode must be called with the lock held.
func (r *Registry) findNode(name string) *NodeDescriptor {
	for _, nd := range r.nodeOrder {
		if nd.Node != nil && nd.Node.NodeName() == name {
			return nd
		}
	}
	return nil
}

// findGroup must be called with the lock held.
func (r *Registry) findGroup(name string) *GroupDescriptor {
	for _, gd := range r.groupOrder {
		if gd.Group != nil && gd.Group.NodeName() == name {
			return gd
		}
	}
	return nil
}
