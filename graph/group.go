package graph

// RegisterGroup inserts a descriptor for the group and returns its assigned
// id. Registering twice returns the existing id. Any stale plain-node
// descriptor for the same entity is removed.
func (r *Registry) RegisterGroup(g Group) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g == nil {
		return InvalidID
	}
	if d, ok := r.groups[g]; ok {
		return d.UID
	}

	d := newGroupDescriptor(r.nextGroupID, g)
	r.nextGroupID++
	r.groups[g] = d
	r.groupOrder = append(r.groupOrder, d)

	// A group must never linger in the plain-node table.
	if nd, ok := r.nodes[g]; ok {
		delete(r.nodes, g)
		r.nodeOrder = removeDescriptor(r.nodeOrder, nd)
	}

	return d.UID
}

// UnregisterGroup removes the group's descriptor, along with its membership
// and forwarding records. Unknown groups are a no-op.
func (r *Registry) UnregisterGroup(g Group) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.groups[g]
	if !ok {
		return
	}
	delete(r.groups, g)
	r.groupOrder = removeDescriptor(r.groupOrder, d)
}

// AddNodeToGroup records group membership. Both the group and the node must
// already be registered; otherwise the call is a no-op.
func (r *Registry) AddNodeToGroup(g Group, n Node) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gd := r.lookupGroup(g)
	nd := r.lookupNode(n)
	if gd != nil && nd != nil {
		gd.Members = append(gd.Members, nd)
	}
}

// RemoveNodeFromGroup removes the node from the group's member list.
func (r *Registry) RemoveNodeFromGroup(g Group, n Node) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gd := r.lookupGroup(g)
	if gd == nil {
		return
	}
	members := gd.Members[:0]
	for _, nd := range gd.Members {
		if nd == nil || nd.Node != n {
			members = append(members, nd)
		}
	}
	gd.Members = members
}

// GroupsOf returns all groups the node belongs to. The reverse index is
// computed by scanning every group's member list; the live sets are small
// enough that no cached mapping is kept.
func (r *Registry) GroupsOf(n Node) []*GroupDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*GroupDescriptor
	for _, gd := range r.groupOrder {
		for _, nd := range gd.Members {
			if nd != nil && nd.Node == n {
				out = append(out, gd)
				break
			}
		}
	}
	return out
}

// RegisterForwardInput records that the group-level forward port stands in
// for the given member input port, and snapshots the member port's
// capability set onto the forward port. Later capability changes on the
// member port are not tracked.
func (r *Registry) RegisterForwardInput(g Group, forward, actual Port) {
	r.registerForward(g, forward, actual, func(gd *GroupDescriptor) map[Port][]Port {
		return gd.ForwardInputs
	})
}

// RegisterForwardOutput is the output-side counterpart of
// RegisterForwardInput.
func (r *Registry) RegisterForwardOutput(g Group, forward, actual Port) {
	r.registerForward(g, forward, actual, func(gd *GroupDescriptor) map[Port][]Port {
		return gd.ForwardOutputs
	})
}

// RegisterForwardParameter is the parameter-side counterpart of
// RegisterForwardInput.
func (r *Registry) RegisterForwardParameter(g Group, forward, actual Port) {
	r.registerForward(g, forward, actual, func(gd *GroupDescriptor) map[Port][]Port {
		return gd.ForwardParams
	})
}

func (r *Registry) registerForward(g Group, forward, actual Port, pick func(*GroupDescriptor) map[Port][]Port) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if forward == nil || actual == nil {
		return
	}
	gd := r.lookupGroup(g)
	if gd == nil {
		return
	}
	m := pick(gd)
	m[forward] = append(m[forward], actual)
	forward.Tags().CopyFrom(*actual.Tags())
}

// UnregisterForwardPort removes the forward port from all three forwarding
// maps of the group. A forward port only ever lives in one of them; removing
// from all three keeps the call safe regardless of orientation.
func (r *Registry) UnregisterForwardPort(g Group, forward Port) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gd := r.lookupGroup(g)
	if gd == nil {
		return
	}
	delete(gd.ForwardInputs, forward)
	delete(gd.ForwardOutputs, forward)
	delete(gd.ForwardParams, forward)
}

// PortsForwardedTo returns every group-level forward port, across all
// groups, that lists the given member port among its targets.
func (r *Registry) PortsForwardedTo(actual Port) []Port {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Port
	for _, gd := range r.groupOrder {
		for _, m := range []map[Port][]Port{gd.ForwardInputs, gd.ForwardOutputs, gd.ForwardParams} {
			for forward, targets := range m {
				for _, t := range targets {
					if t == actual {
						out = append(out, forward)
						break
					}
				}
			}
		}
	}
	return out
}

// ForwardedPortsFrom returns the member ports the given forward port stands
// in for, unioned across all groups and all three forwarding maps.
func (r *Registry) ForwardedPortsFrom(forward Port) []Port {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.forwardTargets(forward)
}

// forwardTargets must be called with the lock held.
func (r *Registry) forwardTargets(forward Port) []Port {
	var out []Port
	for _, gd := range r.groupOrder {
		for _, m := range []map[Port][]Port{gd.ForwardInputs, gd.ForwardOutputs, gd.ForwardParams} {
			out = append(out, m[forward]...)
		}
	}
	return out
}
