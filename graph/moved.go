package graph

// NodeMoved propagates a position change to every connection that depends on
// the entity.
//
// For a plain visible node, every connection attached to any of its ports is
// told to recompute its geometry from the port's new scene position.
// Invisible nodes are skipped entirely.
//
// For a group, the three forwarding maps are walked instead: each member
// port's connections are refreshed with positions taken from the group-level
// forward port. On the input side the bounds still come from the member
// port, on the output side from the forward port.
func (r *Registry) NodeMoved(n Node) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g, ok := n.(Group); ok {
		if gd := r.lookupGroup(g); gd != nil {
			r.refreshGroupForwardedPorts(gd)
		}
		return
	}

	nd := r.lookupNode(n)
	if nd == nil || !nd.Node.Visible() {
		return
	}
	r.refreshNodePorts(nd.Inputs)
	r.refreshNodePorts(nd.Outputs)
	r.refreshNodePorts(nd.Params)
}

// refreshNodePorts must be called with the lock held.
func (r *Registry) refreshNodePorts(m map[Port][]Connection) {
	for port, conns := range m {
		for _, c := range conns {
			if c == nil {
				continue
			}
			c.OnNodeMoved(port.Orientation().IsInputLike(), port.ScenePos(), port.Bounds())
		}
	}
}

// refreshGroupForwardedPorts must be called with the lock held.
func (r *Registry) refreshGroupForwardedPorts(gd *GroupDescriptor) {
	for _, m := range []map[Port][]Port{gd.ForwardInputs, gd.ForwardOutputs, gd.ForwardParams} {
		for forward, actuals := range m {
			for _, actual := range actuals {
				for _, c := range r.connections(actual, make(map[Port]bool)) {
					if c == nil {
						continue
					}
					if actual.Orientation().IsInputLike() {
						c.OnNodeMoved(true, forward.ScenePos(), actual.Bounds())
					} else {
						c.OnNodeMoved(false, forward.ScenePos(), forward.Bounds())
					}
				}
			}
		}
	}
}
