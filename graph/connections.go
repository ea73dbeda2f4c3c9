package graph

// RegisterConnection records a connection between two ports. Which endpoint
// is which is decided by orientation: exactly one side must be input-like
// (input or parameter) and the other an output, otherwise the call is
// rejected with a warning. Each endpoint's owner is resolved by name, nodes
// first, then groups; unresolved owners also reject the call.
//
// On success the connection is appended to the endpoint ports' connection
// lists, which are the single source of truth that the connection exists.
func (r *Registry) RegisterConnection(from, to Port, c Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if from == nil || to == nil || c == nil {
		r.logger.Warn("cannot register connection: nil argument")
		return
	}

	var in, out Port
	switch {
	case from.Orientation().IsInputLike() && to.Orientation() == Output:
		in, out = from, to
	case to.Orientation().IsInputLike() && from.Orientation() == Output:
		in, out = to, from
	default:
		r.logger.Warn("cannot register connection: ambiguous port roles",
			"from", RefOf(from).String(), "fromOrientation", from.Orientation().String(),
			"to", RefOf(to).String(), "toOrientation", to.Orientation().String())
		return
	}

	outOwner := r.resolveOwner(out.ModuleName())
	inOwner := r.resolveOwner(in.ModuleName())
	if outOwner == nil || inOwner == nil {
		r.logger.Warn("cannot register connection: unresolved endpoint owner",
			"from", RefOf(from).String(), "to", RefOf(to).String())
		return
	}

	if d := r.lookupNode(outOwner); d != nil {
		d.Outputs[out] = append(d.Outputs[out], c)
	}
	if d := r.lookupNode(inOwner); d != nil {
		if in.Orientation() == Parameter {
			d.Params[in] = append(d.Params[in], c)
		} else {
			d.Inputs[in] = append(d.Inputs[in], c)
		}
	}
}

// UnregisterConnection removes the connection from every port's connection
// list across all live descriptors. Removing an absent connection is a
// no-op.
func (r *Registry) UnregisterConnection(c Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, nd := range r.nodeOrder {
		for _, m := range []map[Port][]Connection{nd.Inputs, nd.Outputs, nd.Params} {
			for p, conns := range m {
				m[p] = removeConnection(conns, c)
			}
		}
	}
}

func removeConnection(conns []Connection, c Connection) []Connection {
	out := conns[:0]
	for _, e := range conns {
		if e != c {
			out = append(out, e)
		}
	}
	return out
}

// Connections returns all connections attached to the port. For a forward
// (group) port it indirects through the forwarding maps and returns the
// union of the underlying member ports' connections.
func (r *Registry) Connections(p Port) []Connection {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.connections(p, make(map[Port]bool))
}

// ConnectionsFromGroupPort returns the connections reachable through a
// group-level forward port.
func (r *Registry) ConnectionsFromGroupPort(forward Port) []Connection {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.groupPortConnections(forward, make(map[Port]bool))
}

// connections must be called with the lock held. seen guards against
// forwarding cycles.
func (r *Registry) connections(p Port, seen map[Port]bool) []Connection {
	if p == nil || seen[p] {
		return nil
	}
	seen[p] = true

	nd := r.findNode(p.ModuleName())
	if nd == nil {
		// No plain node owns this port; treat it as a group forward port.
		return r.groupPortConnections(p, seen)
	}

	var out []Connection
	out = append(out, nd.Inputs[p]...)
	out = append(out, nd.Outputs[p]...)
	out = append(out, nd.Params[p]...)
	return out
}

// groupPortConnections must be called with the lock held.
func (r *Registry) groupPortConnections(forward Port, seen map[Port]bool) []Connection {
	var out []Connection
	for _, gd := range r.groupOrder {
		for _, m := range []map[Port][]Port{gd.ForwardInputs, gd.ForwardOutputs, gd.ForwardParams} {
			for _, actual := range m[forward] {
				out = append(out, r.connections(actual, seen)...)
			}
		}
	}
	return out
}

// HasConnection reports whether the port is occupied: either it has a
// connection of its own, or, transitively through forwarding, one of the
// member ports it stands in for has one.
func (r *Registry) HasConnection(p Port) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hasConnection(p, make(map[Port]bool))
}

// hasConnection must be called with the lock held.
func (r *Registry) hasConnection(p Port, seen map[Port]bool) bool {
	if p == nil || seen[p] {
		return false
	}
	seen[p] = true

	for _, actual := range r.forwardTargets(p) {
		if r.hasConnection(actual, seen) {
			return true
		}
	}
	return len(r.connections(p, make(map[Port]bool))) > 0
}

// FindConnection returns the connection leaving from and ending at a port
// with the given name on the given module, or nil. The match is made against
// the other endpoint of each of from's connections.
func (r *Registry) FindConnection(from Port, toPortName, toModule string) Connection {
	if from == nil {
		return nil
	}
	want := PortRef{Module: toModule, Port: toPortName}
	inputSide := from.Orientation().IsInputLike()

	for _, c := range r.Connections(from) {
		if c == nil {
			continue
		}
		if inputSide {
			if c.OutputRef() == want {
				return c
			}
		} else if c.InputRef() == want {
			return c
		}
	}
	return nil
}

// HasConnectionTo reports whether from is connected to a port with the given
// name and module.
func (r *Registry) HasConnectionTo(from Port, toPortName, toModule string) bool {
	return r.FindConnection(from, toPortName, toModule) != nil
}

// HasConnectionBetween reports whether the two ports are directly connected.
// It resolves the input and output roles by orientation; with unresolvable
// roles it reports false.
func (r *Registry) HasConnectionBetween(from, to Port) bool {
	if from == nil || to == nil {
		return false
	}

	var in, out Port
	if from.Orientation().IsInputLike() {
		in = from
	} else if to.Orientation().IsInputLike() {
		in = to
	}
	if from.Orientation() == Output {
		out = from
	} else if to.Orientation() == Output {
		out = to
	}
	if in == nil || out == nil {
		return false
	}
	return r.HasConnectionTo(in, out.Name(), out.ModuleName())
}

// resolveOwner must be called with the lock held. Nodes shadow groups of the
// same name.
func (r *Registry) resolveOwner(moduleName string) Node {
	if nd := r.findNode(moduleName); nd != nil {
		return nd.Node
	}
	if gd := r.findGroup(moduleName); gd != nil {
		return gd.Group
	}
	return nil
}
