// Package graph is the single source of truth for node, group, port, and
// connection topology in the editor.
//
// The Registry is a passive, non-owning index over entities whose lifetime is
// managed by the embedding UI layer: callers register nodes, groups, ports,
// and connections around the real objects' lifecycle and must unregister them
// again, or a dangling descriptor is left behind. The registry never calls
// back into rendering; the interaction layer queries it for connections and
// compatibility and performs any visual refresh itself.
//
// Groups add one level of indirection through port forwarding: a forward port
// exposed on a group stands in for one or more member-node ports, and
// connection and occupancy queries see through that indirection.
package graph
