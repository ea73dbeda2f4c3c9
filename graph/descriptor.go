package graph

// InvalidID is the sentinel returned when a register call is rejected.
const InvalidID int64 = -1

// NodeDescriptor is the registry's ledger entry for one live node. Each port
// maps to the list of connections that start or end at it; those lists are
// the single source of truth that a connection exists.
type NodeDescriptor struct {
	// UID is the registry-assigned unique node id.
	UID int64
	// Node is the registered entity. The registry does not own its lifetime.
	Node Node

	// Inputs maps input ports to the connections entering the node.
	Inputs map[Port][]Connection
	// Outputs maps output ports to the connections leaving the node.
	Outputs map[Port][]Connection
	// Params maps parameter ports to the connections feeding them.
	Params map[Port][]Connection
}

func newNodeDescriptor(uid int64, n Node) *NodeDescriptor {
	return &NodeDescriptor{
		UID:     uid,
		Node:    n,
		Inputs:  make(map[Port][]Connection),
		Outputs: make(map[Port][]Connection),
		Params:  make(map[Port][]Connection),
	}
}

// GroupDescriptor is the registry's ledger entry for one live group: its
// member nodes plus the forwarding rules that map group-level ports to the
// underlying member ports.
type GroupDescriptor struct {
	// UID is the registry-assigned unique group id.
	UID int64
	// Group is the registered entity. The registry does not own its lifetime.
	Group Group

	// Members are the descriptors of the nodes belonging to this group.
	Members []*NodeDescriptor

	// ForwardInputs maps a forward input port to the member ports it stands
	// in for. One forward port may cover several member ports.
	ForwardInputs map[Port][]Port
	// ForwardOutputs is the output-side forwarding map.
	ForwardOutputs map[Port][]Port
	// ForwardParams is the parameter-side forwarding map.
	ForwardParams map[Port][]Port
}

func newGroupDescriptor(uid int64, g Group) *GroupDescriptor {
	return &GroupDescriptor{
		UID:            uid,
		Group:          g,
		ForwardInputs:  make(map[Port][]Port),
		ForwardOutputs: make(map[Port][]Port),
		ForwardParams:  make(map[Port][]Port),
	}
}
