package graph

// ActivateNode flags the node as active and cascades the flag onto every
// connection leaving its output ports. The flag is purely advisory; the
// registry keeps the cascade rule, rendering decides what to do with it.
func (r *Registry) ActivateNode(n Node) {
	r.setNodeActive(n, true)
}

// DeactivateNode clears the node's active flag and the flag of every
// connection leaving its output ports.
func (r *Registry) DeactivateNode(n Node) {
	r.setNodeActive(n, false)
}

// IsNodeActive reports the node's active flag.
func (r *Registry) IsNodeActive(n Node) bool {
	return n != nil && n.Active()
}

func (r *Registry) setNodeActive(n Node, active bool) {
	if n == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n.SetActive(active)
	for _, port := range n.Outputs() {
		for _, c := range r.connections(port, make(map[Port]bool)) {
			if c != nil {
				c.SetActive(active)
			}
		}
	}
}
