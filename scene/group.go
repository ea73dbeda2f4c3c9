package scene

import (
	"sort"
	"strings"

	"github.com/vk/nodewire/graph"
)

// Group is a collapsed set of member nodes presented as a single node. Its
// ports are forward ports mirroring the members' ports; the registry holds
// the forwarding maps.
type Group struct {
	Node
	members []*Node
}

// GroupItem marks the type as a group for the registry.
func (g *Group) GroupItem() {}

// Members returns the grouped nodes.
func (g *Group) Members() []*Node { return g.members }

// groupTitle joins the sorted member names, the display name a fresh group
// gets.
func groupTitle(members []*Node) string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.name)
	}
	sort.Strings(names)
	return strings.Join(names, "+")
}

// groupCenter places the group at the centroid of its members.
func groupCenter(members []*Node) graph.Point {
	if len(members) == 0 {
		return graph.Point{}
	}
	var c graph.Point
	for _, m := range members {
		c.X += m.pos.X
		c.Y += m.pos.Y
	}
	c.X /= float64(len(members))
	c.Y /= float64(len(members))
	return c
}

// forwardName is how a member port appears on the group.
func forwardName(p graph.Port) string {
	return p.ModuleName() + "_" + p.Name()
}
