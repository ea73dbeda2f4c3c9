package manifest

import (
	"github.com/zclconf/go-cty/cty"
)

// File is the decoded form of one or more manifest files. LoadDir merges
// every file in a tree into a single File.
type File struct {
	Nodes []*NodeDef `hcl:"node,block"`
	Wires []*WireDef `hcl:"wire,block"`
}

// NodeDef is a `node` block: a named node with its port declarations and an
// optional initial canvas position.
type NodeDef struct {
	Name string `hcl:"name,label"`

	X float64 `hcl:"x,optional"`
	Y float64 `hcl:"y,optional"`

	Inputs     []*PortDef      `hcl:"input,block"`
	Outputs    []*PortDef      `hcl:"output,block"`
	Parameters []*ParameterDef `hcl:"parameter,block"`
}

// PortDef is an `input` or `output` block. Capabilities name the tag types
// the port carries; a port declared without capabilities is inert and will
// never satisfy the compatibility check.
type PortDef struct {
	Name         string   `hcl:"name,label"`
	Capabilities []string `hcl:"capabilities,optional"`
	Hidden       bool     `hcl:"hidden,optional"`
}

// ParameterDef is a `parameter` block. The default value stays an opaque
// cty.Value; interpreting it belongs to whatever widget edits the parameter.
type ParameterDef struct {
	Name         string    `hcl:"name,label"`
	Capabilities []string  `hcl:"capabilities,optional"`
	Hidden       bool      `hcl:"hidden,optional"`
	Default      cty.Value `hcl:"default,optional"`
}

// WireDef is a `wire` block connecting two declared ports, referenced as
// "node.port".
type WireDef struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

// FindNode returns the first node declared with the given name, or nil.
func (f *File) FindNode(name string) *NodeDef {
	for _, n := range f.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// FindPort returns the port declaration with the given name regardless of
// kind, or nil. Parameters are reported with their definition wrapped in a
// PortDef so callers get one shape back.
func (n *NodeDef) FindPort(name string) *PortDef {
	for _, p := range n.Inputs {
		if p.Name == name {
			return p
		}
	}
	for _, p := range n.Outputs {
		if p.Name == name {
			return p
		}
	}
	for _, p := range n.Parameters {
		if p.Name == name {
			return &PortDef{Name: p.Name, Capabilities: p.Capabilities, Hidden: p.Hidden}
		}
	}
	return nil
}
