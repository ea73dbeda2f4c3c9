package manifest

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/nodewire/graph"
	"github.com/vk/nodewire/internal/ctxlog"
	"github.com/vk/nodewire/tag"
)

// Validate performs a strict parity check between the manifest and the code
// that will realize it. Node names must be unique, port names must be unique
// within their node, every capability name must resolve in the applicator,
// and every wire endpoint must reference a declared port. All problems are
// reported together.
func (f *File) Validate(ctx context.Context, tags *tag.Applicator) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	seenNodes := make(map[string]bool)
	for _, n := range f.Nodes {
		if seenNodes[n.Name] {
			errs = append(errs, fmt.Sprintf("node '%s': declared more than once", n.Name))
			continue
		}
		seenNodes[n.Name] = true
		errs = append(errs, validateNode(n, tags)...)
	}

	for _, w := range f.Wires {
		errs = append(errs, f.validateWire(w)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("manifest validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Manifest validated", "nodes", len(f.Nodes), "wires", len(f.Wires))
	return nil
}

func validateNode(n *NodeDef, tags *tag.Applicator) []string {
	var errs []string

	seenPorts := make(map[string]bool)
	checkPort := func(kind, portName string, caps []string) {
		if seenPorts[portName] {
			errs = append(errs, fmt.Sprintf("node '%s': duplicate port name '%s'", n.Name, portName))
			return
		}
		seenPorts[portName] = true
		for _, capName := range caps {
			if !tags.Known(capName) {
				errs = append(errs, fmt.Sprintf("node '%s', %s '%s': unknown capability '%s'", n.Name, kind, portName, capName))
			}
		}
	}

	for _, p := range n.Inputs {
		checkPort("input", p.Name, p.Capabilities)
	}
	for _, p := range n.Outputs {
		checkPort("output", p.Name, p.Capabilities)
	}
	for _, p := range n.Parameters {
		checkPort("parameter", p.Name, p.Capabilities)
	}

	return errs
}

func (f *File) validateWire(w *WireDef) []string {
	var errs []string
	for _, end := range []struct {
		attr string
		raw  string
	}{
		{"from", w.From},
		{"to", w.To},
	} {
		ref, err := graph.ParsePortRef(end.raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("wire %s '%s': %v", end.attr, end.raw, err))
			continue
		}
		node := f.FindNode(ref.Module)
		if node == nil {
			errs = append(errs, fmt.Sprintf("wire %s '%s': node '%s' is not declared", end.attr, end.raw, ref.Module))
			continue
		}
		if node.FindPort(ref.Port) == nil {
			errs = append(errs, fmt.Sprintf("wire %s '%s': node '%s' has no port '%s'", end.attr, end.raw, ref.Module, ref.Port))
		}
	}
	return errs
}
