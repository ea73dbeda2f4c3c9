package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/nodewire/graph"
	"github.com/vk/nodewire/internal/ctxlog"
)

// Run builds the scene from the loaded manifest and reports the resulting
// topology. Wires that cannot be established are collected and reported
// together; a single bad wire does not abort the rest of the build.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	for _, def := range a.file.Nodes {
		if _, err := a.factory.BuildNode(def); err != nil {
			return fmt.Errorf("failed to build node '%s': %w", def.Name, err)
		}
	}
	a.logger.Info("Scene built.", "nodes", len(a.file.Nodes))

	var wireErrs []string
	wired := 0
	for _, w := range a.file.Wires {
		from, err := graph.ParsePortRef(w.From)
		if err != nil {
			wireErrs = append(wireErrs, err.Error())
			continue
		}
		to, err := graph.ParsePortRef(w.To)
		if err != nil {
			wireErrs = append(wireErrs, err.Error())
			continue
		}
		if _, err := a.factory.Wire(from, to); err != nil {
			wireErrs = append(wireErrs, err.Error())
			continue
		}
		wired++
	}
	a.logger.Info("Wires applied.", "wired", wired, "failed", len(wireErrs))

	a.report()

	if len(wireErrs) > 0 {
		return fmt.Errorf("wiring failed:\n- %s", strings.Join(wireErrs, "\n- "))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// report prints a human-readable topology summary.
func (a *App) report() {
	fmt.Fprintf(a.outW, "Nodes: %d\n", len(a.registry.AllNodes()))
	for _, nd := range a.registry.AllNodes() {
		n := nd.Node
		fmt.Fprintf(a.outW, "  %s (inputs: %d, outputs: %d, parameters: %d)\n",
			n.NodeName(), len(n.Inputs()), len(n.Outputs()), len(n.Parameters()))
		for _, p := range n.Outputs() {
			for _, c := range a.registry.Connections(p) {
				fmt.Fprintf(a.outW, "    %s -> %s\n", c.OutputRef(), c.InputRef())
			}
		}
	}
}
