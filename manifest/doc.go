// Package manifest loads declarative node-graph definitions from HCL files.
//
// A manifest declares node types with their ports and capability names, plus
// the wires between declared ports:
//
//	node "mixer" {
//	  input "left"   { capabilities = ["caps.Audio"] }
//	  input "right"  { capabilities = ["caps.Audio"] }
//	  output "out"   { capabilities = ["caps.Audio"] }
//	  parameter "gain" { capabilities = ["caps.Float"] default = 1.0 }
//	}
//
//	wire {
//	  from = "osc.out"
//	  to   = "mixer.left"
//	}
//
// Capability names are opaque strings here; resolving them to concrete types
// is the tag applicator's job. Validation performs a parity check between the
// manifest and the applicator's known names before a scene is built.
package manifest
