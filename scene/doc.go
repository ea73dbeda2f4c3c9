// Package scene provides concrete node, port, group and connection types
// backing the graph registry's interfaces, plus a Factory that builds them
// from manifest definitions and wires them together.
//
// The scene carries only the data the registry and a renderer need: names,
// positions, visibility, capability sets and parameter defaults. It knows
// nothing about drawing.
package scene
