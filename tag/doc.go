// Package tag implements the capability system that gates port
// connectability in the graph editor.
//
// A capability is an ordinary Go type used as a marker. The Registry assigns
// each capability type a small integer slot the first time it is seen, and a
// Set is the fixed-width bitmask of slots a port declares. Two ports may only
// be wired together when their sets are bit-for-bit equal, so the whole type
// system of the editor reduces to cheap bitmask comparisons with no runtime
// type information on the hot path.
//
// The Applicator bridges the gap for callers that only know a capability by
// its string name (for example, a declarative manifest): it maps names back
// to registered capability types so a tag can be applied generically.
package tag
