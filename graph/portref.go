package graph

import (
	"fmt"
	"regexp"
)

// PortRef names a port by its owning module and its own name. The canonical
// string form is "module.port"; module names may themselves contain dots, so
// the last dot is the separator and port names may not contain one.
type PortRef struct {
	Module string
	Port   string
}

// portRefRegex parses the canonical form. The module group is greedy, which
// makes the final dot the separator.
var portRefRegex = regexp.MustCompile(`^([a-zA-Z0-9_.-]+)\.([a-zA-Z0-9_-]+)$`)

// ParsePortRef parses the canonical "module.port" form.
func ParsePortRef(raw string) (PortRef, error) {
	if raw == "" {
		return PortRef{}, fmt.Errorf("port reference cannot be empty")
	}
	m := portRefRegex.FindStringSubmatch(raw)
	if m == nil {
		return PortRef{}, fmt.Errorf("invalid port reference %q: want module.port", raw)
	}
	return PortRef{Module: m[1], Port: m[2]}, nil
}

// RefOf returns the reference identifying the given port.
func RefOf(p Port) PortRef {
	return PortRef{Module: p.ModuleName(), Port: p.Name()}
}

// String returns the canonical "module.port" form.
func (r PortRef) String() string {
	return r.Module + "." + r.Port
}

// Equal reports field-wise equality.
func (r PortRef) Equal(other PortRef) bool {
	return r == other
}

// IsZero reports whether the reference is empty.
func (r PortRef) IsZero() bool {
	return r == PortRef{}
}
