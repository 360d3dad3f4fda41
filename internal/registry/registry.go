package registry

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// ArgumentSpec describes one accepted argument of a component kind.
type ArgumentSpec struct {
	Name        string
	Type        cty.Type
	Required    bool
	Deprecated  string // non-empty: advice shown when the argument is used
	Description string
}

// ExportSpec describes one value a component kind exposes for reference.
type ExportSpec struct {
	Name        string
	Type        cty.Type
	Description string
}

// Schema is the capability descriptor for one component kind.
type Schema struct {
	Kind        string
	Description string
	Arguments   []*ArgumentSpec
	Exports     []*ExportSpec
}

// Argument returns the named argument spec, or nil.
func (s *Schema) Argument(name string) *ArgumentSpec {
	for _, a := range s.Arguments {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Registry maps component kind names to their schemas.
type Registry struct {
	schemas map[string]*Schema
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Register adds a schema. Registering the same kind twice is a manifest
// authoring error.
func (r *Registry) Register(s *Schema) error {
	if _, ok := r.schemas[s.Kind]; ok {
		return fmt.Errorf("registry: duplicate component kind %q", s.Kind)
	}
	r.schemas[s.Kind] = s
	return nil
}

// Lookup returns the schema for a kind. Absent entries mean "unknown kind".
func (r *Registry) Lookup(kind string) (*Schema, bool) {
	s, ok := r.schemas[kind]
	return s, ok
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	return len(r.schemas)
}
