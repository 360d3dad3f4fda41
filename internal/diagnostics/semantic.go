package diagnostics

import (
	"fmt"

	"github.com/alexwulf/alloy-configurator/internal/model"
	"github.com/alexwulf/alloy-configurator/internal/registry"
	"github.com/alexwulf/alloy-configurator/internal/syntax"
)

// Checker is the pluggable semantic pass: given one extracted component,
// its syntax node and the schema registry, it returns zero or more markers
// positioned within that component's span. Implementations must be
// read-only and must never fail extraction; everything they find is
// advisory.
type Checker interface {
	Check(node *syntax.Node, block *model.Block, reg *registry.Registry) []model.Marker
}

// RegistryChecker is the default semantic pass. It cross-references each
// component against the registry: unknown kinds and unknown arguments are
// informational, missing required arguments and uses of deprecated
// arguments are warnings.
type RegistryChecker struct{}

// Check implements Checker.
func (RegistryChecker) Check(node *syntax.Node, block *model.Block, reg *registry.Registry) []model.Marker {
	if reg == nil || block == nil || block.Name == "" {
		return nil
	}

	anchor := node
	if name := node.ChildByField(syntax.FieldName); name != nil && !name.Missing() {
		anchor = name
	}

	schema, ok := reg.Lookup(block.Name)
	if !ok {
		msg := fmt.Sprintf("Unknown component kind %q", block.Name)
		return []model.Marker{markerFor(anchor, msg, model.SeverityInfo)}
	}

	var out []model.Marker
	for _, attr := range block.Attributes {
		spec := schema.Argument(attr.Name)
		at := attributeNode(node, attr.Name)
		if at == nil {
			at = anchor
		}
		if spec == nil {
			msg := fmt.Sprintf("%q is not a recognized argument of %q", attr.Name, block.Name)
			out = append(out, markerFor(at, msg, model.SeverityInfo))
			continue
		}
		if spec.Deprecated != "" {
			msg := fmt.Sprintf("Argument %q is deprecated: %s", attr.Name, spec.Deprecated)
			out = append(out, markerFor(at, msg, model.SeverityWarning))
		}
	}
	for _, spec := range schema.Arguments {
		if !spec.Required {
			continue
		}
		if _, ok := block.Attribute(spec.Name); !ok {
			msg := fmt.Sprintf("%q requires argument %q", block.Name, spec.Name)
			out = append(out, markerFor(anchor, msg, model.SeverityWarning))
		}
	}
	return out
}

// attributeNode finds the body attribute with the given key.
func attributeNode(block *syntax.Node, name string) *syntax.Node {
	body := block.ChildByField(syntax.FieldBody)
	if body == nil {
		return nil
	}
	for _, c := range body.Children() {
		if c.Kind() != syntax.KindAttribute {
			continue
		}
		if key := c.ChildByField(syntax.FieldKey); key != nil && key.Text() == name {
			return c
		}
	}
	return nil
}

// Extract runs both passes over one parse result and returns the full
// replacement marker set: syntax markers first, then semantic markers per
// component in record order. With no explicit checkers the RegistryChecker
// runs.
func Extract(t *syntax.Tree, records []model.ComponentRecord, reg *registry.Registry, checkers ...Checker) []model.Marker {
	markers := SyntaxMarkers(t)
	if len(checkers) == 0 {
		checkers = []Checker{RegistryChecker{}}
	}
	for _, rec := range records {
		if rec.Node == nil || rec.Block == nil {
			continue
		}
		for _, c := range checkers {
			markers = append(markers, c.Check(rec.Node, rec.Block, reg)...)
		}
	}
	return markers
}
