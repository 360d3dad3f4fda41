package diagnostics

import (
	"fmt"

	"github.com/alexwulf/alloy-configurator/internal/model"
	"github.com/alexwulf/alloy-configurator/internal/syntax"
)

// SyntaxMarkers walks the tree pre-order and reports every parse-error
// region and missing required token. Subtrees that contain no error are
// not descended into.
func SyntaxMarkers(t *syntax.Tree) []model.Marker {
	if t == nil {
		return nil
	}
	var out []model.Marker
	c := t.Walk()
	for n := c.Next(); n != nil; n = c.Next() {
		if !n.HasError() {
			c.SkipChildren()
			continue
		}
		switch {
		case n.Missing():
			out = append(out, markerFor(n, fmt.Sprintf("Missing %s", n.Kind()), model.SeverityError))
		case n.Kind() == syntax.KindError:
			out = append(out, markerFor(n, "unable to parse", model.SeverityError))
			c.SkipChildren()
		}
	}
	return out
}

// markerFor positions a marker over a node. Marker ends are widened one
// column past the node's exclusive end so zero-width issues render; this is
// the only place the marker/replacement end asymmetry is applied.
func markerFor(n *syntax.Node, message string, severity model.Severity) model.Marker {
	return model.Marker{
		Message:     message,
		Severity:    severity,
		StartLine:   n.Start().Line,
		StartColumn: n.Start().Column,
		EndLine:     n.End().Line,
		EndColumn:   n.End().Column + 1,
	}
}
