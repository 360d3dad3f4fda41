package model

import (
	"strconv"
	"strings"
)

// Expr is the source text of one attribute value, kept verbatim rather than
// evaluated. The text buffer is the source of truth; the editor never needs
// the value, only a faithful round-trip of it.
type Expr struct {
	Source string
}

// String builds an Expr rendering a quoted string literal.
func String(s string) Expr {
	return Expr{Source: strconv.Quote(s)}
}

// Number builds an Expr rendering a numeric literal.
func Number(f float64) Expr {
	return Expr{Source: strconv.FormatFloat(f, 'f', -1, 64)}
}

// Bool builds an Expr rendering a boolean literal.
func Bool(b bool) Expr {
	return Expr{Source: strconv.FormatBool(b)}
}

// Equal compares two expressions on their trimmed source text.
func (e Expr) Equal(o Expr) bool {
	return strings.TrimSpace(e.Source) == strings.TrimSpace(o.Source)
}

// Attribute is one `key = value` entry of a block body.
type Attribute struct {
	Name  string
	Value Expr
}

// Block is the structured view of one configuration entry: a dotted kind
// name, an optional label, and ordered attribute and nested-block content.
// A Block is always derivable from source text and always renderable back
// to it.
type Block struct {
	Name       string
	Label      string
	Attributes []Attribute
	Blocks     []*Block
}

// Ref returns the fully-qualified reference other parts of the document use
// to point at this block, e.g. "prometheus.remote_write.default". Unlabelled
// blocks are referenced by kind name alone.
func (b *Block) Ref() string {
	if b.Label == "" {
		return b.Name
	}
	return b.Name + "." + b.Label
}

// Attribute returns the named attribute's value.
func (b *Block) Attribute(name string) (Expr, bool) {
	for _, a := range b.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return Expr{}, false
}

// Equal reports structural equality: same name, label, attributes and
// nested blocks in order, with expression sources compared whitespace-
// insensitively at the edges.
func (b *Block) Equal(o *Block) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.Name != o.Name || b.Label != o.Label {
		return false
	}
	if len(b.Attributes) != len(o.Attributes) || len(b.Blocks) != len(o.Blocks) {
		return false
	}
	for i, a := range b.Attributes {
		if a.Name != o.Attributes[i].Name || !a.Value.Equal(o.Attributes[i].Value) {
			return false
		}
	}
	for i, nested := range b.Blocks {
		if !nested.Equal(o.Blocks[i]) {
			return false
		}
	}
	return true
}
