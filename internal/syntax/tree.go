package syntax

// Node kinds. Missing nodes reuse the literal token they stand in for, so a
// diagnostic can read `Missing "}"` directly off the node kind.
const (
	KindFile      = "file"
	KindBlock     = "block"
	KindBody      = "body"
	KindIdent     = "ident"
	KindLabel     = "label"
	KindAttribute = "attribute"
	KindExpr      = "expr"
	KindError     = "error"

	KindLBrace = "{"
	KindRBrace = "}"
)

// Field names for named-child access.
const (
	FieldName  = "name"
	FieldLabel = "label"
	FieldBody  = "body"
	FieldKey   = "key"
	FieldValue = "value"
)

// Node is one element of a parsed tree. Nodes are immutable after parsing;
// a reparse produces an entirely new tree.
type Node struct {
	kind     string
	field    string
	missing  bool
	hasError bool
	start    Position
	end      Position
	parent   *Node
	children []*Node
	tree     *Tree
}

// Kind returns the node's type tag.
func (n *Node) Kind() string { return n.kind }

// Field returns the name under which this node hangs off its parent, or ""
// for unnamed children.
func (n *Node) Field() string { return n.field }

// Missing reports whether the node stands in for a structurally required
// token that is absent from the source. Missing nodes are zero-width.
func (n *Node) Missing() bool { return n.missing }

// HasError reports whether this subtree contains any error or missing node.
// Well-formed regions report false, allowing traversals to prune them.
func (n *Node) HasError() bool { return n.hasError }

// Start returns the node's start position.
func (n *Node) Start() Position { return n.start }

// End returns the node's exclusive end position.
func (n *Node) End() Position { return n.end }

// Parent returns the enclosing node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in source order. The returned slice
// must not be mutated.
func (n *Node) Children() []*Node { return n.children }

// ChildByField returns the first child stored under the given field name,
// or nil if the source did not contain it.
func (n *Node) ChildByField(field string) *Node {
	for _, c := range n.children {
		if c.field == field {
			return c
		}
	}
	return nil
}

// Text returns the source text the node spans. Missing nodes span nothing.
func (n *Node) Text() string {
	if n.tree == nil || n.missing {
		return ""
	}
	return n.tree.src[n.start.Offset:n.end.Offset]
}

// Tree is an immutable snapshot of one parse of one text buffer.
type Tree struct {
	root *Node
	src  string
}

// Root returns the document node.
func (t *Tree) Root() *Node { return t.root }

// Src returns the exact text this tree was parsed from.
func (t *Tree) Src() string { return t.src }

// Walk returns a cursor positioned before the root.
func (t *Tree) Walk() *Cursor {
	return &Cursor{stack: []*Node{t.root}}
}

// finalize wires parent/tree pointers and computes the subtree error flags
// bottom-up. It runs once, at the end of a parse.
func finalize(n *Node, t *Tree) {
	n.tree = t
	if n.missing || n.kind == KindError {
		n.hasError = true
	}
	for _, c := range n.children {
		c.parent = n
		finalize(c, t)
		if c.hasError {
			n.hasError = true
		}
	}
}
