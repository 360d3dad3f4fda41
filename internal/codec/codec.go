// Package codec converts between block-shaped syntax nodes and structured
// model.Block values. Both directions are pure and stateless: Unmarshal
// tolerates partially malformed nodes by leaving fields empty (the
// diagnostics extractor reports the damage independently), and Marshal
// renders canonical source text that reparses to an equal Block.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexwulf/alloy-configurator/internal/model"
	"github.com/alexwulf/alloy-configurator/internal/syntax"
)

// Unmarshal reads a block node into a Block value. Fields the source does
// not contain stay empty; Unmarshal never fails.
func Unmarshal(n *syntax.Node) *model.Block {
	b := &model.Block{}
	if n == nil {
		return b
	}

	if name := n.ChildByField(syntax.FieldName); name != nil && !name.Missing() {
		b.Name = name.Text()
	}
	if label := n.ChildByField(syntax.FieldLabel); label != nil && !label.Missing() {
		if s, err := strconv.Unquote(label.Text()); err == nil {
			b.Label = s
		} else {
			// Unterminated or malformed label: take what the user typed.
			b.Label = strings.Trim(label.Text(), `"`)
		}
	}

	body := n.ChildByField(syntax.FieldBody)
	if body == nil {
		return b
	}
	for _, c := range body.Children() {
		switch c.Kind() {
		case syntax.KindAttribute:
			attr := model.Attribute{}
			if key := c.ChildByField(syntax.FieldKey); key != nil && !key.Missing() {
				attr.Name = key.Text()
			}
			if value := c.ChildByField(syntax.FieldValue); value != nil && !value.Missing() {
				attr.Value = model.Expr{Source: strings.TrimSpace(value.Text())}
			}
			b.Attributes = append(b.Attributes, attr)
		case syntax.KindBlock:
			b.Blocks = append(b.Blocks, Unmarshal(c))
		}
	}
	return b
}

// Marshal renders canonical source text for a Block: two-space indentation,
// attributes before nested blocks in their stored order, and the label
// quoted with Go escaping. The output carries no trailing newline; callers
// position it themselves.
func Marshal(b *model.Block) string {
	var sb strings.Builder
	writeBlock(&sb, b, 0)
	return strings.TrimSuffix(sb.String(), "\n")
}

func writeBlock(sb *strings.Builder, b *model.Block, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(indent)
	sb.WriteString(b.Name)
	if b.Label != "" {
		fmt.Fprintf(sb, " %s", strconv.Quote(b.Label))
	}
	sb.WriteString(" {\n")
	for _, a := range b.Attributes {
		fmt.Fprintf(sb, "%s  %s = %s\n", indent, a.Name, strings.TrimSpace(a.Value.Source))
	}
	for _, nested := range b.Blocks {
		writeBlock(sb, nested, depth+1)
	}
	sb.WriteString(indent)
	sb.WriteString("}\n")
}
