// Package patch turns structured edit intents into minimal text-range
// replacements against the buffer. Every intent produces one atomic
// multi-range transaction, so the hosting editor's undo coalesces it into a
// single step, and every range is computed against the buffer's current
// content at the moment of application, never against positions cached
// from an older tree.
package patch

import (
	"strings"

	"github.com/alexwulf/alloy-configurator/internal/codec"
	"github.com/alexwulf/alloy-configurator/internal/model"
	"github.com/alexwulf/alloy-configurator/internal/syntax"
	"github.com/alexwulf/alloy-configurator/internal/textbuf"
)

// Insert appends a new component block at the end of the document, followed
// by a trailing separator.
func Insert(buf textbuf.Buffer, block *model.Block) error {
	text := buf.Text()
	end := textbuf.EndPosition(text)

	sep := ""
	switch {
	case text == "":
	case strings.HasSuffix(text, "\n"):
		sep = "\n"
	default:
		sep = "\n\n"
	}
	change := textbuf.Change{
		Range:   textbuf.Range{Start: end, End: end},
		NewText: sep + codec.Marshal(block) + "\n",
	}
	return buf.ReplaceRanges([]textbuf.Change{change})
}

// Replace rewrites an existing component's exact span with the edited
// block's canonical source. When the edit changed the block's label, every
// textual reference to the old fully-qualified name ("kind.oldLabel") in
// the buffer is rewritten to the new one within the same transaction.
//
// oldLabel is the label the block carried before the edit; pass the current
// label when it did not change.
func Replace(buf textbuf.Buffer, block *model.Block, oldLabel string, node *syntax.Node) error {
	if node == nil {
		return Insert(buf, block)
	}

	changes := []textbuf.Change{{
		Range:   textbuf.Range{Start: node.Start(), End: node.End()},
		NewText: codec.Marshal(block),
	}}

	if oldLabel != "" && block.Label != "" && oldLabel != block.Label {
		oldRef := block.Name + "." + oldLabel
		newRef := block.Name + "." + block.Label
		// The search runs against the text as it is now, not against spans
		// remembered from the tree that produced node. Matching is a literal
		// substring scan: references inside comments or strings rename too.
		for _, r := range occurrences(buf.Text(), oldRef) {
			if r.Start.Offset < node.End().Offset && node.Start().Offset < r.End.Offset {
				// Inside the replaced span; the rendered block already
				// carries the new label.
				continue
			}
			changes = append(changes, textbuf.Change{Range: r, NewText: newRef})
		}
	}

	return buf.ReplaceRanges(changes)
}

// occurrences returns the range of every literal, case-sensitive match of
// needle in text, in document order. The needle never contains newlines.
func occurrences(text, needle string) []textbuf.Range {
	if needle == "" {
		return nil
	}
	var out []textbuf.Range
	line, col := 1, 0
	for i := 0; i < len(text); {
		if i+len(needle) <= len(text) && text[i:i+len(needle)] == needle {
			out = append(out, textbuf.Range{
				Start: syntax.Position{Line: line, Column: col, Offset: i},
				End:   syntax.Position{Line: line, Column: col + len(needle), Offset: i + len(needle)},
			})
			col += len(needle)
			i += len(needle)
			continue
		}
		if text[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
		i++
	}
	return out
}
