// Package syntax contains the grammar binding for the component
// configuration language: a tolerant lexer and parser that always produce a
// tree, even for malformed input, plus the traversal and structural-query
// primitives the editing pipeline runs over that tree.
//
// # Language shape
//
// A document is a sequence of top-level blocks. A block has a dotted kind
// name, an optional quoted label, and a braced body of attributes and nested
// blocks:
//
//	prometheus.remote_write "default" {
//	  url = env.url.value
//	  queue {
//	    capacity = 5000
//	  }
//	}
//
// # Tolerance
//
// The parser never fails. Unparseable token runs become nodes of KindError
// spanning the skipped text, and structurally required tokens that are
// absent become zero-width nodes with Missing set. Node.HasError reports
// whether a subtree contains any error or missing node, which lets
// consumers prune traversal of well-formed regions.
//
// # Positions
//
// Position.Line is 1-indexed and Position.Column is a 0-indexed byte column.
// Node end positions are exclusive. Every package that addresses the buffer
// shares this convention.
package syntax
