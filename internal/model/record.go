package model

import "github.com/alexwulf/alloy-configurator/internal/syntax"

// ComponentRecord pairs a structured Block with the syntax-tree node it was
// derived from. Node is nil while the Block exists only as a pending
// structured edit that has not been committed to text yet. The record list
// is owned by the document synchronizer and fully replaced on every
// reparse; a record's Node is only meaningful until that replacement.
type ComponentRecord struct {
	Block *Block
	Node  *syntax.Node
}
