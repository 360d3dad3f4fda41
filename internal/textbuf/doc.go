// Package textbuf defines the narrow text-buffer capability the editing
// core needs from its hosting editor (full read access plus line/column
// addressed multi-range replacement) and provides an in-memory
// implementation of it.
//
// # Purpose
//
// The buffer is the single source of truth for a document. Every structured
// edit the pipeline produces is expressed as one atomic set of range
// replacements against the buffer's *current* content; positions computed
// against an older version are rejected rather than silently corrupting
// unrelated text.
//
// # Characteristics
//
//   - Replacement ranges use exclusive end positions.
//   - A ReplaceRanges call is atomic: either every change validates against
//     the current text and all are applied, or none are.
//   - Each successful mutation bumps Version, letting collaborators detect
//     lost updates.
//
// The in-memory implementation serves the editing service and tests; a
// hosting editor widget substitutes its own.
package textbuf
