package syntax

import (
	"fmt"
	"strings"
	"unicode"
)

// Query is a compiled structural pattern over a tree. The supported pattern
// language covers the shape the editing pipeline needs: a parent kind, one
// child kind, and an optional capture name, e.g.
//
//	(file (block) @component)
//
// Matches returns every direct child of the root with the child kind, in
// source order, with stable node handles.
type Query struct {
	rootKind  string
	childKind string
	capture   string
}

// CompileQuery parses a pattern into a Query.
func CompileQuery(pattern string) (*Query, error) {
	s := &patternScanner{src: pattern}

	if !s.consume('(') {
		return nil, fmt.Errorf("syntax: invalid query %q: expected '('", pattern)
	}
	rootKind := s.ident()
	if rootKind == "" {
		return nil, fmt.Errorf("syntax: invalid query %q: expected parent kind", pattern)
	}
	if !s.consume('(') {
		return nil, fmt.Errorf("syntax: invalid query %q: expected child pattern", pattern)
	}
	childKind := s.ident()
	if childKind == "" {
		return nil, fmt.Errorf("syntax: invalid query %q: expected child kind", pattern)
	}
	if !s.consume(')') {
		return nil, fmt.Errorf("syntax: invalid query %q: unterminated child pattern", pattern)
	}
	var capture string
	if s.consume('@') {
		capture = s.ident()
		if capture == "" {
			return nil, fmt.Errorf("syntax: invalid query %q: empty capture name", pattern)
		}
	}
	if !s.consume(')') || !s.done() {
		return nil, fmt.Errorf("syntax: invalid query %q: unsupported pattern", pattern)
	}

	return &Query{rootKind: rootKind, childKind: childKind, capture: capture}, nil
}

// MustCompileQuery is CompileQuery for patterns known at compile time.
func MustCompileQuery(pattern string) *Query {
	q, err := CompileQuery(pattern)
	if err != nil {
		panic(err)
	}
	return q
}

// Capture returns the pattern's capture name, or "".
func (q *Query) Capture() string { return q.capture }

// Matches runs the query against a tree.
func (q *Query) Matches(t *Tree) []*Node {
	if t == nil || t.root == nil || t.root.kind != q.rootKind {
		return nil
	}
	var out []*Node
	for _, c := range t.root.children {
		if c.kind == q.childKind {
			out = append(out, c)
		}
	}
	return out
}

type patternScanner struct {
	src string
	i   int
}

func (s *patternScanner) skipSpace() {
	for s.i < len(s.src) && unicode.IsSpace(rune(s.src[s.i])) {
		s.i++
	}
}

func (s *patternScanner) consume(b byte) bool {
	s.skipSpace()
	if s.i < len(s.src) && s.src[s.i] == b {
		s.i++
		return true
	}
	return false
}

func (s *patternScanner) ident() string {
	s.skipSpace()
	start := s.i
	for s.i < len(s.src) && !strings.ContainsRune("()@ \t\n", rune(s.src[s.i])) {
		s.i++
	}
	return s.src[start:s.i]
}

func (s *patternScanner) done() bool {
	s.skipSpace()
	return s.i == len(s.src)
}
