package syntax

import "fmt"

// Position addresses one point in a document. Line is 1-indexed, Column is a
// 0-indexed byte column within the line, and Offset is the absolute byte
// offset from the start of the document.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String renders the position as "line:column" for logs and error messages.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p addresses a point strictly before q.
func (p Position) Before(q Position) bool {
	return p.Offset < q.Offset
}
