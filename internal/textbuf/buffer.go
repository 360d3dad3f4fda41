package textbuf

import (
	"errors"
	"strings"

	"github.com/alexwulf/alloy-configurator/internal/syntax"
)

// ErrStaleRange is returned when a change addresses a position that does
// not exist in the buffer's current content. It signals a lost update: the
// caller computed ranges against text that has since changed.
var ErrStaleRange = errors.New("textbuf: range does not match current buffer content")

// Range is a span of buffer text. Start is inclusive, End exclusive, with
// the shared 1-indexed line / 0-indexed column convention.
type Range struct {
	Start syntax.Position
	End   syntax.Position
}

// Change replaces the text of one range.
type Change struct {
	Range   Range
	NewText string
}

// Buffer is the mutation surface the editing core requires from a document
// host.
type Buffer interface {
	// Text returns the full current content.
	Text() string
	// Version increases with every successful mutation.
	Version() int
	// ReplaceRanges applies all changes as one atomic transaction against
	// the current content. Ranges must not overlap.
	ReplaceRanges(changes []Change) error
}

// EndPosition returns the position one past the last character of text:
// the point at which new content is appended.
func EndPosition(text string) syntax.Position {
	line := 1 + strings.Count(text, "\n")
	lastNL := strings.LastIndexByte(text, '\n')
	return syntax.Position{
		Line:   line,
		Column: len(text) - (lastNL + 1),
		Offset: len(text),
	}
}

// offsetAt resolves a line/column address to a byte offset in text. A
// column addressing one past the end of its line is valid (it is the
// exclusive end of that line). Positions outside the text yield
// ErrStaleRange.
func offsetAt(text string, line, column int) (int, error) {
	if line < 1 || column < 0 {
		return 0, ErrStaleRange
	}
	start := 0
	for cur := 1; cur < line; cur++ {
		idx := strings.IndexByte(text[start:], '\n')
		if idx < 0 {
			return 0, ErrStaleRange
		}
		start += idx + 1
	}
	lineLen := strings.IndexByte(text[start:], '\n')
	if lineLen < 0 {
		lineLen = len(text) - start
	}
	if column > lineLen {
		return 0, ErrStaleRange
	}
	return start + column, nil
}
