package textbuf

import (
	"sort"
	"strings"
	"sync"
)

// Memory is the in-memory Buffer implementation used by the editing
// service and tests.
type Memory struct {
	mu      sync.Mutex
	text    string
	version int
}

// NewMemory creates a buffer with the given initial content.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// Text returns the full current content.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Version returns the mutation counter.
func (m *Memory) Version() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version
}

// SetText replaces the whole content, as a free-text edit from the hosting
// editor would.
func (m *Memory) SetText(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if text == m.text {
		return
	}
	m.text = text
	m.version++
}

// span is a change resolved to byte offsets against one text snapshot.
type span struct {
	start, end int
	newText    string
}

// ReplaceRanges applies all changes atomically. Every range is resolved
// against the current content first; any stale or overlapping range rejects
// the whole transaction.
func (m *Memory) ReplaceRanges(changes []Change) error {
	if len(changes) == 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	spans := make([]span, 0, len(changes))
	for _, c := range changes {
		start, err := offsetAt(m.text, c.Range.Start.Line, c.Range.Start.Column)
		if err != nil {
			return err
		}
		end, err := offsetAt(m.text, c.Range.End.Line, c.Range.End.Column)
		if err != nil {
			return err
		}
		if end < start {
			return ErrStaleRange
		}
		spans = append(spans, span{start: start, end: end, newText: c.NewText})
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	for i := 1; i < len(spans); i++ {
		if spans[i].start < spans[i-1].end {
			return ErrStaleRange
		}
	}

	// Apply back-to-front so earlier offsets stay valid.
	var sb strings.Builder
	text := m.text
	for i := len(spans) - 1; i >= 0; i-- {
		sb.Reset()
		sb.WriteString(text[:spans[i].start])
		sb.WriteString(spans[i].newText)
		sb.WriteString(text[spans[i].end:])
		text = sb.String()
	}

	m.text = text
	m.version++
	return nil
}
