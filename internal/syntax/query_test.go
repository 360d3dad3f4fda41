package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileQuery(t *testing.T) {
	q, err := CompileQuery(`(file (block) @component)`)
	require.NoError(t, err)
	assert.Equal(t, "component", q.Capture())
}

func TestCompileQueryWithoutCapture(t *testing.T) {
	q, err := CompileQuery(`(file (block))`)
	require.NoError(t, err)
	assert.Equal(t, "", q.Capture())
}

func TestCompileQueryRejectsUnsupportedPatterns(t *testing.T) {
	for _, pattern := range []string{
		"",
		"(file)",
		"(file (block)",
		"(file (block) @)",
		"(file (block) @component) trailing",
		"(file (block (ident)) @x)",
	} {
		_, err := CompileQuery(pattern)
		assert.Error(t, err, "pattern %q", pattern)
	}
}

func TestQueryMatchesInSourceOrder(t *testing.T) {
	tree := parse(`a.one "x" {
}

b.two "y" {
}

c.three {
}
`)
	q := MustCompileQuery(`(file (block) @component)`)
	matches := q.Matches(tree)
	require.Len(t, matches, 3)

	var names []string
	for _, m := range matches {
		names = append(names, m.ChildByField(FieldName).Text())
	}
	assert.Equal(t, []string{"a.one", "b.two", "c.three"}, names)
}

func TestQueryMatchesSkipsNonBlockChildren(t *testing.T) {
	tree := parse("??? junk\na.one {\n}\n")
	q := MustCompileQuery(`(file (block) @component)`)
	matches := q.Matches(tree)
	require.Len(t, matches, 1)
	assert.Equal(t, "a.one", matches[0].ChildByField(FieldName).Text())
}

func TestQueryMatchesNilTree(t *testing.T) {
	q := MustCompileQuery(`(file (block) @component)`)
	assert.Nil(t, q.Matches(nil))
}
