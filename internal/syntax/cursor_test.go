package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func collectKinds(c *Cursor) []string {
	var kinds []string
	for n := c.Next(); n != nil; n = c.Next() {
		kinds = append(kinds, n.Kind())
	}
	return kinds
}

func TestCursorPreOrder(t *testing.T) {
	tree := parse("a {\n  b = 1\n}\n")

	got := collectKinds(tree.Walk())
	want := []string{KindFile, KindBlock, KindIdent, KindBody, KindAttribute, KindIdent, KindExpr}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("traversal order mismatch (-want +got):\n%s", diff)
	}
}

func TestCursorSkipChildren(t *testing.T) {
	tree := parse("a {\n  b = 1\n}\nc {\n  d = 2\n}\n")

	var kinds []string
	c := tree.Walk()
	for n := c.Next(); n != nil; n = c.Next() {
		kinds = append(kinds, n.Kind())
		if n.Kind() == KindBlock {
			c.SkipChildren()
		}
	}
	assert.Equal(t, []string{KindFile, KindBlock, KindBlock}, kinds)
}

func TestCursorEmptyTree(t *testing.T) {
	tree := parse("")
	c := tree.Walk()
	assert.Equal(t, KindFile, c.Next().Kind())
	assert.Nil(t, c.Next())
	assert.Nil(t, c.Next(), "cursor stays exhausted")
}
