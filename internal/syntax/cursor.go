package syntax

// Cursor walks a tree in pre-order, children left-to-right, using an
// explicit work stack so traversal depth never grows the call stack.
type Cursor struct {
	stack   []*Node
	current *Node
	skip    bool
}

// Next advances to the next node in pre-order and returns it, or nil when
// the walk is exhausted. Children of the previously returned node are
// scheduled unless SkipChildren was called.
func (c *Cursor) Next() *Node {
	if c.current != nil && !c.skip {
		for i := len(c.current.children) - 1; i >= 0; i-- {
			c.stack = append(c.stack, c.current.children[i])
		}
	}
	c.skip = false

	if len(c.stack) == 0 {
		c.current = nil
		return nil
	}
	n := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.current = n
	return n
}

// SkipChildren prevents the children of the most recently returned node
// from being visited.
func (c *Cursor) SkipChildren() {
	c.skip = true
}
