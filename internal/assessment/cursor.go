package assessment

// BeforeStart is the cursor position before the first child.
const BeforeStart = -1

// Cursor tracks the active child within the ordered sequence.
// Positions run from BeforeStart through len(children), which means done.
type Cursor struct {
	children []ChildRef
	active   int
}

// NewCursor creates a cursor positioned before the first child.
func NewCursor(children []ChildRef) *Cursor {
	return &Cursor{children: children, active: BeforeStart}
}

// Active returns the active index.
func (c *Cursor) Active() int {
	return c.active
}

// Len returns the number of children, displayable or not.
func (c *Cursor) Len() int {
	return len(c.children)
}

// IsLast reports whether the last child is active.
func (c *Cursor) IsLast() bool {
	return c.active == len(c.children)-1
}

// IsDone reports whether every child has been traversed.
func (c *Cursor) IsDone() bool {
	return c.active == len(c.children)
}

// Current returns the active child, if the cursor is on one.
func (c *Cursor) Current() (ChildRef, bool) {
	if c.active < 0 || c.active >= len(c.children) {
		return ChildRef{}, false
	}
	return c.children[c.active], true
}

// Child returns the child at index i.
func (c *Cursor) Child(i int) (ChildRef, bool) {
	if i < 0 || i >= len(c.children) {
		return ChildRef{}, false
	}
	return c.children[i], true
}

// IndexOf returns the index of the named child, or -1.
func (c *Cursor) IndexOf(name string) int {
	if name == "" {
		return -1
	}
	for i, ch := range c.children {
		if ch.Name == name {
			return i
		}
	}
	return -1
}

// Advance moves forward one position and then past any children that are not
// displayable, returning the indices it skipped. When none remain it stops on
// the last child rather than overrunning; callers check IsDone separately.
// Advancing a done cursor is a no-op.
func (c *Cursor) Advance() []int {
	if c.active >= len(c.children) {
		return nil
	}
	var skipped []int
	c.active++
	for c.active < len(c.children)-1 && !c.children[c.active].Displayable {
		skipped = append(skipped, c.active)
		c.active++
	}
	return skipped
}

// JumpTo sets the active index directly, without skipping. Review only.
func (c *Cursor) JumpTo(i int) {
	switch {
	case i < BeforeStart:
		i = BeforeStart
	case i > len(c.children):
		i = len(c.children)
	}
	c.active = i
}

// Reset moves the cursor back before the first child.
func (c *Cursor) Reset() {
	c.active = BeforeStart
}

// seek positions the cursor so the next Advance lands on the child after
// completed steps.
func (c *Cursor) seek(step int) {
	c.JumpTo(step - 1)
}
