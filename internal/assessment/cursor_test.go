package assessment

import (
	"slices"
	"testing"
)

func refs(displayable ...bool) []ChildRef {
	out := make([]ChildRef, len(displayable))
	for i, d := range displayable {
		out[i] = ChildRef{Displayable: d}
	}
	return out
}

func TestCursorAdvanceMonotonic(t *testing.T) {
	layouts := [][]bool{
		{true, true, true},
		{false, true, false, true},
		{false, false, false},
		{true, false, false},
		{true},
		{},
	}
	for _, layout := range layouts {
		c := NewCursor(refs(layout...))
		prev := c.Active()
		for i := 0; i < len(layout)+3; i++ {
			c.Advance()
			if c.Active() < prev || c.Active() > c.Len() {
				t.Fatalf("layout %v: active moved from %d to %d (len %d)", layout, prev, c.Active(), c.Len())
			}
			prev = c.Active()
		}
		if !c.IsDone() {
			t.Errorf("layout %v: cursor not done after advancing past the end", layout)
		}
	}
}

func TestCursorAdvanceSkipsNonDisplayable(t *testing.T) {
	c := NewCursor(refs(false, false, true, false, true))

	skipped := c.Advance()
	if c.Active() != 2 || !slices.Equal(skipped, []int{0, 1}) {
		t.Fatalf("first advance: active=%d skipped=%v, want 2 [0 1]", c.Active(), skipped)
	}

	skipped = c.Advance()
	if c.Active() != 4 || !slices.Equal(skipped, []int{3}) {
		t.Fatalf("second advance: active=%d skipped=%v, want 4 [3]", c.Active(), skipped)
	}
	if !c.IsLast() {
		t.Error("expected the last child to be active")
	}

	c.Advance()
	if !c.IsDone() {
		t.Error("expected cursor to be done")
	}
}

func TestCursorAdvanceSettlesOnLast(t *testing.T) {
	c := NewCursor(refs(true, false, false))
	c.Advance()
	if c.Active() != 0 {
		t.Fatalf("active = %d, want 0", c.Active())
	}

	c.Advance()
	if c.Active() != 2 {
		t.Errorf("active = %d, want 2", c.Active())
	}
	if !c.IsLast() || c.IsDone() {
		t.Errorf("IsLast=%v IsDone=%v, want true false", c.IsLast(), c.IsDone())
	}
}

func TestCursorJumpTo(t *testing.T) {
	c := NewCursor(refs(true, false, true))
	c.JumpTo(1)
	if c.Active() != 1 {
		t.Errorf("JumpTo(1): active = %d", c.Active())
	}

	c.JumpTo(-7)
	if c.Active() != BeforeStart {
		t.Errorf("JumpTo(-7): active = %d, want %d", c.Active(), BeforeStart)
	}

	c.JumpTo(10)
	if !c.IsDone() {
		t.Error("JumpTo(10): expected cursor to be done")
	}

	c.Reset()
	if c.Active() != BeforeStart {
		t.Errorf("Reset: active = %d, want %d", c.Active(), BeforeStart)
	}
}

func TestCursorIndexOf(t *testing.T) {
	children, _ := questions(3)
	c := NewCursor(children)
	tests := map[string]int{"q2": 1, "missing": -1, "": -1}
	for name, want := range tests {
		if got := c.IndexOf(name); got != want {
			t.Errorf("IndexOf(%q) = %d, want %d", name, got, want)
		}
	}
}
