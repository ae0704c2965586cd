package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/assessly/internal/ui/theme"
)

// Option is one entry of a ChoiceList.
type Option struct {
	Value string
	Label string
}

// Mark is the grading mark shown next to an option.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkIncorrect
)

// ChoiceList is a single or multiple selection list. Up/down move the
// cursor and space picks the option under it.
type ChoiceList struct {
	Options  []Option
	Multi    bool
	Cursor   int
	Locked   bool
	picked   map[string]bool
	marks    map[string]Mark
	ordering []string
}

// NewChoiceList creates a list with nothing picked.
func NewChoiceList(options []Option, multi bool) ChoiceList {
	order := make([]string, len(options))
	for i, o := range options {
		order[i] = o.Value
	}
	return ChoiceList{
		Options:  options,
		Multi:    multi,
		picked:   make(map[string]bool),
		marks:    make(map[string]Mark),
		ordering: order,
	}
}

// Update handles keyboard navigation and picking. It reports whether the
// picked set changed.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || c.Locked {
		return c, false
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", " ", "x":
		if len(c.Options) == 0 {
			return c, false
		}
		c.toggle(c.Options[c.Cursor].Value)
		return c, true
	}
	return c, false
}

func (c *ChoiceList) toggle(value string) {
	if c.Multi {
		c.picked[value] = !c.picked[value]
		return
	}
	clear(c.picked)
	c.picked[value] = true
}

// Pick replaces the picked set.
func (c *ChoiceList) Pick(values ...string) {
	clear(c.picked)
	for _, v := range values {
		c.picked[v] = true
	}
}

// Picked returns the picked values in option order.
func (c ChoiceList) Picked() []string {
	var out []string
	for _, v := range c.ordering {
		if c.picked[v] {
			out = append(out, v)
		}
	}
	return out
}

// SetMark marks one option. MarkNone clears it.
func (c *ChoiceList) SetMark(value string, m Mark) {
	if m == MarkNone {
		delete(c.marks, value)
		return
	}
	c.marks[value] = m
}

// ClearMarks removes every mark.
func (c *ChoiceList) ClearMarks() {
	clear(c.marks)
}

// View renders the list.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, o := range c.Options {
		cursor := "  "
		if i == c.Cursor && !c.Locked {
			cursor = "▸ "
		}
		box := "( ) "
		if c.Multi {
			box = "[ ] "
		}
		if c.picked[o.Value] {
			box = "(•) "
			if c.Multi {
				box = "[x] "
			}
		}

		style := theme.Unselected
		if i == c.Cursor && !c.Locked {
			style = theme.Selected
		}
		line := style.Render(cursor + box + o.Label)
		switch c.marks[o.Value] {
		case MarkCorrect:
			line += " " + theme.Correct.Render("✓")
		case MarkIncorrect:
			line += " " + theme.Incorrect.Render("✗")
		}
		if c.Locked && !c.picked[o.Value] && c.marks[o.Value] == MarkNone {
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render(cursor + box + o.Label)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
