package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chosenMsg string

func testMenu() Menu {
	item := func(label string) MenuItem {
		return MenuItem{Label: label, Action: func() tea.Cmd {
			return func() tea.Msg { return chosenMsg(label) }
		}}
	}
	return NewMenu([]MenuItem{item("first"), item("second"), {Label: "inert"}})
}

func TestMenuWraps(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 2, m.Cursor)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 0, m.Cursor)
}

func TestMenuDigitChooses(t *testing.T) {
	m := testMenu()
	m, cmd := m.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	require.NotNil(t, cmd)
	assert.Equal(t, chosenMsg("second"), cmd())
	assert.Equal(t, 1, m.Cursor)

	_, cmd = m.Update(tea.KeyPressMsg{Code: '7', Text: "7"})
	assert.Nil(t, cmd)
}

func TestMenuItemWithoutAction(t *testing.T) {
	m := testMenu()
	m.Cursor = 2
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestMenuView(t *testing.T) {
	view := ansi.Strip(testMenu().View())
	assert.Contains(t, view, "› 1. first")
	assert.Contains(t, view, "  2. second")
}

func TestChoiceListSingle(t *testing.T) {
	c := NewChoiceList([]Option{{"a", "A"}, {"b", "B"}}, false)
	c, changed := c.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	assert.True(t, changed)
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	assert.Equal(t, []string{"b"}, c.Picked())
}

func TestChoiceListMulti(t *testing.T) {
	c := NewChoiceList([]Option{{"a", "A"}, {"b", "B"}, {"c", "C"}}, true)
	c.Pick("c", "a")
	assert.Equal(t, []string{"a", "c"}, c.Picked())

	c.Locked = true
	_, changed := c.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	assert.False(t, changed)
}

func TestChoiceListMarks(t *testing.T) {
	c := NewChoiceList([]Option{{"a", "A"}, {"b", "B"}}, false)
	c.SetMark("a", MarkCorrect)
	c.SetMark("b", MarkIncorrect)
	view := ansi.Strip(c.View())
	assert.Contains(t, view, "A ✓")
	assert.Contains(t, view, "B ✗")

	c.ClearMarks()
	assert.NotContains(t, ansi.Strip(c.View()), "✓")
}

func TestTextInputLength(t *testing.T) {
	in := NewTextInput("", 5, 0)
	in.SetValue("  abc  ")
	assert.Equal(t, 3, in.Length())
	assert.False(t, in.LongEnough())
	in.SetValue("abcdef")
	assert.True(t, in.LongEnough())

	empty := NewTextInput("", 0, 0)
	assert.False(t, empty.LongEnough())
}

func TestScoreBar(t *testing.T) {
	view := ansi.Strip(NewScoreBar(75, 40).View())
	assert.Contains(t, view, "Score")
	assert.Contains(t, view, "75%")
}
