package components

import (
	"strings"
	"unicode/utf8"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/assessly/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a minimum answer length.
type TextInput struct {
	Model    textinput.Model
	MinChars int
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, minChars, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti, MinChars: minChars}
}

// Focus focuses the input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus so keys are no longer accepted.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Update forwards messages to the wrapped model. It reports whether the
// value changed.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd, bool) {
	before := t.Model.Value()
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd, t.Model.Value() != before
}

// View renders the input with a character counter while it is short.
func (t TextInput) View() string {
	view := t.Model.View()
	if n := t.Length(); t.MinChars > 0 && n < t.MinChars {
		view += " " + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(strings.Repeat("·", min(t.MinChars-n, 20)))
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// Length counts the characters of the trimmed value.
func (t TextInput) Length() int {
	return utf8.RuneCountInString(strings.TrimSpace(t.Model.Value()))
}

// LongEnough reports whether the trimmed value meets the minimum length.
// An empty answer is never long enough.
func (t TextInput) LongEnough() bool {
	return t.Length() >= max(t.MinChars, 1)
}
