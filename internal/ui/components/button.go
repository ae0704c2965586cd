package components

import (
	"strings"

	"github.com/abhisek/assessly/internal/ui/theme"
)

// Button is a labelled control with its key binding.
type Button struct {
	Key     string
	Label   string
	Visible bool
	Enabled bool
}

// View renders the button, or nothing when it is hidden.
func (b Button) View() string {
	if !b.Visible {
		return ""
	}
	label := b.Label
	if b.Key != "" {
		label = b.Key + " " + label
	}
	if b.Enabled {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}

// ButtonRow renders the visible buttons side by side.
func ButtonRow(buttons ...Button) string {
	views := make([]string, 0, len(buttons))
	for _, b := range buttons {
		if v := b.View(); v != "" {
			views = append(views, v)
		}
	}
	return strings.Join(views, "  ")
}
