// Package theme holds the colors and text styles shared by every screen.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/assessly/internal/transport"
)

var (
	Primary   = lipgloss.Color("#2563EB")
	Secondary = lipgloss.Color("#0EA5E9")
	Accent    = lipgloss.Color("#F97316")
	Text      = lipgloss.Color("#E2E8F0")
	TextDim   = lipgloss.Color("#7C8BA1")
	BgCard    = lipgloss.Color("#172033")
	Border    = lipgloss.Color("#2E3A4F")

	green = lipgloss.Color("#16A34A")
	amber = lipgloss.Color("#D97706")
	red   = lipgloss.Color("#DC2626")
)

func fg(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

var (
	Title    = fg(Primary).Bold(true)
	Subtitle = fg(TextDim)
	Body     = fg(Text)
	Hint     = fg(TextDim).Italic(true)
	Question = fg(Text).Bold(true)
	Tip      = fg(Accent)

	Selected   = fg(Primary).Bold(true)
	Unselected = fg(Text)

	Correct          = fg(green).Bold(true)
	PartiallyCorrect = fg(amber).Bold(true)
	Incorrect        = fg(red).Bold(true)

	ButtonActive   = fg(Text).Background(Primary).Bold(true).Padding(0, 2)
	ButtonInactive = fg(TextDim).Background(BgCard).Padding(0, 2)
)

var outcomes = map[transport.Completion]struct {
	style lipgloss.Style
	mark  string
	label string
}{
	transport.CompletionCorrect:   {Correct, "✓", "Correct"},
	transport.CompletionPartial:   {PartiallyCorrect, "◐", "Partially correct"},
	transport.CompletionIncorrect: {Incorrect, "✗", "Incorrect"},
}

// Mark renders the symbol for a grading outcome. Ungraded steps render empty.
func Mark(c transport.Completion) string {
	o, ok := outcomes[c]
	if !ok {
		return ""
	}
	return o.style.Render(o.mark)
}

// Outcome renders the symbol followed by a label, e.g. "✓ Correct".
func Outcome(c transport.Completion) string {
	o, ok := outcomes[c]
	if !ok {
		return ""
	}
	return o.style.Render(o.mark + " " + o.label)
}

// OutcomeLabel returns the plain label of a grading outcome.
func OutcomeLabel(c transport.Completion) string {
	return outcomes[c].label
}
