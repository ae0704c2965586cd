package units

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/assessly/internal/assessment"
	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/ui/theme"
)

// HTML is content the learner reads and acknowledges by submitting it.
type HTML struct {
	step content.Step
	fb   feedback
}

var (
	_ assessment.SubmissionProducer = (*HTML)(nil)
	_ assessment.Displayer          = (*HTML)(nil)
)

// NewHTML creates a content unit.
func NewHTML(step content.Step) *HTML {
	return &HTML{step: step}
}

func (h *HTML) Step() content.Step { return h.step }

func (h *HTML) HandleKey(tea.KeyMsg) (tea.Cmd, bool) { return nil, false }

// ProduceSubmission acknowledges the content.
func (h *HTML) ProduceSubmission() any { return true }

func (h *HTML) Display(opts assessment.DisplayOptions) { h.fb.display(opts) }

func (h *HTML) View(width int) string {
	out := wrap(h.step.Content, width)
	if !h.fb.review {
		out += "\n\n" + theme.Hint.Render("Submit to continue.")
	}
	return out
}

// Message is content between questions that navigation never stops on.
// The assessment screen shows it above the step that follows it.
type Message struct {
	step content.Step
}

// NewMessage creates a message unit.
func NewMessage(step content.Step) *Message {
	return &Message{step: step}
}

func (m *Message) Step() content.Step { return m.step }

func (m *Message) HandleKey(tea.KeyMsg) (tea.Cmd, bool) { return nil, false }

func (m *Message) View(width int) string {
	return theme.Hint.Width(max(width, 10)).Render(m.step.Content)
}
