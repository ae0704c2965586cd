package units

import (
	"encoding/json"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/assessly/internal/assessment"
	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/ui/components"
	"github.com/abhisek/assessly/internal/ui/theme"
)

const answerCharLimit = 500

// Answer is a free text question.
type Answer struct {
	step  content.Step
	input components.TextInput
	fb    feedback
}

var (
	_ assessment.SubmissionProducer = (*Answer)(nil)
	_ assessment.Validator          = (*Answer)(nil)
	_ assessment.SubmitHandler      = (*Answer)(nil)
	_ assessment.ReviewHandler      = (*Answer)(nil)
	_ assessment.Cleaner            = (*Answer)(nil)
	_ assessment.Displayer          = (*Answer)(nil)
)

// NewAnswer creates a free text question.
func NewAnswer(step content.Step) *Answer {
	return &Answer{
		step:  step,
		input: components.NewTextInput("Type your answer", step.MinChars, answerCharLimit),
	}
}

func (a *Answer) Step() content.Step { return a.step }

func (a *Answer) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if a.fb.review {
		return nil, false
	}
	var cmd tea.Cmd
	var changed bool
	a.input, cmd, changed = a.input.Update(msg)
	return cmd, changed
}

// Value returns the typed answer.
func (a *Answer) Value() string { return a.input.Value() }

func (a *Answer) ProduceSubmission() any {
	return strings.TrimSpace(a.input.Value())
}

// Validate requires the minimum number of characters.
func (a *Answer) Validate() assessment.Validity {
	if !a.input.LongEnough() {
		return assessment.Invalid
	}
	return assessment.Valid
}

// Display focuses the input for answering, or blurs it for review.
func (a *Answer) Display(opts assessment.DisplayOptions) {
	a.fb.display(opts)
	if opts.Review {
		a.input.Blur()
		return
	}
	a.input.Focus()
}

func (a *Answer) Clean() {
	a.fb.clean()
}

// Reset empties the input.
func (a *Answer) Reset() {
	a.input.SetValue("")
	a.fb.clean()
}

func (a *Answer) HandleSubmit(result json.RawMessage, opts assessment.ResultOptions) {
	if !a.fb.apply(result, opts) {
		return
	}
	var text string
	if json.Unmarshal(a.fb.result.Submission, &text) == nil {
		a.input.SetValue(text)
	}
}

func (a *Answer) HandleReview(result json.RawMessage, opts assessment.ResultOptions) {
	a.HandleSubmit(result, opts)
	a.input.Blur()
}

func (a *Answer) View(width int) string {
	var b strings.Builder
	b.WriteString(wrap(theme.Question.Render(a.step.Question), width))
	b.WriteString("\n\n")
	b.WriteString(a.input.View())
	if a.step.MinChars > 0 && !a.fb.review {
		b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf("At least %d characters (%d so far)", a.step.MinChars, a.input.Length())))
	}
	if fb := a.fb.view(); fb != "" {
		b.WriteString("\n\n" + fb)
	}
	return b.String()
}
