package units

import (
	"encoding/json"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/assessly/internal/assessment"
	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/transport"
	"github.com/abhisek/assessly/internal/ui/components"
	"github.com/abhisek/assessly/internal/ui/theme"
)

// Choice is a single choice (MCQ) or multiple response (MRQ) question.
type Choice struct {
	step content.Step
	list components.ChoiceList
	fb   feedback
}

var (
	_ assessment.SubmissionProducer = (*Choice)(nil)
	_ assessment.Validator          = (*Choice)(nil)
	_ assessment.SubmitHandler      = (*Choice)(nil)
	_ assessment.ReviewHandler      = (*Choice)(nil)
	_ assessment.Displayer          = (*Choice)(nil)
	_ assessment.Cleaner            = (*Choice)(nil)
)

// NewMCQ creates a single choice question.
func NewMCQ(step content.Step) *Choice {
	return newChoice(step, false)
}

// NewMRQ creates a multiple response question.
func NewMRQ(step content.Step) *Choice {
	return newChoice(step, true)
}

func newChoice(step content.Step, multi bool) *Choice {
	opts := make([]components.Option, len(step.Choices))
	for i, c := range step.Choices {
		opts[i] = components.Option{Value: c.Value, Label: c.Label}
	}
	return &Choice{step: step, list: components.NewChoiceList(opts, multi)}
}

func (c *Choice) Step() content.Step { return c.step }

func (c *Choice) multi() bool { return c.list.Multi }

// Picked returns the picked values in option order.
func (c *Choice) Picked() []string { return c.list.Picked() }

func (c *Choice) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	var changed bool
	c.list, changed = c.list.Update(msg)
	return nil, changed
}

// ProduceSubmission returns the picked value, or the picked values of a
// multiple response question.
func (c *Choice) ProduceSubmission() any {
	picked := c.list.Picked()
	if c.multi() {
		if picked == nil {
			return []string{}
		}
		return picked
	}
	if len(picked) == 0 {
		return ""
	}
	return picked[0]
}

// Validate requires at least one pick.
func (c *Choice) Validate() assessment.Validity {
	if len(c.list.Picked()) == 0 {
		return assessment.Invalid
	}
	return assessment.Valid
}

func (c *Choice) Display(opts assessment.DisplayOptions) {
	c.fb.display(opts)
	c.list.Locked = opts.Review
}

func (c *Choice) Clean() {
	c.fb.clean()
	c.list.ClearMarks()
	c.list.Locked = false
}

// Reset unpicks every option.
func (c *Choice) Reset() {
	c.list = components.NewChoiceList(c.list.Options, c.list.Multi)
	c.fb.clean()
}

func (c *Choice) HandleSubmit(result json.RawMessage, opts assessment.ResultOptions) {
	if !c.fb.apply(result, opts) {
		return
	}
	c.restore()
	c.markPicked()
}

// HandleReview shows a past answer with its marks and locks the list.
func (c *Choice) HandleReview(result json.RawMessage, opts assessment.ResultOptions) {
	c.HandleSubmit(result, opts)
	c.list.Locked = true
}

// restore picks the values of the stored submission.
func (c *Choice) restore() {
	raw := c.fb.result.Submission
	if len(raw) == 0 {
		return
	}
	if c.multi() {
		var values []string
		if json.Unmarshal(raw, &values) == nil {
			c.list.Pick(values...)
		}
		return
	}
	var value string
	if json.Unmarshal(raw, &value) == nil {
		c.list.Pick(value)
	}
}

// markPicked marks each picked option. Single choice marks follow the
// overall status; multiple response options are marked individually.
func (c *Choice) markPicked() {
	c.list.ClearMarks()
	for _, v := range c.list.Picked() {
		mark := components.MarkIncorrect
		if c.multi() {
			for _, k := range c.step.Correct {
				if k == v {
					mark = components.MarkCorrect
				}
			}
		} else if c.fb.result.Status == transport.CompletionCorrect {
			mark = components.MarkCorrect
		}
		c.list.SetMark(v, mark)
	}
}

func (c *Choice) View(width int) string {
	var b strings.Builder
	b.WriteString(wrap(theme.Question.Render(c.step.Question), width))
	b.WriteString("\n\n")
	b.WriteString(c.list.View())
	if fb := c.fb.view(); fb != "" {
		b.WriteString("\n" + fb)
	}
	return b.String()
}
