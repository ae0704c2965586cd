// Package units implements the question units an assessment is made of.
// Each unit exposes the capabilities the assessment controller looks for
// and renders itself for the assessment screen.
package units

import (
	"encoding/json"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/assessly/internal/assessment"
	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/transport"
	"github.com/abhisek/assessly/internal/ui/theme"
)

// Unit is what the assessment screen needs from every unit.
type Unit interface {
	// Step returns the definition the unit was built from.
	Step() content.Step

	// HandleKey feeds a key to the unit. It reports whether the learner's
	// answer changed.
	HandleKey(msg tea.KeyMsg) (tea.Cmd, bool)

	// View renders the unit at the given width.
	View(width int) string
}

// Resetter is implemented by units that hold an answer. Reset clears it
// for a new attempt.
type Resetter interface {
	Reset()
}

// Build creates the units of a definition in step order.
func Build(def *content.Definition) []assessment.ChildRef {
	refs := make([]assessment.ChildRef, len(def.Steps))
	for i, step := range def.Steps {
		refs[i] = assessment.ChildRef{
			Name:        step.Name,
			Displayable: step.Displayable(),
			Unit:        New(step),
		}
	}
	return refs
}

// New creates the unit for one step.
func New(step content.Step) Unit {
	switch step.Kind {
	case content.KindMCQ:
		return NewMCQ(step)
	case content.KindMRQ:
		return NewMRQ(step)
	case content.KindAnswer:
		return NewAnswer(step)
	case content.KindHTML:
		return NewHTML(step)
	default:
		return NewMessage(step)
	}
}

// feedback is the grading state every question unit shows.
type feedback struct {
	review  bool
	result  transport.ChildResult
	graded  bool
	attempt assessment.ResultOptions
}

func (f *feedback) display(opts assessment.DisplayOptions) {
	f.review = opts.Review
	f.attempt = opts.Attempts
}

func (f *feedback) clean() {
	f.result = transport.ChildResult{}
	f.graded = false
}

// apply decodes a grading result. Malformed results are ignored.
func (f *feedback) apply(raw json.RawMessage, opts assessment.ResultOptions) bool {
	var res transport.ChildResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return false
	}
	f.result = res
	f.graded = true
	f.attempt = opts
	return true
}

func (f *feedback) view() string {
	if !f.graded {
		return ""
	}
	var b strings.Builder
	b.WriteString(theme.Outcome(f.result.Status))
	for _, tip := range f.result.Tips {
		b.WriteString("\n" + theme.Tip.Render("• "+tip))
	}
	if f.result.Message != "" {
		b.WriteString("\n" + theme.Hint.Render(f.result.Message))
	}
	return b.String()
}

func wrap(s string, width int) string {
	return theme.Body.Width(max(width, 10)).Render(s)
}
