package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	core "github.com/abhisek/assessly/internal/assessment"
	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/transport"
	"github.com/abhisek/assessly/internal/ui/components"
	"github.com/abhisek/assessly/internal/ui/theme"
	"github.com/abhisek/assessly/internal/units"
)

// outcomes orders the breakdown sections.
var outcomes = []transport.Completion{
	transport.CompletionCorrect,
	transport.CompletionPartial,
	transport.CompletionIncorrect,
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if s.errMsg != "" {
		return components.Center(theme.Incorrect.Render(s.errMsg), width, height)
	}
	if s.ctrl == nil {
		return components.Center(theme.Hint.Render("Loading your progress..."), width, height)
	}
	if s.ctrl.Session().GradeShown {
		return components.Center(components.Card(s.renderGrade(cw-6), cw), width, height)
	}
	return components.Center(components.Card(s.renderStep(cw-6), cw), width, height)
}

func (s *Screen) renderStep(width int) string {
	sess := s.ctrl.Session()
	g := s.ctrl.Gates()
	child, ok := sess.Current()
	if !ok {
		return theme.Hint.Render("Nothing to show.")
	}

	var b strings.Builder
	done, total := s.position()
	b.WriteString(components.NewStepProgress(done, total, width).View())
	b.WriteString("\n")
	if sess.Mode == core.ModeReview {
		b.WriteString(theme.Subtitle.Render("Reviewing a graded answer"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, m := range s.context() {
		b.WriteString(m.View(width))
		b.WriteString("\n\n")
	}
	if u, ok := child.Unit.(units.Unit); ok {
		b.WriteString(u.View(width))
	}
	b.WriteString("\n\n")

	if mark := theme.Mark(g.Checkmark); mark != "" {
		b.WriteString(mark + "  ")
	}
	switch {
	case sess.Submitting:
		b.WriteString(theme.Hint.Render("Grading..."))
	case sess.Rejected && sess.Mode == core.ModeLive:
		b.WriteString(theme.Incorrect.Render("This answer was not accepted."))
	case s.ctrl.Err() != nil:
		b.WriteString(theme.Incorrect.Render("Grading failed: " + s.ctrl.Err().Error()))
	}
	if msg := s.ctrl.Grade().ReviewMessage; sess.Mode == core.ModeReview && msg != "" {
		b.WriteString("\n" + theme.Hint.Render(msg))
	}
	b.WriteString("\n\n")

	b.WriteString(components.ButtonRow(
		components.Button{Key: "⏎", Label: "Submit", Visible: g.Submit.Visible, Enabled: g.Submit.Enabled},
		components.Button{Key: "n", Label: "Next", Visible: g.Next.Visible, Enabled: g.Next.Enabled},
		components.Button{Key: "r", Label: "Review", Visible: g.Review.Visible, Enabled: g.Review.Enabled},
		components.Button{Key: "r", Label: "Grade", Visible: g.ReviewLink.Visible && !g.Review.Visible, Enabled: g.ReviewLink.Enabled},
	))
	return b.String()
}

func (s *Screen) renderGrade(width int) string {
	g := s.ctrl.Gates()
	grade := s.ctrl.Grade()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Your grade"))
	b.WriteString("\n\n")

	if s.scored {
		b.WriteString(components.NewScoreBar(grade.Score, width).View())
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %d correct   %s %d partial   %s %d incorrect",
			theme.Mark(transport.CompletionCorrect), grade.CorrectAnswer,
			theme.Mark(transport.CompletionPartial), grade.PartiallyCorrectAnswer,
			theme.Mark(transport.CompletionIncorrect), grade.IncorrectAnswer,
		))
	} else if s.completed {
		b.WriteString(theme.Body.Render("You have completed this assessment."))
	}
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(attemptsLine(s.ctrl.Attempts())))
	b.WriteString("\n")

	if g.ShowMessage {
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(width).Render(grade.AssessmentMessage))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.renderBreakdown(g.EnableExtended, width))
	b.WriteString("\n\n")

	b.WriteString(components.ButtonRow(
		components.Button{Key: "t", Label: "Try again", Visible: g.TryAgain.Visible, Enabled: g.TryAgain.Enabled},
	))
	if err := s.ctrl.Err(); err != nil {
		b.WriteString("\n" + theme.Incorrect.Render(err.Error()))
	}
	return b.String()
}

// renderBreakdown lists the graded questions by outcome. Without extended
// feedback only a placeholder is shown.
func (s *Screen) renderBreakdown(enabled bool, width int) string {
	if !enabled {
		return theme.Hint.Render(".")
	}
	def := s.opts.Definition
	var sections []string
	for _, o := range outcomes {
		answers := s.ctrl.Breakdown(o)
		if len(answers) == 0 {
			continue
		}
		lines := []string{theme.Subtitle.Render(theme.OutcomeLabel(o))}
		for _, a := range answers {
			label := a.ID
			if i := def.Index(a.ID); i >= 0 && def.Steps[i].Question != "" {
				label = def.Steps[i].Question
			}
			line := fmt.Sprintf("[%d] %s", a.Number, label)
			lines = append(lines, lipgloss.NewStyle().MaxWidth(width).Render(line))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	if len(sections) == 0 {
		return theme.Hint.Render(".")
	}
	return strings.Join(sections, "\n\n")
}

// position counts displayable steps up to and including the active one.
func (s *Screen) position() (done, total int) {
	sess := s.ctrl.Session()
	for i := range sess.Len() {
		child, _ := sess.Child(i)
		if !child.Displayable {
			continue
		}
		total++
		if i <= sess.ActiveIndex() {
			done++
		}
	}
	return done, total
}

// context returns the message steps directly preceding the active step.
func (s *Screen) context() []units.Unit {
	sess := s.ctrl.Session()
	var out []units.Unit
	for i := sess.ActiveIndex() - 1; i >= 0; i-- {
		child, _ := sess.Child(i)
		if child.Displayable {
			break
		}
		if u, ok := child.Unit.(units.Unit); ok && u.Step().Kind == content.KindMessage {
			out = append([]units.Unit{u}, out...)
		}
	}
	return out
}

func attemptsLine(a core.AttemptState) string {
	if a.MaxAttempts == 0 {
		return fmt.Sprintf("Attempts: %d (unlimited)", a.NumAttempts)
	}
	return fmt.Sprintf("Attempts: %d of %d", a.NumAttempts, a.MaxAttempts)
}
