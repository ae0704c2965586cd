package assessment

import "github.com/abhisek/assessly/internal/transport"

// Control is the presentation state of one learner control.
type Control struct {
	Visible bool
	Enabled bool
}

// Usable reports whether the learner can act on the control.
func (c Control) Usable() bool {
	return c.Visible && c.Enabled
}

// UiGateState is everything the presentation layer needs to decide which
// controls to show and whether they respond.
type UiGateState struct {
	Submit     Control
	Next       Control
	Review     Control
	ReviewLink Control
	TryAgain   Control

	// EnableExtended gates the per-question breakdown on the grade summary.
	EnableExtended bool

	// ShowMessage gates the assessment message on the grade summary.
	ShowMessage bool

	// Checkmark is the outcome mark for the active step.
	Checkmark transport.Completion
}

// ComputeGates derives control state from the session and attempt counters.
func ComputeGates(s *Session, a AttemptState, g GradeState) UiGateState {
	noMore := a.NoMoreAttempts()
	gs := UiGateState{
		EnableExtended: a.EnableExtended(),
		Checkmark:      s.Checkmark,
		TryAgain:       Control{Enabled: !noMore},
	}

	if s.GradeShown {
		gs.TryAgain.Visible = true
		gs.ShowMessage = g.AssessmentMessage != "" && !noMore
		return gs
	}

	if _, ok := s.Current(); !ok {
		return gs
	}
	last := s.IsLast()

	if s.Mode == ModeReview {
		// Answers are frozen; only browsing is possible.
		gs.Submit = Control{Visible: true}
		gs.Next = Control{Visible: !last, Enabled: !last}
		gs.ReviewLink = Control{Visible: noMore, Enabled: noMore}
		return gs
	}

	gs.Submit = Control{
		Visible: true,
		Enabled: !noMore && s.Valid && !s.Answered && !s.Submitting && !s.Rejected,
	}
	gs.Next = Control{Visible: !last, Enabled: s.Answered || noMore}
	gs.Review = Control{Visible: last || noMore, Enabled: s.Answered || noMore}
	gs.ReviewLink = Control{Visible: noMore, Enabled: noMore}
	return gs
}
