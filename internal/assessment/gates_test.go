package assessment

import "testing"

func sessionAt(n, active int, mode Mode) *Session {
	children, _ := questions(n)
	s := newSession(children)
	s.cursor.JumpTo(active)
	s.Mode = mode
	return s
}

func TestComputeGatesLive(t *testing.T) {
	tests := []struct {
		name     string
		active   int
		answered bool
		attempts AttemptState
		want     UiGateState
	}{
		{
			name:   "fresh step",
			active: 0,
			want: UiGateState{
				Submit:   Control{Visible: true, Enabled: true},
				Next:     Control{Visible: true},
				TryAgain: Control{Enabled: true},
			},
		},
		{
			name:     "answered step",
			active:   0,
			answered: true,
			want: UiGateState{
				Submit:   Control{Visible: true},
				Next:     Control{Visible: true, Enabled: true},
				Review:   Control{Enabled: true},
				TryAgain: Control{Enabled: true},
			},
		},
		{
			name:   "last step",
			active: 2,
			want: UiGateState{
				Submit:   Control{Visible: true, Enabled: true},
				Review:   Control{Visible: true},
				TryAgain: Control{Enabled: true},
			},
		},
		{
			name:     "attempts exhausted",
			active:   1,
			attempts: AttemptState{MaxAttempts: 1, NumAttempts: 1},
			want: UiGateState{
				Submit:     Control{Visible: true},
				Next:       Control{Visible: true, Enabled: true},
				Review:     Control{Visible: true, Enabled: true},
				ReviewLink: Control{Visible: true, Enabled: true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sessionAt(3, tt.active, ModeLive)
			s.Answered = tt.answered
			if got := ComputeGates(s, tt.attempts, GradeState{}); got != tt.want {
				t.Errorf("ComputeGates() =\n%+v\nwant\n%+v", got, tt.want)
			}
		})
	}
}

func TestComputeGatesSubmitBlockers(t *testing.T) {
	blockers := map[string]func(s *Session){
		"invalid":    func(s *Session) { s.Valid = false },
		"submitting": func(s *Session) { s.Submitting = true },
		"rejected":   func(s *Session) { s.Rejected = true },
	}
	for name, block := range blockers {
		s := sessionAt(3, 0, ModeLive)
		s.Valid = true
		block(s)
		if ComputeGates(s, AttemptState{}, GradeState{}).Submit.Enabled {
			t.Errorf("%s: submit enabled", name)
		}
	}
}

func TestComputeGatesReview(t *testing.T) {
	exhausted := AttemptState{MaxAttempts: 1, NumAttempts: 1, ExtendedFeedback: true}

	g := ComputeGates(sessionAt(3, 1, ModeReview), exhausted, GradeState{})
	if g.Submit != (Control{Visible: true}) {
		t.Errorf("Submit = %+v, want visible and disabled", g.Submit)
	}
	if g.Next != (Control{Visible: true, Enabled: true}) {
		t.Errorf("Next = %+v, want usable", g.Next)
	}
	if g.Review != (Control{}) {
		t.Errorf("Review = %+v, want hidden", g.Review)
	}
	if !g.ReviewLink.Usable() || g.TryAgain.Visible || !g.EnableExtended {
		t.Errorf("ReviewLink=%+v TryAgain=%+v EnableExtended=%v", g.ReviewLink, g.TryAgain, g.EnableExtended)
	}

	g = ComputeGates(sessionAt(3, 2, ModeReview), exhausted, GradeState{})
	if g.Next.Visible {
		t.Error("Next visible on the last step")
	}
}

func TestComputeGatesGradeShown(t *testing.T) {
	s := sessionAt(3, 3, ModeLive)
	s.GradeShown = true
	grade := GradeState{AssessmentMessage: "Keep going"}

	g := ComputeGates(s, AttemptState{MaxAttempts: 2, NumAttempts: 1}, grade)
	if g.TryAgain != (Control{Visible: true, Enabled: true}) {
		t.Errorf("TryAgain = %+v, want usable", g.TryAgain)
	}
	if !g.ShowMessage || g.Submit.Visible || g.Next.Visible {
		t.Errorf("ShowMessage=%v Submit=%+v Next=%+v", g.ShowMessage, g.Submit, g.Next)
	}

	g = ComputeGates(s, AttemptState{MaxAttempts: 2, NumAttempts: 2}, grade)
	if g.TryAgain != (Control{Visible: true}) {
		t.Errorf("TryAgain = %+v, want visible and disabled", g.TryAgain)
	}
	if g.ShowMessage {
		t.Error("message shown with no attempts left")
	}
}
