package assessment

import "github.com/abhisek/assessly/internal/transport"

// Mode distinguishes answering from replaying graded answers.
type Mode int

const (
	ModeLive   Mode = iota // Answering questions
	ModeReview             // Read-only replay of a graded step
)

func (m Mode) String() string {
	switch m {
	case ModeLive:
		return "live"
	case ModeReview:
		return "review"
	}
	return "unknown"
}

// Session is the state of one learner's pass through an assessment.
// It is owned and mutated by the Controller only.
type Session struct {
	cursor *Cursor

	// Mode is live while answering and review while replaying.
	Mode Mode

	// Locked is true while page-level navigation is locked.
	Locked bool

	// GradeShown is true while the grade summary replaces the active child.
	GradeShown bool

	// Answered is true once a response for the active step has arrived.
	Answered bool

	// Valid caches the active child's last validation result.
	Valid bool

	// Submitting is true while a submission for the active step is in flight.
	Submitting bool

	// Rejected is true once a response arrived that did not pertain to the
	// active step. The step stays unanswered and cannot be resubmitted.
	Rejected bool

	// Checkmark is the outcome of the last applied grading response.
	Checkmark transport.Completion
}

func newSession(children []ChildRef) *Session {
	return &Session{cursor: NewCursor(children), Valid: true}
}

// ActiveIndex returns the active child index.
func (s *Session) ActiveIndex() int {
	return s.cursor.Active()
}

// Len returns the number of children.
func (s *Session) Len() int {
	return s.cursor.Len()
}

// IsLast reports whether the last child is active.
func (s *Session) IsLast() bool {
	return s.cursor.IsLast()
}

// IsDone reports whether every child has been traversed.
func (s *Session) IsDone() bool {
	return s.cursor.IsDone()
}

// Current returns the active child.
func (s *Session) Current() (ChildRef, bool) {
	return s.cursor.Current()
}

// Child returns the child at index i.
func (s *Session) Child(i int) (ChildRef, bool) {
	return s.cursor.Child(i)
}

// clean drops transient per-display state.
func (s *Session) clean() {
	s.Checkmark = transport.CompletionNone
	s.GradeShown = false
	if ch, ok := s.cursor.Current(); ok {
		ch.clean()
	}
}

// resetStep clears per-step flags when a new child becomes active.
func (s *Session) resetStep() {
	s.Answered = false
	s.Submitting = false
	s.Rejected = false
	s.Valid = true
}
