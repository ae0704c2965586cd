// Package assessment is the screen a learner takes an assessment on.
package assessment

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	core "github.com/abhisek/assessly/internal/assessment"
	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/screen"
	"github.com/abhisek/assessly/internal/telemetry"
	"github.com/abhisek/assessly/internal/transport"
	"github.com/abhisek/assessly/internal/ui/layout"
	"github.com/abhisek/assessly/internal/units"
)

// Options configures the assessment screen.
type Options struct {
	Definition *content.Definition
	Transport  transport.Transport

	// Publisher receives navigation telemetry. Optional.
	Publisher telemetry.Publisher

	// Notifier is told about navigation lock changes in addition to the
	// screen itself. Optional.
	Notifier telemetry.Notifier

	Logger *zap.Logger

	// RequestTimeout bounds each grading request. Zero means no timeout.
	RequestTimeout time.Duration
}

// stateLoadedMsg carries the learner's stored progress.
type stateLoadedMsg struct {
	Resp *transport.StateResponse
	Err  error
}

// Screen implements screen.Screen for one assessment.
type Screen struct {
	opts     Options
	log      *zap.Logger
	children []core.ChildRef
	ctrl     *core.Controller

	navLocked bool
	scored    bool
	completed bool
	errMsg    string
}

var (
	_ screen.Screen           = (*Screen)(nil)
	_ screen.KeyHintProvider  = (*Screen)(nil)
	_ screen.NavigationLocker = (*Screen)(nil)
	_ screen.StatusProvider   = (*Screen)(nil)
)

// New creates the screen. The learner's progress is loaded in Init.
func New(opts Options) *Screen {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Screen{
		opts:     opts,
		log:      log,
		children: units.Build(opts.Definition),
	}
}

func (s *Screen) Init() tea.Cmd {
	t, timeout := s.opts.Transport, s.opts.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()
		resp, err := t.State(ctx)
		return stateLoadedMsg{Resp: resp, Err: err}
	}
}

func (s *Screen) Title() string {
	return s.opts.Definition.Title
}

// Status shows the attempt counter in the header.
func (s *Screen) Status() string {
	if s.ctrl == nil {
		return ""
	}
	return attemptsLine(s.ctrl.Attempts())
}

// NavigationLocked reports whether the learner is inside the question
// sequence.
func (s *Screen) NavigationLocked() bool {
	return s.navLocked
}

// Controller returns the session controller, or nil before the learner's
// progress has loaded.
func (s *Screen) Controller() *core.Controller {
	return s.ctrl
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stateLoadedMsg:
		return s, s.start(msg)

	case tea.KeyMsg:
		if s.ctrl == nil {
			return s, nil
		}
		return s, s.handleKey(msg)

	case core.SubmitResultMsg:
		if s.ctrl == nil {
			return s, nil
		}
		if msg.Err == nil && msg.Resp != nil && s.ctrl.Session().IsLast() && msg.Resp.Step == s.ctrl.Session().Len() {
			s.scored = true
		}
		return s, s.ctrl.Update(msg)

	case core.TryAgainResultMsg:
		if s.ctrl == nil {
			return s, nil
		}
		if msg.Err == nil && msg.Resp != nil && msg.Resp.Result == transport.ResultSuccess {
			s.resetAnswers()
		}
		return s, s.ctrl.Update(msg)
	}

	if s.ctrl != nil {
		return s, s.ctrl.Update(msg)
	}
	return s, nil
}

func (s *Screen) start(msg stateLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		s.log.Warn("load assessment state", zap.Error(msg.Err))
		s.errMsg = "Could not load your progress: " + msg.Err.Error()
		return nil
	}
	st := msg.Resp
	s.completed = st.Completed
	s.ctrl = core.NewController(core.Options{
		Children:    s.children,
		InitialStep: st.Step,
		Attempts: core.AttemptState{
			NumAttempts:      st.NumAttempts,
			MaxAttempts:      st.MaxAttempts,
			ExtendedFeedback: st.ExtendedFeedback,
		},
		Transport:      s.opts.Transport,
		Notifier:       telemetry.NotifierFunc(s.notify),
		Publisher:      s.opts.Publisher,
		Logger:         s.log,
		RequestTimeout: s.opts.RequestTimeout,
	})
	return s.ctrl.Start()
}

// resetAnswers clears every answer before a new attempt starts.
func (s *Screen) resetAnswers() {
	for _, child := range s.children {
		if r, ok := child.Unit.(units.Resetter); ok {
			r.Reset()
		}
	}
	s.scored = false
	s.completed = false
}

func (s *Screen) notify(state telemetry.NavState) {
	s.navLocked = state == telemetry.NavLock
	if s.opts.Notifier != nil {
		s.opts.Notifier.NotifyNavigation(state)
	}
}

func (s *Screen) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "enter" {
		return s.ctrl.Submit()
	}

	// Letters belong to the answer while one is being typed.
	if !s.typing() {
		switch key {
		case "n", "right":
			return s.ctrl.Next()
		case "r":
			return s.ctrl.Review()
		case "t":
			return s.ctrl.TryAgain()
		}
		if s.ctrl.Session().GradeShown {
			if n := digit(key); n > 0 {
				return s.followLink(n)
			}
			return nil
		}
	}

	child, ok := s.ctrl.Session().Current()
	if !ok || s.ctrl.Session().GradeShown {
		return nil
	}
	u, ok := child.Unit.(units.Unit)
	if !ok {
		return nil
	}
	cmd, changed := u.HandleKey(msg)
	if changed {
		s.ctrl.Changed()
	}
	return cmd
}

// typing reports whether a free text answer is open for input.
func (s *Screen) typing() bool {
	sess := s.ctrl.Session()
	if sess.GradeShown || sess.Mode != core.ModeLive || sess.Answered {
		return false
	}
	if s.ctrl.Attempts().NoMoreAttempts() {
		return false
	}
	child, ok := sess.Current()
	if !ok {
		return false
	}
	_, ok = child.Unit.(*units.Answer)
	return ok
}

// followLink replays the breakdown entry with question number n.
func (s *Screen) followLink(n int) tea.Cmd {
	if !s.ctrl.Gates().EnableExtended {
		return nil
	}
	for _, outcome := range outcomes {
		for _, a := range s.ctrl.Breakdown(outcome) {
			if a.Number == n {
				return s.ctrl.JumpToName(a.ID)
			}
		}
	}
	return nil
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.ctrl == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	g := s.ctrl.Gates()
	var hints []layout.KeyHint
	if g.Submit.Usable() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Submit"})
	}
	if g.Next.Usable() {
		hints = append(hints, layout.KeyHint{Key: "N", Description: "Next"})
	}
	if g.Review.Usable() || g.ReviewLink.Usable() {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Review"})
	}
	if g.TryAgain.Usable() {
		hints = append(hints, layout.KeyHint{Key: "T", Description: "Try again"})
	}
	if s.ctrl.Session().GradeShown && g.EnableExtended {
		hints = append(hints, layout.KeyHint{Key: "1-9", Description: "Open question"})
	}
	if !s.navLocked {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func digit(key string) int {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return int(key[0] - '0')
	}
	return 0
}

func requestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}
