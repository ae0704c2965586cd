package assessment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "github.com/abhisek/assessly/internal/assessment"
	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/grader"
	"github.com/abhisek/assessly/internal/store"
	"github.com/abhisek/assessly/internal/telemetry"
	"github.com/abhisek/assessly/internal/transport"
)

type memProgress struct {
	mu   sync.Mutex
	rows map[string]store.Progress
}

func (m *memProgress) Load(_ context.Context, assessmentID, learnerID string) (*store.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[assessmentID+"/"+learnerID]
	if !ok {
		return nil, nil
	}
	p.Results = append([]store.StudentResult(nil), p.Results...)
	return &p, nil
}

func (m *memProgress) Save(_ context.Context, p *store.Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	cp.Results = append([]store.StudentResult(nil), p.Results...)
	m.rows[p.AssessmentID+"/"+p.LearnerID] = cp
	return nil
}

func (m *memProgress) Delete(_ context.Context, assessmentID, learnerID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rows[assessmentID+"/"+learnerID]
	delete(m.rows, assessmentID+"/"+learnerID)
	return ok, nil
}

func (m *memProgress) List(context.Context, store.ProgressFilter) ([]store.Progress, error) {
	return nil, nil
}

type failingState struct {
	transport.Transport
}

func (failingState) State(context.Context) (*transport.StateResponse, error) {
	return nil, errors.New("grader offline")
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

// timerWait bounds how long run waits for a command. Grading against the
// in-memory grader answers well within it; timers such as the text input's
// cursor blink do not, and their messages are dropped.
const timerWait = 100 * time.Millisecond

// run executes a command and feeds every resulting message back to the
// screen, the way the Bubble Tea runtime would.
func run(t *testing.T, s *Screen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(timerWait):
		return
	}
	switch msg := msg.(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			run(t, s, c)
		}
	default:
		_, next := s.Update(msg)
		run(t, s, next)
	}
}

func press(t *testing.T, s *Screen, keys ...tea.KeyPressMsg) {
	t.Helper()
	for _, k := range keys {
		_, cmd := s.Update(k)
		run(t, s, cmd)
	}
}

func typeText(t *testing.T, s *Screen, text string) {
	t.Helper()
	for _, r := range text {
		press(t, s, key(r))
	}
}

func newScreen(t *testing.T) (*Screen, *[]telemetry.NavState) {
	t.Helper()
	def, err := content.Load("../../content/testdata/fractions.json")
	require.NoError(t, err)
	catalog, err := content.NewCatalog(def)
	require.NoError(t, err)
	svc := grader.New(catalog, &memProgress{rows: make(map[string]store.Progress)})

	var nav []telemetry.NavState
	s := New(Options{
		Definition: def,
		Transport:  grader.NewLocal(svc, grader.Learner{AssessmentID: def.ID, LearnerID: "ada"}),
		Notifier:   telemetry.NotifierFunc(func(st telemetry.NavState) { nav = append(nav, st) }),
	})
	run(t, s, s.Init())
	require.NotNil(t, s.Controller())
	return s, &nav
}

// completePass answers every step correctly and opens the grade summary.
func completePass(t *testing.T, s *Screen) {
	t.Helper()
	sess := s.Controller().Session()

	require.Equal(t, 1, sess.ActiveIndex())
	press(t, s, key(' '), enter())
	assert.True(t, sess.Answered)

	press(t, s, key('n'))
	require.Equal(t, 2, sess.ActiveIndex())
	press(t, s, enter(), key('n'))

	require.Equal(t, 3, sess.ActiveIndex())
	press(t, s, key(' '), key('j'), key(' '), enter(), key('n'))

	require.Equal(t, 4, sess.ActiveIndex())
	typeText(t, s, "quarters-make-halves")
	press(t, s, enter())
	require.True(t, sess.Answered)

	press(t, s, key('r'))
	require.True(t, sess.GradeShown)
}

func TestScreenStartsAfterLeadingMessage(t *testing.T) {
	s, nav := newScreen(t)

	assert.Equal(t, 1, s.Controller().Session().ActiveIndex())
	assert.True(t, s.NavigationLocked())
	assert.Equal(t, []telemetry.NavState{telemetry.NavLock}, *nav)

	view := s.View(100, 40)
	assert.Contains(t, view, "Take your time.")
	assert.Contains(t, view, "Which fraction equals 0.5?")
	assert.Equal(t, "Attempts: 0 of 2", s.Status())
}

func TestScreenSubmitNeedsValidAnswer(t *testing.T) {
	s, _ := newScreen(t)

	press(t, s, enter())
	assert.False(t, s.Controller().Session().Answered)

	press(t, s, key('n'))
	assert.Equal(t, 1, s.Controller().Session().ActiveIndex(), "next is disabled until answered")
}

func TestScreenFullPass(t *testing.T) {
	s, nav := newScreen(t)
	completePass(t, s)

	grade := s.Controller().Grade()
	assert.Equal(t, 100, grade.Score)
	assert.Equal(t, 3, grade.CorrectAnswer)
	assert.False(t, s.NavigationLocked())
	assert.Equal(t, telemetry.NavUnlock, (*nav)[len(*nav)-1])

	view := s.View(100, 40)
	assert.Contains(t, view, "Your grade")
	assert.Contains(t, view, "100%")
	assert.Contains(t, view, "Attempts: 1 of 2")
	assert.Contains(t, view, "Review your answers before trying again.")
	assert.NotContains(t, view, "[1]", "breakdown needs exhausted attempts")
}

func TestScreenTypingKeepsShortcutLetters(t *testing.T) {
	s, _ := newScreen(t)
	press(t, s, key(' '), enter(), key('n'), enter(), key('n'), key(' '), enter(), key('n'))
	require.Equal(t, 4, s.Controller().Session().ActiveIndex())

	typeText(t, s, "tnr")
	child, _ := s.Controller().Session().Current()
	assert.Equal(t, "tnr", child.Unit.(interface{ Value() string }).Value())
	assert.False(t, s.Controller().Session().GradeShown)
}

func TestScreenTryAgainAndBreakdown(t *testing.T) {
	s, _ := newScreen(t)
	completePass(t, s)

	press(t, s, key('t'))
	sess := s.Controller().Session()
	require.False(t, sess.GradeShown)
	assert.Equal(t, 1, sess.ActiveIndex())
	assert.True(t, s.NavigationLocked())

	completePass(t, s)
	assert.True(t, s.Controller().Attempts().NoMoreAttempts())
	g := s.Controller().Gates()
	assert.True(t, g.EnableExtended)
	assert.False(t, g.TryAgain.Enabled)
	assert.False(t, g.ShowMessage)

	view := s.View(100, 40)
	assert.Contains(t, view, "[1] Which fraction equals 0.5?")

	press(t, s, key('1'))
	assert.Equal(t, core.ModeReview, sess.Mode)
	assert.Equal(t, 1, sess.ActiveIndex())
	assert.Equal(t, transport.CompletionCorrect, s.Controller().Grade().Completed)
	assert.Contains(t, s.View(100, 40), "Reviewing a graded answer")

	press(t, s, key('t'))
	assert.Equal(t, core.ModeReview, sess.Mode, "try again refused once attempts are used")
}

func TestScreenBreakdownLinkOpensQuestion(t *testing.T) {
	s, _ := newScreen(t)
	completePass(t, s)
	press(t, s, key('t'))
	completePass(t, s)

	number := 0
	for _, a := range s.Controller().Breakdown(transport.CompletionCorrect) {
		if a.ID == "explain" {
			number = a.Number
		}
	}
	require.NotZero(t, number)

	press(t, s, key(rune('0'+number)))
	sess := s.Controller().Session()
	child, ok := sess.Current()
	require.True(t, ok)
	assert.Equal(t, "explain", child.Name)
	assert.Equal(t, core.ModeReview, sess.Mode)
}

func TestScreenBreakdownIgnoresUnknownNumber(t *testing.T) {
	s, _ := newScreen(t)
	completePass(t, s)
	press(t, s, key('t'))
	completePass(t, s)

	press(t, s, key('9'))
	assert.True(t, s.Controller().Session().GradeShown)
	assert.NotEqual(t, core.ModeReview, s.Controller().Session().Mode)
}

func TestScreenTypingDoesNotWaitOnCursorBlink(t *testing.T) {
	s, _ := newScreen(t)
	press(t, s, key(' '), enter(), key('n'), enter(), key('n'), key(' '), enter(), key('n'))
	require.Equal(t, 4, s.Controller().Session().ActiveIndex())

	start := time.Now()
	typeText(t, s, "halves")
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestScreenStateFailure(t *testing.T) {
	def, err := content.Load("../../content/testdata/fractions.json")
	require.NoError(t, err)
	s := New(Options{Definition: def, Transport: failingState{}})
	run(t, s, s.Init())

	assert.Nil(t, s.Controller())
	assert.Contains(t, s.View(100, 40), "grader offline")
	assert.False(t, s.NavigationLocked())
}
