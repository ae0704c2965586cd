package assessment

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/assessly/internal/telemetry"
	"github.com/abhisek/assessly/internal/transport"
)

type harness struct {
	c         *Controller
	transport *fakeTransport
	units     []*fakeUnit
	pub       *recordingPublisher
	nav       []telemetry.NavState
}

func newHarness(t *testing.T, n, initialStep int, attempts AttemptState) *harness {
	t.Helper()
	children, units := questions(n)
	return newHarnessWith(t, children, units, initialStep, attempts)
}

func newHarnessWith(t *testing.T, children []ChildRef, units []*fakeUnit, initialStep int, attempts AttemptState) *harness {
	t.Helper()
	h := &harness{
		transport: &fakeTransport{},
		units:     units,
		pub:       &recordingPublisher{},
	}
	h.c = NewController(Options{
		Children:    children,
		InitialStep: initialStep,
		Attempts:    attempts,
		Transport:   h.transport,
		Publisher:   h.pub,
		Notifier: telemetry.NotifierFunc(func(s telemetry.NavState) {
			h.nav = append(h.nav, s)
		}),
	})
	drive(h.c, h.c.Start())
	return h
}

func TestStartDisplaysFirstStep(t *testing.T) {
	h := newHarness(t, 3, 0, AttemptState{MaxAttempts: 2})

	s := h.c.Session()
	assert.Equal(t, 0, s.ActiveIndex())
	assert.True(t, s.Locked)
	assert.Equal(t, []telemetry.NavState{telemetry.NavLock}, h.nav)
	assert.Len(t, h.units[0].displays, 1)
	assert.Equal(t, 1, h.units[0].validations)
	assert.Equal(t, []telemetry.Event{{EventType: telemetry.EventShown, ExerciseID: "q1"}}, h.pub.events)

	g := h.c.Gates()
	assert.True(t, g.Submit.Usable())
	assert.True(t, g.Next.Visible)
	assert.False(t, g.Next.Enabled)
}

func TestStartResumesAfterCompletedSteps(t *testing.T) {
	h := newHarness(t, 3, 2, AttemptState{})
	assert.Equal(t, 2, h.c.Session().ActiveIndex())
	assert.True(t, h.c.Session().IsLast())
}

func TestStartWithAllStepsDoneRendersGrade(t *testing.T) {
	h := newHarness(t, 3, 3, AttemptState{MaxAttempts: 2, NumAttempts: 1})
	s := h.c.Session()
	assert.True(t, s.IsDone())
	assert.True(t, s.GradeShown)
	assert.False(t, s.Locked)
	assert.Equal(t, []telemetry.NavState{telemetry.NavLock, telemetry.NavUnlock}, h.nav)
	assert.Empty(t, h.pub.events)
}

func TestSubmitAnswersActiveStep(t *testing.T) {
	h := newHarness(t, 3, 0, AttemptState{})
	h.transport.submitResp = &transport.SubmitResponse{
		Step:      1,
		Completed: transport.CompletionPartial,
		Score:     50,
	}

	cmd := h.c.Submit()
	require.NotNil(t, cmd)
	assert.True(t, h.c.Session().Submitting)
	assert.False(t, h.c.Gates().Submit.Enabled)
	assert.Nil(t, h.c.Submit(), "duplicate submit while in flight")

	drive(h.c, cmd)

	require.Len(t, h.transport.submits, 1)
	assert.Equal(t, transport.Payload{"q1": "a0"}, h.transport.submits[0])
	assert.True(t, h.c.Session().Answered)
	assert.Equal(t, transport.CompletionPartial, h.c.Gates().Checkmark)
	assert.Equal(t, 50, h.c.Grade().Score)

	g := h.c.Gates()
	assert.False(t, g.Submit.Enabled)
	assert.True(t, g.Next.Usable())

	drive(h.c, h.c.Next())
	assert.Equal(t, 1, h.c.Session().ActiveIndex())
	assert.Equal(t, transport.CompletionNone, h.c.Gates().Checkmark)
	assert.True(t, h.c.Gates().Submit.Usable())
}

func TestSubmitFailureReenablesSubmit(t *testing.T) {
	h := newHarness(t, 2, 0, AttemptState{})
	h.transport.submitErr = errors.New("connection refused")

	drive(h.c, h.c.Submit())

	assert.Error(t, h.c.Err())
	assert.False(t, h.c.Session().Answered)
	g := h.c.Gates()
	assert.True(t, g.Submit.Usable())
	assert.False(t, g.Next.Enabled)
	assert.Len(t, h.transport.submits, 1, "no automatic retry")
}

func TestResponseForInactiveStepKeepsControls(t *testing.T) {
	h := newHarness(t, 3, 0, AttemptState{MaxAttempts: 5})
	h.transport.submitResp = &transport.SubmitResponse{
		Step:        2,
		Completed:   transport.CompletionCorrect,
		Score:       80,
		MaxAttempts: 5,
		NumAttempts: 1,
	}

	cmd := h.c.Submit()
	before := h.c.Gates()
	drive(h.c, cmd)
	after := h.c.Gates()

	assert.Equal(t, before.Submit, after.Submit)
	assert.Equal(t, before.Next, after.Next)
	assert.Equal(t, before.Review, after.Review)
	assert.Equal(t, before.ReviewLink, after.ReviewLink)
	assert.False(t, h.c.Session().Answered)

	assert.Equal(t, 80, h.c.Grade().Score)
	assert.Equal(t, 1, h.c.Attempts().NumAttempts)
}

func TestLastAttemptOnLastQuestion(t *testing.T) {
	h := newHarness(t, 3, 2, AttemptState{MaxAttempts: 2, NumAttempts: 1})
	h.transport.submitResp = &transport.SubmitResponse{
		Step:        3,
		Completed:   transport.CompletionCorrect,
		Score:       100,
		MaxAttempts: 2,
		NumAttempts: 2,
	}

	drive(h.c, h.c.Submit())

	assert.Equal(t, transport.CompletionCorrect, h.c.Grade().Completed)
	assert.True(t, h.c.Attempts().NoMoreAttempts())
	g := h.c.Gates()
	assert.True(t, g.Review.Usable())
	assert.False(t, g.TryAgain.Enabled)

	drive(h.c, h.c.Review())
	g = h.c.Gates()
	assert.True(t, h.c.Session().GradeShown)
	assert.True(t, g.TryAgain.Visible)
	assert.False(t, g.TryAgain.Enabled)
	assert.Nil(t, h.c.TryAgain())
	assert.Zero(t, h.transport.tryAgain)
}

func TestExhaustedAttemptsWidenNavigation(t *testing.T) {
	h := newHarness(t, 3, 0, AttemptState{MaxAttempts: 1, NumAttempts: 1})
	h.units[1].validity = Invalid

	for i := 0; i < 3; i++ {
		require.Equal(t, i, h.c.Session().ActiveIndex())
		g := h.c.Gates()
		assert.True(t, g.ReviewLink.Usable(), "step %d", i)
		assert.True(t, g.Submit.Visible, "step %d", i)
		assert.False(t, g.Submit.Enabled, "step %d", i)
		assert.Equal(t, 1, h.units[i].validations, "step %d", i)
		if i < 2 {
			require.True(t, g.Next.Usable(), "step %d", i)
			drive(h.c, h.c.Next())
		} else {
			assert.False(t, g.Next.Visible)
			assert.True(t, g.Review.Usable())
		}
	}
	assert.Nil(t, h.c.Submit())
	assert.Empty(t, h.transport.submits)
}

func TestTryAgainSuccess(t *testing.T) {
	h := newHarness(t, 2, 2, AttemptState{MaxAttempts: 3, NumAttempts: 1})
	require.True(t, h.c.Session().GradeShown)
	h.transport.tryResp = &transport.TryAgainResponse{Result: transport.ResultSuccess}

	drive(h.c, h.c.TryAgain())

	s := h.c.Session()
	assert.Equal(t, 1, h.transport.tryAgain)
	assert.Equal(t, 0, s.ActiveIndex())
	assert.True(t, s.Locked)
	assert.False(t, s.GradeShown)
	assert.Equal(t, []telemetry.NavState{telemetry.NavLock, telemetry.NavUnlock, telemetry.NavLock}, h.nav)
	assert.Len(t, h.units[0].displays, 1)

	g := h.c.Gates()
	assert.True(t, g.Submit.Usable())
	assert.True(t, g.Next.Visible)
	assert.False(t, g.TryAgain.Visible)
	assert.Equal(t, 1, h.c.Attempts().NumAttempts)
}

func TestTryAgainRefused(t *testing.T) {
	h := newHarness(t, 2, 2, AttemptState{MaxAttempts: 3, NumAttempts: 1})
	h.transport.tryResp = &transport.TryAgainResponse{Result: transport.ResultError, Message: "max attempts reached"}

	drive(h.c, h.c.TryAgain())

	assert.True(t, h.c.Session().GradeShown)
	assert.True(t, h.c.Session().IsDone())
}

func TestJumpToReviewsStep(t *testing.T) {
	attempts := AttemptState{MaxAttempts: 1, NumAttempts: 1, ExtendedFeedback: true}
	h := newHarness(t, 5, 5, attempts)
	require.True(t, h.c.Session().GradeShown)
	result := json.RawMessage(`{"status":"correct","score":1}`)
	h.transport.resultsResp = &transport.ResultsResponse{
		Results:     []transport.NamedResult{{Name: "q3", Result: result}},
		Completed:   transport.CompletionCorrect,
		Step:        5,
		MaxAttempts: 1,
		NumAttempts: 1,
		Message:     "Note: you have used all attempts.",
	}

	drive(h.c, h.c.JumpTo(2))

	s := h.c.Session()
	assert.Equal(t, 2, s.ActiveIndex())
	assert.Equal(t, ModeReview, s.Mode)
	assert.Equal(t, []telemetry.Event{{EventType: telemetry.EventReview, ExerciseID: "q3"}}, h.pub.events)
	assert.Empty(t, h.transport.submits)
	require.Len(t, h.transport.queries, 1)
	assert.Contains(t, h.transport.queries[0], "q3")

	u := h.units[2]
	require.Len(t, u.displays, 1)
	assert.True(t, u.displays[0].Review)
	assert.Equal(t, []json.RawMessage{result}, u.submitted)
	assert.Equal(t, []json.RawMessage{result}, u.reviewed)
	assert.Equal(t, "Note: you have used all attempts.", h.c.Grade().ReviewMessage)

	g := h.c.Gates()
	assert.False(t, g.Submit.Enabled)
	assert.True(t, g.Next.Usable())
	assert.True(t, g.ReviewLink.Usable())

	drive(h.c, h.c.Next())
	assert.Equal(t, 3, s.ActiveIndex())
	assert.Equal(t, []string{telemetry.EventReview, telemetry.EventReview}, h.pub.types())
	assert.Len(t, h.transport.queries, 2)
}

func TestJumpToNeedsExtendedFeedback(t *testing.T) {
	h := newHarness(t, 3, 3, AttemptState{MaxAttempts: 1, NumAttempts: 1})
	assert.Nil(t, h.c.JumpTo(1))
	assert.Nil(t, h.c.JumpToName("q2"))
	assert.True(t, h.c.Session().GradeShown)
}

func TestSupersededReviewIsDropped(t *testing.T) {
	attempts := AttemptState{MaxAttempts: 1, NumAttempts: 1, ExtendedFeedback: true}
	h := newHarness(t, 5, 5, attempts)
	h.transport.resultsResp = &transport.ResultsResponse{
		Results: []transport.NamedResult{
			{Name: "q2", Result: json.RawMessage(`{"status":"incorrect"}`)},
			{Name: "q4", Result: json.RawMessage(`{"status":"correct"}`)},
		},
		Completed: transport.CompletionCorrect,
	}

	first := h.c.JumpToName("q2")
	second := h.c.JumpToName("q4")

	drive(h.c, second)
	drive(h.c, first)

	assert.Equal(t, 3, h.c.Session().ActiveIndex())
	assert.Len(t, h.units[3].reviewed, 1)
	assert.Empty(t, h.units[1].reviewed)
	assert.Empty(t, h.units[1].submitted)
}

func TestChangedRevalidatesUntilAnswered(t *testing.T) {
	h := newHarness(t, 2, 0, AttemptState{})
	h.units[0].validity = Invalid
	h.c.Changed()
	assert.False(t, h.c.Gates().Submit.Enabled)

	h.units[0].validity = Valid
	h.c.Changed()
	assert.True(t, h.c.Gates().Submit.Usable())

	h.transport.submitResp = &transport.SubmitResponse{Step: 1, Completed: transport.CompletionCorrect}
	drive(h.c, h.c.Submit())
	calls := h.units[0].validations
	h.c.Changed()
	assert.Equal(t, calls, h.units[0].validations)
}

func TestUnnamedChildIsExcluded(t *testing.T) {
	unit := &fakeUnit{answer: "ignored", validity: Invalid}
	children := []ChildRef{{Displayable: true, Unit: unit}}
	h := newHarnessWith(t, children, []*fakeUnit{unit}, 0, AttemptState{})

	assert.Zero(t, unit.validations)
	assert.True(t, h.c.Gates().Submit.Usable())

	h.transport.submitResp = &transport.SubmitResponse{Step: 1}
	drive(h.c, h.c.Submit())
	require.Len(t, h.transport.submits, 1)
	assert.Empty(t, h.transport.submits[0])
}

func TestShownOnlyForDisplayedChildren(t *testing.T) {
	children, units := questions(3)
	children[0].Displayable = false
	h := newHarnessWith(t, children, units, 0, AttemptState{})

	assert.Equal(t, 1, h.c.Session().ActiveIndex())
	assert.Empty(t, units[0].displays)
	assert.Equal(t, []telemetry.Event{{EventType: telemetry.EventShown, ExerciseID: "q2"}}, h.pub.events)
}

func TestBreakdownGatedOnExtendedFeedback(t *testing.T) {
	h := newHarness(t, 1, 0, AttemptState{MaxAttempts: 2, ExtendedFeedback: true})
	correct := []transport.AnswerSummary{{Number: 1, ID: "q1"}}
	h.transport.submitResp = &transport.SubmitResponse{
		Step:             1,
		Completed:        transport.CompletionCorrect,
		MaxAttempts:      2,
		NumAttempts:      1,
		ExtendedFeedback: true,
		Correct:          correct,
	}
	drive(h.c, h.c.Submit())
	assert.Nil(t, h.c.Breakdown(transport.CompletionCorrect))

	h.transport.submitResp.NumAttempts = 2
	h.c.Session().resetStep()
	drive(h.c, h.c.Submit())
	assert.Nil(t, h.c.Submit())
	assert.Equal(t, correct, h.c.Breakdown(transport.CompletionCorrect))
}
