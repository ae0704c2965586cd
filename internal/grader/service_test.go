package grader

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/assessly/internal/feedback"
	"github.com/abhisek/assessly/internal/llm"
	"github.com/abhisek/assessly/internal/transport"
)

func (h *harness) submit(t *testing.T, name string, value any) *transport.SubmitResponse {
	t.Helper()
	resp, err := h.svc.Submit(context.Background(), h.learner, transport.Payload{name: value})
	require.NoError(t, err)
	return resp
}

// attempt answers every step in order and returns the last response.
func (h *harness) attempt(t *testing.T, equivalent []string) *transport.SubmitResponse {
	t.Helper()
	h.submit(t, "half", "a")
	h.submit(t, "intro-equivalent", true)
	h.submit(t, "equivalent", equivalent)
	return h.submit(t, "explain", "Both name the same amount of a whole.")
}

func numbers(list []transport.AnswerSummary) []int {
	out := make([]int, len(list))
	for i, a := range list {
		out[i] = a.Number
	}
	return out
}

func TestSubmit_GradesAndAdvances(t *testing.T) {
	h := newHarness(t)

	resp := h.submit(t, "half", "a")
	assert.Equal(t, 2, resp.Step)
	assert.Equal(t, transport.CompletionCorrect, resp.Completed)
	assert.True(t, resp.Attempted)
	assert.Equal(t, 25, resp.Score)
	assert.Equal(t, 1, resp.CorrectAnswer)
	assert.Equal(t, 2, resp.MaxAttempts)
	assert.Zero(t, resp.NumAttempts)
	assert.Empty(t, resp.AssessmentMessage)

	resp = h.submit(t, "intro-equivalent", true)
	assert.Equal(t, 3, resp.Step)
	assert.Equal(t, transport.CompletionCorrect, resp.Completed)
	assert.Equal(t, 1, resp.CorrectAnswer, "content steps are not counted as answers")

	resp = h.submit(t, "equivalent", []string{"2-4"})
	assert.Equal(t, 4, resp.Step)
	assert.Equal(t, transport.CompletionPartial, resp.Completed)
	assert.Equal(t, 50, resp.Score)
	assert.Equal(t, 1, resp.PartiallyCorrectAnswer)

	p, err := h.progress.Load(context.Background(), h.learner.AssessmentID, h.learner.LearnerID)
	require.NoError(t, err)
	stored, ok := p.Result("half")
	require.True(t, ok)
	assert.Equal(t, "correct", stored.Status)
	assert.JSONEq(t, `"a"`, string(stored.Submission))
	assert.False(t, p.Completed)
}

func TestSubmit_LastStepCompletesAttempt(t *testing.T) {
	h := newHarness(t)

	resp := h.attempt(t, []string{"2-4"})
	assert.Equal(t, 5, resp.Step)
	assert.Equal(t, transport.CompletionCorrect, resp.Completed)
	assert.Equal(t, 75, resp.Score)
	assert.Equal(t, 1, resp.NumAttempts)
	assert.Equal(t, 2, resp.CorrectAnswer)
	assert.Equal(t, 1, resp.PartiallyCorrectAnswer)
	assert.Zero(t, resp.IncorrectAnswer)
	assert.False(t, resp.ExtendedFeedback)
	assert.Nil(t, resp.Correct, "breakdown is withheld while attempts remain")
	assert.Equal(t, "Review your answers before trying again.", resp.AssessmentMessage)

	require.Len(t, h.events.submissions, 4)
	last := h.events.submissions[3]
	assert.Equal(t, "explain", last.ExerciseID)
	assert.True(t, last.Accepted)
	assert.Equal(t, 1, last.NumAttempts)
	require.NotNil(t, last.FinalGrade)
	assert.InDelta(t, 0.75, *last.FinalGrade, 1e-9)
	assert.Nil(t, h.events.submissions[0].FinalGrade)
}

func TestSubmit_RejectsEarlierStep(t *testing.T) {
	h := newHarness(t)
	h.submit(t, "half", "a")
	h.submit(t, "intro-equivalent", true)

	resp := h.submit(t, "half", "b")
	assert.Equal(t, 3, resp.Step, "stored step is returned unchanged")
	assert.Equal(t, transport.CompletionNone, resp.Completed)
	assert.Equal(t, 25, resp.Score)

	p, _ := h.progress.Load(context.Background(), h.learner.AssessmentID, h.learner.LearnerID)
	stored, _ := p.Result("half")
	assert.Equal(t, "correct", stored.Status, "earlier answer is kept")

	require.Len(t, h.events.submissions, 3)
	assert.False(t, h.events.submissions[2].Accepted)
	assert.Equal(t, map[string]any{"half": "b"}, h.events.submissions[2].SubmittedAnswer)
}

func TestSubmit_ConcurrentSameStep(t *testing.T) {
	h := newHarness(t)

	var wg sync.WaitGroup
	results := make([]transport.Completion, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := h.svc.Submit(context.Background(), h.learner, transport.Payload{"half": "a"})
			if err == nil {
				results[i] = resp.Completed
			}
		}()
	}
	wg.Wait()

	graded := 0
	for _, c := range results {
		if c == transport.CompletionCorrect {
			graded++
		}
	}
	assert.Equal(t, 1, graded)
}

func TestSubmit_Errors(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.svc.Submit(ctx, h.learner, transport.Payload{})
	assert.ErrorIs(t, err, ErrEmptySubmission)

	_, err = h.svc.Submit(ctx, h.learner, transport.Payload{"nope": "a"})
	assert.ErrorIs(t, err, ErrEmptySubmission)

	_, err = h.svc.Submit(ctx, h.learner, transport.Payload{"half": "z"})
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	_, err = h.svc.Submit(ctx, h.learner, transport.Payload{"equivalent": "2-4"})
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	_, err = h.svc.Submit(ctx, Learner{AssessmentID: "missing", LearnerID: "ana"}, transport.Payload{"half": "a"})
	assert.ErrorIs(t, err, ErrUnknownAssessment)

	p, err := h.progress.Load(ctx, h.learner.AssessmentID, h.learner.LearnerID)
	require.NoError(t, err)
	assert.Nil(t, p, "failed submissions store nothing")
	assert.Empty(t, h.events.submissions)
}

func TestMaxAttempts_ExtendedFeedback(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.attempt(t, []string{"2-4"})
	again, err := h.svc.TryAgain(ctx, h.learner)
	require.NoError(t, err)
	assert.Equal(t, transport.ResultSuccess, again.Result)

	resp := h.attempt(t, []string{"2-4", "3-6"})
	assert.Equal(t, 2, resp.NumAttempts)
	assert.Equal(t, 100, resp.Score)
	assert.True(t, resp.ExtendedFeedback)
	assert.Equal(t, []int{1, 2, 3}, numbers(resp.Correct))
	assert.Equal(t, "equivalent", resp.Correct[1].ID)
	assert.Empty(t, resp.Incorrect)
	assert.Empty(t, resp.Partial)

	var details transport.ChildResult
	require.NoError(t, json.Unmarshal(resp.Correct[1].Details, &details))
	assert.Equal(t, 2.0, details.Weight)

	rejected := h.submit(t, "half", "a")
	assert.Equal(t, transport.CompletionNone, rejected.Completed)
	assert.Equal(t, 2, rejected.NumAttempts, "rejected submissions do not use attempts")

	again, err = h.svc.TryAgain(ctx, h.learner)
	require.NoError(t, err)
	assert.Equal(t, transport.ResultError, again.Result)
	assert.Equal(t, "max attempts reached", again.Message)
}

func TestGetResults(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.attempt(t, []string{"2-3"})
	resp, err := h.svc.GetResults(ctx, h.learner, transport.Payload{"half": nil})
	require.NoError(t, err)
	assert.Equal(t, ErrExtendedFeedbackUnavailable.Error(), resp.Error)
	assert.Empty(t, resp.Results)

	_, err = h.svc.TryAgain(ctx, h.learner)
	require.NoError(t, err)
	h.attempt(t, []string{"2-3"})

	resp, err = h.svc.GetResults(ctx, h.learner, transport.Payload{"equivalent": nil})
	require.NoError(t, err)
	assert.Empty(t, resp.Error)
	assert.Equal(t, transport.CompletionIncorrect, resp.Completed)
	assert.Equal(t, "You have used all of your attempts.", resp.Message)
	assert.Equal(t, 2, resp.NumAttempts)
	assert.Equal(t, 5, resp.Step)

	raw, ok := resp.ResultFor("equivalent")
	require.True(t, ok)
	var res transport.ChildResult
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Equal(t, transport.CompletionIncorrect, res.Status)
	assert.Equal(t, []string{"2/3 is larger than 1/2."}, res.Tips, "tips are recomputed for review")
	assert.JSONEq(t, `["2-3"]`, string(res.Submission))

	resp, err = h.svc.GetResults(ctx, h.learner, transport.Payload{"half": nil})
	require.NoError(t, err)
	assert.Equal(t, transport.CompletionCorrect, resp.Completed)
	raw, _ = resp.ResultFor("half")
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Equal(t, []string{"Right, one half."}, res.Tips)
}

func TestTryAgain_KeepsAttemptCount(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.attempt(t, []string{"2-4"})
	_, err := h.svc.TryAgain(ctx, h.learner)
	require.NoError(t, err)

	st, err := h.svc.State(ctx, h.learner)
	require.NoError(t, err)
	assert.Zero(t, st.Step)
	assert.Equal(t, 1, st.NumAttempts)
	assert.False(t, st.Completed)
	assert.True(t, st.Attempted)
	assert.Equal(t, transport.CompletionNone, st.LastCompletion)

	resp := h.submit(t, "half", "b")
	assert.Equal(t, transport.CompletionIncorrect, resp.Completed)
	assert.Equal(t, 0, resp.Score)
}

func TestState(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	st, err := h.svc.State(ctx, h.learner)
	require.NoError(t, err)
	assert.Equal(t, &transport.StateResponse{Steps: 5, MaxAttempts: 2}, st)

	h.submit(t, "half", "c")
	st, err = h.svc.State(ctx, h.learner)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Step)
	assert.Equal(t, transport.CompletionIncorrect, st.LastCompletion)
}

func TestReset(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.attempt(t, []string{"2-4"})
	existed, err := h.svc.Reset(ctx, h.learner)
	require.NoError(t, err)
	assert.True(t, existed)

	st, err := h.svc.State(ctx, h.learner)
	require.NoError(t, err)
	assert.Zero(t, st.NumAttempts)

	existed, err = h.svc.Reset(ctx, h.learner)
	require.NoError(t, err)
	assert.False(t, existed)

	_, err = h.svc.Reset(ctx, Learner{AssessmentID: "missing"})
	assert.ErrorIs(t, err, ErrUnknownAssessment)
}

func TestAssessmentMessage_Generated(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.Fallback = &llm.MockReply{Content: json.RawMessage(`{"message":"Good start. Revisit equivalent fractions."}`)}
	h := newHarness(t, WithMessageWriter(feedback.NewLLMWriter(mock, feedback.DefaultConfig(), nil)))

	resp := h.attempt(t, []string{"2-4"})
	assert.Equal(t, "Good start. Revisit equivalent fractions.", resp.AssessmentMessage)
	require.Len(t, mock.Prompts(), 1)
	prompt := mock.Prompts()[0].Input
	assert.Contains(t, prompt, "Attempt: 1 of 2")
	assert.Contains(t, prompt, "2. Select every fraction equal to 1/2. [partial]")
	assert.NotContains(t, prompt, "intro-equivalent")
}

func TestAssessmentMessage_FallsBack(t *testing.T) {
	mock := llm.NewMockProvider()
	h := newHarness(t, WithMessageWriter(feedback.NewLLMWriter(mock, feedback.DefaultConfig(), nil)))

	resp := h.attempt(t, []string{"2-4"})
	assert.Equal(t, "Review your answers before trying again.", resp.AssessmentMessage)
}

func TestLocal(t *testing.T) {
	h := newHarness(t)
	tr := NewLocal(h.svc, h.learner)
	assert.Equal(t, h.learner, tr.Learner())

	resp, err := tr.Submit(context.Background(), transport.Payload{"half": "a"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Step)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tr.Submit(ctx, transport.Payload{"intro-equivalent": true})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = tr.TryAgain(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	st, err := tr.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, st.Step, "cancelled requests are not graded")
}
