package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/assessly/internal/config"
	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/grader"
	"github.com/abhisek/assessly/internal/store"
	"github.com/abhisek/assessly/internal/telemetry"
	"github.com/abhisek/assessly/internal/transport"
)

var testDBCounter atomic.Int64

type harness struct {
	srv   *httptest.Server
	store *store.Store
	def   *content.Definition
}

func newHarness(t *testing.T, rl config.RateLimitConfig) *harness {
	t.Helper()
	dsn := fmt.Sprintf("file:server_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	st, err := store.Open(store.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	catalog, err := content.LoadDir("../content/testdata")
	require.NoError(t, err)
	def, _ := catalog.Get("fractions-101")

	svc := grader.New(catalog, st.ProgressRepo(), grader.WithEvents(st.EventRepo()))
	s := New(svc, Options{Events: st.EventRepo(), RateLimit: rl, RequestTimeout: 5 * time.Second})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return &harness{srv: ts, store: st, def: def}
}

func (h *harness) client(learner string) *transport.HTTPClient {
	return transport.NewHTTPClient(h.srv.URL, h.def.ID, learner, 5*time.Second)
}

func (h *harness) post(t *testing.T, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(h.srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealthz(t *testing.T) {
	h := newHarness(t, config.RateLimitConfig{})
	resp, err := http.Get(h.srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSessionOverHTTP(t *testing.T) {
	h := newHarness(t, config.RateLimitConfig{})
	c := h.client("ada")
	ctx := context.Background()

	st, err := c.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, st.Step)
	assert.Equal(t, 2, st.MaxAttempts)

	resp, err := c.Submit(ctx, transport.Payload{"half": "a"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Step)
	assert.Equal(t, transport.CompletionCorrect, resp.Completed)

	_, err = c.Submit(ctx, transport.Payload{"intro-equivalent": true})
	require.NoError(t, err)
	_, err = c.Submit(ctx, transport.Payload{"equivalent": []string{"2-4"}})
	require.NoError(t, err)
	resp, err = c.Submit(ctx, transport.Payload{"explain": "Two quarters make one half."})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.NumAttempts)
	assert.Equal(t, 75, resp.Score)
	assert.Equal(t, 1, resp.PartiallyCorrectAnswer)

	// Extended feedback is not showing while attempts remain.
	results, err := c.GetResults(ctx, transport.Payload{"half": nil})
	require.NoError(t, err)
	assert.NotEmpty(t, results.Error)

	again, err := c.TryAgain(ctx)
	require.NoError(t, err)
	assert.Equal(t, transport.ResultSuccess, again.Result)

	stats, err := h.store.EventRepo().SubmissionStats(ctx, store.ProgressFilter{AssessmentID: h.def.ID})
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 4, stats[0].Submissions)
}

func TestSubmitErrors(t *testing.T) {
	h := newHarness(t, config.RateLimitConfig{})

	resp := h.post(t, "/api/v1/assessments/fractions-101/learners/ada/submit", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = h.post(t, "/api/v1/assessments/fractions-101/learners/ada/submit", `{"half": 42}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = h.post(t, "/api/v1/assessments/fractions-101/learners/ada/submit", `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = h.post(t, "/api/v1/assessments/missing/learners/ada/submit", `{"half": "a"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "missing")
}

func TestClientSeesStatusError(t *testing.T) {
	h := newHarness(t, config.RateLimitConfig{})
	_, err := h.client("ada").Submit(context.Background(), transport.Payload{})

	var se *transport.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.Code)
}

func TestEventsAreStored(t *testing.T) {
	h := newHarness(t, config.RateLimitConfig{})
	err := h.client("ada").WithSession("s-1").Publish(context.Background(), telemetry.Event{
		EventType:  telemetry.EventShown,
		ExerciseID: "half",
	})
	require.NoError(t, err)

	events, err := h.store.EventRepo().QueryTelemetry(context.Background(), "ada", store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, telemetry.EventShown, events[0].EventType)
	assert.Equal(t, "fractions-101", events[0].AssessmentID)
	assert.Equal(t, "s-1", events[0].SessionID)

	resp := h.post(t, "/api/v1/assessments/missing/learners/ada/events", `{"event_type":"x"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResetDeletesProgress(t *testing.T) {
	h := newHarness(t, config.RateLimitConfig{})
	ctx := context.Background()
	_, err := h.client("ada").Submit(ctx, transport.Payload{"half": "a"})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodDelete, h.srv.URL+"/api/v1/assessments/fractions-101/learners/ada", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body["deleted"])

	st, err := h.client("ada").State(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, st.Step)
}

func TestListAssessments(t *testing.T) {
	h := newHarness(t, config.RateLimitConfig{})
	resp, err := http.Get(h.srv.URL + "/api/v1/assessments")
	require.NoError(t, err)
	defer resp.Body.Close()

	var out []assessmentSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, assessmentSummary{ID: "fractions-101", Title: "Fractions check-in", Questions: 3, MaxAttempts: 2}, out[0])
}

func TestRateLimitPerLearner(t *testing.T) {
	h := newHarness(t, config.RateLimitConfig{MaxRequests: 2, Window: time.Hour})
	ctx := context.Background()

	ada := h.client("ada")
	for range 2 {
		_, err := ada.State(ctx)
		require.NoError(t, err)
	}
	_, err := ada.State(ctx)
	var se *transport.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusTooManyRequests, se.Code)

	_, err = h.client("grace").State(ctx)
	assert.NoError(t, err, "limits are per learner")
}

func TestMetricsExposed(t *testing.T) {
	h := newHarness(t, config.RateLimitConfig{})
	_, err := h.client("ada").Submit(context.Background(), transport.Payload{"half": "b"})
	require.NoError(t, err)

	resp, err := http.Get(h.srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `assessly_submissions_total{assessment="fractions-101",outcome="incorrect"} 1`)
	assert.Contains(t, string(body), `route="/api/v1/assessments/{assessment}/learners/{learner}/submit"`)
}

func TestLimiterForgetsIdleLearners(t *testing.T) {
	l := newLimiter(1, time.Second)
	now := time.Unix(1000, 0)
	l.now = func() time.Time { return now }

	assert.True(t, l.allow("a"))
	assert.False(t, l.allow("a"))

	now = now.Add(2 * time.Minute)
	assert.True(t, l.allow("b"))
	assert.NotContains(t, l.visitors, "a")
}
