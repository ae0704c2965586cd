package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/assessly/internal/telemetry"
)

func TestHTTPClientSubmit(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"step":1,"completed":"correct","score":100,"max_attempts":2,"num_attempts":0,"extended_feedback":false}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/", "algebra 1", "ana", time.Second)
	resp, err := c.Submit(context.Background(), Payload{"q1": "b"})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/assessments/algebra%201/learners/ana/submit", gotPath)
	assert.Equal(t, map[string]any{"q1": "b"}, gotBody)
	assert.Equal(t, 1, resp.Step)
	assert.Equal(t, CompletionCorrect, resp.Completed)
	assert.Equal(t, 100, resp.Score)
	assert.False(t, resp.ExtendedFeedback)
}

func TestHTTPClientStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "empty submission", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "a", "l", time.Second)
	_, err := c.Submit(context.Background(), Payload{})

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.Code)
	assert.Equal(t, "empty submission", se.Body)
}

func TestHTTPClientHonorsCancellation(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	c := NewHTTPClient(srv.URL, "a", "l", 5*time.Second)
	done := make(chan error, 1)
	go func() {
		_, err := c.TryAgain(ctx)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("request did not return after cancel")
	}
}

func TestHTTPClientStateAndEvents(t *testing.T) {
	var event telemetry.Event
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+LearnerPath("a", "l")+"/state", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"step":2,"steps":3,"max_attempts":1,"num_attempts":0}`))
	})
	mux.HandleFunc("POST "+LearnerPath("a", "l")+"/events", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&event)
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "a", "l", time.Second)
	st, err := c.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, st.Step)
	assert.Equal(t, 3, st.Steps)

	err = c.Publish(context.Background(), telemetry.Event{EventType: telemetry.EventShown, ExerciseID: "q1"})
	require.NoError(t, err)
	assert.Equal(t, "q1", event.ExerciseID)
}

func TestCompletionUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want Completion
	}{
		{`"partial"`, CompletionPartial},
		{`true`, CompletionCorrect},
		{`false`, CompletionIncorrect},
		{`null`, CompletionNone},
	}
	for _, tt := range tests {
		var c Completion
		require.NoError(t, json.Unmarshal([]byte(tt.in), &c), tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}

	var c Completion
	assert.Error(t, json.Unmarshal([]byte(`3`), &c))
}

func TestResultFor(t *testing.T) {
	r := &ResultsResponse{Results: []NamedResult{
		{Name: "q1", Result: json.RawMessage(`1`)},
		{Name: "q2", Result: json.RawMessage(`2`)},
	}}
	got, ok := r.ResultFor("q2")
	require.True(t, ok)
	assert.JSONEq(t, `2`, string(got))

	_, ok = r.ResultFor("q9")
	assert.False(t, ok)
}
