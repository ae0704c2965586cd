package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/abhisek/assessly/internal/grader"
	"github.com/abhisek/assessly/internal/telemetry"
	"github.com/abhisek/assessly/internal/transport"
)

const maxBodyBytes = 1 << 20

type assessmentSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Questions   int    `json:"questions"`
	MaxAttempts int    `json:"max_attempts"`
}

func learnerFrom(r *http.Request) grader.Learner {
	return grader.Learner{
		AssessmentID: chi.URLParam(r, "assessment"),
		LearnerID:    chi.URLParam(r, "learner"),
	}
}

func (s *Server) handleListAssessments(w http.ResponseWriter, _ *http.Request) {
	defs := s.svc.Catalog().List()
	out := make([]assessmentSummary, 0, len(defs))
	for _, d := range defs {
		out = append(out, assessmentSummary{
			ID:          d.ID,
			Title:       d.Title,
			Questions:   d.Questions(),
			MaxAttempts: d.MaxAttempts,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload transport.Payload
	if !decode(w, r, &payload) {
		return
	}
	l := learnerFrom(r)
	resp, err := s.svc.Submit(r.Context(), l, payload)
	if err != nil {
		s.fail(w, "submit", err)
		return
	}
	s.metrics.submission(l.AssessmentID, resp.Completed)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetResults(w http.ResponseWriter, r *http.Request) {
	var payload transport.Payload
	if !decode(w, r, &payload) {
		return
	}
	resp, err := s.svc.GetResults(r.Context(), learnerFrom(r), payload)
	if err != nil {
		s.fail(w, "get_results", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTryAgain(w http.ResponseWriter, r *http.Request) {
	resp, err := s.svc.TryAgain(r.Context(), learnerFrom(r))
	if err != nil {
		s.fail(w, "try_again", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	resp, err := s.svc.State(r.Context(), learnerFrom(r))
	if err != nil {
		s.fail(w, "state", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	existed, err := s.svc.Reset(r.Context(), learnerFrom(r))
	if err != nil {
		s.fail(w, "reset", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": existed})
}

// handleEvents stores a telemetry event. Events for unknown assessments
// are refused; without an event store they are only logged.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	var ev telemetry.Event
	if !decode(w, r, &ev) {
		return
	}
	l := learnerFrom(r)
	if _, ok := s.svc.Catalog().Get(l.AssessmentID); !ok {
		writeError(w, http.StatusNotFound, grader.ErrUnknownAssessment.Error())
		return
	}

	var pub telemetry.Publisher = telemetry.LogPublisher{Log: s.log}
	if s.events != nil {
		pub = telemetry.StorePublisher{
			Events:       s.events,
			AssessmentID: l.AssessmentID,
			LearnerID:    l.LearnerID,
			SessionID:    r.Header.Get(transport.SessionHeader),
		}
	}
	if err := pub.Publish(r.Context(), ev); err != nil {
		s.fail(w, "events", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// fail maps grading errors to status codes.
func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, grader.ErrUnknownAssessment):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, grader.ErrEmptySubmission), errors.Is(err, grader.ErrInvalidSubmission):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.Error("grading request failed", zap.String("op", op), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decode reads a JSON body. An empty body decodes to the zero value.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
