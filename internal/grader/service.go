// Package grader is the grading side of an assessment: it owns each
// learner's progress, grades step submissions and serves review results.
package grader

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/feedback"
	"github.com/abhisek/assessly/internal/store"
	"github.com/abhisek/assessly/internal/transport"
)

const tracerName = "github.com/abhisek/assessly/internal/grader"

// Learner scopes a request to one learner's progress in one assessment.
type Learner struct {
	AssessmentID string
	LearnerID    string
}

// Service grades submissions against a catalog of definitions.
type Service struct {
	catalog    *content.Catalog
	progress   store.ProgressRepo
	events     store.EventRepo
	writer     feedback.Writer
	strategies map[content.Kind]Strategy
	log        *zap.Logger
	tracer     trace.Tracer

	locks sync.Map // Learner -> *sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithEvents records a submission event for every submit.
func WithEvents(events store.EventRepo) Option {
	return func(s *Service) { s.events = events }
}

// WithMessageWriter sets how the end-of-attempt message is written.
func WithMessageWriter(w feedback.Writer) Option {
	return func(s *Service) { s.writer = w }
}

// WithStrategies replaces the grading strategies.
func WithStrategies(m map[content.Kind]Strategy) Option {
	return func(s *Service) { s.strategies = m }
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithTracer sets the tracer used for request spans.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

// New creates a grading service.
func New(catalog *content.Catalog, progress store.ProgressRepo, opts ...Option) *Service {
	s := &Service{
		catalog:    catalog,
		progress:   progress,
		writer:     feedback.Static{},
		strategies: DefaultStrategies(),
		log:        zap.NewNop(),
		tracer:     otel.Tracer(tracerName),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Catalog returns the definitions the service grades.
func (s *Service) Catalog() *content.Catalog {
	return s.catalog
}

func (s *Service) lock(l Learner) func() {
	m, _ := s.locks.LoadOrStore(l, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *Service) start(ctx context.Context, op string, l Learner) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "grader."+op, trace.WithAttributes(
		attribute.String("assessment.id", l.AssessmentID),
		attribute.String("learner.id", l.LearnerID),
	))
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// load returns the definition and the learner's progress, starting a fresh
// record when none is stored.
func (s *Service) load(ctx context.Context, l Learner) (*content.Definition, *store.Progress, error) {
	def, ok := s.catalog.Get(l.AssessmentID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownAssessment, l.AssessmentID)
	}
	p, err := s.progress.Load(ctx, l.AssessmentID, l.LearnerID)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		p = &store.Progress{AssessmentID: l.AssessmentID, LearnerID: l.LearnerID}
	}
	return def, p, nil
}

func maxAttemptsReached(def *content.Definition, p *store.Progress) bool {
	return def.MaxAttempts > 0 && p.NumAttempts >= def.MaxAttempts
}

func showExtendedFeedback(def *content.Definition, p *store.Progress) bool {
	return def.ExtendedFeedback && maxAttemptsReached(def, p)
}

// find returns the first step, in definition order, that the payload names.
func find(def *content.Definition, payload transport.Payload) (int, json.RawMessage, error) {
	for i, step := range def.Steps {
		if step.Name == "" {
			continue
		}
		v, ok := payload[step.Name]
		if !ok {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
		}
		return i, raw, nil
	}
	return 0, nil, ErrEmptySubmission
}

// Submit grades one step. A step that precedes the learner's stored
// position, or any step once attempts are exhausted, is rejected: nothing is
// graded and the stored step is returned unchanged. Submitting the last step
// completes the attempt.
func (s *Service) Submit(ctx context.Context, l Learner, payload transport.Payload) (_ *transport.SubmitResponse, err error) {
	ctx, span := s.start(ctx, "submit", l)
	defer func() { finish(span, err) }()

	unlock := s.lock(l)
	defer unlock()

	def, p, err := s.load(ctx, l)
	if err != nil {
		return nil, err
	}
	index, raw, err := find(def, payload)
	if err != nil {
		return nil, err
	}
	step := def.Steps[index]
	p.Attempted = true

	status := transport.CompletionNone
	accepted := p.Step <= index && !maxAttemptsReached(def, p)
	if accepted {
		strategy, ok := s.strategies[step.Kind]
		if !ok {
			return nil, fmt.Errorf("%w: step %q takes no submissions", ErrInvalidSubmission, step.Name)
		}
		out, err := strategy.Grade(ctx, step, raw)
		if err != nil {
			return nil, err
		}
		p.Step = index + 1
		// Tips are recomputed in review, so only the grade is kept.
		record(p, store.StudentResult{
			Name:       step.Name,
			Status:     string(out.Status),
			Score:      out.Score,
			Weight:     step.StepWeight(),
			Submission: raw,
			Message:    out.Message,
		})
		status = out.Status
	}

	score := computeScore(def, p.Results)
	var finalGrade *float64
	var message string
	if accepted && index == def.LastIndex() {
		g := score.Raw
		finalGrade = &g
		// Accepted implies attempts remained before this one was counted.
		message = s.assessmentMessage(ctx, l, def, p, score)
		p.NumAttempts++
		p.Completed = true
	}

	if err := s.progress.Save(ctx, p); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("step.name", step.Name),
		attribute.Bool("submission.accepted", accepted),
		attribute.String("submission.status", string(status)),
	)
	s.log.Info("submission graded",
		zap.String("assessment_id", l.AssessmentID),
		zap.String("learner_id", l.LearnerID),
		zap.String("step", step.Name),
		zap.Bool("accepted", accepted),
		zap.String("status", string(status)),
		zap.Int("num_attempts", p.NumAttempts))

	s.recordSubmission(ctx, l, step.Name, p, status, accepted, finalGrade, payload)

	resp := &transport.SubmitResponse{
		Step:                   p.Step,
		Completed:              status,
		Attempted:              p.Attempted,
		Score:                  score.Percentage,
		CorrectAnswer:          len(score.Correct),
		IncorrectAnswer:        len(score.Incorrect),
		PartiallyCorrectAnswer: len(score.Partial),
		MaxAttempts:            def.MaxAttempts,
		NumAttempts:            p.NumAttempts,
		ExtendedFeedback:       showExtendedFeedback(def, p),
		AssessmentMessage:      message,
	}
	if resp.ExtendedFeedback {
		resp.Correct = score.Correct
		resp.Incorrect = score.Incorrect
		resp.Partial = score.Partial
	}
	return resp, nil
}

// assessmentMessage writes the message shown when an attempt completes.
// It runs before the attempt is counted.
func (s *Service) assessmentMessage(ctx context.Context, l Learner, def *content.Definition, p *store.Progress, score Score) string {
	in := feedback.Input{
		AssessmentID: l.AssessmentID,
		LearnerID:    l.LearnerID,
		Title:        def.Title,
		Score:        score.Percentage,
		Attempt:      p.NumAttempts + 1,
		MaxAttempts:  def.MaxAttempts,
		Instructor:   def.Messages.OnAssessmentReview,
	}
	for _, r := range p.Results {
		i := def.Index(r.Name)
		if i < 0 || !def.Steps[i].Graded() {
			continue
		}
		in.Questions = append(in.Questions, feedback.Question{
			Number:   def.Number(r.Name),
			Question: def.Steps[i].Question,
			Status:   r.Status,
		})
	}
	msg, err := s.writer.Write(ctx, in)
	if err != nil {
		s.log.Warn("assessment message failed", zap.Error(err))
		return def.Messages.OnAssessmentReview
	}
	return msg
}

func (s *Service) recordSubmission(ctx context.Context, l Learner, exercise string, p *store.Progress,
	status transport.Completion, accepted bool, finalGrade *float64, payload transport.Payload) {
	if s.events == nil {
		return
	}
	err := s.events.AppendSubmission(ctx, store.SubmissionEventData{
		AssessmentID:    l.AssessmentID,
		LearnerID:       l.LearnerID,
		ExerciseID:      exercise,
		Step:            p.Step,
		Status:          string(status),
		Accepted:        accepted,
		NumAttempts:     p.NumAttempts,
		FinalGrade:      finalGrade,
		SubmittedAnswer: map[string]any(payload),
	})
	if err != nil {
		s.log.Warn("failed to record submission event", zap.Error(err))
	}
}

// record stores a step result, replacing an earlier one for the same step.
func record(p *store.Progress, r store.StudentResult) {
	for i := range p.Results {
		if p.Results[i].Name == r.Name {
			p.Results[i] = r
			return
		}
	}
	p.Results = append(p.Results, r)
}

// GetResults returns the stored result of the queried step for review.
// Results are only served while extended feedback is showing; otherwise the
// response carries an error and no results.
func (s *Service) GetResults(ctx context.Context, l Learner, query transport.Payload) (_ *transport.ResultsResponse, err error) {
	ctx, span := s.start(ctx, "get_results", l)
	defer func() { finish(span, err) }()

	unlock := s.lock(l)
	defer unlock()

	def, p, err := s.load(ctx, l)
	if err != nil {
		return nil, err
	}
	if !showExtendedFeedback(def, p) {
		return &transport.ResultsResponse{
			Results: []transport.NamedResult{},
			Error:   ErrExtendedFeedbackUnavailable.Error(),
		}, nil
	}

	resp := &transport.ResultsResponse{
		Results:     []transport.NamedResult{},
		Completed:   transport.CompletionCorrect,
		Attempted:   p.Attempted,
		Message:     s.message(def, p, true),
		Step:        p.Step,
		MaxAttempts: def.MaxAttempts,
		NumAttempts: p.NumAttempts,
	}
	for _, step := range def.Steps {
		if step.Name == "" {
			continue
		}
		if _, ok := query[step.Name]; !ok {
			continue
		}
		stored, ok := p.Result(step.Name)
		if !ok {
			break
		}
		raw, err := json.Marshal(childResult(stored, s.tips(ctx, step, stored)))
		if err != nil {
			return nil, fmt.Errorf("encode result: %w", err)
		}
		resp.Results = append(resp.Results, transport.NamedResult{Name: step.Name, Result: raw})
		resp.Completed = transport.Completion(stored.Status)
		break
	}
	return resp, nil
}

// tips regrades a stored submission to recover the tips dropped on submit.
func (s *Service) tips(ctx context.Context, step content.Step, r store.StudentResult) []string {
	strategy, ok := s.strategies[step.Kind]
	if !ok || len(r.Submission) == 0 {
		return nil
	}
	out, err := strategy.Grade(ctx, step, r.Submission)
	if err != nil {
		return nil
	}
	return out.Tips
}

func (s *Service) message(def *content.Definition, p *store.Progress, completed bool) string {
	switch {
	case maxAttemptsReached(def, p):
		return def.Messages.MaxAttemptsReached
	case completed:
		return def.Messages.Completed
	default:
		return def.Messages.Incomplete
	}
}

// TryAgain starts a new attempt while attempts remain.
func (s *Service) TryAgain(ctx context.Context, l Learner) (_ *transport.TryAgainResponse, err error) {
	ctx, span := s.start(ctx, "try_again", l)
	defer func() { finish(span, err) }()

	unlock := s.lock(l)
	defer unlock()

	def, p, err := s.load(ctx, l)
	if err != nil {
		return nil, err
	}
	if maxAttemptsReached(def, p) {
		return &transport.TryAgainResponse{
			Result:  transport.ResultError,
			Message: ErrMaxAttemptsReached.Error(),
		}, nil
	}

	p.Step = 0
	p.Completed = false
	p.Results = nil
	if err := s.progress.Save(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("attempt reset",
		zap.String("assessment_id", l.AssessmentID),
		zap.String("learner_id", l.LearnerID),
		zap.Int("num_attempts", p.NumAttempts))
	return &transport.TryAgainResponse{Result: transport.ResultSuccess}, nil
}

// State returns the learner's stored position for session bootstrap.
func (s *Service) State(ctx context.Context, l Learner) (_ *transport.StateResponse, err error) {
	ctx, span := s.start(ctx, "state", l)
	defer func() { finish(span, err) }()

	def, p, err := s.load(ctx, l)
	if err != nil {
		return nil, err
	}
	st := &transport.StateResponse{
		Step:             p.Step,
		Steps:            len(def.Steps),
		MaxAttempts:      def.MaxAttempts,
		NumAttempts:      p.NumAttempts,
		ExtendedFeedback: showExtendedFeedback(def, p),
		Completed:        p.Completed,
		Attempted:        p.Attempted,
	}
	if n := len(p.Results); n > 0 {
		st.LastCompletion = transport.Completion(p.Results[n-1].Status)
	}
	return st, nil
}

// Reset deletes the learner's progress, including used attempts. It reports
// whether there was anything to delete.
func (s *Service) Reset(ctx context.Context, l Learner) (bool, error) {
	if _, ok := s.catalog.Get(l.AssessmentID); !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownAssessment, l.AssessmentID)
	}
	unlock := s.lock(l)
	defer unlock()
	return s.progress.Delete(ctx, l.AssessmentID, l.LearnerID)
}
