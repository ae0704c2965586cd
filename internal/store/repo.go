package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// StudentResult is the stored grading result of one step.
type StudentResult struct {
	Name       string
	Status     string
	Score      float64
	Weight     float64
	Submission json.RawMessage
	Message    string
}

// Progress is one learner's state in one assessment.
type Progress struct {
	AssessmentID string
	LearnerID    string
	Step         int
	NumAttempts  int
	Attempted    bool
	Completed    bool
	Results      []StudentResult
	UpdatedAt    time.Time
}

// Result returns the stored result for the named step.
func (p *Progress) Result(name string) (StudentResult, bool) {
	for _, r := range p.Results {
		if r.Name == name {
			return r, true
		}
	}
	return StudentResult{}, false
}

// ProgressFilter narrows a progress listing. Empty fields match everything.
type ProgressFilter struct {
	AssessmentID string
	LearnerID    string
}

// ProgressRepo manages per-learner progress records.
type ProgressRepo interface {
	// Load returns the learner's progress, or nil if none is stored.
	Load(ctx context.Context, assessmentID, learnerID string) (*Progress, error)

	// Save creates or replaces the learner's progress.
	Save(ctx context.Context, p *Progress) error

	// Delete removes the learner's progress. It reports whether a record existed.
	Delete(ctx context.Context, assessmentID, learnerID string) (bool, error)

	// List returns the progress records matching the filter.
	List(ctx context.Context, filter ProgressFilter) ([]Progress, error)
}

// SubmissionEventData captures one step submission.
type SubmissionEventData struct {
	AssessmentID    string
	LearnerID       string
	ExerciseID      string
	Step            int
	Status          string
	Accepted        bool
	NumAttempts     int
	FinalGrade      *float64
	SubmittedAnswer map[string]any
}

// TelemetryEventData captures one navigation event.
type TelemetryEventData struct {
	AssessmentID string
	LearnerID    string
	EventType    string
	ExerciseID   string
	SessionID    string
}

// TelemetryEventRecord is a stored telemetry event.
type TelemetryEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	TelemetryEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	AssessmentID string
	LearnerID    string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// SubmissionStats summarizes the submissions of one learner in one assessment.
type SubmissionStats struct {
	AssessmentID string
	LearnerID    string
	Submissions  int
	Rejected     int
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendSubmission records a step submission.
	AppendSubmission(ctx context.Context, data SubmissionEventData) error

	// AppendTelemetry records a navigation event.
	AppendTelemetry(ctx context.Context, data TelemetryEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryTelemetry returns a learner's telemetry events in sequence order.
	QueryTelemetry(ctx context.Context, learnerID string, opts QueryOpts) ([]TelemetryEventRecord, error)

	// SubmissionStats counts submissions per learner and assessment.
	SubmissionStats(ctx context.Context, filter ProgressFilter) ([]SubmissionStats, error)
}
