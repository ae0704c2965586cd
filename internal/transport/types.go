package transport

import (
	"context"
	"encoding/json"
	"fmt"
)

// Completion is the grading outcome of a single step.
type Completion string

const (
	CompletionNone      Completion = ""
	CompletionCorrect   Completion = "correct"
	CompletionPartial   Completion = "partial"
	CompletionIncorrect Completion = "incorrect"
)

// UnmarshalJSON accepts the status strings as well as the boolean and null
// values some grader responses carry for rejected submissions.
func (c *Completion) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode completion: %w", err)
	}
	switch v := raw.(type) {
	case nil:
		*c = CompletionNone
	case bool:
		if v {
			*c = CompletionCorrect
		} else {
			*c = CompletionIncorrect
		}
	case string:
		*c = Completion(v)
	default:
		return fmt.Errorf("decode completion: unexpected %T", raw)
	}
	return nil
}

// Payload maps a child name to its submission (or results query).
type Payload map[string]any

// AnswerSummary is one entry of the extended per-question breakdown.
type AnswerSummary struct {
	Number  int             `json:"number"`
	ID      string          `json:"id"`
	Details json.RawMessage `json:"details,omitempty"`
}

// SubmitResponse is the grader's reply to a step submission.
type SubmitResponse struct {
	Step                   int             `json:"step"`
	Completed              Completion      `json:"completed"`
	Attempted              bool            `json:"attempted"`
	Score                  int             `json:"score"`
	CorrectAnswer          int             `json:"correct_answer"`
	IncorrectAnswer        int             `json:"incorrect_answer"`
	PartiallyCorrectAnswer int             `json:"partially_correct_answer"`
	MaxAttempts            int             `json:"max_attempts"`
	NumAttempts            int             `json:"num_attempts"`
	ExtendedFeedback       bool            `json:"extended_feedback"`
	Correct                []AnswerSummary `json:"correct"`
	Incorrect              []AnswerSummary `json:"incorrect"`
	Partial                []AnswerSummary `json:"partial"`
	AssessmentMessage      string          `json:"assessment_message"`
}

// ChildResult is the graded record of one question unit. Units decode it
// from the raw result they receive in review.
type ChildResult struct {
	Status     Completion      `json:"status"`
	Score      float64         `json:"score"`
	Weight     float64         `json:"weight"`
	Submission json.RawMessage `json:"submission,omitempty"`
	Tips       []string        `json:"tips,omitempty"`
	Message    string          `json:"message,omitempty"`
}

// NamedResult pairs a child name with its stored result.
type NamedResult struct {
	Name   string          `json:"name"`
	Result json.RawMessage `json:"result"`
}

// ResultsResponse is the grader's reply to a review results query.
type ResultsResponse struct {
	Results     []NamedResult `json:"results"`
	Completed   Completion    `json:"completed"`
	Attempted   bool          `json:"attempted"`
	Message     string        `json:"message"`
	Step        int           `json:"step"`
	MaxAttempts int           `json:"max_attempts"`
	NumAttempts int           `json:"num_attempts"`
	Error       string        `json:"error,omitempty"`
}

// ResultFor returns the result for the named child, falling back to the
// first entry when the grader answered for a single unnamed query.
func (r *ResultsResponse) ResultFor(name string) (json.RawMessage, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res.Result, true
		}
	}
	if len(r.Results) == 1 && name == "" {
		return r.Results[0].Result, true
	}
	return nil, false
}

// TryAgain result values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// TryAgainResponse is the grader's reply to a reset request.
type TryAgainResponse struct {
	Result  string `json:"result"`
	Message string `json:"message,omitempty"`
}

// StateResponse bootstraps a session with the learner's stored progress.
type StateResponse struct {
	Step             int        `json:"step"`
	Steps            int        `json:"steps"`
	MaxAttempts      int        `json:"max_attempts"`
	NumAttempts      int        `json:"num_attempts"`
	ExtendedFeedback bool       `json:"extended_feedback"`
	Completed        bool       `json:"completed"`
	Attempted        bool       `json:"attempted"`
	LastCompletion   Completion `json:"last_completion,omitempty"`
}

// Transport is the grading collaborator as seen from a session.
type Transport interface {
	Submit(ctx context.Context, payload Payload) (*SubmitResponse, error)
	GetResults(ctx context.Context, payload Payload) (*ResultsResponse, error)
	TryAgain(ctx context.Context) (*TryAgainResponse, error)
	State(ctx context.Context) (*StateResponse, error)
}
