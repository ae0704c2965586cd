package assessment

import "encoding/json"

// ChildRef is a non-owning reference to one entry of the question sequence.
// Entries that are not displayable still occupy an index.
type ChildRef struct {
	// Name identifies the unit to the grader. An empty name excludes the
	// unit from submission payloads and from validation.
	Name string

	// Displayable is false for content that is skipped during navigation.
	Displayable bool

	// Unit is the question unit. Its capabilities are discovered with the
	// optional interfaces below; a missing capability is a no-op.
	Unit any
}

// ResultOptions lets a unit adjust its own retry affordances.
type ResultOptions struct {
	MaxAttempts int
	NumAttempts int
}

// DisplayOptions is passed to a unit when it becomes the active child.
type DisplayOptions struct {
	Review   bool
	Attempts ResultOptions
}

// Validity is a unit's opinion on whether its current answer is well-formed.
type Validity int

const (
	ValidityUnknown Validity = iota // no opinion, treated as valid
	Valid
	Invalid
)

// SubmissionProducer serializes the learner's current answer.
type SubmissionProducer interface {
	ProduceSubmission() any
}

// ResultsQuerier produces the query sent when reviewing a past answer.
type ResultsQuerier interface {
	ResultsQuery() any
}

// SubmitHandler receives a grading result as if newly submitted.
type SubmitHandler interface {
	HandleSubmit(result json.RawMessage, opts ResultOptions)
}

// ReviewHandler receives a grading result replayed in review.
type ReviewHandler interface {
	HandleReview(result json.RawMessage, opts ResultOptions)
}

// Validator reports whether the current answer can be submitted.
type Validator interface {
	Validate() Validity
}

// Displayer is notified when the unit becomes the active child.
type Displayer interface {
	Display(opts DisplayOptions)
}

// Cleaner clears transient per-display state (marks, tips) of a unit.
type Cleaner interface {
	Clean()
}

func (c ChildRef) named() bool {
	return c.Name != ""
}

func (c ChildRef) submission() (any, bool) {
	if !c.named() {
		return nil, false
	}
	if p, ok := c.Unit.(SubmissionProducer); ok {
		return p.ProduceSubmission(), true
	}
	return nil, true
}

func (c ChildRef) resultsQuery() (any, bool) {
	if !c.named() {
		return nil, false
	}
	if q, ok := c.Unit.(ResultsQuerier); ok {
		return q.ResultsQuery(), true
	}
	return nil, true
}

// validate treats unnamed units and units without an opinion as valid.
func (c ChildRef) validate() bool {
	if !c.named() {
		return true
	}
	v, ok := c.Unit.(Validator)
	if !ok {
		return true
	}
	return v.Validate() != Invalid
}

func (c ChildRef) display(opts DisplayOptions) {
	if d, ok := c.Unit.(Displayer); ok {
		d.Display(opts)
	}
}

func (c ChildRef) clean() {
	if cl, ok := c.Unit.(Cleaner); ok {
		cl.Clean()
	}
}
