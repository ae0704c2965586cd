package grader

import "errors"

var (
	// ErrUnknownAssessment is returned for an assessment ID the catalog lacks.
	ErrUnknownAssessment = errors.New("unknown assessment")

	// ErrEmptySubmission is returned when a submission names no known step.
	ErrEmptySubmission = errors.New("submission names no step of the assessment")

	// ErrInvalidSubmission is returned when a submission has the wrong shape
	// for its step.
	ErrInvalidSubmission = errors.New("invalid submission")

	// ErrMaxAttemptsReached is reported by TryAgain once every attempt is used.
	ErrMaxAttemptsReached = errors.New("max attempts reached")

	// ErrExtendedFeedbackUnavailable is reported by GetResults while the
	// per-question review is not open to the learner.
	ErrExtendedFeedbackUnavailable = errors.New("extended feedback results cannot be obtained")
)
