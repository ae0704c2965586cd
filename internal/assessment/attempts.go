package assessment

// AttemptState holds the attempt counters last reported by the grader.
type AttemptState struct {
	// NumAttempts is the number of completed passes through the assessment.
	NumAttempts int

	// MaxAttempts is the attempt limit; 0 means unlimited.
	MaxAttempts int

	// ExtendedFeedback enables the per-question breakdown once attempts are used up.
	ExtendedFeedback bool
}

// NoMoreAttempts reports whether the attempt limit has been reached.
// It is a pure function of the counters and must be re-evaluated on every
// decision, since grading responses may change them at any time.
func (a AttemptState) NoMoreAttempts() bool {
	return a.MaxAttempts > 0 && a.NumAttempts >= a.MaxAttempts
}

// EnableExtended reports whether the per-question breakdown may be shown.
func (a AttemptState) EnableExtended() bool {
	return a.NoMoreAttempts() && a.ExtendedFeedback
}

// Options returns the counters in the form handed to question units.
func (a AttemptState) Options() ResultOptions {
	return ResultOptions{MaxAttempts: a.MaxAttempts, NumAttempts: a.NumAttempts}
}

func (a *AttemptState) record(maxAttempts, numAttempts int) {
	a.MaxAttempts = maxAttempts
	a.NumAttempts = numAttempts
}
