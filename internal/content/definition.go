package content

// Kind identifies the type of an assessment step.
type Kind string

const (
	KindMCQ     Kind = "mcq"     // single choice
	KindMRQ     Kind = "mrq"     // multiple response
	KindAnswer  Kind = "answer"  // free text
	KindHTML    Kind = "html"    // content the learner acknowledges
	KindMessage Kind = "message" // content that is never displayed on its own
)

// Choice is one option of a choice question.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Tip   string `json:"tip,omitempty"`
}

// Step is one entry of the ordered assessment sequence.
type Step struct {
	Kind     Kind     `json:"kind"`
	Name     string   `json:"name,omitempty"`
	Question string   `json:"question,omitempty"`
	Content  string   `json:"content,omitempty"`
	Choices  []Choice `json:"choices,omitempty"`
	Correct  []string `json:"correct,omitempty"`
	MinChars int      `json:"min_chars,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
}

// Displayable reports whether navigation stops on the step.
func (s Step) Displayable() bool {
	return s.Kind != KindMessage
}

// Graded reports whether the step contributes to the score.
func (s Step) Graded() bool {
	switch s.Kind {
	case KindMCQ, KindMRQ, KindAnswer:
		return true
	}
	return false
}

// StepWeight returns the step's share of the score. Ungraded steps weigh
// nothing; graded steps default to 1.
func (s Step) StepWeight() float64 {
	if !s.Graded() {
		return 0
	}
	if s.Weight == nil {
		return 1
	}
	return *s.Weight
}

// Choice returns the choice with the given value.
func (s Step) Choice(value string) (Choice, bool) {
	for _, c := range s.Choices {
		if c.Value == value {
			return c, true
		}
	}
	return Choice{}, false
}

// Messages are the texts shown on the grade summary and in review.
type Messages struct {
	OnAssessmentReview string `json:"on-assessment-review,omitempty"`
	Completed          string `json:"completed,omitempty"`
	Incomplete         string `json:"incomplete,omitempty"`
	MaxAttemptsReached string `json:"max_attempts_reached,omitempty"`
}

// Definition describes one assessment.
type Definition struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	MaxAttempts      int      `json:"max_attempts,omitempty"`
	ExtendedFeedback bool     `json:"extended_feedback,omitempty"`
	Messages         Messages `json:"messages,omitempty"`
	Steps            []Step   `json:"steps"`
}

// Index returns the position of the named step, or -1.
func (d *Definition) Index(name string) int {
	if name == "" {
		return -1
	}
	for i, s := range d.Steps {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// Number returns the 1-based question number of a graded step, counting
// graded steps only. It returns 0 for anything else.
func (d *Definition) Number(name string) int {
	n := 0
	for _, s := range d.Steps {
		if !s.Graded() {
			continue
		}
		n++
		if s.Name == name {
			return n
		}
	}
	return 0
}

// LastIndex returns the index of the final step, whose submission completes
// an attempt.
func (d *Definition) LastIndex() int {
	return len(d.Steps) - 1
}

// TotalWeight sums the weights of all graded steps.
func (d *Definition) TotalWeight() float64 {
	var total float64
	for _, s := range d.Steps {
		total += s.StepWeight()
	}
	return total
}

// Questions returns the number of graded steps.
func (d *Definition) Questions() int {
	n := 0
	for _, s := range d.Steps {
		if s.Graded() {
			n++
		}
	}
	return n
}
