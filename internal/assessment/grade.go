package assessment

import "github.com/abhisek/assessly/internal/transport"

// GradeState is the grading data the grade summary renders from.
// It is written only by grading responses.
type GradeState struct {
	Score                  int
	CorrectAnswer          int
	IncorrectAnswer        int
	PartiallyCorrectAnswer int
	AssessmentMessage      string
	Completed              transport.Completion

	// ReviewMessage is the grader's message for the reviewed step.
	ReviewMessage string

	correct   []transport.AnswerSummary
	incorrect []transport.AnswerSummary
	partial   []transport.AnswerSummary
}

func (g *GradeState) applySubmit(r *transport.SubmitResponse) {
	g.Score = r.Score
	g.CorrectAnswer = r.CorrectAnswer
	g.IncorrectAnswer = r.IncorrectAnswer
	g.PartiallyCorrectAnswer = r.PartiallyCorrectAnswer
	g.AssessmentMessage = r.AssessmentMessage
	g.Completed = r.Completed
	g.correct = r.Correct
	g.incorrect = r.Incorrect
	g.partial = r.Partial
}

func (g *GradeState) applyResults(r *transport.ResultsResponse) {
	g.Completed = r.Completed
	g.ReviewMessage = r.Message
}

// breakdown returns the answers with the given outcome.
func (g GradeState) breakdown(c transport.Completion) []transport.AnswerSummary {
	switch c {
	case transport.CompletionCorrect:
		return g.correct
	case transport.CompletionIncorrect:
		return g.incorrect
	case transport.CompletionPartial:
		return g.partial
	}
	return nil
}
