package grader

import (
	"encoding/json"
	"math"

	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/store"
	"github.com/abhisek/assessly/internal/transport"
)

// Score is the weighted result of an attempt so far.
type Score struct {
	Raw        float64 // 0..1
	Percentage int
	Correct    []transport.AnswerSummary
	Incorrect  []transport.AnswerSummary
	Partial    []transport.AnswerSummary
}

// computeScore averages the recorded results by step weight over the total
// weight of all graded steps, so unanswered steps count as zero.
func computeScore(def *content.Definition, results []store.StudentResult) Score {
	total := def.TotalWeight()
	if total == 0 {
		return Score{}
	}
	var sum float64
	for _, r := range results {
		sum += r.Score * r.Weight
	}
	raw := sum / total
	return Score{
		Raw:        raw,
		Percentage: int(math.Round(raw * 100)),
		Correct:    answers(def, results, transport.CompletionCorrect),
		Incorrect:  answers(def, results, transport.CompletionIncorrect),
		Partial:    answers(def, results, transport.CompletionPartial),
	}
}

// Percentage returns the learner's current score in def as a whole percent.
func Percentage(def *content.Definition, results []store.StudentResult) int {
	return computeScore(def, results).Percentage
}

// answers lists the graded steps whose result has the given status, in
// recording order. Ungraded steps have no question number and are skipped.
func answers(def *content.Definition, results []store.StudentResult, status transport.Completion) []transport.AnswerSummary {
	out := []transport.AnswerSummary{}
	for _, r := range results {
		if transport.Completion(r.Status) != status {
			continue
		}
		n := def.Number(r.Name)
		if n == 0 {
			continue
		}
		details, err := json.Marshal(childResult(r, nil))
		if err != nil {
			continue
		}
		out = append(out, transport.AnswerSummary{Number: n, ID: r.Name, Details: details})
	}
	return out
}

func childResult(r store.StudentResult, tips []string) transport.ChildResult {
	return transport.ChildResult{
		Status:     transport.Completion(r.Status),
		Score:      r.Score,
		Weight:     r.Weight,
		Submission: r.Submission,
		Tips:       tips,
		Message:    r.Message,
	}
}
