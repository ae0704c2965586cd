package grader

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/transport"
)

// Outcome is the grading of a single step submission.
type Outcome struct {
	Status  transport.Completion
	Score   float64 // 0..1
	Tips    []string
	Message string
}

// Strategy grades one kind of step.
type Strategy interface {
	Grade(ctx context.Context, step content.Step, submission json.RawMessage) (Outcome, error)
}

// StrategyOption configures the built-in strategies.
type StrategyOption func(*strategyConfig)

type strategyConfig struct {
	partialMulti bool
}

// WithPartialMulti toggles partial credit for multiple response steps.
func WithPartialMulti(b bool) StrategyOption {
	return func(c *strategyConfig) { c.partialMulti = b }
}

// DefaultStrategies returns the strategy for every step kind that accepts
// submissions.
func DefaultStrategies(opts ...StrategyOption) map[content.Kind]Strategy {
	cfg := &strategyConfig{partialMulti: true}
	for _, o := range opts {
		o(cfg)
	}
	return map[content.Kind]Strategy{
		content.KindMCQ:    singleChoice{},
		content.KindMRQ:    multiChoice{allowPartial: cfg.partialMulti},
		content.KindAnswer: freeText{},
		content.KindHTML:   acknowledge{},
	}
}

func decode[T any](submission json.RawMessage, what string) (T, error) {
	var v T
	if err := json.Unmarshal(submission, &v); err != nil {
		return v, fmt.Errorf("%w: expected %s", ErrInvalidSubmission, what)
	}
	return v, nil
}

type singleChoice struct{}

func (singleChoice) Grade(_ context.Context, step content.Step, submission json.RawMessage) (Outcome, error) {
	value, err := decode[string](submission, "a choice value")
	if err != nil {
		return Outcome{}, err
	}
	choice, ok := step.Choice(value)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q is not a choice", ErrInvalidSubmission, value)
	}

	out := Outcome{Status: transport.CompletionIncorrect}
	if choice.Tip != "" {
		out.Tips = []string{choice.Tip}
	}
	for _, k := range step.Correct {
		if value == k {
			out.Status = transport.CompletionCorrect
			out.Score = 1
			break
		}
	}
	return out, nil
}

type multiChoice struct{ allowPartial bool }

func (s multiChoice) Grade(_ context.Context, step content.Step, submission json.RawMessage) (Outcome, error) {
	values, err := decode[[]string](submission, "a list of choice values")
	if err != nil {
		return Outcome{}, err
	}

	correct := toSet(step.Correct)
	picked := toSet(values)
	out := Outcome{Status: transport.CompletionIncorrect}
	for _, v := range values {
		choice, ok := step.Choice(v)
		if !ok {
			return Outcome{}, fmt.Errorf("%w: %q is not a choice", ErrInvalidSubmission, v)
		}
		if choice.Tip != "" {
			out.Tips = append(out.Tips, choice.Tip)
		}
	}

	hits, falsePositive := 0, false
	for v := range picked {
		if _, ok := correct[v]; ok {
			hits++
		} else {
			falsePositive = true
		}
	}
	switch {
	case hits == len(correct) && !falsePositive:
		out.Status = transport.CompletionCorrect
		out.Score = 1
	case s.allowPartial && !falsePositive && hits > 0:
		out.Status = transport.CompletionPartial
		out.Score = float64(hits) / float64(len(correct))
	}
	return out, nil
}

type freeText struct{}

func (freeText) Grade(_ context.Context, step content.Step, submission json.RawMessage) (Outcome, error) {
	text, err := decode[string](submission, "an answer text")
	if err != nil {
		return Outcome{}, err
	}
	need := max(step.MinChars, 1)
	if utf8.RuneCountInString(strings.TrimSpace(text)) < need {
		return Outcome{
			Status:  transport.CompletionIncorrect,
			Message: fmt.Sprintf("The answer needs at least %d characters.", need),
		}, nil
	}
	return Outcome{Status: transport.CompletionCorrect, Score: 1}, nil
}

// acknowledge accepts any submission of a content step.
type acknowledge struct{}

func (acknowledge) Grade(context.Context, content.Step, json.RawMessage) (Outcome, error) {
	return Outcome{Status: transport.CompletionCorrect, Score: 1}, nil
}

func toSet(values []string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}
