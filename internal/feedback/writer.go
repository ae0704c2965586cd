// Package feedback writes the message a learner sees after completing an
// assessment attempt.
package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/assessly/internal/llm"
)

// Question is one graded step as summarized for the message.
type Question struct {
	Number   int
	Question string
	Status   string
}

// Input describes a finished attempt.
type Input struct {
	AssessmentID string
	LearnerID    string
	Title        string
	Score        int // percentage
	Attempt      int // 1-based
	MaxAttempts  int
	Questions    []Question

	// Instructor is the authored on-review message, if any.
	Instructor string
}

// Writer produces the assessment message for a finished attempt.
type Writer interface {
	Write(ctx context.Context, in Input) (string, error)
}

// Config holds message generation settings.
type Config struct {
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// DefaultConfig returns sensible defaults for message generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   300,
		Temperature: 0.4,
	}
}

// LLMWriter writes messages with an LLM provider.
type LLMWriter struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// NewLLMWriter creates a writer backed by provider.
func NewLLMWriter(provider llm.Provider, cfg Config, log *zap.Logger) *LLMWriter {
	if log == nil {
		log = zap.NewNop()
	}
	return &LLMWriter{provider: provider, cfg: cfg, log: log}
}

type messageOutput struct {
	Message string `json:"message"`
}

func (w *LLMWriter) Write(ctx context.Context, in Input) (string, error) {
	ctx = llm.WithTag(ctx, llm.Tag{
		Purpose:      "assessment-message",
		AssessmentID: in.AssessmentID,
		LearnerID:    in.LearnerID,
	})

	resp, err := w.provider.Complete(ctx, llm.Prompt{
		Instructions: systemPrompt,
		Input:        buildUserMessage(in),
		Output:       MessageSchema,
		MaxTokens:    w.cfg.MaxTokens,
		Temperature:  w.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("assessment message generation: %w", err)
	}

	var out messageOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse assessment message: %w", err)
	}
	msg := strings.TrimSpace(out.Message)
	if msg == "" {
		return "", fmt.Errorf("parse assessment message: empty message")
	}
	w.log.Debug("assessment message generated",
		zap.String("assessment_id", in.AssessmentID),
		zap.Int("score", in.Score))
	return msg, nil
}

// Static returns the authored message unchanged.
type Static struct{}

func (Static) Write(_ context.Context, in Input) (string, error) {
	return in.Instructor, nil
}

// WithFallback returns w's message, or the authored one when w fails.
// Failures are logged and never surface to the learner.
func WithFallback(w Writer, log *zap.Logger) Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return fallbackWriter{inner: w, log: log}
}

type fallbackWriter struct {
	inner Writer
	log   *zap.Logger
}

func (f fallbackWriter) Write(ctx context.Context, in Input) (string, error) {
	msg, err := f.inner.Write(ctx, in)
	if err != nil {
		f.log.Warn("falling back to authored assessment message",
			zap.String("assessment_id", in.AssessmentID),
			zap.String("learner_id", in.LearnerID),
			zap.Error(err))
		return in.Instructor, nil
	}
	return msg, nil
}
