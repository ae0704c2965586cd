package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/assessly/internal/llm"
)

func sampleInput() Input {
	return Input{
		AssessmentID: "fractions-101",
		LearnerID:    "ana",
		Title:        "Fractions",
		Score:        67,
		Attempt:      1,
		MaxAttempts:  2,
		Questions: []Question{
			{Number: 1, Question: "Which is one half?", Status: "correct"},
			{Number: 2, Question: "Pick the equivalent fractions", Status: "partial"},
		},
		Instructor: "Review equivalent fractions.",
	}
}

func TestLLMWriter_Write(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{
		Content: json.RawMessage(`{"message":"  Nice work on halves. Revisit equivalent fractions.  "}`),
	})
	w := NewLLMWriter(mock, DefaultConfig(), nil)

	msg, err := w.Write(context.Background(), sampleInput())
	require.NoError(t, err)
	assert.Equal(t, "Nice work on halves. Revisit equivalent fractions.", msg)

	prompts := mock.Prompts()
	require.Len(t, prompts, 1)
	p := prompts[0]
	assert.Same(t, MessageSchema, p.Output)
	assert.Equal(t, 300, p.MaxTokens)
	assert.Equal(t, systemPrompt, p.Instructions)
	user := p.Input
	assert.Contains(t, user, "Score: 67%")
	assert.Contains(t, user, "Attempt: 1 of 2")
	assert.Contains(t, user, "2. Pick the equivalent fractions [partial]")
	assert.Contains(t, user, "Review equivalent fractions.")
}

func TestLLMWriter_Errors(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockReply{Err: &llm.Error{Kind: llm.KindUnavailable, Err: errors.New("down")}},
		llm.MockReply{Content: json.RawMessage(`{"message":"   "}`)},
	)
	w := NewLLMWriter(mock, DefaultConfig(), nil)

	_, err := w.Write(context.Background(), sampleInput())
	assert.ErrorContains(t, err, "assessment message generation")

	_, err = w.Write(context.Background(), sampleInput())
	assert.ErrorContains(t, err, "empty message")
}

func TestWithFallback(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	mock := llm.NewMockProvider(llm.MockReply{Err: &llm.Error{Kind: llm.KindRateLimited}})
	w := WithFallback(NewLLMWriter(mock, DefaultConfig(), nil), zap.New(core))

	msg, err := w.Write(context.Background(), sampleInput())
	require.NoError(t, err)
	assert.Equal(t, "Review equivalent fractions.", msg)
	assert.Equal(t, 1, logs.Len())
}

func TestStatic(t *testing.T) {
	msg, err := Static{}.Write(context.Background(), sampleInput())
	require.NoError(t, err)
	assert.Equal(t, "Review equivalent fractions.", msg)
}

func TestBuildUserMessage_Unlimited(t *testing.T) {
	in := sampleInput()
	in.MaxAttempts = 0
	in.Questions = nil
	in.Instructor = ""
	msg := buildUserMessage(in)
	assert.Contains(t, msg, "Attempt: 1 (unlimited)")
	assert.Contains(t, msg, "Questions:\nNone")
	assert.NotContains(t, msg, "Instructor")
}
