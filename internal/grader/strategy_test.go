package grader

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/store"
	"github.com/abhisek/assessly/internal/transport"
)

func TestStrategies(t *testing.T) {
	def := loadFractions(t)
	half := def.Steps[def.Index("half")]
	equivalent := def.Steps[def.Index("equivalent")]
	explain := def.Steps[def.Index("explain")]
	intro := def.Steps[def.Index("intro-equivalent")]

	tests := []struct {
		name       string
		step       content.Step
		submission string
		status     transport.Completion
		score      float64
		tips       []string
	}{
		{"single correct", half, `"a"`, transport.CompletionCorrect, 1, []string{"Right, one half."}},
		{"single incorrect", half, `"b"`, transport.CompletionIncorrect, 0, []string{"1/3 is about 0.33."}},
		{"multi exact", equivalent, `["3-6","2-4"]`, transport.CompletionCorrect, 1, nil},
		{"multi partial", equivalent, `["3-6"]`, transport.CompletionPartial, 0.5, nil},
		{"multi false positive", equivalent, `["2-4","2-3"]`, transport.CompletionIncorrect, 0, []string{"2/3 is larger than 1/2."}},
		{"multi empty", equivalent, `[]`, transport.CompletionIncorrect, 0, nil},
		{"text long enough", explain, `"same amount"`, transport.CompletionCorrect, 1, nil},
		{"text too short", explain, `"   half    "`, transport.CompletionIncorrect, 0, nil},
		{"content acknowledged", intro, `true`, transport.CompletionCorrect, 1, nil},
	}

	strategies := DefaultStrategies()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := strategies[tt.step.Kind].Grade(context.Background(), tt.step, json.RawMessage(tt.submission))
			require.NoError(t, err)
			assert.Equal(t, tt.status, out.Status)
			assert.InDelta(t, tt.score, out.Score, 1e-9)
			assert.Equal(t, tt.tips, out.Tips)
		})
	}
}

func TestStrategies_NoPartialCredit(t *testing.T) {
	def := loadFractions(t)
	equivalent := def.Steps[def.Index("equivalent")]

	s := DefaultStrategies(WithPartialMulti(false))[content.KindMRQ]
	out, err := s.Grade(context.Background(), equivalent, json.RawMessage(`["3-6"]`))
	require.NoError(t, err)
	assert.Equal(t, transport.CompletionIncorrect, out.Status)
	assert.Zero(t, out.Score)
}

func TestFreeText_Message(t *testing.T) {
	def := loadFractions(t)
	explain := def.Steps[def.Index("explain")]

	out, err := freeText{}.Grade(context.Background(), explain, json.RawMessage(`"short"`))
	require.NoError(t, err)
	assert.Equal(t, "The answer needs at least 10 characters.", out.Message)

	_, err = freeText{}.Grade(context.Background(), explain, json.RawMessage(`42`))
	assert.ErrorIs(t, err, ErrInvalidSubmission)
}

func TestComputeScore_NoGradedWeight(t *testing.T) {
	def := &content.Definition{Steps: []content.Step{{Kind: content.KindHTML, Name: "intro"}}}
	assert.Equal(t, Score{}, computeScore(def, nil))
}

func TestPercentage_CountsUnansweredAsZero(t *testing.T) {
	def := loadFractions(t)
	results := []store.StudentResult{
		{Name: "half", Status: "correct", Score: 1, Weight: 1},
		{Name: "equivalent", Status: "partial", Score: 0.5, Weight: 2},
	}
	assert.Equal(t, 50, Percentage(def, results))
	assert.Equal(t, 0, Percentage(def, nil))
}
