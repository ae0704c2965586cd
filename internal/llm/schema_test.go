package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputSchema_Check(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"required only", `{"message":"Well done."}`, true},
		{"with optional", `{"message":"Well done.","tone":"warm"}`, true},
		{"missing required", `{"tone":"warm"}`, false},
		{"wrong type", `{"message":3}`, false},
		{"bad enum", `{"message":"x","tone":"cold"}`, false},
		{"empty string", `{"message":""}`, false},
		{"extra field", `{"message":"x","score":1}`, false},
		{"not json", `Well done.`, false},
		{"empty", ``, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := messageSchema.Check(json.RawMessage(tt.raw))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			kind, ok := KindOf(err)
			require.True(t, ok)
			assert.Equal(t, KindInvalidOutput, kind)
		})
	}
}

func TestOutputSchema_BadDefinition(t *testing.T) {
	s := &OutputSchema{Name: "broken", Definition: map[string]any{"type": 12}}
	err := s.Check(json.RawMessage(`{}`))
	require.Error(t, err)
	_, ok := KindOf(err)
	assert.False(t, ok, "a schema that does not compile is a programming error, not invalid output")
}

func TestFinish(t *testing.T) {
	p := Prompt{Output: messageSchema}

	_, err := finish(p, &Completion{Content: json.RawMessage(`{"message":"x`), Truncated: true})
	kind, _ := KindOf(err)
	assert.Equal(t, KindTruncated, kind)

	c, err := finish(Prompt{}, &Completion{Content: json.RawMessage(`plain text`), Truncated: true})
	require.NoError(t, err)
	assert.Equal(t, "plain text", string(c.Content))
}
