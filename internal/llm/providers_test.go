package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, status int, body any, seen *map[string]any) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			data, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(data, seen)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_1",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-haiku-4-5-20251001",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 42, "output_tokens": 12},
	}
}

func anthropicError(kind string) map[string]any {
	return map[string]any{"type": "error", "error": map[string]any{"type": kind, "message": kind}}
}

func kindOf(t *testing.T, err error) ErrorKind {
	t.Helper()
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok, "expected *llm.Error, got %T: %v", err, err)
	return kind
}

func TestAnthropic_Complete(t *testing.T) {
	var seen map[string]any
	url := serve(t, http.StatusOK, anthropicMessage(`{"message":"Nice work."}`, "end_turn"), &seen)
	p := newAnthropic(ProviderConfig{APIKey: "k", Model: "claude-haiku", BaseURL: url})
	assert.Equal(t, "claude-haiku-4-5-20251001", p.Model())

	c, err := p.Complete(context.Background(), Prompt{
		Instructions: "Be brief.",
		Input:        "Score: 80%",
		Output:       messageSchema,
		MaxTokens:    200,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Nice work."}`, string(c.Content))
	assert.Equal(t, 42, c.InputTokens)
	assert.Equal(t, 12, c.OutputTokens)
	assert.False(t, c.Truncated)

	assert.Equal(t, "claude-haiku-4-5-20251001", seen["model"])
	assert.EqualValues(t, 200, seen["max_tokens"])
	assert.NotNil(t, seen["output_config"])
}

func TestAnthropic_Outcomes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   any
		want   ErrorKind
	}{
		{"rate limited", http.StatusTooManyRequests, anthropicError("rate_limit_error"), KindRateLimited},
		{"server error", http.StatusInternalServerError, anthropicError("api_error"), KindUnavailable},
		{"bad key", http.StatusUnauthorized, anthropicError("authentication_error"), KindRejected},
		{"schema mismatch", http.StatusOK, anthropicMessage(`{"note":"x"}`, "end_turn"), KindInvalidOutput},
		{"cut off", http.StatusOK, anthropicMessage(`{"message":"Nice`, "max_tokens"), KindTruncated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newAnthropic(ProviderConfig{APIKey: "k", Model: "claude-haiku", BaseURL: serve(t, tt.status, tt.body, nil)})
			_, err := p.Complete(context.Background(), Prompt{Input: "x", Output: messageSchema, MaxTokens: 50})
			assert.Equal(t, tt.want, kindOf(t, err))
		})
	}
}

func openaiCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 30, "completion_tokens": 9, "total_tokens": 39},
	}
}

func openaiError(kind string) map[string]any {
	return map[string]any{"error": map[string]any{"message": kind, "type": kind}}
}

func TestOpenAI_Complete(t *testing.T) {
	var seen map[string]any
	url := serve(t, http.StatusOK, openaiCompletion(`{"message":"Good effort."}`, "stop"), &seen)
	p := newOpenAI(ProviderConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: url + "/v1"})

	c, err := p.Complete(context.Background(), Prompt{
		Instructions: "Be brief.",
		Input:        "Score: 50%",
		Output:       messageSchema,
		MaxTokens:    100,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Good effort."}`, string(c.Content))
	assert.Equal(t, "gpt-4o-mini", c.Model)
	assert.Equal(t, 30, c.InputTokens)

	msgs, _ := seen["messages"].([]any)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	format, _ := seen["response_format"].(map[string]any)
	assert.Equal(t, "json_schema", format["type"])
}

func TestOpenAI_PlainText(t *testing.T) {
	url := serve(t, http.StatusOK, openaiCompletion("Keep going.", "length"), nil)
	p := newOpenAI(ProviderConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: url + "/v1"})

	c, err := p.Complete(context.Background(), Prompt{Input: "x"})
	require.NoError(t, err)
	assert.Equal(t, "Keep going.", string(c.Content))
	assert.True(t, c.Truncated)
}

func TestOpenAI_Outcomes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   any
		want   ErrorKind
	}{
		{"rate limited", http.StatusTooManyRequests, openaiError("rate_limit_exceeded"), KindRateLimited},
		{"server error", http.StatusBadGateway, openaiError("server_error"), KindUnavailable},
		{"bad key", http.StatusUnauthorized, openaiError("invalid_api_key"), KindRejected},
		{"schema mismatch", http.StatusOK, openaiCompletion(`{"message":7}`, "stop"), KindInvalidOutput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newOpenAI(ProviderConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: serve(t, tt.status, tt.body, nil) + "/v1"})
			_, err := p.Complete(context.Background(), Prompt{Input: "x", Output: messageSchema})
			assert.Equal(t, tt.want, kindOf(t, err))
		})
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{"type": "string", "minLength": 1, "maxLength": float64(1200)},
			"tone":    map[string]any{"type": "string", "enum": []any{"warm", "neutral"}},
			"topics":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required":             []any{"message"},
		"additionalProperties": false,
	})

	assert.Equal(t, "OBJECT", string(s.Type))
	require.Len(t, s.Properties, 3)
	msg := s.Properties["message"]
	assert.Equal(t, "STRING", string(msg.Type))
	require.NotNil(t, msg.MinLength)
	assert.EqualValues(t, 1, *msg.MinLength)
	assert.EqualValues(t, 1200, *msg.MaxLength)
	assert.Equal(t, []string{"warm", "neutral"}, s.Properties["tone"].Enum)
	assert.Equal(t, "STRING", string(s.Properties["topics"].Items.Type))
	assert.Equal(t, []string{"message"}, s.Required)
}

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "claude-sonnet-4-20250514", resolveModel("claude-sonnet"))
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-flash"))
	assert.Equal(t, "gpt-4o-mini", resolveModel("gpt-4o-mini"))
}
