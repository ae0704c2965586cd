package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/assessly/internal/store"
)

func TestMockProvider(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Content: json.RawMessage(`{"message":"one"}`), InputTokens: 10, OutputTokens: 4},
		MockReply{Err: &Error{Kind: KindRateLimited}},
	)

	c, err := mock.Complete(context.Background(), Prompt{Input: "first"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"one"}`, string(c.Content))
	assert.Equal(t, 10, c.InputTokens)

	_, err = mock.Complete(context.Background(), Prompt{Input: "second"})
	kind, _ := KindOf(err)
	assert.Equal(t, KindRateLimited, kind)

	_, err = mock.Complete(context.Background(), Prompt{})
	kind, _ = KindOf(err)
	assert.Equal(t, KindUnavailable, kind)

	mock.Fallback = &MockReply{Content: json.RawMessage(`{"message":"again"}`)}
	c, err = mock.Complete(context.Background(), Prompt{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"again"}`, string(c.Content))

	prompts := mock.Prompts()
	require.Len(t, prompts, 4)
	assert.Equal(t, "first", prompts[0].Input)
}

func TestWrap_Order(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next Provider) Provider {
			return providerFunc(func(ctx context.Context, p Prompt) (*Completion, error) {
				order = append(order, name)
				return next.Complete(ctx, p)
			})
		}
	}
	p := Wrap(NewMockProvider(ok(`{}`)), mark("outer"), mark("inner"))
	_, err := p.Complete(context.Background(), Prompt{})
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

type providerFunc func(context.Context, Prompt) (*Completion, error)

func (f providerFunc) Complete(ctx context.Context, p Prompt) (*Completion, error) { return f(ctx, p) }
func (f providerFunc) Model() string                                                { return "func" }

func TestTag(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Tag{Purpose: "unknown"}, TagFrom(ctx))

	ctx = WithTag(ctx, Tag{Purpose: "assessment-message", AssessmentID: "fractions-101", LearnerID: "ana"})
	assert.Equal(t, "assessment-message", TagFrom(ctx).Purpose)
	assert.Equal(t, "ana", TagFrom(ctx).LearnerID)
}

func TestError(t *testing.T) {
	err := statusError(503, errors.New("overloaded"))
	assert.Equal(t, KindUnavailable, err.Kind)
	assert.Equal(t, "llm: unavailable (503): overloaded", err.Error())
	assert.Equal(t, KindUnavailable, statusError(0, nil).Kind)
	assert.Equal(t, KindRejected, statusError(404, nil).Kind)

	wrapped := errors.Join(errors.New("ctx"), &Error{Kind: KindTruncated})
	kind, ok := KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindTruncated, kind)
	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "disabled", cfg: Config{}},
		{name: "mock needs no key", cfg: Config{Provider: ProviderMock}},
		{name: "anthropic with key", cfg: Config{Provider: ProviderAnthropic, Anthropic: ProviderConfig{APIKey: "sk-test"}}},
		{name: "anthropic without key", cfg: Config{Provider: ProviderAnthropic}, wantErr: "ASSESSLY_LLM_ANTHROPIC_API_KEY"},
		{name: "openrouter without key", cfg: Config{Provider: ProviderOpenRouter}, wantErr: "ASSESSLY_LLM_OPENROUTER_API_KEY"},
		{name: "unknown provider", cfg: Config{Provider: "unknown"}, wantErr: "unknown LLM provider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_Discover(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-anthropic")
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled())
	require.True(t, cfg.Discover())
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "sk-openai", cfg.OpenAI.APIKey)

	explicit := Config{Provider: ProviderMock}
	assert.True(t, explicit.Discover())
	assert.Equal(t, ProviderMock, explicit.Provider)
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, nil, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "mock", p.Model())

	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenRouter
	cfg.OpenRouter.APIKey = "sk-or"
	p, err = NewProvider(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "google/gemini-2.0-flash-exp", p.Model())

	_, err = NewProvider(context.Background(), Config{}, nil, nil)
	assert.Error(t, err)
	_, err = NewProvider(context.Background(), Config{Provider: ProviderAnthropic}, nil, nil)
	assert.ErrorContains(t, err, "API_KEY")
}

type llmEvents struct {
	store.EventRepo
	mu   sync.Mutex
	seen []store.LLMRequestEventData
}

func (e *llmEvents) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seen = append(e.seen, data)
	return nil
}

func TestRecord(t *testing.T) {
	events := &llmEvents{}
	core, logs := observer.New(zap.DebugLevel)
	mock := NewMockProvider(
		MockReply{Content: json.RawMessage(`{"message":"hi"}`), InputTokens: 7, OutputTokens: 3},
		fail(KindUnavailable),
	)
	p := Wrap(mock, Record(ProviderMock, events, zap.New(core)))

	ctx := WithTag(context.Background(), Tag{Purpose: "assessment-message", AssessmentID: "fractions-101", LearnerID: "ana"})
	prompt := Prompt{Instructions: "be brief", Input: "score 80", Output: messageSchema}
	_, err := p.Complete(ctx, prompt)
	require.NoError(t, err)
	_, err = p.Complete(ctx, prompt)
	require.Error(t, err)

	require.Len(t, events.seen, 2)
	first := events.seen[0]
	assert.True(t, first.Success)
	assert.Equal(t, ProviderMock, first.Provider)
	assert.Equal(t, "fractions-101", first.AssessmentID)
	assert.Equal(t, "ana", first.LearnerID)
	assert.Equal(t, "assessment-message", first.Purpose)
	assert.Equal(t, 7, first.InputTokens)
	assert.Contains(t, first.RequestBody, "[instructions]\nbe brief")
	assert.Contains(t, first.RequestBody, "[output: assessment-message]")
	assert.JSONEq(t, `{"message":"hi"}`, first.ResponseBody)

	second := events.seen[1]
	assert.False(t, second.Success)
	assert.Contains(t, second.ErrorMessage, "unavailable")
	assert.Equal(t, 1, logs.FilterMessage("llm request failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("llm request").Len())
}

func TestRecord_WithoutStore(t *testing.T) {
	p := Wrap(NewMockProvider(ok(`{}`)), Record(ProviderMock, nil, nil))
	_, err := p.Complete(context.Background(), Prompt{Input: "x"})
	assert.NoError(t, err)
}
