package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockReply is one scripted answer of a MockProvider.
type MockReply struct {
	Content      json.RawMessage
	Err          error
	InputTokens  int
	OutputTokens int
}

// MockProvider replays scripted replies in order, then Fallback. It keeps
// every prompt it receives. Selected with provider "mock" for offline runs.
type MockProvider struct {
	mu       sync.Mutex
	script   []MockReply
	prompts  []Prompt
	Fallback *MockReply
}

func NewMockProvider(script ...MockReply) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Model() string { return "mock" }

func (m *MockProvider) Complete(_ context.Context, p Prompt) (*Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, p)

	var r MockReply
	switch {
	case len(m.script) > 0:
		r, m.script = m.script[0], m.script[1:]
	case m.Fallback != nil:
		r = *m.Fallback
	default:
		return nil, &Error{Kind: KindUnavailable}
	}
	if r.Err != nil {
		return nil, r.Err
	}
	return &Completion{
		Content:      r.Content,
		Model:        "mock",
		InputTokens:  r.InputTokens,
		OutputTokens: r.OutputTokens,
	}, nil
}

// Prompts returns the prompts received so far.
func (m *MockProvider) Prompts() []Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Prompt(nil), m.prompts...)
}
