package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(p Provider) Provider {
	return Wrap(p, Retry(RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}))
}

func ok(content string) MockReply {
	return MockReply{Content: json.RawMessage(content)}
}

func fail(kind ErrorKind) MockReply {
	return MockReply{Err: &Error{Kind: kind, Err: errors.New(kind.String())}}
}

func TestRetry(t *testing.T) {
	tests := []struct {
		name    string
		script  []MockReply
		calls   int
		wantErr bool
	}{
		{"first try", []MockReply{ok(`{}`)}, 1, false},
		{"transient then success", []MockReply{fail(KindUnavailable), fail(KindRateLimited), ok(`{}`)}, 3, false},
		{"gives up", []MockReply{fail(KindUnavailable), fail(KindUnavailable), fail(KindUnavailable), ok(`{}`)}, 3, true},
		{"rejected", []MockReply{fail(KindRejected), ok(`{}`)}, 1, true},
		{"truncated", []MockReply{fail(KindTruncated), ok(`{}`)}, 1, true},
		{"invalid output once", []MockReply{fail(KindInvalidOutput), ok(`{}`)}, 2, false},
		{"invalid output twice", []MockReply{fail(KindInvalidOutput), fail(KindInvalidOutput), ok(`{}`)}, 2, true},
		{"plain error is transient", []MockReply{{Err: errors.New("reset by peer")}, ok(`{}`)}, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.script...)
			_, err := fastRetry(mock).Complete(context.Background(), Prompt{Input: "x"})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, mock.Prompts(), tt.calls)
		})
	}
}

func TestRetry_HonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &Error{Kind: KindRateLimited, RetryAfter: 30 * time.Millisecond}},
		ok(`{}`),
	)
	start := time.Now()
	_, err := fastRetry(mock).Complete(context.Background(), Prompt{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestRetry_StopsOnCancel(t *testing.T) {
	mock := NewMockProvider(fail(KindUnavailable), ok(`{}`))
	p := Wrap(mock, Retry(RetryConfig{MaxAttempts: 3, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 2}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := p.Complete(ctx, Prompt{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, mock.Prompts(), 1)
}

func TestRetry_SingleAttempt(t *testing.T) {
	mock := NewMockProvider(fail(KindUnavailable), ok(`{}`))
	p := Wrap(mock, Retry(RetryConfig{}))
	_, err := p.Complete(context.Background(), Prompt{})
	assert.Error(t, err)
	assert.Equal(t, "mock", p.Model())
}
