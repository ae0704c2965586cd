package llm

import "context"

// Tag labels a request for the LLM request log.
type Tag struct {
	Purpose      string
	AssessmentID string
	LearnerID    string
}

type tagKey struct{}

// WithTag attaches t to ctx.
func WithTag(ctx context.Context, t Tag) context.Context {
	return context.WithValue(ctx, tagKey{}, t)
}

// TagFrom returns the request tag. The purpose defaults to "unknown".
func TagFrom(ctx context.Context) Tag {
	t, _ := ctx.Value(tagKey{}).(Tag)
	if t.Purpose == "" {
		t.Purpose = "unknown"
	}
	return t
}
