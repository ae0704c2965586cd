// Package llm asks hosted language models for short, schema-checked texts.
package llm

import (
	"context"
	"encoding/json"
)

// Provider completes single-turn prompts.
type Provider interface {
	Complete(ctx context.Context, p Prompt) (*Completion, error)

	// Model is the model ID requests are sent to.
	Model() string
}

// Prompt is one instruction block plus one learner-facing input.
type Prompt struct {
	Instructions string
	Input        string

	// Output asks for JSON matching the schema. Nil returns plain text.
	Output *OutputSchema

	MaxTokens   int
	Temperature float64 // 0 leaves the provider default
}

// Completion is a provider's answer to a prompt.
type Completion struct {
	// Content is the JSON object when the prompt had an Output schema,
	// otherwise the text as returned.
	Content json.RawMessage
	Model   string

	// Truncated is set when generation stopped at MaxTokens.
	Truncated bool

	InputTokens  int
	OutputTokens int
}

// Middleware decorates a Provider.
type Middleware func(Provider) Provider

// Wrap applies mws around p. The first middleware is the outermost.
func Wrap(p Provider, mws ...Middleware) Provider {
	for i := len(mws) - 1; i >= 0; i-- {
		p = mws[i](p)
	}
	return p
}

// finish checks a raw completion against the prompt before it is returned.
// A truncated structured answer can never be valid JSON for the schema.
func finish(p Prompt, c *Completion) (*Completion, error) {
	if p.Output == nil {
		return c, nil
	}
	if c.Truncated {
		return nil, &Error{Kind: KindTruncated, Content: c.Content}
	}
	if err := p.Output.Check(c.Content); err != nil {
		return nil, err
	}
	return c, nil
}
