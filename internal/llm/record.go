package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/assessly/internal/store"
)

// Record logs every request and appends it to the event store as an
// llm_request event. A nil events repo only logs.
func Record(provider string, events store.EventRepo, log *zap.Logger) Middleware {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next Provider) Provider {
		return &recording{next: next, provider: provider, events: events, log: log}
	}
}

type recording struct {
	next     Provider
	provider string
	events   store.EventRepo
	log      *zap.Logger
}

func (r *recording) Model() string { return r.next.Model() }

func (r *recording) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	started := time.Now()
	c, err := r.next.Complete(ctx, p)

	tag := TagFrom(ctx)
	ev := store.LLMRequestEventData{
		AssessmentID: tag.AssessmentID,
		LearnerID:    tag.LearnerID,
		Provider:     r.provider,
		Model:        r.next.Model(),
		Purpose:      tag.Purpose,
		LatencyMs:    time.Since(started).Milliseconds(),
		Success:      err == nil,
		RequestBody:  transcript(p),
	}
	if c != nil {
		ev.Model = c.Model
		ev.InputTokens = c.InputTokens
		ev.OutputTokens = c.OutputTokens
		ev.ResponseBody = string(c.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	log := r.log.With(
		zap.String("provider", ev.Provider),
		zap.String("model", ev.Model),
		zap.String("purpose", ev.Purpose),
		zap.Int64("latency_ms", ev.LatencyMs))
	if err != nil {
		log.Warn("llm request failed", zap.Error(err))
	} else {
		log.Debug("llm request",
			zap.Int("input_tokens", ev.InputTokens),
			zap.Int("output_tokens", ev.OutputTokens))
	}

	if r.events != nil {
		if rerr := r.events.AppendLLMRequest(ctx, ev); rerr != nil {
			r.log.Warn("record llm request", zap.Error(rerr))
		}
	}
	return c, err
}

// transcript renders a prompt for the request log.
func transcript(p Prompt) string {
	var b strings.Builder
	if p.Instructions != "" {
		fmt.Fprintf(&b, "[instructions]\n%s\n\n", p.Instructions)
	}
	fmt.Fprintf(&b, "[input]\n%s\n", p.Input)
	if p.Output != nil {
		def, _ := json.Marshal(p.Output.Definition)
		fmt.Fprintf(&b, "\n[output: %s]\n%s\n", p.Output.Name, def)
	}
	return b.String()
}
