package assessment

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/assessly/internal/transport"
)

// SubmitResultMsg delivers the outcome of a submission to the event loop.
type SubmitResultMsg struct {
	Token uint64
	Resp  *transport.SubmitResponse
	Err   error
}

// ResultsMsg delivers the outcome of a review results query.
type ResultsMsg struct {
	Token uint64
	Resp  *transport.ResultsResponse
	Err   error
}

// TryAgainResultMsg delivers the outcome of a reset request.
type TryAgainResultMsg struct {
	Token uint64
	Resp  *transport.TryAgainResponse
	Err   error
}

// Pipeline issues grading requests with at most one in flight per session.
// Requests run inside a tea.Cmd; their results come back as messages that the
// controller hands to Accept before applying them.
type Pipeline struct {
	transport transport.Transport
	timeout   time.Duration
	log       *zap.Logger

	token   uint64
	pending bool
	cancel  context.CancelFunc
}

// NewPipeline creates a pipeline over the given transport.
func NewPipeline(t transport.Transport, timeout time.Duration, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{transport: t, timeout: timeout, log: log}
}

// Pending reports whether a request is outstanding.
func (p *Pipeline) Pending() bool {
	return p.pending
}

// Submit issues a grading request for the active child.
func (p *Pipeline) Submit(child ChildRef) tea.Cmd {
	payload := transport.Payload{}
	if sub, ok := child.submission(); ok {
		payload[child.Name] = sub
	}
	ctx, token := p.begin()
	t := p.transport
	return func() tea.Msg {
		resp, err := t.Submit(ctx, payload)
		return SubmitResultMsg{Token: token, Resp: resp, Err: err}
	}
}

// GetResults fetches the stored result of the active child for review.
func (p *Pipeline) GetResults(child ChildRef) tea.Cmd {
	payload := transport.Payload{}
	if q, ok := child.resultsQuery(); ok {
		payload[child.Name] = q
	}
	ctx, token := p.begin()
	t := p.transport
	return func() tea.Msg {
		resp, err := t.GetResults(ctx, payload)
		return ResultsMsg{Token: token, Resp: resp, Err: err}
	}
}

// TryAgain asks the grader to reset the learner's progress.
func (p *Pipeline) TryAgain() tea.Cmd {
	ctx, token := p.begin()
	t := p.transport
	return func() tea.Msg {
		resp, err := t.TryAgain(ctx)
		return TryAgainResultMsg{Token: token, Resp: resp, Err: err}
	}
}

// Accept reports whether a result with the given token may be applied.
// Only the most recently issued request is accepted, and only once.
func (p *Pipeline) Accept(token uint64) bool {
	if !p.pending || token != p.token {
		p.log.Debug("dropping superseded response",
			zap.Uint64("token", token),
			zap.Uint64("current", p.token),
		)
		return false
	}
	p.pending = false
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	return true
}

// Cancel aborts the outstanding request, if any.
func (p *Pipeline) Cancel() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.pending = false
}

// begin cancels any outstanding request and issues a new token.
func (p *Pipeline) begin() (context.Context, uint64) {
	if p.pending {
		p.log.Debug("aborting pending request", zap.Uint64("token", p.token))
	}
	p.Cancel()

	ctx, cancel := context.Background(), context.CancelFunc(nil)
	if p.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	p.token++
	p.pending = true
	p.cancel = cancel
	return ctx, p.token
}

// dispatchReview replays a stored result into the active child as if it had
// just been submitted, then as a review.
func dispatchReview(child ChildRef, resp *transport.ResultsResponse, opts ResultOptions) {
	result, ok := resp.ResultFor(child.Name)
	if !ok {
		return
	}
	if h, ok := child.Unit.(SubmitHandler); ok {
		h.HandleSubmit(result, opts)
	}
	if h, ok := child.Unit.(ReviewHandler); ok {
		h.HandleReview(result, opts)
	}
}
