package assessment

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/assessly/internal/transport"
)

// supersedeTransport holds the first submission until its context ends and
// answers later ones at once. Contexts are recorded in call order.
type supersedeTransport struct {
	fakeTransport
	mu   sync.Mutex
	ctxs []context.Context
}

func (c *supersedeTransport) Submit(ctx context.Context, p transport.Payload) (*transport.SubmitResponse, error) {
	c.mu.Lock()
	c.ctxs = append(c.ctxs, ctx)
	first := len(c.ctxs) == 1
	c.mu.Unlock()
	if first {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return c.fakeTransport.Submit(ctx, p)
}

func TestPipelineSecondRequestSupersedesFirst(t *testing.T) {
	tr := &supersedeTransport{fakeTransport: fakeTransport{submitResp: &transport.SubmitResponse{Step: 1}}}
	p := NewPipeline(tr, 0, nil)
	children, _ := questions(1)

	slow := p.Submit(children[0])
	fast := p.Submit(children[0])

	// The first request only returns once it is aborted.
	first := slow().(SubmitResultMsg)
	second := fast().(SubmitResultMsg)

	require.Len(t, tr.ctxs, 2)
	assert.ErrorIs(t, first.Err, context.Canceled, "superseded request is aborted")
	assert.ErrorIs(t, tr.ctxs[0].Err(), context.Canceled)
	require.NoError(t, second.Err)
	assert.NoError(t, tr.ctxs[1].Err())

	assert.True(t, p.Accept(second.Token))
	assert.False(t, p.Accept(first.Token))
	assert.False(t, p.Pending())
}

func TestPipelineAcceptsOnce(t *testing.T) {
	tr := &fakeTransport{submitResp: &transport.SubmitResponse{Step: 1}}
	p := NewPipeline(tr, 0, nil)
	children, _ := questions(1)

	msg := p.Submit(children[0])().(SubmitResultMsg)
	assert.True(t, p.Pending())
	assert.True(t, p.Accept(msg.Token))
	assert.False(t, p.Accept(msg.Token))
}

func TestPipelineBlockedRequestIsCancelled(t *testing.T) {
	tr := &fakeTransport{block: true}
	p := NewPipeline(tr, 0, nil)
	children, _ := questions(1)

	slow := p.Submit(children[0])
	done := make(chan SubmitResultMsg)
	go func() { done <- slow().(SubmitResultMsg) }()

	p.TryAgain()
	msg := <-done
	assert.ErrorIs(t, msg.Err, context.Canceled)
	assert.False(t, p.Accept(msg.Token))
}

func TestPipelinePayloads(t *testing.T) {
	tr := &fakeTransport{
		submitResp:  &transport.SubmitResponse{},
		resultsResp: &transport.ResultsResponse{},
	}
	p := NewPipeline(tr, 0, nil)

	named := ChildRef{Name: "q1", Unit: &fakeUnit{answer: "42"}}
	bare := ChildRef{Name: "q2", Unit: struct{}{}}
	unnamed := ChildRef{Unit: &fakeUnit{answer: "x"}}

	p.Submit(named)()
	p.Submit(bare)()
	p.Submit(unnamed)()
	p.GetResults(named)()

	assert.Equal(t, []transport.Payload{{"q1": "42"}, {"q2": nil}, {}}, tr.submits)
	assert.Equal(t, []transport.Payload{{"q1": nil}}, tr.queries)
}
