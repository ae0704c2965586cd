package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/assessly/internal/telemetry"
	"github.com/abhisek/assessly/internal/transport"
)

// fakeTransport answers from canned responses and records every call.
type fakeTransport struct {
	mu sync.Mutex

	submitResp  *transport.SubmitResponse
	submitErr   error
	resultsResp *transport.ResultsResponse
	tryResp     *transport.TryAgainResponse

	// block, when set, makes calls wait for the context to end.
	block bool

	submits  []transport.Payload
	queries  []transport.Payload
	tryAgain int
}

func (f *fakeTransport) Submit(ctx context.Context, p transport.Payload) (*transport.SubmitResponse, error) {
	f.mu.Lock()
	f.submits = append(f.submits, p)
	block, resp, err := f.block, f.submitResp, f.submitErr
	f.mu.Unlock()
	if block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	cp := *resp
	return &cp, nil
}

func (f *fakeTransport) GetResults(_ context.Context, p transport.Payload) (*transport.ResultsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, p)
	if f.resultsResp == nil {
		return &transport.ResultsResponse{}, nil
	}
	cp := *f.resultsResp
	return &cp, nil
}

func (f *fakeTransport) TryAgain(_ context.Context) (*transport.TryAgainResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tryAgain++
	if f.tryResp == nil {
		return nil, fmt.Errorf("no try again response")
	}
	return f.tryResp, nil
}

func (f *fakeTransport) State(context.Context) (*transport.StateResponse, error) {
	return &transport.StateResponse{}, nil
}

// fakeUnit implements every optional capability.
type fakeUnit struct {
	answer   string
	validity Validity

	validations int
	displays    []DisplayOptions
	submitted   []json.RawMessage
	reviewed    []json.RawMessage
	cleans      int
}

func (u *fakeUnit) ProduceSubmission() any { return u.answer }
func (u *fakeUnit) ResultsQuery() any      { return nil }
func (u *fakeUnit) Validate() Validity {
	u.validations++
	return u.validity
}
func (u *fakeUnit) Display(opts DisplayOptions) { u.displays = append(u.displays, opts) }
func (u *fakeUnit) Clean()                      { u.cleans++ }
func (u *fakeUnit) HandleSubmit(r json.RawMessage, _ ResultOptions) {
	u.submitted = append(u.submitted, r)
}
func (u *fakeUnit) HandleReview(r json.RawMessage, _ ResultOptions) {
	u.reviewed = append(u.reviewed, r)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []telemetry.Event
}

func (p *recordingPublisher) Publish(_ context.Context, ev telemetry.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, ev := range p.events {
		out = append(out, ev.EventType)
	}
	return out
}

// run executes a command the way the event loop would and returns the
// messages it produced, flattening batches.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// drive runs a command and feeds its messages back into the controller
// until no further work is produced.
func drive(c *Controller, cmd tea.Cmd) {
	for _, msg := range run(cmd) {
		drive(c, c.Update(msg))
	}
}

func questions(n int) ([]ChildRef, []*fakeUnit) {
	children := make([]ChildRef, n)
	units := make([]*fakeUnit, n)
	for i := range children {
		units[i] = &fakeUnit{answer: fmt.Sprintf("a%d", i), validity: Valid}
		children[i] = ChildRef{Name: fmt.Sprintf("q%d", i+1), Displayable: true, Unit: units[i]}
	}
	return children, units
}
