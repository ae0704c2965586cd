package grader

import (
	"context"

	"github.com/abhisek/assessly/internal/transport"
)

// Local serves one learner's session from an in-process Service.
type Local struct {
	svc     *Service
	learner Learner
}

var _ transport.Transport = (*Local)(nil)

// NewLocal binds the service to one learner.
func NewLocal(svc *Service, l Learner) *Local {
	return &Local{svc: svc, learner: l}
}

// Learner returns the learner the transport is bound to.
func (t *Local) Learner() Learner {
	return t.learner
}

// Submit grades in process. Requests that already lost their context are
// not graded.
func (t *Local) Submit(ctx context.Context, payload transport.Payload) (*transport.SubmitResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.svc.Submit(ctx, t.learner, payload)
}

func (t *Local) GetResults(ctx context.Context, payload transport.Payload) (*transport.ResultsResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.svc.GetResults(ctx, t.learner, payload)
}

func (t *Local) TryAgain(ctx context.Context) (*transport.TryAgainResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.svc.TryAgain(ctx, t.learner)
}

func (t *Local) State(ctx context.Context) (*transport.StateResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.svc.State(ctx, t.learner)
}
