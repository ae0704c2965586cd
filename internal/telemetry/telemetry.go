package telemetry

import (
	"context"

	"go.uber.org/zap"
)

// Event types emitted while a learner moves through an assessment.
const (
	EventShown  = "assessment.shown"
	EventReview = "assessment.review"
)

// NavState is the page-level navigation availability signal.
type NavState string

const (
	NavLock   NavState = "lock"
	NavUnlock NavState = "unlock"
)

// Event is a fire-and-forget telemetry record.
type Event struct {
	EventType  string `json:"event_type"`
	ExerciseID string `json:"exercise_id"`
}

// Publisher delivers telemetry events. Callers never wait on the result
// beyond logging a failure.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Notifier receives navigation lock/unlock signals from the assessment.
type Notifier interface {
	NotifyNavigation(state NavState)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(state NavState)

func (f NotifierFunc) NotifyNavigation(state NavState) { f(state) }

// LogPublisher writes events to a zap logger.
type LogPublisher struct {
	Log *zap.Logger
}

func (p LogPublisher) Publish(_ context.Context, ev Event) error {
	p.Log.Info("telemetry event",
		zap.String("event_type", ev.EventType),
		zap.String("exercise_id", ev.ExerciseID),
	)
	return nil
}

// Multi fans an event out to several publishers and returns the first error.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, ev Event) error {
	var first error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, ev); err != nil && first == nil {
			first = err
		}
	}
	return first
}
