package telemetry

import (
	"context"

	"github.com/abhisek/assessly/internal/store"
)

// StorePublisher appends events to the event store, scoped to one learner's
// session in one assessment.
type StorePublisher struct {
	Events       store.EventRepo
	AssessmentID string
	LearnerID    string
	SessionID    string
}

func (p StorePublisher) Publish(ctx context.Context, ev Event) error {
	return p.Events.AppendTelemetry(ctx, store.TelemetryEventData{
		AssessmentID: p.AssessmentID,
		LearnerID:    p.LearnerID,
		EventType:    ev.EventType,
		ExerciseID:   ev.ExerciseID,
		SessionID:    p.SessionID,
	})
}
