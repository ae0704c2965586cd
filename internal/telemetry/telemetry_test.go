package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/assessly/internal/store"
)

type fakeEvents struct {
	store.EventRepo
	got []store.TelemetryEventData
}

func (f *fakeEvents) AppendTelemetry(_ context.Context, d store.TelemetryEventData) error {
	f.got = append(f.got, d)
	return nil
}

type failing struct{ err error }

func (f failing) Publish(context.Context, Event) error { return f.err }

func TestStorePublisherScopesEvents(t *testing.T) {
	events := &fakeEvents{}
	p := StorePublisher{Events: events, AssessmentID: "fractions", LearnerID: "ana", SessionID: "s-1"}

	require.NoError(t, p.Publish(context.Background(), Event{EventType: EventReview, ExerciseID: "q2"}))
	assert.Equal(t, []store.TelemetryEventData{{
		AssessmentID: "fractions",
		LearnerID:    "ana",
		EventType:    EventReview,
		ExerciseID:   "q2",
		SessionID:    "s-1",
	}}, events.got)
}

func TestLogPublisher(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := LogPublisher{Log: zap.New(core)}

	require.NoError(t, p.Publish(context.Background(), Event{EventType: EventShown, ExerciseID: "q1"}))
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, EventShown, fields["event_type"])
	assert.Equal(t, "q1", fields["exercise_id"])
}

func TestMultiReturnsFirstError(t *testing.T) {
	first := errors.New("first")
	events := &fakeEvents{}
	m := Multi{failing{first}, nil, StorePublisher{Events: events}, failing{errors.New("second")}}

	err := m.Publish(context.Background(), Event{EventType: EventShown})
	assert.ErrorIs(t, err, first)
	assert.Len(t, events.got, 1, "later publishers still run")
}

func TestNotifierFunc(t *testing.T) {
	var got []NavState
	n := NotifierFunc(func(s NavState) { got = append(got, s) })
	n.NotifyNavigation(NavLock)
	n.NotifyNavigation(NavUnlock)
	assert.Equal(t, []NavState{NavLock, NavUnlock}, got)
}
