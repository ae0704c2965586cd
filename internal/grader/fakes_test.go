package grader

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/store"
)

type memProgress struct {
	mu   sync.Mutex
	rows map[Learner]store.Progress
}

func newMemProgress() *memProgress {
	return &memProgress{rows: make(map[Learner]store.Progress)}
}

func (m *memProgress) Load(_ context.Context, assessmentID, learnerID string) (*store.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[Learner{assessmentID, learnerID}]
	if !ok {
		return nil, nil
	}
	p.Results = append([]store.StudentResult(nil), p.Results...)
	return &p, nil
}

func (m *memProgress) Save(_ context.Context, p *store.Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	cp.Results = append([]store.StudentResult(nil), p.Results...)
	m.rows[Learner{p.AssessmentID, p.LearnerID}] = cp
	return nil
}

func (m *memProgress) Delete(_ context.Context, assessmentID, learnerID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := Learner{assessmentID, learnerID}
	_, ok := m.rows[k]
	delete(m.rows, k)
	return ok, nil
}

func (m *memProgress) List(context.Context, store.ProgressFilter) ([]store.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]store.Progress, 0, len(m.rows))
	for _, p := range m.rows {
		out = append(out, p)
	}
	return out, nil
}

type memEvents struct {
	store.EventRepo
	mu          sync.Mutex
	submissions []store.SubmissionEventData
}

func (m *memEvents) AppendSubmission(_ context.Context, data store.SubmissionEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissions = append(m.submissions, data)
	return nil
}

func loadFractions(t *testing.T) *content.Definition {
	t.Helper()
	def, err := content.Load("../content/testdata/fractions.json")
	require.NoError(t, err)
	return def
}

type harness struct {
	svc      *Service
	progress *memProgress
	events   *memEvents
	def      *content.Definition
	learner  Learner
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	def := loadFractions(t)
	catalog, err := content.NewCatalog(def)
	require.NoError(t, err)
	h := &harness{
		progress: newMemProgress(),
		events:   &memEvents{},
		def:      def,
		learner:  Learner{AssessmentID: def.ID, LearnerID: "ana"},
	}
	h.svc = New(catalog, h.progress, append([]Option{WithEvents(h.events)}, opts...)...)
	return h
}
