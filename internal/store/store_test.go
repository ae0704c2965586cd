package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
)

var testDBCounter atomic.Int64

func openTestStore(t *testing.T) *Store {
	t.Helper()
	// Each test gets its own shared-cache in-memory database.
	dsn := fmt.Sprintf("file:assessly_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	s, err := Open(DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
	if s.Driver() != DriverSQLite {
		t.Errorf("driver = %q, want %q", s.Driver(), DriverSQLite)
	}
}

func TestOpenUnsupportedDriver(t *testing.T) {
	if _, err := Open("oracle", "whatever"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestResolveDriver(t *testing.T) {
	_, d, _, err := resolveDriver(DriverPostgres, "postgres://localhost/assessly")
	if err != nil || d != "postgres" {
		t.Errorf("postgres: dialect %q, err %v", d, err)
	}

	_, d, dsn, err := resolveDriver(DriverMySQL, "user:pw@tcp(localhost:3306)/assessly")
	if err != nil {
		t.Fatalf("mysql: %v", err)
	}
	if d != "mysql" {
		t.Errorf("mysql dialect = %q", d)
	}
	if want := "parseTime=true"; !strings.Contains(dsn, want) {
		t.Errorf("mysql dsn %q lacks %q", dsn, want)
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressSaveLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	p, err := repo.Load(ctx, "fractions", "ana")
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil progress when none stored")
	}

	err = repo.Save(ctx, &Progress{
		AssessmentID: "fractions",
		LearnerID:    "ana",
		Step:         2,
		Attempted:    true,
		Results: []StudentResult{
			{Name: "half", Status: "correct", Score: 1, Weight: 1, Submission: json.RawMessage(`"a"`)},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	p, err = repo.Load(ctx, "fractions", "ana")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Step != 2 || !p.Attempted {
		t.Errorf("progress = %+v", p)
	}
	r, ok := p.Result("half")
	if !ok {
		t.Fatal("expected stored result for half")
	}
	if r.Status != "correct" || string(r.Submission) != `"a"` {
		t.Errorf("result = %+v", r)
	}

	// Saving again replaces the record.
	p.Step = 0
	p.NumAttempts = 1
	p.Results = nil
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}
	p, err = repo.Load(ctx, "fractions", "ana")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if p.Step != 0 || p.NumAttempts != 1 || len(p.Results) != 0 {
		t.Errorf("updated progress = %+v", p)
	}

	all, err := repo.List(ctx, ProgressFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("records = %d, want 1", len(all))
	}
}

func TestProgressListAndDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	for _, k := range [][2]string{{"b", "ana"}, {"a", "ana"}, {"a", "ben"}} {
		if err := repo.Save(ctx, &Progress{AssessmentID: k[0], LearnerID: k[1]}); err != nil {
			t.Fatalf("save %v: %v", k, err)
		}
	}

	list, err := repo.List(ctx, ProgressFilter{LearnerID: "ana"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].AssessmentID != "a" || list[1].AssessmentID != "b" {
		t.Errorf("list = %+v", list)
	}

	ok, err := repo.Delete(ctx, "a", "ana")
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	ok, err = repo.Delete(ctx, "a", "ana")
	if err != nil || ok {
		t.Errorf("second delete: ok=%v err=%v", ok, err)
	}

	list, err = repo.List(ctx, ProgressFilter{AssessmentID: "a"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].LearnerID != "ben" {
		t.Errorf("list after delete = %+v", list)
	}
}

func TestTelemetryAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, name := range []string{"q1", "q2", "q3"} {
		err := repo.AppendTelemetry(ctx, TelemetryEventData{
			AssessmentID: "fractions",
			LearnerID:    "ana",
			EventType:    "assessment.shown",
			ExerciseID:   name,
		})
		if err != nil {
			t.Fatalf("append %s: %v", name, err)
		}
	}
	if err := repo.AppendTelemetry(ctx, TelemetryEventData{LearnerID: "ben", EventType: "assessment.shown"}); err != nil {
		t.Fatalf("append other learner: %v", err)
	}

	events, err := repo.QueryTelemetry(ctx, "ana", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Sequence <= events[i-1].Sequence {
			t.Errorf("sequence not increasing: %d then %d", events[i-1].Sequence, events[i].Sequence)
		}
	}

	limited, err := repo.QueryTelemetry(ctx, "ana", QueryOpts{After: events[0].Sequence, Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 || limited[0].ExerciseID != "q2" {
		t.Errorf("limited = %+v", limited)
	}
}

func TestSubmissionStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	grade := 0.75
	data := []SubmissionEventData{
		{AssessmentID: "a", LearnerID: "ana", ExerciseID: "q1", Step: 1, Status: "correct", Accepted: true},
		{AssessmentID: "a", LearnerID: "ana", ExerciseID: "q1", Step: 1, Accepted: false},
		{AssessmentID: "a", LearnerID: "ana", ExerciseID: "q2", Step: 2, Status: "partial", Accepted: true, FinalGrade: &grade,
			SubmittedAnswer: map[string]any{"q2": []any{"x"}}},
		{AssessmentID: "a", LearnerID: "ben", ExerciseID: "q1", Step: 1, Status: "incorrect", Accepted: true},
	}
	for _, d := range data {
		if err := repo.AppendSubmission(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.SubmissionStats(ctx, ProgressFilter{AssessmentID: "a"})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats[0].LearnerID != "ana" || stats[0].Submissions != 3 || stats[0].Rejected != 1 {
		t.Errorf("ana stats = %+v", stats[0])
	}
	if stats[1].LearnerID != "ben" || stats[1].Submissions != 1 || stats[1].Rejected != 0 {
		t.Errorf("ben stats = %+v", stats[1])
	}
}

func TestLLMRequestAppend(t *testing.T) {
	s := openTestStore(t)
	err := s.EventRepo().AppendLLMRequest(context.Background(), LLMRequestEventData{
		Provider:  "mock",
		Model:     "mock-model",
		Purpose:   "assessment-message",
		LatencyMs: 5,
		Success:   true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='submission_events'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "submission_events" {
		t.Errorf("table name = %q, want 'submission_events'", name)
	}
}
