package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/assessly/ent"
	"github.com/abhisek/assessly/ent/predicate"
	"github.com/abhisek/assessly/ent/submissionevent"
	"github.com/abhisek/assessly/ent/telemetryevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetLearnerID(data.LearnerID).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) AppendSubmission(ctx context.Context, data SubmissionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SubmissionEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetLearnerID(data.LearnerID).
		SetExerciseID(data.ExerciseID).
		SetStep(data.Step).
		SetStatus(data.Status).
		SetAccepted(data.Accepted).
		SetNumAttempts(data.NumAttempts).
		SetNillableFinalGrade(data.FinalGrade)

	if len(data.SubmittedAnswer) > 0 {
		builder = builder.SetSubmittedAnswer(data.SubmittedAnswer)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save submission event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendTelemetry(ctx context.Context, data TelemetryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TelemetryEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetLearnerID(data.LearnerID).
		SetEventType(data.EventType).
		SetExerciseID(data.ExerciseID).
		SetSessionID(data.SessionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save telemetry event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryTelemetry(ctx context.Context, learnerID string, opts QueryOpts) ([]TelemetryEventRecord, error) {
	preds := []predicate.TelemetryEvent{telemetryevent.LearnerID(learnerID)}
	if opts.After > 0 {
		preds = append(preds, telemetryevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, telemetryevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, telemetryevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		preds = append(preds, telemetryevent.TimestampLTE(opts.To))
	}

	q := r.client.TelemetryEvent.Query().
		Where(preds...).
		Order(ent.Asc(telemetryevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query telemetry events: %w", err)
	}

	out := make([]TelemetryEventRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, TelemetryEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			TelemetryEventData: TelemetryEventData{
				AssessmentID: e.AssessmentID,
				LearnerID:    e.LearnerID,
				EventType:    e.EventType,
				ExerciseID:   e.ExerciseID,
				SessionID:    e.SessionID,
			},
		})
	}
	return out, nil
}

func (r *eventRepo) SubmissionStats(ctx context.Context, filter ProgressFilter) ([]SubmissionStats, error) {
	var preds []predicate.SubmissionEvent
	if filter.AssessmentID != "" {
		preds = append(preds, submissionevent.AssessmentID(filter.AssessmentID))
	}
	if filter.LearnerID != "" {
		preds = append(preds, submissionevent.LearnerID(filter.LearnerID))
	}

	type row struct {
		AssessmentID string `json:"assessment_id"`
		LearnerID    string `json:"learner_id"`
		Count        int    `json:"count"`
	}
	count := func(extra ...predicate.SubmissionEvent) ([]row, error) {
		var rows []row
		err := r.client.SubmissionEvent.Query().
			Where(append(preds, extra...)...).
			GroupBy(submissionevent.FieldAssessmentID, submissionevent.FieldLearnerID).
			Aggregate(ent.Count()).
			Scan(ctx, &rows)
		return rows, err
	}

	all, err := count()
	if err != nil {
		return nil, fmt.Errorf("count submissions: %w", err)
	}
	rejected, err := count(submissionevent.Accepted(false))
	if err != nil {
		return nil, fmt.Errorf("count rejected submissions: %w", err)
	}

	type key struct{ a, l string }
	byKey := make(map[key]*SubmissionStats, len(all))
	out := make([]SubmissionStats, 0, len(all))
	for _, r := range all {
		out = append(out, SubmissionStats{AssessmentID: r.AssessmentID, LearnerID: r.LearnerID, Submissions: r.Count})
	}
	for i := range out {
		byKey[key{out[i].AssessmentID, out[i].LearnerID}] = &out[i]
	}
	for _, r := range rejected {
		if s, ok := byKey[key{r.AssessmentID, r.LearnerID}]; ok {
			s.Rejected = r.Count
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AssessmentID != out[j].AssessmentID {
			return out[i].AssessmentID < out[j].AssessmentID
		}
		return out[i].LearnerID < out[j].LearnerID
	})
	return out, nil
}
