package store

import (
	"context"
	"fmt"

	"github.com/abhisek/assessly/ent"
	"github.com/abhisek/assessly/ent/progress"
	entschema "github.com/abhisek/assessly/ent/schema"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Load(ctx context.Context, assessmentID, learnerID string) (*Progress, error) {
	p, err := r.client.Progress.Query().
		Where(progress.AssessmentID(assessmentID), progress.LearnerID(learnerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return entProgressToProgress(p), nil
}

func (r *progressRepo) Save(ctx context.Context, p *Progress) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin progress tx: %w", err)
	}

	results := resultsToSchema(p.Results)
	existing, err := tx.Progress.Query().
		Where(progress.AssessmentID(p.AssessmentID), progress.LearnerID(p.LearnerID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = tx.Progress.Create().
			SetAssessmentID(p.AssessmentID).
			SetLearnerID(p.LearnerID).
			SetStep(p.Step).
			SetNumAttempts(p.NumAttempts).
			SetAttempted(p.Attempted).
			SetCompleted(p.Completed).
			SetResults(results).
			Save(ctx)
	case err == nil:
		_, err = tx.Progress.UpdateOne(existing).
			SetStep(p.Step).
			SetNumAttempts(p.NumAttempts).
			SetAttempted(p.Attempted).
			SetCompleted(p.Completed).
			SetResults(results).
			Save(ctx)
	}
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save progress: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Delete(ctx context.Context, assessmentID, learnerID string) (bool, error) {
	n, err := r.client.Progress.Delete().
		Where(progress.AssessmentID(assessmentID), progress.LearnerID(learnerID)).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("delete progress: %w", err)
	}
	return n > 0, nil
}

func (r *progressRepo) List(ctx context.Context, filter ProgressFilter) ([]Progress, error) {
	q := r.client.Progress.Query()
	if filter.AssessmentID != "" {
		q = q.Where(progress.AssessmentID(filter.AssessmentID))
	}
	if filter.LearnerID != "" {
		q = q.Where(progress.LearnerID(filter.LearnerID))
	}
	rows, err := q.
		Order(ent.Asc(progress.FieldAssessmentID), ent.Asc(progress.FieldLearnerID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	out := make([]Progress, 0, len(rows))
	for _, p := range rows {
		out = append(out, *entProgressToProgress(p))
	}
	return out, nil
}

func resultsToSchema(results []StudentResult) []entschema.StudentResult {
	out := make([]entschema.StudentResult, 0, len(results))
	for _, r := range results {
		out = append(out, entschema.StudentResult{
			Name:       r.Name,
			Status:     r.Status,
			Score:      r.Score,
			Weight:     r.Weight,
			Submission: r.Submission,
			Message:    r.Message,
		})
	}
	return out
}

// entProgressToProgress converts an ent Progress to a store Progress.
func entProgressToProgress(p *ent.Progress) *Progress {
	out := &Progress{
		AssessmentID: p.AssessmentID,
		LearnerID:    p.LearnerID,
		Step:         p.Step,
		NumAttempts:  p.NumAttempts,
		Attempted:    p.Attempted,
		Completed:    p.Completed,
		UpdatedAt:    p.UpdatedAt,
	}
	for _, r := range p.Results {
		out.Results = append(out.Results, StudentResult{
			Name:       r.Name,
			Status:     r.Status,
			Score:      r.Score,
			Weight:     r.Weight,
			Submission: r.Submission,
			Message:    r.Message,
		})
	}
	return out
}
