package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Progress is one learner's mutable state in one assessment. Unlike events
// it is updated in place on every accepted submission.
type Progress struct {
	ent.Schema
}

// StudentResult is the persisted grading result of one step.
type StudentResult struct {
	Name       string          `json:"name"`
	Status     string          `json:"status"`
	Score      float64         `json:"score"`
	Weight     float64         `json:"weight"`
	Submission json.RawMessage `json:"submission,omitempty"`
	Message    string          `json:"message,omitempty"`
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			NotEmpty().
			Immutable(),
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.Int("step").
			Default(0).
			Comment("Number of steps completed in the current attempt"),
		field.Int("num_attempts").
			Default(0).
			Comment("Completed passes through the assessment"),
		field.Bool("attempted").
			Default(false),
		field.Bool("completed").
			Default(false),
		field.JSON("results", []StudentResult{}).
			Optional().
			Comment("Results of the current attempt in submission order"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Progress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id", "learner_id").Unique(),
		index.Fields("learner_id"),
	}
}
