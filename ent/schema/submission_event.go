package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubmissionEvent records every graded or rejected step submission.
type SubmissionEvent struct {
	ent.Schema
}

func (SubmissionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SubmissionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("exercise_id").
			NotEmpty().
			Comment("Name of the submitted step"),
		field.Int("step").
			Comment("Progress step after the submission"),
		field.String("status").
			Default("").
			Comment("correct, partial, incorrect, or empty when rejected"),
		field.Bool("accepted").
			Comment("False when the step was already passed or attempts were exhausted"),
		field.Int("num_attempts").
			Default(0),
		field.Float("final_grade").
			Optional().
			Nillable().
			Comment("Raw weighted score, set when the submission completed an attempt"),
		field.JSON("submitted_answer", map[string]any{}).
			Optional(),
	}
}

func (SubmissionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exercise_id"),
		index.Fields("accepted"),
	}
}
