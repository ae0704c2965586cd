package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TelemetryEvent records learner navigation events such as a step being
// shown or reviewed.
type TelemetryEvent struct {
	ent.Schema
}

func (TelemetryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TelemetryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_type").
			NotEmpty().
			Comment("assessment.shown or assessment.review"),
		field.String("exercise_id").
			Default("").
			Comment("Step name, empty for unnamed content"),
		field.String("session_id").
			Default("").
			Comment("UUID of the client session that emitted the event"),
	}
}

func (TelemetryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_type"),
		index.Fields("session_id"),
	}
}
