package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin adds the columns every append-only event table carries.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	scope := func(name string) ent.Field {
		return field.String(name).Default("").Immutable()
	}
	return []ent.Field{
		field.Int64("sequence").Unique().Immutable().
			Comment("Position in the store-wide event order"),
		field.Time("timestamp").Default(time.Now).Immutable(),
		scope("assessment_id"),
		scope("learner_id"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("assessment_id", "learner_id"),
	}
}
