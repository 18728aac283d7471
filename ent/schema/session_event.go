package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/finish/abandon).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start, finish, or abandon"),
		field.String("mode").
			NotEmpty().
			Comment("practice, challenge, or exam"),
		field.String("specialty_id").
			NotEmpty().
			Comment("Specialty the session was drawn from"),
		field.Int("total_questions").
			Default(0).
			Comment("Questions in the working set"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on finish only)"),
		field.Int("score").
			Default(0).
			Comment("Final score (on finish only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on finish only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
