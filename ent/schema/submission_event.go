package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubmissionEvent records the outcome of each finish/submit attempt.
// A session can accumulate several failure events before a success or
// conflict event closes it out.
type SubmissionEvent struct {
	ent.Schema
}

func (SubmissionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SubmissionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("status").
			NotEmpty().
			Comment("success, conflict, or failure"),
		field.Int("score").
			Default(0).
			Comment("Authoritative score (success only)"),
		field.Int("points_earned").
			Default(0).
			Comment("Points granted by the backend (success only)"),
		field.Int("xp_earned").
			Default(0).
			Comment("XP granted by the backend (success only)"),
		field.String("error_message").
			Optional().
			Comment("Transport or backend error text (failure only)"),
	}
}

func (SubmissionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("status"),
	}
}
