package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answer submission within a quiz session.
// Re-answering a question appends a new event; the session engine keeps only
// the latest answer in memory, but the log keeps the full history.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("question_id").
			NotEmpty().
			Comment("Question being answered"),
		field.String("specialty_id").
			NotEmpty().
			Comment("Specialty the session was drawn from"),
		field.Int("selected_option").
			Comment("Option index the user picked (post-shuffle)"),
		field.Int("correct_option").
			Comment("Correct option index (post-shuffle)"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int64("time_ms").
			Comment("Milliseconds spent on the question before answering"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
		index.Fields("specialty_id"),
		index.Fields("correct"),
	}
}
