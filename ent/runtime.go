// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/prasadg/medprep/ent/answerevent"
	"github.com/prasadg/medprep/ent/schema"
	"github.com/prasadg/medprep/ent/sessionevent"
	"github.com/prasadg/medprep/ent/snapshot"
	"github.com/prasadg/medprep/ent/submissionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescSpecialtyID is the schema descriptor for specialty_id field.
	answereventDescSpecialtyID := answereventFields[2].Descriptor()
	// answerevent.SpecialtyIDValidator is a validator for the "specialty_id" field. It is called by the builders before save.
	answerevent.SpecialtyIDValidator = answereventDescSpecialtyID.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[2].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescSpecialtyID is the schema descriptor for specialty_id field.
	sessioneventDescSpecialtyID := sessioneventFields[3].Descriptor()
	// sessionevent.SpecialtyIDValidator is a validator for the "specialty_id" field. It is called by the builders before save.
	sessionevent.SpecialtyIDValidator = sessioneventDescSpecialtyID.Validators[0].(func(string) error)
	// sessioneventDescTotalQuestions is the schema descriptor for total_questions field.
	sessioneventDescTotalQuestions := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	sessionevent.DefaultTotalQuestions = sessioneventDescTotalQuestions.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescSessionID is the schema descriptor for session_id field.
	snapshotDescSessionID := snapshotFields[0].Descriptor()
	// snapshot.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	snapshot.SessionIDValidator = snapshotDescSessionID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	submissioneventMixin := schema.SubmissionEvent{}.Mixin()
	submissioneventMixinFields0 := submissioneventMixin[0].Fields()
	_ = submissioneventMixinFields0
	submissioneventFields := schema.SubmissionEvent{}.Fields()
	_ = submissioneventFields
	// submissioneventDescTimestamp is the schema descriptor for timestamp field.
	submissioneventDescTimestamp := submissioneventMixinFields0[1].Descriptor()
	// submissionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	submissionevent.DefaultTimestamp = submissioneventDescTimestamp.Default.(func() time.Time)
	// submissioneventDescSessionID is the schema descriptor for session_id field.
	submissioneventDescSessionID := submissioneventFields[0].Descriptor()
	// submissionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	submissionevent.SessionIDValidator = submissioneventDescSessionID.Validators[0].(func(string) error)
	// submissioneventDescStatus is the schema descriptor for status field.
	submissioneventDescStatus := submissioneventFields[1].Descriptor()
	// submissionevent.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	submissionevent.StatusValidator = submissioneventDescStatus.Validators[0].(func(string) error)
	// submissioneventDescScore is the schema descriptor for score field.
	submissioneventDescScore := submissioneventFields[2].Descriptor()
	// submissionevent.DefaultScore holds the default value on creation for the score field.
	submissionevent.DefaultScore = submissioneventDescScore.Default.(int)
	// submissioneventDescPointsEarned is the schema descriptor for points_earned field.
	submissioneventDescPointsEarned := submissioneventFields[3].Descriptor()
	// submissionevent.DefaultPointsEarned holds the default value on creation for the points_earned field.
	submissionevent.DefaultPointsEarned = submissioneventDescPointsEarned.Default.(int)
	// submissioneventDescXpEarned is the schema descriptor for xp_earned field.
	submissioneventDescXpEarned := submissioneventFields[4].Descriptor()
	// submissionevent.DefaultXpEarned holds the default value on creation for the xp_earned field.
	submissionevent.DefaultXpEarned = submissioneventDescXpEarned.Default.(int)
}
