package store

import (
	"context"
	"time"
)

// AnswerEventData captures a single answer submission for the event log.
type AnswerEventData struct {
	SessionID      string
	QuestionID     string
	SpecialtyID    string
	SelectedOption int
	CorrectOption  int
	Correct        bool
	TimeMs         int64
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID      string
	Action         string // start, finish, or abandon
	Mode           string
	SpecialtyID    string
	TotalQuestions int
	CorrectAnswers int
	Score          int
	DurationSecs   int
}

// SubmissionEventData captures the outcome of one finish/submit attempt.
type SubmissionEventData struct {
	SessionID    string
	Status       string // success, conflict, or failure
	Score        int
	PointsEarned int
	XPEarned     int
	ErrorMessage string
}

// SpecialtyStats summarizes historical answer accuracy for one specialty.
type SpecialtyStats struct {
	SpecialtyID string
	Answered    int
	Correct     int
	Accuracy    float64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswer records an answer submission.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendSession records a session lifecycle event.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendSubmission records a finish/submit attempt outcome.
	AppendSubmission(ctx context.Context, data SubmissionEventData) error

	// SpecialtyAccuracy returns the all-time answer accuracy for a specialty
	// (0 if no answers have been recorded).
	SpecialtyAccuracy(ctx context.Context, specialtyID string) (float64, error)

	// Stats returns per-specialty accuracy across all recorded answers.
	Stats(ctx context.Context) ([]SpecialtyStats, error)
}

// Snapshot represents a point-in-time capture of engine state.
type Snapshot struct {
	ID        int
	SessionID string
	Sequence  int64
	Timestamp time.Time
	Data      map[string]any
}

// SnapshotRepo manages serialized engine state for resume-after-restart.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
