package quiz

import (
	"errors"
	"fmt"
	"time"
)

// Mode selects the session variant. Modes only differ in how the app shell
// presents them; the engine treats them uniformly.
type Mode string

const (
	ModePractice  Mode = "practice"
	ModeChallenge Mode = "challenge"
	ModeExam      Mode = "exam"
)

// ParseMode validates a mode name from user input.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModePractice, ModeChallenge, ModeExam:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want practice, challenge, or exam)", s)
	}
}

// PointsPerCorrect is the local score granted per correct answer before the
// backend applies any bonus.
const PointsPerCorrect = 10

var (
	// ErrNoSession is returned by operations that need an initialized session.
	ErrNoSession = errors.New("no quiz session")

	// ErrNoQuestions is returned when Initialize is given an empty set.
	ErrNoQuestions = errors.New("no questions provided")

	// ErrFinishInProgress is returned when a finish is already in flight.
	ErrFinishInProgress = errors.New("finish already in progress")

	// ErrAlreadyFinished is returned once results have been submitted.
	ErrAlreadyFinished = errors.New("results already submitted")
)

// Config is the content provider's description of the session to build.
type Config struct {
	Mode           Mode
	TimeLimit      int // seconds; 0 means untimed
	SpecialtyID    string
	SpecialtyName  string
	TotalQuestions int   // 0 means all provided questions
	Seed           int64 // 0 means draw a fresh seed
	SessionID      string
	QuizID         string
}

// Session is the immutable descriptor of one quiz attempt. EndTime stays
// zero until the session reaches its submitted state.
type Session struct {
	ID             string    `json:"id"`
	QuizID         string    `json:"quiz_id,omitempty"`
	Mode           Mode      `json:"mode"`
	TimeLimit      int       `json:"time_limit"` // seconds; 0 means untimed
	SpecialtyID    string    `json:"specialty_id"`
	SpecialtyName  string    `json:"specialty_name"`
	TotalQuestions int       `json:"total_questions"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time,omitzero"`
}

// Answer records the latest submission for one question. Re-answering
// replaces the prior Answer; there is never more than one per question.
type Answer struct {
	QuestionID     string    `json:"question_id"`
	SelectedOption int       `json:"selected_option"`
	TimeSpentMs    int64     `json:"time_spent_ms"`
	Correct        bool      `json:"correct"`
	Timestamp      time.Time `json:"timestamp"`
}
