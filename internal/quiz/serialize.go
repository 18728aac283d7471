package quiz

import (
	"encoding/json"
	"fmt"
)

// EngineSnapshot is the serializable form of the engine state, the explicit
// persistence boundary for resume-after-restart. The bookmark and
// wrong-answer sets serialize as ordered arrays (see IDSet). The transient
// finishing guard is not part of the snapshot; a restored session is never
// mid-submission.
type EngineSnapshot struct {
	Session       *Session          `json:"session"`
	Seed          int64             `json:"seed"`
	Questions     []Question        `json:"shuffled_questions"`
	CurrentIndex  int               `json:"current_index"`
	Answers       map[string]Answer `json:"answers"`
	Score         int               `json:"score"`
	TimeRemaining int               `json:"time_remaining"`
	Bookmarks     *IDSet            `json:"bookmarks"`
	WrongAnswers  *IDSet            `json:"wrong_answers"`
	TimeSpentMs   map[string]int64  `json:"time_spent_ms"`
	Submitted     bool              `json:"submitted"`
}

// Snapshot captures the current engine state. Returns nil when no session
// is initialized.
func (e *Engine) Snapshot() *EngineSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return nil
	}

	sess := *e.session
	questions := make([]Question, len(e.shuffled))
	for i, q := range e.shuffled {
		questions[i] = q.clone()
	}
	answers := make(map[string]Answer, len(e.answers))
	for id, a := range e.answers {
		answers[id] = a
	}
	timeSpent := make(map[string]int64, len(e.timeSpentMs))
	for id, ms := range e.timeSpentMs {
		timeSpent[id] = ms
	}

	return &EngineSnapshot{
		Session:       &sess,
		Seed:          e.seed,
		Questions:     questions,
		CurrentIndex:  e.current,
		Answers:       answers,
		Score:         e.score,
		TimeRemaining: e.timeRemaining,
		Bookmarks:     NewIDSet(e.bookmarks.Values()...),
		WrongAnswers:  NewIDSet(e.wrong.Values()...),
		TimeSpentMs:   timeSpent,
		Submitted:     e.submitted,
	}
}

// Restore loads a previously captured snapshot. The session comes back
// paused; callers decide when to Resume the clock.
func (e *Engine) Restore(snap *EngineSnapshot) error {
	if snap == nil || snap.Session == nil {
		return fmt.Errorf("snapshot has no session")
	}
	if len(snap.Questions) == 0 {
		return fmt.Errorf("snapshot has no questions")
	}
	if snap.CurrentIndex < 0 || snap.CurrentIndex >= len(snap.Questions) {
		return fmt.Errorf("snapshot cursor %d out of range [0,%d)", snap.CurrentIndex, len(snap.Questions))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	sess := *snap.Session
	e.session = &sess
	e.seed = snap.Seed
	e.shuffled = make([]Question, len(snap.Questions))
	for i, q := range snap.Questions {
		e.shuffled[i] = q.clone()
	}
	e.current = snap.CurrentIndex
	e.answers = make(map[string]Answer, len(snap.Answers))
	for id, a := range snap.Answers {
		e.answers[id] = a
	}
	e.score = snap.Score
	e.timeRemaining = snap.TimeRemaining
	e.active = false
	e.finishing = false
	e.submitted = snap.Submitted
	e.bookmarks = NewIDSet(bookmarkValues(snap.Bookmarks)...)
	e.wrong = NewIDSet(bookmarkValues(snap.WrongAnswers)...)
	e.timeSpentMs = make(map[string]int64, len(snap.TimeSpentMs))
	for id, ms := range snap.TimeSpentMs {
		e.timeSpentMs[id] = ms
	}
	e.result = nil
	e.lastQuestionStart = e.now()
	return nil
}

func bookmarkValues(s *IDSet) []string {
	if s == nil {
		return nil
	}
	return s.Values()
}

// ToMap converts a snapshot to the map form the snapshot store persists.
func (s *EngineSnapshot) ToMap() (map[string]any, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot map: %w", err)
	}
	return m, nil
}

// SnapshotFromMap reverses ToMap.
func SnapshotFromMap(m map[string]any) (*EngineSnapshot, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot map: %w", err)
	}
	var snap EngineSnapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &snap, nil
}
