package quiz

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/prasadg/medprep/internal/progress"
	"github.com/prasadg/medprep/internal/results"
	"github.com/prasadg/medprep/internal/store"
)

// Options configures an Engine. Submitter is required for FinishQuiz to do
// anything useful; the rest are optional collaborators.
type Options struct {
	Submitter results.Submitter
	Notifier  progress.Notifier
	Events    store.EventRepo
	Logger    zerolog.Logger
	Clock     func() time.Time // defaults to time.Now
}

// Engine owns the full state of a single quiz attempt. One instance is
// constructed per session and passed explicitly to its callers; there is no
// package-level state. All mutation goes through the exported methods, which
// serialize on an internal mutex; external readers observe through the
// accessor methods and never touch state directly.
type Engine struct {
	mu sync.Mutex

	session  *Session
	shuffled []Question
	seed     int64

	current int
	answers map[string]Answer
	score   int

	timeRemaining int
	active        bool
	finishing     bool
	submitted     bool

	bookmarks   *IDSet
	wrong       *IDSet
	timeSpentMs map[string]int64

	lastQuestionStart time.Time
	result            *results.Result

	submitter results.Submitter
	notifier  progress.Notifier
	events    store.EventRepo
	log       zerolog.Logger
	now       func() time.Time
}

// New creates an engine with no session. Call Initialize to load one.
func New(opts Options) *Engine {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		answers:     make(map[string]Answer),
		bookmarks:   NewIDSet(),
		wrong:       NewIDSet(),
		timeSpentMs: make(map[string]int64),
		submitter:   opts.Submitter,
		notifier:    opts.Notifier,
		events:      opts.Events,
		log:         opts.Logger,
		now:         clock,
	}
}

// Initialize builds the session descriptor and the shuffled working set and
// zeroes all mutable state. It does not start the clock; callers show
// their pre-quiz summary first and then call Start.
func (e *Engine) Initialize(questions []Question, cfg Config) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	seed := cfg.Seed
	if seed == 0 {
		seed = NewSeed()
	}

	total := cfg.TotalQuestions
	if total <= 0 || total > len(questions) {
		total = len(questions)
	}

	id := cfg.SessionID
	if id == "" {
		id = uuid.NewString()
	}

	e.seed = seed
	e.shuffled = Shuffle(questions, seed, total)
	e.session = &Session{
		ID:             id,
		QuizID:         cfg.QuizID,
		Mode:           cfg.Mode,
		TimeLimit:      cfg.TimeLimit,
		SpecialtyID:    cfg.SpecialtyID,
		SpecialtyName:  cfg.SpecialtyName,
		TotalQuestions: len(e.shuffled),
	}

	e.resetMutableLocked()
	e.timeRemaining = cfg.TimeLimit

	e.log.Debug().
		Str("session_id", id).
		Str("mode", string(cfg.Mode)).
		Int("questions", len(e.shuffled)).
		Int64("seed", seed).
		Msg("session initialized")
	return nil
}

// Start activates the session and stamps the clocks. Starting an already
// active session is a no-op, so a stray double-start cannot re-stamp the
// timestamps mid-quiz; restarting goes through Reset and Initialize.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return ErrNoSession
	}
	if e.active || e.finishing || e.submitted {
		return nil
	}

	now := e.now()
	e.active = true
	e.session.StartTime = now
	e.lastQuestionStart = now

	e.recordSessionEventLocked("start")
	return nil
}

// Pause stops the countdown without losing remaining time. An in-flight
// submission is not cancelled.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = false
}

// Resume reactivates a paused session and re-stamps the per-question clock
// so the paused interval is not charged to the current question.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil || e.finishing || e.submitted || e.active {
		return
	}
	e.active = true
	e.lastQuestionStart = e.now()
}

// Reset discards the session entirely. The only way out of a terminal state.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.session = nil
	e.shuffled = nil
	e.seed = 0
	e.result = nil
	e.resetMutableLocked()
}

func (e *Engine) resetMutableLocked() {
	e.current = 0
	e.answers = make(map[string]Answer)
	e.score = 0
	e.timeRemaining = 0
	e.active = false
	e.finishing = false
	e.submitted = false
	e.bookmarks = NewIDSet()
	e.wrong = NewIDSet()
	e.timeSpentMs = make(map[string]int64)
	e.lastQuestionStart = time.Time{}
}

// frozenLocked reports whether mutations are rejected: once a finish is in
// flight or confirmed, the session is read-only.
func (e *Engine) frozenLocked() bool {
	return e.session == nil || e.finishing || e.submitted
}

func (e *Engine) findQuestionLocked(id string) (Question, bool) {
	for _, q := range e.shuffled {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

func (e *Engine) correctCountLocked() int {
	n := 0
	for _, a := range e.answers {
		if a.Correct {
			n++
		}
	}
	return n
}

// recordSessionEventLocked appends a lifecycle event; persistence failures
// are logged, never propagated.
func (e *Engine) recordSessionEventLocked(action string) {
	if e.events == nil || e.session == nil {
		return
	}
	data := store.SessionEventData{
		SessionID:      e.session.ID,
		Action:         action,
		Mode:           string(e.session.Mode),
		SpecialtyID:    e.session.SpecialtyID,
		TotalQuestions: e.session.TotalQuestions,
	}
	if action == "finish" {
		data.CorrectAnswers = e.correctCountLocked()
		data.Score = e.score
		if !e.session.StartTime.IsZero() {
			data.DurationSecs = int(e.now().Sub(e.session.StartTime).Seconds())
		}
	}
	if err := e.events.AppendSession(context.Background(), data); err != nil {
		e.log.Warn().Err(err).Str("action", action).Msg("failed to record session event")
	}
}

// Session returns a copy of the session descriptor.
func (e *Engine) Session() (Session, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return Session{}, false
	}
	return *e.session, true
}

// Questions returns the shuffled working set.
func (e *Engine) Questions() []Question {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Question, len(e.shuffled))
	for i, q := range e.shuffled {
		out[i] = q.clone()
	}
	return out
}

// CurrentIndex returns the cursor position.
func (e *Engine) CurrentIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// CurrentQuestion returns the question under the cursor.
func (e *Engine) CurrentQuestion() (Question, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current < 0 || e.current >= len(e.shuffled) {
		return Question{}, false
	}
	return e.shuffled[e.current].clone(), true
}

// Score returns the current score: the local running score while the
// session is open, the backend's authoritative score after submission.
func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.score
}

// TimeRemaining returns the seconds left, or 0 for untimed sessions.
func (e *Engine) TimeRemaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timeRemaining
}

// IsActive reports whether the session clock is running.
func (e *Engine) IsActive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// IsFinishing reports whether a submission is in flight. UI layers poll
// this together with HasSubmittedResults to choose between "Finishing…",
// "Finished", and a retry control.
func (e *Engine) IsFinishing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.finishing
}

// HasSubmittedResults reports whether the session reached its terminal
// submitted state.
func (e *Engine) HasSubmittedResults() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.submitted
}

// AnswerFor returns the recorded answer for a question, if any.
func (e *Engine) AnswerFor(questionID string) (Answer, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, ok := e.answers[questionID]
	return a, ok
}

// AnswerCount returns the number of answered questions.
func (e *Engine) AnswerCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.answers)
}

// Bookmarks returns the bookmarked question ids in bookmark order.
func (e *Engine) Bookmarks() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bookmarks.Values()
}

// WrongAnswers returns the ids of questions whose latest answer was wrong.
func (e *Engine) WrongAnswers() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.wrong.Values()
}

// TimeSpentMs returns the accumulated time on a question in milliseconds.
func (e *Engine) TimeSpentMs(questionID string) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timeSpentMs[questionID]
}

// Seed returns the session's shuffle seed.
func (e *Engine) Seed() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.seed
}

// Result returns the backend's authoritative result once submitted.
func (e *Engine) Result() (results.Result, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.result == nil {
		return results.Result{}, false
	}
	return *e.result, true
}
