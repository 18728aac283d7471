package quiz

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prasadg/medprep/internal/progress"
	"github.com/prasadg/medprep/internal/results"
)

// fakeSubmitter counts submissions and returns a configured result or error.
// An optional release channel holds calls open so tests can observe the
// in-flight finishing state.
type fakeSubmitter struct {
	mu      sync.Mutex
	calls   int
	result  *results.Result
	err     error
	release chan struct{}

	lastSubmission *results.Submission
}

func (f *fakeSubmitter) Submit(ctx context.Context, sub *results.Submission) (*results.Result, error) {
	f.mu.Lock()
	f.calls++
	f.lastSubmission = sub
	release := f.release
	f.mu.Unlock()

	if release != nil {
		<-release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &results.Result{}, nil
}

func (f *fakeSubmitter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeSubmitter) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

type fakeNotifier struct {
	mu          sync.Mutex
	completions []progress.Completion
	refreshes   int
}

func (f *fakeNotifier) QuizCompleted(ctx context.Context, c progress.Completion) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completions = append(f.completions, c)
	return nil
}

func (f *fakeNotifier) RefreshStreak(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshes++
	return nil
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func testConfig() Config {
	return Config{
		Mode:          ModePractice,
		SpecialtyID:   "cardio",
		SpecialtyName: "Cardiology",
		Seed:          42,
	}
}

func newTestEngine(t *testing.T, n int, cfg Config) (*Engine, *fakeSubmitter) {
	t.Helper()
	sub := &fakeSubmitter{}
	e := New(Options{Submitter: sub})
	if err := e.Initialize(makeQuestions(n), cfg); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return e, sub
}

// answerCurrent submits the given kind of answer for the question under the
// cursor and returns its id.
func answerCurrent(t *testing.T, e *Engine, correct bool) string {
	t.Helper()
	q, ok := e.CurrentQuestion()
	if !ok {
		t.Fatal("no current question")
	}
	opt := q.CorrectAnswer
	if !correct {
		opt = (q.CorrectAnswer + 1) % len(q.Options)
	}
	if !e.SubmitAnswer(q.ID, opt) {
		t.Fatalf("SubmitAnswer rejected for %s", q.ID)
	}
	return q.ID
}

func TestInitialize_DoesNotStartClock(t *testing.T) {
	e, _ := newTestEngine(t, 5, testConfig())

	if e.IsActive() {
		t.Error("session must not be active before Start")
	}
	sess, ok := e.Session()
	if !ok {
		t.Fatal("expected a session")
	}
	if !sess.StartTime.IsZero() {
		t.Error("StartTime must be zero before Start")
	}
	if sess.TotalQuestions != 5 {
		t.Errorf("TotalQuestions = %d, want 5", sess.TotalQuestions)
	}
}

func TestInitialize_EmptyQuestions(t *testing.T) {
	e := New(Options{Submitter: &fakeSubmitter{}})
	if err := e.Initialize(nil, testConfig()); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("err = %v, want ErrNoQuestions", err)
	}
}

func TestInitialize_ExplicitSeedReproducible(t *testing.T) {
	e1, _ := newTestEngine(t, 8, testConfig())
	e2, _ := newTestEngine(t, 8, testConfig())

	q1 := e1.Questions()
	q2 := e2.Questions()
	for i := range q1 {
		if q1[i].ID != q2[i].ID || q1[i].CorrectAnswer != q2[i].CorrectAnswer {
			t.Fatal("same seed must produce the same working set")
		}
	}
}

func TestStart_SecondCallIsNoop(t *testing.T) {
	e, _ := newTestEngine(t, 3, testConfig())

	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	sess, _ := e.Session()
	started := sess.StartTime

	time.Sleep(5 * time.Millisecond)
	if err := e.Start(); err != nil {
		t.Fatalf("second Start: %v", err)
	}
	sess, _ = e.Session()
	if !sess.StartTime.Equal(started) {
		t.Error("second Start must not re-stamp StartTime")
	}
}

func TestStart_NoSession(t *testing.T) {
	e := New(Options{Submitter: &fakeSubmitter{}})
	if err := e.Start(); !errors.Is(err, ErrNoSession) {
		t.Errorf("err = %v, want ErrNoSession", err)
	}
}

func TestSubmitAnswer_SecondSubmissionReplaces(t *testing.T) {
	e, _ := newTestEngine(t, 3, testConfig())
	e.Start()

	q, _ := e.CurrentQuestion()
	wrong := (q.CorrectAnswer + 1) % len(q.Options)

	e.SubmitAnswer(q.ID, wrong)
	e.SubmitAnswer(q.ID, q.CorrectAnswer)

	if e.AnswerCount() != 1 {
		t.Errorf("AnswerCount = %d, want 1", e.AnswerCount())
	}
	a, ok := e.AnswerFor(q.ID)
	if !ok {
		t.Fatal("expected an answer")
	}
	if a.SelectedOption != q.CorrectAnswer || !a.Correct {
		t.Error("answer must reflect the second submission")
	}
}

func TestSubmitAnswer_ScoreIsTenPerCorrect(t *testing.T) {
	e, _ := newTestEngine(t, 4, testConfig())
	e.Start()

	answerCurrent(t, e, true)
	e.GoToQuestion(1)
	answerCurrent(t, e, false)
	e.GoToQuestion(2)
	answerCurrent(t, e, true)

	if got := e.Score(); got != 2*PointsPerCorrect {
		t.Errorf("Score = %d, want %d", got, 2*PointsPerCorrect)
	}
}

func TestSubmitAnswer_WrongAnswerSetTracksLatest(t *testing.T) {
	e, _ := newTestEngine(t, 3, testConfig())
	e.Start()

	q, _ := e.CurrentQuestion()
	wrong := (q.CorrectAnswer + 1) % len(q.Options)

	e.SubmitAnswer(q.ID, wrong)
	if got := e.WrongAnswers(); len(got) != 1 || got[0] != q.ID {
		t.Fatalf("WrongAnswers = %v, want [%s]", got, q.ID)
	}

	e.SubmitAnswer(q.ID, q.CorrectAnswer)
	if got := e.WrongAnswers(); len(got) != 0 {
		t.Errorf("WrongAnswers = %v, want empty after correction", got)
	}
}

func TestSubmitAnswer_UnknownQuestionRejected(t *testing.T) {
	e, _ := newTestEngine(t, 3, testConfig())
	e.Start()

	if e.SubmitAnswer("no-such-question", 0) {
		t.Error("expected rejection for unknown question id")
	}
	if e.SubmitAnswer("q00", -1) {
		t.Error("expected rejection for negative option index")
	}
}

func TestSubmitAnswer_RejectedWhileFinishing(t *testing.T) {
	e, sub := newTestEngine(t, 3, testConfig())
	sub.release = make(chan struct{})
	e.Start()
	qid := answerCurrent(t, e, true)

	done := make(chan error, 1)
	go func() { done <- e.FinishQuiz(context.Background()) }()
	waitFor(t, "finishing flag", e.IsFinishing)

	if e.SubmitAnswer(qid, 0) {
		t.Error("SubmitAnswer must be rejected while a submission is in flight")
	}

	close(sub.release)
	if err := <-done; err != nil {
		t.Fatalf("FinishQuiz: %v", err)
	}
}

func TestNavigation_PreviousAtStartIsNoop(t *testing.T) {
	e, _ := newTestEngine(t, 3, testConfig())
	e.Start()

	e.PreviousQuestion()
	if e.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex = %d, want 0", e.CurrentIndex())
	}
}

func TestNavigation_GoToOutOfBoundsRejected(t *testing.T) {
	e, _ := newTestEngine(t, 3, testConfig())
	e.Start()
	e.GoToQuestion(1)

	if e.GoToQuestion(5) {
		t.Error("GoToQuestion(5) must be rejected with 3 questions")
	}
	if e.GoToQuestion(-1) {
		t.Error("GoToQuestion(-1) must be rejected")
	}
	if e.CurrentIndex() != 1 {
		t.Errorf("cursor moved to %d despite rejection, want 1", e.CurrentIndex())
	}
}

func TestNavigation_NextAdvancesAndFinishesAtEnd(t *testing.T) {
	e, sub := newTestEngine(t, 3, testConfig())
	e.Start()

	e.NextQuestion(context.Background())
	e.NextQuestion(context.Background())
	if e.CurrentIndex() != 2 {
		t.Fatalf("CurrentIndex = %d, want 2", e.CurrentIndex())
	}

	// At the last question, Next delegates to the finish path.
	if err := e.NextQuestion(context.Background()); err != nil {
		t.Fatalf("NextQuestion at end: %v", err)
	}
	if !e.HasSubmittedResults() {
		t.Error("expected submitted state after Next at last question")
	}
	if sub.callCount() != 1 {
		t.Errorf("submissions = %d, want 1", sub.callCount())
	}
}

func TestBookmark_ToggleReturnsToEmpty(t *testing.T) {
	e, _ := newTestEngine(t, 3, testConfig())
	e.Start()
	q, _ := e.CurrentQuestion()

	e.BookmarkQuestion(q.ID)
	e.BookmarkQuestion(q.ID) // idempotent
	if got := e.Bookmarks(); len(got) != 1 {
		t.Fatalf("Bookmarks = %v, want one entry", got)
	}

	e.UnbookmarkQuestion(q.ID)
	if got := e.Bookmarks(); len(got) != 0 {
		t.Errorf("Bookmarks = %v, want empty", got)
	}
}

func TestBookmark_UnknownQuestionRejected(t *testing.T) {
	e, _ := newTestEngine(t, 3, testConfig())
	e.Start()

	if e.BookmarkQuestion("nope") {
		t.Error("expected rejection for unknown question id")
	}
}

func TestPauseResume_KeepsTimeRemaining(t *testing.T) {
	cfg := testConfig()
	cfg.TimeLimit = 60
	e, _ := newTestEngine(t, 3, cfg)
	e.Start()

	e.Tick()
	e.Pause()
	if e.IsActive() {
		t.Error("expected inactive after Pause")
	}
	remaining := e.TimeRemaining()

	e.Tick() // paused: must not decrement
	if e.TimeRemaining() != remaining {
		t.Error("Tick decremented while paused")
	}

	e.Resume()
	if !e.IsActive() {
		t.Error("expected active after Resume")
	}
	if e.TimeRemaining() != remaining {
		t.Error("Resume changed timeRemaining")
	}
}

func TestReset_ClearsSession(t *testing.T) {
	e, _ := newTestEngine(t, 3, testConfig())
	e.Start()
	answerCurrent(t, e, true)

	e.Reset()

	if _, ok := e.Session(); ok {
		t.Error("expected no session after Reset")
	}
	if e.Score() != 0 || e.AnswerCount() != 0 {
		t.Error("expected zeroed state after Reset")
	}
}
