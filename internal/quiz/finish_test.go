package quiz

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prasadg/medprep/internal/results"
)

func TestFinishQuiz_AllCorrectScenario(t *testing.T) {
	sub := &fakeSubmitter{result: &results.Result{
		Score:          30,
		CorrectAnswers: 3,
		TotalQuestions: 3,
		PointsEarned:   30,
		XPEarned:       15,
	}}
	e := New(Options{Submitter: sub})
	if err := e.Initialize(makeQuestions(3), testConfig()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	e.Start()

	for i := 0; i < 3; i++ {
		e.GoToQuestion(i)
		answerCurrent(t, e, true)
	}
	if e.Score() != 30 {
		t.Fatalf("local score = %d, want 30", e.Score())
	}

	if err := e.FinishQuiz(context.Background()); err != nil {
		t.Fatalf("FinishQuiz: %v", err)
	}

	if !e.HasSubmittedResults() {
		t.Error("expected submitted state")
	}
	if e.IsFinishing() {
		t.Error("finishing guard must be cleared")
	}
	sess, _ := e.Session()
	if sess.EndTime.IsZero() {
		t.Error("EndTime must be stamped on success")
	}
	res, ok := e.Result()
	if !ok || res.Score != 30 || res.XPEarned != 15 {
		t.Errorf("Result = %+v (ok=%v), want merged backend result", res, ok)
	}

	// The submission carries one entry per answered question.
	if got := len(sub.lastSubmission.Answers); got != 3 {
		t.Errorf("submitted answers = %d, want 3", got)
	}
}

func TestFinishQuiz_SecondCallRejectedWhileInFlight(t *testing.T) {
	e, sub := newTestEngine(t, 3, testConfig())
	sub.release = make(chan struct{})
	e.Start()

	done := make(chan error, 1)
	go func() { done <- e.FinishQuiz(context.Background()) }()
	waitFor(t, "finishing flag", e.IsFinishing)

	if err := e.FinishQuiz(context.Background()); !errors.Is(err, ErrFinishInProgress) {
		t.Errorf("second call: err = %v, want ErrFinishInProgress", err)
	}

	close(sub.release)
	if err := <-done; err != nil {
		t.Fatalf("first call: %v", err)
	}
	if sub.callCount() != 1 {
		t.Errorf("submissions = %d, want exactly 1", sub.callCount())
	}
}

func TestFinishQuiz_AfterSubmittedRejected(t *testing.T) {
	e, sub := newTestEngine(t, 3, testConfig())
	e.Start()

	if err := e.FinishQuiz(context.Background()); err != nil {
		t.Fatalf("FinishQuiz: %v", err)
	}
	if err := e.FinishQuiz(context.Background()); !errors.Is(err, ErrAlreadyFinished) {
		t.Errorf("err = %v, want ErrAlreadyFinished", err)
	}
	if sub.callCount() != 1 {
		t.Errorf("submissions = %d, want 1", sub.callCount())
	}
}

func TestFinishQuiz_NoSession(t *testing.T) {
	e := New(Options{Submitter: &fakeSubmitter{}})
	if err := e.FinishQuiz(context.Background()); !errors.Is(err, ErrNoSession) {
		t.Errorf("err = %v, want ErrNoSession", err)
	}
}

func TestFinishQuiz_ConflictAdoptedAsSuccess(t *testing.T) {
	e, sub := newTestEngine(t, 3, testConfig())
	sub.setErr(fmt.Errorf("conflict: %w", results.ErrAlreadySubmitted))
	e.Start()

	if err := e.FinishQuiz(context.Background()); err != nil {
		t.Fatalf("conflict must not surface as an error, got %v", err)
	}
	if !e.HasSubmittedResults() {
		t.Error("expected submitted state after conflict")
	}
	sess, _ := e.Session()
	if sess.EndTime.IsZero() {
		t.Error("EndTime must be stamped on conflict recovery")
	}
}

func TestFinishQuiz_FailureLeavesSessionRetryable(t *testing.T) {
	e, sub := newTestEngine(t, 3, testConfig())
	sub.setErr(errors.New("connection reset"))
	e.Start()

	if err := e.FinishQuiz(context.Background()); err == nil {
		t.Fatal("expected an error from a failed submission")
	}
	if e.HasSubmittedResults() {
		t.Error("must not be submitted after failure")
	}
	if e.IsFinishing() {
		t.Error("finishing guard must be cleared after failure")
	}

	// The caller retries, the backend recovers.
	sub.setErr(nil)
	if err := e.FinishQuiz(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !e.HasSubmittedResults() {
		t.Error("expected submitted state after retry")
	}
	if sub.callCount() != 2 {
		t.Errorf("submissions = %d, want 2", sub.callCount())
	}
}

func TestFinishQuiz_NotifiesProgress(t *testing.T) {
	sub := &fakeSubmitter{result: &results.Result{Score: 20, CorrectAnswers: 2, TotalQuestions: 3, PointsEarned: 20}}
	notifier := &fakeNotifier{}
	e := New(Options{Submitter: sub, Notifier: notifier})
	if err := e.Initialize(makeQuestions(3), testConfig()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	e.Start()

	if err := e.FinishQuiz(context.Background()); err != nil {
		t.Fatalf("FinishQuiz: %v", err)
	}

	waitFor(t, "progress notification", func() bool {
		notifier.mu.Lock()
		defer notifier.mu.Unlock()
		return len(notifier.completions) == 1 && notifier.refreshes == 1
	})

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if notifier.completions[0].Points != 20 {
		t.Errorf("completion points = %d, want 20", notifier.completions[0].Points)
	}
}

func TestTick_UntimedSessionIgnoresTicks(t *testing.T) {
	e, sub := newTestEngine(t, 3, testConfig())
	e.Start()

	for i := 0; i < 10; i++ {
		e.Tick()
	}
	if sub.callCount() != 0 {
		t.Error("untimed session must never auto-finish")
	}
	if e.TimeRemaining() != 0 {
		t.Errorf("TimeRemaining = %d, want 0 for untimed", e.TimeRemaining())
	}
}

func TestTick_DecrementsAndAutoFinishesExactlyOnce(t *testing.T) {
	cfg := testConfig()
	cfg.TimeLimit = 3
	e, sub := newTestEngine(t, 3, cfg)
	e.Start()

	e.Tick()
	if e.TimeRemaining() != 2 {
		t.Fatalf("TimeRemaining = %d, want 2", e.TimeRemaining())
	}
	e.Tick()
	e.Tick() // crosses zero: finish fires within this tick

	waitFor(t, "auto-finish submission", func() bool { return e.HasSubmittedResults() })

	// Stray ticks after the terminal state change nothing.
	e.Tick()
	e.Tick()
	if sub.callCount() != 1 {
		t.Errorf("submissions = %d, want exactly 1", sub.callCount())
	}
}

func TestTick_ZeroCrossingFinishesSameTick(t *testing.T) {
	cfg := testConfig()
	cfg.TimeLimit = 1
	e, sub := newTestEngine(t, 3, cfg)
	e.Start()

	e.Tick() // 1 -> 0, must trigger finish in the same tick

	waitFor(t, "auto-finish submission", func() bool { return sub.callCount() == 1 })
	if e.TimeRemaining() != 0 {
		t.Errorf("TimeRemaining = %d, want 0", e.TimeRemaining())
	}
}

func TestTick_ManualFinishRacingTimerSubmitsOnce(t *testing.T) {
	cfg := testConfig()
	cfg.TimeLimit = 1
	e, sub := newTestEngine(t, 3, cfg)
	sub.release = make(chan struct{})
	e.Start()

	done := make(chan error, 1)
	go func() { done <- e.FinishQuiz(context.Background()) }()
	waitFor(t, "finishing flag", e.IsFinishing)

	e.Tick() // timer fires while the manual finish is in flight

	close(sub.release)
	if err := <-done; err != nil {
		t.Fatalf("FinishQuiz: %v", err)
	}
	if sub.callCount() != 1 {
		t.Errorf("submissions = %d, want exactly 1", sub.callCount())
	}
}
