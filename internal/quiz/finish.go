package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prasadg/medprep/internal/progress"
	"github.com/prasadg/medprep/internal/results"
	"github.com/prasadg/medprep/internal/store"
)

// notifyTimeout bounds the fire-and-forget progress notification.
const notifyTimeout = 10 * time.Second

// submissionSnapshot freezes everything the submission needs at the moment
// the finish guard is taken, so the network call runs without the lock.
type submissionSnapshot struct {
	sessionID     string
	answers       map[string]int
	timeTakenSecs int
	score         int
	correct       int
	total         int
	specialty     string
	mode          Mode
}

// FinishQuiz drives the session from active to its terminal submitted
// state. The guard transition is synchronous: a second call while a finish
// is in flight gets ErrFinishInProgress, and a call after a confirmed
// submit gets ErrAlreadyFinished, so a timer expiry racing a manual finish
// produces exactly one network submission. The network call itself blocks;
// callers that must stay responsive run FinishQuiz in a goroutine and poll
// IsFinishing/HasSubmittedResults.
//
// A backend "already submitted" response means an earlier attempt succeeded
// server-side: it is adopted as success, never surfaced as an error. Any
// other submission failure leaves the session retryable.
func (e *Engine) FinishQuiz(ctx context.Context) error {
	e.mu.Lock()
	snap, err := e.beginFinishLocked()
	e.mu.Unlock()
	if err != nil {
		return err
	}
	return e.submit(ctx, snap)
}

// beginFinishLocked takes the guard transition Active -> Finishing and
// captures the submission snapshot.
func (e *Engine) beginFinishLocked() (*submissionSnapshot, error) {
	if e.session == nil {
		return nil, ErrNoSession
	}
	if e.finishing {
		return nil, ErrFinishInProgress
	}
	if e.submitted {
		return nil, ErrAlreadyFinished
	}

	e.active = false
	e.finishing = true

	answers := make(map[string]int, len(e.answers))
	correct := 0
	for id, a := range e.answers {
		answers[id] = a.SelectedOption
		if a.Correct {
			correct++
		}
	}

	taken := 0
	if !e.session.StartTime.IsZero() {
		taken = int(e.now().Sub(e.session.StartTime).Seconds())
		if taken < 0 {
			taken = 0
		}
	}

	return &submissionSnapshot{
		sessionID:     e.session.ID,
		answers:       answers,
		timeTakenSecs: taken,
		score:         e.score,
		correct:       correct,
		total:         len(e.shuffled),
		specialty:     e.session.SpecialtyName,
		mode:          e.session.Mode,
	}, nil
}

// submit performs the network call and dispatches its outcome back into
// the state machine under the lock. The finishing guard is always cleared,
// whatever the outcome, so a failure can't wedge the session.
func (e *Engine) submit(ctx context.Context, snap *submissionSnapshot) error {
	if e.submitter == nil {
		e.mu.Lock()
		e.finishing = false
		e.mu.Unlock()
		return fmt.Errorf("no results submitter configured")
	}

	res, err := e.submitter.Submit(ctx, &results.Submission{
		SessionID:     snap.sessionID,
		Answers:       snap.answers,
		TimeTakenSecs: snap.timeTakenSecs,
	})

	e.mu.Lock()
	defer e.mu.Unlock()
	e.finishing = false

	switch {
	case err == nil:
		e.completeLocked(snap, res)
		e.recordSubmissionLocked(snap.sessionID, "success", res, "")
		return nil

	case errors.Is(err, results.ErrAlreadySubmitted):
		// A prior attempt evidently succeeded server-side; adopt it as
		// success so retries never double-score or surface an error.
		e.log.Info().
			Str("session_id", snap.sessionID).
			Msg("backend reports session already submitted, adopting as success")
		e.completeLocked(snap, nil)
		e.recordSubmissionLocked(snap.sessionID, "conflict", nil, "")
		return nil

	default:
		e.log.Error().
			Err(err).
			Str("session_id", snap.sessionID).
			Msg("result submission failed, session remains retryable")
		e.recordSubmissionLocked(snap.sessionID, "failure", nil, err.Error())
		return err
	}
}

// completeLocked enters the terminal submitted state and merges the
// authoritative result when one was returned.
func (e *Engine) completeLocked(snap *submissionSnapshot, res *results.Result) {
	e.submitted = true
	if e.session != nil && e.session.EndTime.IsZero() {
		e.session.EndTime = e.now()
	}
	if res != nil {
		e.result = res
		e.score = res.Score
	}

	e.recordSessionEventLocked("finish")

	if e.notifier != nil && res != nil {
		completion := progress.Completion{
			Description: fmt.Sprintf("Completed %s %s quiz (%d/%d correct)",
				snap.specialty, snap.mode, res.CorrectAnswers, res.TotalQuestions),
			Points: res.PointsEarned,
		}
		go e.notifyCompletion(completion)
	}
}

// notifyCompletion is fire-and-forget: progress/streak failures are logged
// and never affect the finished session.
func (e *Engine) notifyCompletion(completion progress.Completion) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := e.notifier.QuizCompleted(ctx, completion); err != nil {
		e.log.Warn().Err(err).Msg("failed to notify quiz completion")
	}
	if err := e.notifier.RefreshStreak(ctx); err != nil {
		e.log.Warn().Err(err).Msg("failed to refresh streak")
	}
}

func (e *Engine) recordSubmissionLocked(sessionID, status string, res *results.Result, errMsg string) {
	if e.events == nil {
		return
	}
	data := store.SubmissionEventData{
		SessionID:    sessionID,
		Status:       status,
		ErrorMessage: errMsg,
	}
	if res != nil {
		data.Score = res.Score
		data.PointsEarned = res.PointsEarned
		data.XPEarned = res.XPEarned
	}
	if err := e.events.AppendSubmission(context.Background(), data); err != nil {
		e.log.Warn().Err(err).Str("status", status).Msg("failed to record submission event")
	}
}
