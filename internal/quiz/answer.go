package quiz

import (
	"context"

	"github.com/prasadg/medprep/internal/store"
)

// SubmitAnswer records the user's pick for a question, reporting whether it
// was accepted. It is rejected (false) for unknown questions, out-of-range
// option indices, and sessions that are finishing or already submitted;
// those are UI-sequencing mistakes, not user-facing failures. A second
// submission for the same question replaces the first; the running score is
// recomputed from the surviving answers.
func (e *Engine) SubmitAnswer(questionID string, selectedOption int) bool {
	e.mu.Lock()

	if e.frozenLocked() {
		e.mu.Unlock()
		return false
	}

	q, ok := e.findQuestionLocked(questionID)
	if !ok || selectedOption < 0 || selectedOption >= len(q.Options) {
		e.mu.Unlock()
		return false
	}

	now := e.now()
	var elapsedMs int64
	if !e.lastQuestionStart.IsZero() {
		elapsedMs = now.Sub(e.lastQuestionStart).Milliseconds()
	}
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	e.timeSpentMs[questionID] += elapsedMs
	e.lastQuestionStart = now

	correct := selectedOption == q.CorrectAnswer
	e.answers[questionID] = Answer{
		QuestionID:     questionID,
		SelectedOption: selectedOption,
		TimeSpentMs:    elapsedMs,
		Correct:        correct,
		Timestamp:      now,
	}

	if correct {
		e.wrong.Remove(questionID)
	} else {
		e.wrong.Add(questionID)
	}
	e.score = PointsPerCorrect * e.correctCountLocked()

	data := store.AnswerEventData{
		SessionID:      e.session.ID,
		QuestionID:     questionID,
		SpecialtyID:    e.session.SpecialtyID,
		SelectedOption: selectedOption,
		CorrectOption:  q.CorrectAnswer,
		Correct:        correct,
		TimeMs:         elapsedMs,
	}
	events := e.events
	log := e.log
	e.mu.Unlock()

	if events != nil {
		if err := events.AppendAnswer(context.Background(), data); err != nil {
			log.Warn().Err(err).Str("question_id", questionID).Msg("failed to record answer event")
		}
	}
	return true
}
