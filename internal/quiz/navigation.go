package quiz

import "context"

// NextQuestion advances the cursor and re-stamps the per-question clock.
// At the last question it delegates to FinishQuiz instead of walking off
// the end of the working set.
func (e *Engine) NextQuestion(ctx context.Context) error {
	e.mu.Lock()
	if e.frozenLocked() {
		e.mu.Unlock()
		return nil
	}

	if e.current >= len(e.shuffled)-1 {
		e.mu.Unlock()
		return e.FinishQuiz(ctx)
	}

	e.current++
	e.lastQuestionStart = e.now()
	e.mu.Unlock()
	return nil
}

// PreviousQuestion moves the cursor back one question, re-stamping the
// per-question clock so revisit time is charged to the revisited question.
func (e *Engine) PreviousQuestion() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozenLocked() || e.current == 0 {
		return
	}
	e.current--
	e.lastQuestionStart = e.now()
}

// GoToQuestion jumps the cursor to index, reporting whether the move was
// accepted. Out-of-bounds indices leave the cursor unchanged.
func (e *Engine) GoToQuestion(index int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozenLocked() || index < 0 || index >= len(e.shuffled) {
		return false
	}
	e.current = index
	e.lastQuestionStart = e.now()
	return true
}

// BookmarkQuestion marks a question for later review, independent of
// whether or how it was answered. Idempotent.
func (e *Engine) BookmarkQuestion(questionID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil || e.submitted {
		return false
	}
	if _, ok := e.findQuestionLocked(questionID); !ok {
		return false
	}
	e.bookmarks.Add(questionID)
	return true
}

// UnbookmarkQuestion removes a bookmark. Idempotent.
func (e *Engine) UnbookmarkQuestion(questionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return
	}
	e.bookmarks.Remove(questionID)
}

// IsBookmarked reports whether a question is bookmarked.
func (e *Engine) IsBookmarked(questionID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bookmarks.Has(questionID)
}
