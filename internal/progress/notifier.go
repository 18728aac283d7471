package progress

import "context"

// Completion describes a finished activity reported to the progress service.
type Completion struct {
	Type        string `json:"type"` // always "quiz" for this client
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// Notifier reports quiz completions to the progress/streak service. Both
// calls are best-effort: the engine logs failures and moves on, it never
// blocks or fails a finished session on them.
type Notifier interface {
	QuizCompleted(ctx context.Context, c Completion) error
	RefreshStreak(ctx context.Context) error
}
