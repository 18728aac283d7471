package content

import "github.com/prasadg/medprep/internal/quiz"

// Deck is a question bank for one specialty, as authored by the content
// team. Decks are immutable inputs: the engine shuffles copies, never the
// deck itself.
type Deck struct {
	SpecialtyID   string          `json:"specialty_id"`
	SpecialtyName string          `json:"specialty_name"`
	Questions     []quiz.Question `json:"questions"`
}
