package quiz

// Question is a single multiple-choice question as supplied by a content
// provider. The provider's copy is immutable; the engine works on shuffled
// copies it owns.
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"` // index into Options
	Explanation   string   `json:"explanation,omitempty"`
	Difficulty    int      `json:"difficulty,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
}

// clone returns a copy with its own options slice, so shuffling never
// touches the caller's data.
func (q Question) clone() Question {
	opts := make([]string, len(q.Options))
	copy(opts, q.Options)
	q.Options = opts
	return q
}
