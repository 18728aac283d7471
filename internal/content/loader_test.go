package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validDeck = `{
  "specialty_id": "cardio",
  "specialty_name": "Cardiology",
  "questions": [
    {
      "id": "c1",
      "text": "Which valve is auscultated at the apex?",
      "options": ["Mitral", "Aortic", "Pulmonic", "Tricuspid"],
      "correct_answer": 0,
      "explanation": "The mitral area sits at the fifth intercostal space, midclavicular line.",
      "difficulty": 1
    },
    {
      "id": "c2",
      "text": "ST elevation in leads II, III and aVF points to which territory?",
      "options": ["Inferior", "Anterior", "Lateral", "Posterior"],
      "correct_answer": 0
    }
  ]
}`

func TestParseValidDeck(t *testing.T) {
	deck, err := Parse([]byte(validDeck))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if deck.SpecialtyID != "cardio" {
		t.Errorf("SpecialtyID = %q, want cardio", deck.SpecialtyID)
	}
	if len(deck.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(deck.Questions))
	}
	if deck.Questions[1].ID != "c2" {
		t.Errorf("Questions[1].ID = %q, want c2", deck.Questions[1].ID)
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Fatal("Parse() accepted malformed JSON")
	}
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing specialty", `{"questions": []}`},
		{"empty questions", `{"specialty_id": "x", "specialty_name": "X", "questions": []}`},
		{"question missing options", `{"specialty_id": "x", "specialty_name": "X", "questions": [{"id": "q1", "text": "T?", "correct_answer": 0}]}`},
		{"negative correct answer", `{"specialty_id": "x", "specialty_name": "X", "questions": [{"id": "q1", "text": "T?", "options": ["a"], "correct_answer": -1}]}`},
		{"unknown field", `{"specialty_id": "x", "specialty_name": "X", "questions": [{"id": "q1", "text": "T?", "options": ["a"], "correct_answer": 0, "hint": "no"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.raw)); err == nil {
				t.Fatal("Parse() accepted invalid deck")
			}
		})
	}
}

func TestParseRejectsOutOfRangeCorrectAnswer(t *testing.T) {
	raw := `{"specialty_id": "x", "specialty_name": "X", "questions": [
		{"id": "q1", "text": "T?", "options": ["a", "b"], "correct_answer": 2}
	]}`
	_, err := Parse([]byte(raw))
	if err == nil {
		t.Fatal("Parse() accepted out-of-range correct_answer")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("error = %v, want out-of-range message", err)
	}
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	raw := `{"specialty_id": "x", "specialty_name": "X", "questions": [
		{"id": "q1", "text": "T?", "options": ["a", "b"], "correct_answer": 0},
		{"id": "q1", "text": "U?", "options": ["a", "b"], "correct_answer": 1}
	]}`
	if _, err := Parse([]byte(raw)); err == nil {
		t.Fatal("Parse() accepted duplicate question ids")
	}
}

func TestLoadReadsDeckFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.json")
	if err := os.WriteFile(path, []byte(validDeck), 0o644); err != nil {
		t.Fatal(err)
	}
	deck, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if deck.SpecialtyName != "Cardiology" {
		t.Errorf("SpecialtyName = %q, want Cardiology", deck.SpecialtyName)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("Load() succeeded on missing file")
	}
}

func TestBuiltinDeckIsValid(t *testing.T) {
	deck, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	if len(deck.Questions) == 0 {
		t.Fatal("builtin deck has no questions")
	}
	for _, q := range deck.Questions {
		if q.CorrectAnswer >= len(q.Options) {
			t.Errorf("question %s: correct_answer out of range", q.ID)
		}
	}
}
