package quiz

import (
	"fmt"
	"reflect"
	"testing"
)

// makeQuestions builds n four-option questions with the correct answer
// always at index 0, which makes remap verification straightforward.
func makeQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:   fmt.Sprintf("q%02d", i),
			Text: fmt.Sprintf("Question %d?", i),
			Options: []string{
				fmt.Sprintf("correct-%d", i),
				fmt.Sprintf("wrong-%d-a", i),
				fmt.Sprintf("wrong-%d-b", i),
				fmt.Sprintf("wrong-%d-c", i),
			},
			CorrectAnswer: 0,
		}
	}
	return qs
}

func TestShuffle_Deterministic(t *testing.T) {
	qs := makeQuestions(12)

	first := Shuffle(qs, 42, 0)
	second := Shuffle(qs, 42, 0)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical (questions, seed) pairs must yield identical output")
	}
}

func TestShuffle_SeedChangesOrder(t *testing.T) {
	qs := makeQuestions(12)

	a := Shuffle(qs, 1, 0)
	b := Shuffle(qs, 2, 0)

	same := true
	for i := range a {
		if a[i].ID != b[i].ID {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced the same question order")
	}
}

func TestShuffle_CorrectIndexInRange(t *testing.T) {
	qs := makeQuestions(20)

	for seed := int64(1); seed <= 50; seed++ {
		for _, q := range Shuffle(qs, seed, 0) {
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				t.Fatalf("seed %d: correct index %d out of range for %d options",
					seed, q.CorrectAnswer, len(q.Options))
			}
		}
	}
}

func TestShuffle_RemapTracksCorrectOption(t *testing.T) {
	qs := makeQuestions(15)

	for _, q := range Shuffle(qs, 7, 0) {
		got := q.Options[q.CorrectAnswer]
		if len(got) < 8 || got[:8] != "correct-" {
			t.Errorf("question %s: correct index points at %q, want the original correct option", q.ID, got)
		}
	}
}

func TestShuffle_AdjacentCorrectIndicesDistinct(t *testing.T) {
	qs := makeQuestions(25)

	for seed := int64(1); seed <= 100; seed++ {
		out := Shuffle(qs, seed, 0)
		for i := 1; i < len(out); i++ {
			if len(out[i].Options) < 2 {
				continue
			}
			if out[i].CorrectAnswer == out[i-1].CorrectAnswer {
				t.Fatalf("seed %d: questions %d and %d share correct index %d",
					seed, i-1, i, out[i].CorrectAnswer)
			}
		}
	}
}

func TestShuffle_SingleOptionLeftUntouched(t *testing.T) {
	qs := []Question{
		{ID: "a", Options: []string{"x", "y", "z"}, CorrectAnswer: 0},
		{ID: "b", Options: []string{"only"}, CorrectAnswer: 0},
		{ID: "c", Options: []string{"p", "q"}, CorrectAnswer: 1},
	}

	for seed := int64(1); seed <= 20; seed++ {
		for _, q := range Shuffle(qs, seed, 0) {
			if q.ID != "b" {
				continue
			}
			if q.CorrectAnswer != 0 || q.Options[0] != "only" {
				t.Fatalf("seed %d: single-option question was modified", seed)
			}
		}
	}
}

func TestShuffle_TruncatesToTotal(t *testing.T) {
	qs := makeQuestions(10)

	out := Shuffle(qs, 3, 4)
	if len(out) != 4 {
		t.Errorf("len = %d, want 4", len(out))
	}

	// Requesting more than available keeps everything.
	out = Shuffle(qs, 3, 50)
	if len(out) != 10 {
		t.Errorf("len = %d, want 10", len(out))
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	qs := makeQuestions(8)
	original := make([]Question, len(qs))
	for i, q := range qs {
		original[i] = q.clone()
	}

	Shuffle(qs, 99, 0)

	if !reflect.DeepEqual(qs, original) {
		t.Error("Shuffle mutated its input")
	}
}

func TestNewSeed_NonZeroAndVarying(t *testing.T) {
	a := NewSeed()
	b := NewSeed()
	if a < 0 || b < 0 {
		t.Errorf("seeds must be non-negative, got %d and %d", a, b)
	}
	if a == b {
		t.Error("consecutive seeds were identical")
	}
}
