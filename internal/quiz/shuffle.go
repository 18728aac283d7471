package quiz

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// Stream selectors keep the option permutations, the question-order
// permutation, and the repair draws on independent deterministic streams
// derived from one session seed.
const (
	orderStream  uint64 = 1
	repairStream uint64 = 2
	optionStream uint64 = 1 << 32 // + question position
)

// NewSeed draws a fresh session seed from the OS entropy source, so option
// positions cannot be predicted from a guessable seed. Falls back to the
// wall clock if the entropy source fails.
func NewSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]) &^ (1 << 63))
}

// Shuffle produces the session's working question set: each question's
// options are permuted on a per-question sub-seed with the correct index
// remapped, the question order is permuted, the set is truncated to total
// (0 keeps everything), and runs of identical correct indices across
// consecutive questions are broken up. Identical (questions, seed, total)
// inputs always yield identical output, which is what makes sessions
// reproducible for review.
func Shuffle(questions []Question, seed int64, total int) []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = shuffleOptions(q, seed, uint64(i))
	}

	order := rand.New(rand.NewPCG(uint64(seed), orderStream))
	for i := len(out) - 1; i > 0; i-- {
		j := order.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	if total > 0 && total < len(out) {
		out = out[:total]
	}

	repairCorrectRuns(out, rand.New(rand.NewPCG(uint64(seed), repairStream)))
	return out
}

// shuffleOptions permutes a question's options with a Fisher–Yates shuffle
// seeded per question position, tracking where the correct option lands.
func shuffleOptions(q Question, seed int64, pos uint64) Question {
	q = q.clone()
	if len(q.Options) < 2 {
		return q
	}

	r := rand.New(rand.NewPCG(uint64(seed), optionStream+pos))
	for i := len(q.Options) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
		switch q.CorrectAnswer {
		case i:
			q.CorrectAnswer = j
		case j:
			q.CorrectAnswer = i
		}
	}
	return q
}

// repairCorrectRuns breaks runs of identical correct indices across
// consecutive questions, so a test-taker can't ride one option position
// through the quiz. When question i's correct index matches question i-1's,
// the correct option is swapped with another option drawn from the seeded
// stream. Questions with fewer than two options have no swap target and are
// left untouched. A single forward pass suffices: the replacement index
// always differs from the previous question's correct index.
func repairCorrectRuns(qs []Question, r *rand.Rand) {
	for i := 1; i < len(qs); i++ {
		q := &qs[i]
		if len(q.Options) < 2 || q.CorrectAnswer != qs[i-1].CorrectAnswer {
			continue
		}

		j := r.IntN(len(q.Options) - 1)
		if j >= q.CorrectAnswer {
			j++
		}
		q.Options[q.CorrectAnswer], q.Options[j] = q.Options[j], q.Options[q.CorrectAnswer]
		q.CorrectAnswer = j
	}
}
