package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	err = repo.Save(ctx, &Snapshot{
		SessionID: "sess-1",
		Data:      map[string]any{"score": float64(30)},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.SessionID != "sess-1" {
		t.Errorf("session_id = %q, want sess-1", snap.SessionID)
	}
	if snap.Sequence == 0 {
		t.Error("expected sequence to be drawn automatically")
	}
	if snap.Timestamp.IsZero() {
		t.Error("expected timestamp to be stamped automatically")
	}
	if snap.Data["score"] != float64(30) {
		t.Errorf("data.score = %v, want 30", snap.Data["score"])
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			SessionID: "sess-1",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      map[string]any{"n": float64(i + 1)},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data["n"] != float64(3) {
		t.Errorf("data.n = %v, want 3", snap.Data["n"])
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			SessionID: "sess-1",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      map[string]any{"n": float64(i + 1)},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// The newest snapshot must survive the prune.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data["n"] != float64(7) {
		t.Errorf("latest data.n = %v, want 7", snap.Data["n"])
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			SessionID: "sess-1",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      map[string]any{},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Errorf("seq[%d] = %d, not monotonically increasing past %d", i, seq, prev)
		}
		prev = seq
	}
}

func TestAppendAnswerAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "sess-1", QuestionID: "q1", SpecialtyID: "cardio", SelectedOption: 0, CorrectOption: 0, Correct: true, TimeMs: 4000},
		{SessionID: "sess-1", QuestionID: "q2", SpecialtyID: "cardio", SelectedOption: 2, CorrectOption: 1, Correct: false, TimeMs: 9000},
		{SessionID: "sess-1", QuestionID: "q3", SpecialtyID: "neuro", SelectedOption: 1, CorrectOption: 1, Correct: true, TimeMs: 6000},
	}
	for _, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	acc, err := repo.SpecialtyAccuracy(ctx, "cardio")
	if err != nil {
		t.Fatalf("specialty accuracy: %v", err)
	}
	if acc != 0.5 {
		t.Errorf("cardio accuracy = %v, want 0.5", acc)
	}

	acc, err = repo.SpecialtyAccuracy(ctx, "derm")
	if err != nil {
		t.Fatalf("specialty accuracy (empty): %v", err)
	}
	if acc != 0 {
		t.Errorf("derm accuracy = %v, want 0", acc)
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d specialties, want 2", len(stats))
	}
	for _, st := range stats {
		switch st.SpecialtyID {
		case "cardio":
			if st.Answered != 2 || st.Correct != 1 {
				t.Errorf("cardio stats = %+v", st)
			}
		case "neuro":
			if st.Answered != 1 || st.Correct != 1 {
				t.Errorf("neuro stats = %+v", st)
			}
		default:
			t.Errorf("unexpected specialty %q", st.SpecialtyID)
		}
	}
}

func TestAppendSessionAndSubmission(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSession(ctx, SessionEventData{
		SessionID:      "sess-1",
		Action:         "start",
		Mode:           "practice",
		SpecialtyID:    "cardio",
		TotalQuestions: 10,
	})
	if err != nil {
		t.Fatalf("append session: %v", err)
	}

	err = repo.AppendSubmission(ctx, SubmissionEventData{
		SessionID:    "sess-1",
		Status:       "failure",
		ErrorMessage: "backend unavailable",
	})
	if err != nil {
		t.Fatalf("append submission: %v", err)
	}

	err = repo.AppendSubmission(ctx, SubmissionEventData{
		SessionID:    "sess-1",
		Status:       "success",
		Score:        80,
		PointsEarned: 80,
		XPEarned:     40,
	})
	if err != nil {
		t.Fatalf("append submission: %v", err)
	}

	count, err := s.Client().SubmissionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count submissions: %v", err)
	}
	if count != 2 {
		t.Errorf("submission events = %d, want 2", count)
	}
}
