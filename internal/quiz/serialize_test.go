package quiz

import (
	"encoding/json"
	"testing"
)

func TestSnapshot_RoundTripRestores(t *testing.T) {
	cfg := testConfig()
	cfg.TimeLimit = 120
	e, _ := newTestEngine(t, 5, cfg)
	e.Start()

	answerCurrent(t, e, true)
	e.GoToQuestion(2)
	answerCurrent(t, e, false)
	q, _ := e.CurrentQuestion()
	e.BookmarkQuestion(q.ID)
	e.Tick()

	snap := e.Snapshot()
	if snap == nil {
		t.Fatal("expected a snapshot")
	}

	// The snapshot survives the JSON boundary the store persists through.
	raw, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded EngineSnapshot
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	restored := New(Options{Submitter: &fakeSubmitter{}})
	if err := restored.Restore(&decoded); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if restored.IsActive() {
		t.Error("restored session must come back paused")
	}
	if restored.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex = %d, want 2", restored.CurrentIndex())
	}
	if restored.Score() != e.Score() {
		t.Errorf("Score = %d, want %d", restored.Score(), e.Score())
	}
	if restored.TimeRemaining() != e.TimeRemaining() {
		t.Errorf("TimeRemaining = %d, want %d", restored.TimeRemaining(), e.TimeRemaining())
	}
	if restored.AnswerCount() != 2 {
		t.Errorf("AnswerCount = %d, want 2", restored.AnswerCount())
	}
	if got := restored.Bookmarks(); len(got) != 1 || got[0] != q.ID {
		t.Errorf("Bookmarks = %v, want [%s]", got, q.ID)
	}
	if got := restored.WrongAnswers(); len(got) != 1 {
		t.Errorf("WrongAnswers = %v, want one entry", got)
	}

	rs, _ := restored.Session()
	es, _ := e.Session()
	if rs.ID != es.ID || rs.Mode != es.Mode || rs.TimeLimit != es.TimeLimit {
		t.Error("restored session descriptor mismatch")
	}
	if restored.Seed() != e.Seed() {
		t.Error("restored seed mismatch")
	}
}

func TestSnapshot_NilWithoutSession(t *testing.T) {
	e := New(Options{Submitter: &fakeSubmitter{}})
	if e.Snapshot() != nil {
		t.Error("expected nil snapshot without a session")
	}
}

func TestRestore_RejectsCorruptSnapshots(t *testing.T) {
	e, _ := newTestEngine(t, 3, testConfig())
	e.Start()
	snap := e.Snapshot()

	restored := New(Options{Submitter: &fakeSubmitter{}})

	if err := restored.Restore(nil); err == nil {
		t.Error("expected error for nil snapshot")
	}

	bad := *snap
	bad.CurrentIndex = 17
	if err := restored.Restore(&bad); err == nil {
		t.Error("expected error for out-of-range cursor")
	}

	bad = *snap
	bad.Questions = nil
	if err := restored.Restore(&bad); err == nil {
		t.Error("expected error for empty question set")
	}
}

func TestSnapshot_MapFormRoundTrips(t *testing.T) {
	e, _ := newTestEngine(t, 3, testConfig())
	e.Start()
	answerCurrent(t, e, true)

	snap := e.Snapshot()
	m, err := snap.ToMap()
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}
	back, err := SnapshotFromMap(m)
	if err != nil {
		t.Fatalf("SnapshotFromMap: %v", err)
	}
	if back.Session.ID != snap.Session.ID {
		t.Error("session id lost in map round trip")
	}
	if len(back.Answers) != len(snap.Answers) {
		t.Error("answers lost in map round trip")
	}
}

func TestSnapshot_IsolatedFromEngine(t *testing.T) {
	e, _ := newTestEngine(t, 3, testConfig())
	e.Start()
	snap := e.Snapshot()

	// Mutating the engine after the fact must not leak into the snapshot.
	answerCurrent(t, e, true)
	if len(snap.Answers) != 0 {
		t.Error("snapshot shares answer state with the engine")
	}
}
