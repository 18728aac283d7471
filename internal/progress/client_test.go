package progress

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(ClientConfig{
		BaseURL: srv.URL,
		Token:   "test-token",
		Logger:  zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

func TestQuizCompletedPostsActivity(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody Completion
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	})

	err := c.QuizCompleted(context.Background(), Completion{
		Description: "Completed Cardiology practice quiz (8/10 correct)",
		Points:      80,
	})
	if err != nil {
		t.Fatalf("QuizCompleted() error = %v", err)
	}
	if gotPath != "/v1/progress/activities" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotBody.Type != "quiz" {
		t.Errorf("Type = %q, want quiz", gotBody.Type)
	}
	if gotBody.Points != 80 {
		t.Errorf("Points = %d, want 80", gotBody.Points)
	}
}

func TestRefreshStreakPostsRefresh(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	})

	if err := c.RefreshStreak(context.Background()); err != nil {
		t.Fatalf("RefreshStreak() error = %v", err)
	}
	if gotPath != "/v1/progress/streak/refresh" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestPostSurfacesHTTPErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if err := c.QuizCompleted(context.Background(), Completion{}); err == nil {
		t.Fatal("QuizCompleted() swallowed server error")
	}
}
