package results

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
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
	return c, srv
}

func TestClientSubmitSuccess(t *testing.T) {
	var gotAuth string
	var gotBody Submission
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/quiz-results" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(Result{
			Score:          80,
			CorrectAnswers: 8,
			TotalQuestions: 10,
			PointsEarned:   80,
			XPEarned:       40,
		})
	})

	res, err := c.Submit(context.Background(), &Submission{
		SessionID:     "sess-1",
		Answers:       map[string]int{"q1": 2},
		TimeTakenSecs: 120,
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotBody.SessionID != "sess-1" || gotBody.Answers["q1"] != 2 || gotBody.TimeTakenSecs != 120 {
		t.Errorf("unexpected submission body: %+v", gotBody)
	}
	if res.Score != 80 || res.XPEarned != 40 {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestClientSubmitConflictStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "duplicate"})
	})

	_, err := c.Submit(context.Background(), &Submission{SessionID: "sess-1"})
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got: %v", err)
	}
}

func TestClientSubmitConflictMessage(t *testing.T) {
	// Older deployments report duplicates as a 400 with a message instead
	// of a 409.
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Quiz already submitted"})
	})

	_, err := c.Submit(context.Background(), &Submission{SessionID: "sess-1"})
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got: %v", err)
	}
}

func TestClientSubmitBadRequest(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"error": "answers field is required"})
	})

	_, err := c.Submit(context.Background(), &Submission{SessionID: "sess-1"})
	var bad *ErrBadRequest
	if !errors.As(err, &bad) {
		t.Fatalf("expected ErrBadRequest, got: %v", err)
	}
	if bad.Message != "answers field is required" {
		t.Errorf("Message = %q", bad.Message)
	}
}

func TestClientSubmitServerError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Submit(context.Background(), &Submission{SessionID: "sess-1"})
	var unavailable *ErrServerUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrServerUnavailable, got: %v", err)
	}
}

func TestClientSubmitConnectionRefused(t *testing.T) {
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := c.Submit(context.Background(), &Submission{SessionID: "sess-1"})
	var unavailable *ErrServerUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrServerUnavailable, got: %v", err)
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient(ClientConfig{}); err == nil {
		t.Fatal("NewClient() accepted empty base URL")
	}
}
