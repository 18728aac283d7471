package results

import (
	"context"
	"errors"
	"testing"
	"time"
)

// scriptedSubmitter returns canned responses in order, repeating the last
// one once the script runs out.
type scriptedSubmitter struct {
	script []scriptedResponse
	calls  int
}

type scriptedResponse struct {
	res *Result
	err error
}

func (s *scriptedSubmitter) Submit(ctx context.Context, sub *Submission) (*Result, error) {
	i := s.calls
	if i >= len(s.script) {
		i = len(s.script) - 1
	}
	s.calls++
	return s.script[i].res, s.script[i].err
}

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := &scriptedSubmitter{script: []scriptedResponse{
		{res: &Result{Score: 50}},
	}}
	s := WithRetry(mock, retryConfig())

	res, err := s.Submit(context.Background(), &Submission{SessionID: "s1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 50 {
		t.Fatalf("unexpected score: %d", res.Score)
	}
	if mock.calls != 1 {
		t.Fatalf("expected 1 call, got %d", mock.calls)
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := &scriptedSubmitter{script: []scriptedResponse{
		{err: &ErrServerUnavailable{Err: errors.New("down")}},
		{res: &Result{Score: 30}},
	}}
	s := WithRetry(mock, retryConfig())

	res, err := s.Submit(context.Background(), &Submission{SessionID: "s1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 30 {
		t.Fatalf("unexpected score: %d", res.Score)
	}
	if mock.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.calls)
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := &scriptedSubmitter{script: []scriptedResponse{
		{err: &ErrServerUnavailable{Err: errors.New("down")}},
	}}
	s := WithRetry(mock, retryConfig())

	_, err := s.Submit(context.Background(), &Submission{SessionID: "s1"})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavailable *ErrServerUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrServerUnavailable, got: %T", err)
	}
	if mock.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.calls)
	}
}

func TestRetry_ConflictNotRetried(t *testing.T) {
	mock := &scriptedSubmitter{script: []scriptedResponse{
		{err: ErrAlreadySubmitted},
	}}
	s := WithRetry(mock, retryConfig())

	_, err := s.Submit(context.Background(), &Submission{SessionID: "s1"})
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got: %v", err)
	}
	if mock.calls != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.calls)
	}
}

func TestRetry_BadRequestNotRetried(t *testing.T) {
	mock := &scriptedSubmitter{script: []scriptedResponse{
		{err: &ErrBadRequest{Message: "answers missing"}},
	}}
	s := WithRetry(mock, retryConfig())

	_, err := s.Submit(context.Background(), &Submission{SessionID: "s1"})
	var bad *ErrBadRequest
	if !errors.As(err, &bad) {
		t.Fatalf("expected ErrBadRequest, got: %T", err)
	}
	if mock.calls != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.calls)
	}
}

func TestRetry_CancelledContextNotRetried(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mock := &scriptedSubmitter{script: []scriptedResponse{
		{err: ctx.Err()},
	}}
	s := WithRetry(mock, retryConfig())

	_, err := s.Submit(ctx, &Submission{SessionID: "s1"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
	if mock.calls != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.calls)
	}
}
