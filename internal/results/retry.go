package results

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig controls the backoff behavior of RetrySubmitter.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig returns sensible retry settings for submissions.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 500 * time.Millisecond,
		MaxWait:     5 * time.Second,
		Multiplier:  2.0,
	}
}

// RetrySubmitter is a decorator that retries transient submission failures
// with exponential backoff and jitter.
type RetrySubmitter struct {
	inner  Submitter
	config RetryConfig
}

// WithRetry wraps a Submitter with retry logic.
func WithRetry(s Submitter, cfg RetryConfig) Submitter {
	return &RetrySubmitter{inner: s, config: cfg}
}

func (r *RetrySubmitter) Submit(ctx context.Context, sub *Submission) (*Result, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		res, err := r.inner.Submit(ctx, sub)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return nil, err
		}

		// Last attempt — don't sleep, just return the error.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt)):
		}
	}

	return nil, lastErr
}

// shouldRetry determines if a submission error is retryable.
func shouldRetry(err error) bool {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// A duplicate submission is a terminal success signal, never a retry.
	if errors.Is(err, ErrAlreadySubmitted) {
		return false
	}

	// Payload rejections won't get better on retry.
	var bad *ErrBadRequest
	if errors.As(err, &bad) {
		return false
	}

	// Unavailable backend and anything else (network, etc.) is transient.
	return true
}

// backoff computes the wait duration for the given attempt.
func (r *RetrySubmitter) backoff(attempt int) time.Duration {
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
