package results

import (
	"errors"
	"fmt"
)

// ErrAlreadySubmitted indicates the backend has already scored this session.
// It is a success signal for retrying clients, not a failure.
var ErrAlreadySubmitted = errors.New("results already submitted for this session")

// ErrServerUnavailable indicates the backend is down or unreachable.
type ErrServerUnavailable struct {
	Err error
}

func (e *ErrServerUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("results backend unavailable: %v", e.Err)
	}
	return "results backend unavailable"
}

func (e *ErrServerUnavailable) Unwrap() error { return e.Err }

// ErrBadRequest indicates the backend rejected the submission payload.
// Not retryable.
type ErrBadRequest struct {
	Message string
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("results backend rejected submission: %s", e.Message)
}
