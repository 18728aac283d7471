package results

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultTimeout = 15 * time.Second

// Client submits finished sessions to the scoring backend over HTTP.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     zerolog.Logger
}

// ClientConfig configures a results Client.
type ClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Logger  zerolog.Logger
}

// NewClient creates a results client for the given backend.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("results base URL is required")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
		log:     cfg.Logger,
	}, nil
}

// errorEnvelope is the backend's error response body.
type errorEnvelope struct {
	Error string `json:"error"`
}

// Submit posts the session results. A 409 response, or any error body whose
// message says the session was already submitted, maps to ErrAlreadySubmitted.
func (c *Client) Submit(ctx context.Context, sub *Submission) (*Result, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("marshal submission: %w", err)
	}

	url := c.baseURL + "/v1/quiz-results"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ErrServerUnavailable{Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("session_id", sub.SessionID).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("result submission round trip")

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var res Result
		if err := json.Unmarshal(raw, &res); err != nil {
			return nil, fmt.Errorf("decode result: %w", err)
		}
		return &res, nil
	}

	var envelope errorEnvelope
	_ = json.Unmarshal(raw, &envelope)

	if resp.StatusCode == http.StatusConflict || isAlreadySubmitted(envelope.Error) {
		return nil, fmt.Errorf("%s: %w", http.StatusText(resp.StatusCode), ErrAlreadySubmitted)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, &ErrBadRequest{Message: envelope.Error}
	case resp.StatusCode >= 500:
		return nil, &ErrServerUnavailable{Err: fmt.Errorf("status %d: %s", resp.StatusCode, envelope.Error)}
	default:
		return nil, fmt.Errorf("submit results: status %d: %s", resp.StatusCode, envelope.Error)
	}
}

// isAlreadySubmitted matches the backend's duplicate-submission message
// regardless of status code, since older deployments return it as a 400.
func isAlreadySubmitted(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "already submitted")
}
