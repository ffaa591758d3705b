// Package gemini implements the outbound client for the generateContent
// endpoint, including the bounded retry policy shared by the analysis and
// workflow orchestrators.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const apiKeyHeader = "X-goog-api-key"

// GenerationConfig carries the sampling parameters for one prompt family.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type part struct {
	Text string `json:"text"`
}

type message struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents         []message        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content message `json:"content"`
	} `json:"candidates"`
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client issues generateContent calls with per-attempt timeouts that grow
// across retries. It is safe for concurrent use.
type Client struct {
	http           *http.Client
	logger         *slog.Logger
	apiKey         string
	baseURL        string
	maxAttempts    int
	baseDelay      time.Duration
	attemptTimeout time.Duration
	timeoutStep    time.Duration
}

// New creates a Client from configuration. The underlying http.Client
// carries no global timeout; each attempt is bounded by its own context.
func New(cfg *Config, logger *slog.Logger) *Client {
	return &Client{
		http:           &http.Client{},
		logger:         logger.With("system", "gemini"),
		apiKey:         cfg.APIKey,
		baseURL:        cfg.BaseURL,
		maxAttempts:    cfg.MaxAttempts,
		baseDelay:      cfg.RetryBaseDelayDuration(),
		attemptTimeout: cfg.AttemptTimeoutDuration(),
		timeoutStep:    cfg.AttemptTimeoutStepDuration(),
	}
}

// Generate sends the prompt to the model and returns the first candidate's
// text. Overload (503), rate limiting (429), timeouts, and transient
// connection failures are retried with exponential backoff up to the attempt
// budget; any other upstream rejection is returned immediately as
// ErrRejected carrying the provider's status and message.
func (c *Client) Generate(ctx context.Context, prompt string, gen GenerationConfig) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents:         []message{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: gen,
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		timeout := c.attemptTimeout + time.Duration(attempt)*c.timeoutStep

		text, err := c.attempt(ctx, body, timeout)
		if err == nil {
			return text, nil
		}
		lastErr = err

		delay, retryable := c.retryDelay(err, attempt)
		if !retryable {
			return "", err
		}
		if attempt == c.maxAttempts-1 {
			break
		}

		c.logger.Warn(
			"generation attempt failed, retrying",
			"attempt", attempt+1,
			"max_attempts", c.maxAttempts,
			"delay", delay,
			"error", err,
		)

		if err := sleep(ctx, delay); err != nil {
			return "", err
		}
	}

	return "", lastErr
}

func (c *Client) attempt(ctx context.Context, body []byte, timeout time.Duration) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			// Caller went away; abandon rather than retry.
			return "", ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return "", fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", ErrUnreachable, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return extractText(payload)
	case http.StatusServiceUnavailable:
		return "", ErrOverloaded
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	default:
		return "", fmt.Errorf("%w: upstream status %d: %s", ErrRejected, resp.StatusCode, upstreamMessage(payload))
	}
}

// retryDelay classifies a failed attempt. Rate limiting backs off more
// aggressively than overload and transient failures.
func (c *Client) retryDelay(err error, attempt int) (time.Duration, bool) {
	switch {
	case errors.Is(err, ErrRateLimited):
		return backoff(c.baseDelay, 3, attempt), true
	case errors.Is(err, ErrOverloaded), errors.Is(err, ErrTimeout), errors.Is(err, ErrUnreachable):
		return backoff(c.baseDelay, 2, attempt), true
	default:
		return 0, false
	}
}

func backoff(base time.Duration, factor, attempt int) time.Duration {
	d := base
	for range attempt {
		d *= time.Duration(factor)
	}
	return d
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func extractText(payload []byte) (string, error) {
	var parsed generateResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ErrEmptyResponse, err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func upstreamMessage(payload []byte) string {
	var envelope errorEnvelope
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}

	if len(payload) > 200 {
		payload = payload[:200]
	}
	return string(payload)
}
