// Package httpretry wraps an HTTP client so that calls to the model provider
// survive rate limiting and brief upstream outages.
//
// A request is retried when the transport fails or the provider answers
// 429, 500, 502, 503 or 504. Waits grow exponentially with full jitter and
// honor a Retry-After header in seconds, never exceeding the configured
// ceiling. Client errors and canceled contexts end the loop at once.
package httpretry

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/ignite/networking-ai/internal/pkg/logger"
)

// HTTPDoer is the interface for executing HTTP requests.
// Both *http.Client and *RetryClient satisfy this interface.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// backoff bounds the wait between attempts.
type backoff struct {
	base  time.Duration // upper bound of the first wait
	max   time.Duration // ceiling for any wait, Retry-After included
	floor time.Duration // lower bound so jitter never spins
}

// wait returns the pause before retry number n (1-based). A positive hint
// from Retry-After replaces the computed value.
func (b backoff) wait(n int, hint time.Duration) time.Duration {
	if hint > 0 {
		if hint > b.max {
			return b.max
		}
		return hint
	}
	window := b.base << (n - 1)
	if window <= 0 || window > b.max {
		window = b.max
	}
	d := time.Duration(rand.Int63n(int64(window) + 1))
	if d < b.floor {
		d = b.floor
	}
	return d
}

// RetryClient retries transient failures of the wrapped HTTPDoer.
type RetryClient struct {
	client     HTTPDoer
	maxRetries int
	backoff    backoff
}

// NewRetryClient wraps client. A nil client gets a plain http.Client with a
// 30s timeout. maxRetries counts attempts after the first; zero disables
// retries and a negative value selects 3.
func NewRetryClient(client HTTPDoer, maxRetries int) *RetryClient {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if maxRetries < 0 {
		maxRetries = 3
	}
	return &RetryClient{
		client:     client,
		maxRetries: maxRetries,
		backoff:    backoff{base: time.Second, max: 30 * time.Second, floor: 100 * time.Millisecond},
	}
}

// WithBackoff overrides the wait window. base bounds the first retry, max
// caps every later one.
func (rc *RetryClient) WithBackoff(base, max time.Duration) *RetryClient {
	rc.backoff.base = base
	rc.backoff.max = max
	if rc.backoff.floor > base {
		rc.backoff.floor = base
	}
	return rc
}

// Do sends req, retrying transient failures. When retries run out on a
// retryable status the last response is returned unread so the caller can
// report the provider's error body.
func (rc *RetryClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	var lastErr error
	var hint time.Duration

	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			if err := rewind(req); err != nil {
				return nil, err
			}
			delay := rc.backoff.wait(attempt, hint)
			logger.Warn("httpretry: retrying request",
				"attempt", attempt, "max_retries", rc.maxRetries,
				"method", req.Method, "host", req.URL.Host, "path", req.URL.Path, "wait", delay)
			if err := sleep(ctx, delay); err != nil {
				return nil, firstErr(lastErr, err)
			}
		} else if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := rc.client.Do(req)
		last := attempt == rc.maxRetries
		switch {
		case err != nil:
			if ctx.Err() != nil || last {
				return nil, err
			}
			lastErr, hint = err, 0
		case !retryableStatus(resp.StatusCode) || last:
			return resp, nil
		default:
			hint = retryAfter(resp.Header.Get("Retry-After"))
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf("httpretry: server returned retryable status %d", resp.StatusCode)
		}
	}
}

// rewind resets the body for another attempt. Requests built from
// bytes/strings readers carry GetBody; others have no body to replay.
func rewind(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("httpretry: failed to reset request body: %w", err)
	}
	req.Body = body
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// retryAfter parses a delay-seconds Retry-After value. HTTP dates and
// garbage yield zero, falling back to computed backoff.
func retryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// retryableStatus reports whether the provider signaled a transient
// condition: rate limiting or a gateway/server failure.
func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
