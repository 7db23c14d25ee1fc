package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrUnsupportedProvider is returned when the selected provider is declared
// in the catalog but has no working client yet. It must be returned before
// any network activity.
var ErrUnsupportedProvider = errors.New("llm: provider is not supported yet")

// AuthError is returned when the provider rejects the API key (HTTP 401/403).
type AuthError struct {
	Provider string
	Body     string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: authentication failed: %s", e.Provider, e.Body)
}

// RateLimitError is returned when the provider responds with HTTP 429.
// RetryAfter carries the parsed Retry-After header when present.
type RateLimitError struct {
	Provider   string
	RetryAfter time.Duration
	Body       string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s: rate limited (retry after %s): %s", e.Provider, e.RetryAfter, e.Body)
	}
	return fmt.Sprintf("%s: rate limited: %s", e.Provider, e.Body)
}

// NetworkError wraps a transport failure (connection refused, timeout, DNS).
// Non-retriable in this scope.
type NetworkError struct {
	Provider string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network failure: %v", e.Provider, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is any other non-2xx provider response.
type APIError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// ParseRetryAfter parses a Retry-After header value as either seconds
// (integer) or an HTTP-date (RFC 7231). Returns zero if unparseable or if
// the date is in the past.
func ParseRetryAfter(val string) time.Duration {
	if val == "" {
		return 0
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(val); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
