package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Auth holds authentication settings for a provider API.
type Auth struct {
	Key    string // API key value.
	Header string // Header name (default: "Authorization").
	Scheme string // Scheme prefix (default: "Bearer" when Header is "Authorization").
}

// Client holds shared HTTP state for provider implementations. Embed it in a
// concrete provider struct to get request building, auth headers, and the
// status-to-error mapping. Concrete types define their own Complete method.
type Client struct {
	Provider string       // Provider name used in error messages.
	BaseURL  string       // API base URL (no trailing slash).
	Auth     Auth         // Authentication settings.
	HTTP     *http.Client // HTTP client; falls back to a 90s-timeout default.
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: 90 * time.Second}
}

// newRequest builds an *http.Request with the base URL and auth header applied.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}

	if c.Auth.Key != "" {
		header := c.Auth.Header
		if header == "" {
			header = "Authorization"
		}
		value := c.Auth.Key
		if header == "Authorization" {
			scheme := c.Auth.Scheme
			if scheme == "" {
				scheme = "Bearer"
			}
			value = scheme + " " + value
		} else if c.Auth.Scheme != "" {
			value = c.Auth.Scheme + " " + value
		}
		req.Header.Set(header, value)
	}

	return req, nil
}

// PostJSON marshals payload as JSON, POSTs it to path, maps non-2xx statuses
// onto the error taxonomy, and unmarshals a 2xx body into dest.
func (c *Client) PostJSON(ctx context.Context, path string, payload any, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return &NetworkError{Provider: c.Provider, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		respBody, _ := io.ReadAll(resp.Body)
		return &AuthError{Provider: c.Provider, Body: string(respBody)}
	case resp.StatusCode == http.StatusTooManyRequests:
		respBody, _ := io.ReadAll(resp.Body)
		return &RateLimitError{
			Provider:   c.Provider,
			RetryAfter: ParseRetryAfter(resp.Header.Get("Retry-After")),
			Body:       string(respBody),
		}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		respBody, _ := io.ReadAll(resp.Body)
		return &APIError{Provider: c.Provider, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
