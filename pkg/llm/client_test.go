package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return &Client{Provider: "test", BaseURL: url, Auth: Auth{Key: "sk-test"}}
}

func TestPostJSONSuccess(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"answer":"ok"}`))
	}))
	defer srv.Close()

	var out struct {
		Answer string `json:"answer"`
	}
	err := newTestClient(srv.URL).PostJSON(context.Background(), "/v1/things", map[string]string{"q": "hi"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Answer)
	assert.Equal(t, "Bearer sk-test", gotAuth)
}

func TestPostJSONCustomAuthHeader(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := &Client{Provider: "test", BaseURL: srv.URL, Auth: Auth{Key: "k", Header: "x-goog-api-key"}}
	require.NoError(t, c.PostJSON(context.Background(), "/", nil, nil))
	assert.Equal(t, "k", gotKey)
}

func TestPostJSONAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).PostJSON(context.Background(), "/", nil, nil)
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "test", authErr.Provider)
	assert.Contains(t, authErr.Body, "invalid api key")
}

func TestPostJSONRateLimitError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).PostJSON(context.Background(), "/", nil, nil)
	var rle *RateLimitError
	require.ErrorAs(t, err, &rle)
	assert.Equal(t, 7*time.Second, rle.RetryAfter)
}

func TestPostJSONAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).PostJSON(context.Background(), "/", nil, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestPostJSONNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestClient(url).PostJSON(context.Background(), "/", nil, nil)
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, 30*time.Second, ParseRetryAfter("30"))
	assert.Equal(t, time.Duration(0), ParseRetryAfter(""))
	assert.Equal(t, time.Duration(0), ParseRetryAfter("garbage"))
	// HTTP-date in the past yields zero.
	assert.Equal(t, time.Duration(0), ParseRetryAfter("Wed, 21 Oct 2015 07:28:00 GMT"))
}
