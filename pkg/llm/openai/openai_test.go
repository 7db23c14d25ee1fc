package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfactory/backend/pkg/llm"
)

func TestCompleteSendsChatCompletionsRequest(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq apiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(apiResponse{
			Choices: []apiChoice{{
				Message: apiMessage{Role: "assistant", Content: "def run():\n    pass"},
			}},
		})
	}))
	defer srv.Close()

	p := New(srv.URL, "sk-key", "gpt-4-turbo")
	text, err := p.Complete(context.Background(), llm.Request{
		System:      "system prompt",
		User:        "user prompt",
		Temperature: 0.2,
	})
	require.NoError(t, err)
	assert.Equal(t, "def run():\n    pass", text)

	assert.Equal(t, completionsPath, gotPath)
	assert.Equal(t, "Bearer sk-key", gotAuth)
	assert.Equal(t, "gpt-4-turbo", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "system prompt", gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "user prompt", gotReq.Messages[1].Content)
	require.NotNil(t, gotReq.Temperature)
	assert.InDelta(t, 0.2, *gotReq.Temperature, 1e-9)
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(apiResponse{})
	}))
	defer srv.Close()

	_, err := New(srv.URL, "k", "gpt-4-turbo").Complete(context.Background(), llm.Request{User: "x"})
	assert.Error(t, err)
}

func TestCompleteSurfacesAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "bad", "gpt-4-turbo").Complete(context.Background(), llm.Request{User: "x"})
	var authErr *llm.AuthError
	assert.ErrorAs(t, err, &authErr)
}
