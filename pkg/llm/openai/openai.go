// Package openai provides a Completer implementation for the OpenAI Chat
// Completions API.
package openai

import (
	"context"
	"fmt"

	"github.com/agentfactory/backend/pkg/llm"
)

// DefaultBaseURL is the public OpenAI API endpoint (no trailing slash).
const DefaultBaseURL = "https://api.openai.com"

const completionsPath = "/v1/chat/completions"

var _ llm.Completer = (*Provider)(nil)

// Provider implements llm.Completer for the OpenAI Chat Completions API.
type Provider struct {
	llm.Client
	Model     string
	MaxTokens int
}

// New creates a Provider for the given model, authenticated with apiKey.
// An empty baseURL falls back to DefaultBaseURL.
func New(baseURL, apiKey, model string) *Provider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	p := &Provider{Model: model, MaxTokens: 1200}
	p.Client = llm.Client{
		Provider: "openai",
		BaseURL:  baseURL,
		Auth:     llm.Auth{Key: apiKey},
	}
	return p
}

// Complete sends the prompt to the chat completions endpoint and returns the
// assistant's reply.
func (p *Provider) Complete(ctx context.Context, req llm.Request) (string, error) {
	apiReq := apiRequest{
		Model: p.Model,
		Messages: []apiMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		MaxTokens: p.MaxTokens,
	}
	if req.Temperature != 0 {
		t := req.Temperature
		apiReq.Temperature = &t
	}

	var resp apiResponse
	if err := p.PostJSON(ctx, completionsPath, apiReq, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

// --- request types ---

type apiRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	MaxTokens   int          `json:"max_tokens,omitempty"`
	Temperature *float64     `json:"temperature,omitempty"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// --- response types ---

type apiResponse struct {
	Choices []apiChoice `json:"choices"`
}

type apiChoice struct {
	Message      apiMessage `json:"message"`
	FinishReason string     `json:"finish_reason"`
}
