// Package gemini provides a Completer implementation for the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/agentfactory/backend/pkg/llm"
)

// DefaultBaseURL is the public Gemini API endpoint (no trailing slash).
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

var _ llm.Completer = (*Provider)(nil)

// Provider implements llm.Completer for the Gemini generateContent API.
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
	p := &Provider{Model: model, MaxTokens: 8192}
	p.Client = llm.Client{
		Provider: "gemini",
		BaseURL:  baseURL,
		Auth: llm.Auth{
			Key:    apiKey,
			Header: "x-goog-api-key",
		},
	}
	return p
}

// Complete sends the prompt to the Gemini API and returns the completion text.
func (p *Provider) Complete(ctx context.Context, req llm.Request) (string, error) {
	path := fmt.Sprintf("/v1beta/models/%s:generateContent", p.Model)

	apiReq := apiRequest{
		Contents: []apiContent{
			{Role: "user", Parts: []apiPart{{Text: req.User}}},
		},
		GenerationConfig: generationConfig{MaxOutputTokens: p.MaxTokens},
	}
	if req.System != "" {
		apiReq.SystemInstruction = &apiContent{Parts: []apiPart{{Text: req.System}}}
	}
	if req.Temperature != 0 {
		t := req.Temperature
		apiReq.GenerationConfig.Temperature = &t
	}

	var resp apiResponse
	if err := p.PostJSON(ctx, path, apiReq, &resp); err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini: empty candidates in response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}

// --- request types ---

type apiRequest struct {
	Contents          []apiContent     `json:"contents"`
	SystemInstruction *apiContent      `json:"systemInstruction,omitempty"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type apiContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []apiPart `json:"parts"`
}

type apiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens int      `json:"maxOutputTokens"`
}

// --- response types ---

type apiResponse struct {
	Candidates []apiCandidate `json:"candidates"`
}

type apiCandidate struct {
	Content      apiContent `json:"content"`
	FinishReason string     `json:"finishReason"`
}
