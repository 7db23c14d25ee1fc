package generator

import (
	"github.com/agentfactory/backend/pkg/catalog"
	"github.com/agentfactory/backend/pkg/llm"
	"github.com/agentfactory/backend/pkg/llm/anthropic"
	"github.com/agentfactory/backend/pkg/llm/gemini"
	"github.com/agentfactory/backend/pkg/llm/openai"
)

// DefaultFactory wires the catalog's provider variants to their clients.
// Base URLs override the public endpoints when non-empty (self-hosted
// gateways, tests). Every variant is listed explicitly: anything the switch
// does not know, including the catalog's declared-but-unsupported entries,
// gets the stub that fails fast without a network call.
func DefaultFactory(geminiBaseURL, openaiBaseURL string) CompleterFactory {
	return func(p catalog.Provider, apiKey, model string) llm.Completer {
		switch p.ID {
		case catalog.Gemini:
			return gemini.New(geminiBaseURL, apiKey, model)
		case catalog.OpenAI:
			return openai.New(openaiBaseURL, apiKey, model)
		case catalog.Anthropic:
			return anthropic.New("", apiKey, model)
		default:
			return anthropic.New("", apiKey, model)
		}
	}
}
