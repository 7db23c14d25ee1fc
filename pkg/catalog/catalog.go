// Package catalog holds the static generation catalogs: target agent
// frameworks, LLM providers with their model lists, and quick-start
// templates. Everything here is built once at init and read-only afterwards.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Framework is a target agent framework tag.
type Framework string

const (
	LangGraph Framework = "LangGraph"
	CrewAI    Framework = "CrewAI"
	AutoGen   Framework = "AutoGen"
)

var ErrUnknownFramework = errors.New("unknown framework")

var frameworks = []Framework{LangGraph, CrewAI, AutoGen}

// Frameworks returns the supported framework tags in display order.
func Frameworks() []Framework {
	out := make([]Framework, len(frameworks))
	copy(out, frameworks)
	return out
}

// ParseFramework matches a tag case-insensitively against the known frameworks.
func ParseFramework(s string) (Framework, error) {
	for _, f := range frameworks {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFramework, s)
}

// Info returns a one-line description of what the framework is best at.
func (f Framework) Info() string {
	switch f {
	case LangGraph:
		return "Best for stateful workflows and complex decision trees"
	case CrewAI:
		return "Ideal for collaborative agent teams with specialized roles"
	case AutoGen:
		return "Perfect for conversational agents and chat-based systems"
	}
	return ""
}

// Requirements returns the pip install line for code generated against the
// framework. Generated agents are Python regardless of target framework.
func (f Framework) Requirements() string {
	var dep string
	switch f {
	case LangGraph:
		dep = "langgraph"
	case CrewAI:
		dep = "crewai"
	case AutoGen:
		dep = "pyautogen"
	default:
		return ""
	}
	return dep + " python-dotenv google-generativeai\n"
}

// DownloadFilename returns the artifact name offered to the browser.
func (f Framework) DownloadFilename() string {
	return strings.ToLower(string(f)) + "_system.py"
}

// ProviderID identifies an LLM completion service.
type ProviderID string

const (
	Gemini    ProviderID = "gemini"
	OpenAI    ProviderID = "openai"
	Anthropic ProviderID = "anthropic"
)

// DefaultProvider is preselected in the UI.
const DefaultProvider = Gemini

var ErrUnknownProvider = errors.New("unknown provider")

// Provider describes one completion service and the models it serves.
type Provider struct {
	ID           ProviderID `json:"id"`
	Models       []string   `json:"models"`
	DefaultModel string     `json:"defaultModel"`
	// Supported is false for providers that are listed but not wired yet;
	// selecting one fails fast without a network call.
	Supported bool `json:"supported"`
}

var providers = []Provider{
	{
		ID:           Gemini,
		Models:       []string{"gemini-1.5-pro", "gemini-1.0-pro"},
		DefaultModel: "gemini-1.5-pro",
		Supported:    true,
	},
	{
		ID:           OpenAI,
		Models:       []string{"gpt-4-turbo", "gpt-3.5-turbo"},
		DefaultModel: "gpt-4-turbo",
		Supported:    true,
	},
	{
		ID:           Anthropic,
		Models:       []string{"claude-3-opus-20240229", "claude-3-sonnet-20240229"},
		DefaultModel: "claude-3-opus-20240229",
		Supported:    false,
	},
}

// Providers returns all known providers, supported or not.
func Providers() []Provider {
	out := make([]Provider, len(providers))
	for i, p := range providers {
		out[i] = p
		out[i].Models = append([]string(nil), p.Models...)
	}
	return out
}

// ProviderByID matches a provider id case-insensitively.
func ProviderByID(id string) (Provider, error) {
	for _, p := range providers {
		if strings.EqualFold(id, string(p.ID)) {
			cp := p
			cp.Models = append([]string(nil), p.Models...)
			return cp, nil
		}
	}
	return Provider{}, fmt.Errorf("%w: %q", ErrUnknownProvider, id)
}

// HasModel reports whether the provider serves the given model id.
func (p Provider) HasModel(model string) bool {
	for _, m := range p.Models {
		if m == model {
			return true
		}
	}
	return false
}
