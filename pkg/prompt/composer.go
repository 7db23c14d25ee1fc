// Package prompt builds the LLM instruction for a generation request:
// a framework-specific system prompt plus an enhanced user prompt carrying
// the use-case description verbatim.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agentfactory/backend/pkg/catalog"
)

// ErrEmptyInput is returned when the use-case description is empty after
// trimming whitespace.
var ErrEmptyInput = errors.New("prompt: use-case description is empty")

// Prompt is a composed instruction pair ready to send to a provider.
type Prompt struct {
	System string
	User   string
}

// Compose merges the framework and the use-case description into a single
// instruction. Deterministic and side-effect free: identical inputs always
// yield identical prompts.
func Compose(f catalog.Framework, sourceText string) (Prompt, error) {
	text := strings.TrimSpace(sourceText)
	if text == "" {
		return Prompt{}, ErrEmptyInput
	}

	user := fmt.Sprintf("Create a %s agent for: %s\n\nMake sure to include: %s",
		f, text, structuralHint(f))

	return Prompt{
		System: SystemPrompt(f),
		User:   user,
	}, nil
}
