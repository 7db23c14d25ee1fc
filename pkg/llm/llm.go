// Package llm abstracts over heterogeneous LLM completion providers.
// It intentionally hides concrete providers to preserve dependency direction:
// callers depend on Completer, never on a provider package.
package llm

import "context"

// Request is a normalized completion request: a system instruction, the user
// prompt, and sampling temperature. Model and credentials are fixed at
// provider construction time.
type Request struct {
	System      string
	User        string
	Temperature float64
}

// Completer sends one prompt to an LLM provider and returns the textual
// completion. Implementations perform exactly one network call per Complete
// invocation and surface failures unmodified; retry policy lives in
// RetryCompleter, never inside a provider.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}
