// Package anthropic is the declared-but-unimplemented provider variant.
// It exists so selecting Anthropic in the catalog fails fast with a typed
// error instead of falling through to another provider's endpoint.
package anthropic

import (
	"context"

	"github.com/agentfactory/backend/pkg/llm"
)

var _ llm.Completer = (*Provider)(nil)

// Provider rejects every completion request. It never dials the network.
type Provider struct{}

// New creates the stub provider. The arguments mirror the working providers
// so the factory can treat all variants uniformly; they are discarded.
func New(_, _, _ string) *Provider { return &Provider{} }

// Complete returns llm.ErrUnsupportedProvider synchronously.
func (p *Provider) Complete(_ context.Context, _ llm.Request) (string, error) {
	return "", llm.ErrUnsupportedProvider
}
