package openai

import (
	"github.com/abhikarki/custoPilot/ai"
)

// Provider implements ai.Provider for OpenAI-compatible services.
type Provider struct {
	completer *Completer
	embedder  *Embedder
}

// NewProvider creates a provider with chat and embedding services built
// from the given configuration.
//
// Returns ai.Provider interface to enforce abstraction.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	completer, err := newCompleter(config)
	if err != nil {
		return nil, err
	}

	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		completer: completer,
		embedder:  embedder,
	}, nil
}

// Completer returns the chat completion service.
func (p *Provider) Completer() ai.Completer {
	return p.completer
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// Close releases resources held by the provider.
// The underlying HTTP clients hold no resources that need explicit release.
func (p *Provider) Close() error {
	return nil
}
