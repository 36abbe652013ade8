package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhikarki/custoPilot/ai"
)

func TestNewCompleterValidatesConfig(t *testing.T) {
	_, err := NewCompleter(&ai.Config{})
	assert.Error(t, err)

	completer, err := NewCompleter(ai.DefaultConfig())
	require.NoError(t, err)
	assert.NotNil(t, completer)
}

func TestNewEmbedderValidatesConfig(t *testing.T) {
	_, err := NewEmbedder(&ai.Config{ChatHost: "http://localhost:11434/v1"})
	assert.Error(t, err)

	embedder, err := NewEmbedder(ai.DefaultConfig())
	require.NoError(t, err)
	assert.NotNil(t, embedder)
}

func TestNewProviderBundlesServices(t *testing.T) {
	_, err := NewProvider(&ai.Config{})
	assert.Error(t, err)

	provider, err := NewProvider(ai.DefaultConfig())
	require.NoError(t, err)
	assert.NotNil(t, provider.Completer())
	assert.NotNil(t, provider.Embedder())
	assert.NoError(t, provider.Close())
}
