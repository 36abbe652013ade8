package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, cfg.ChatHost, cfg.EmbeddingHost)
}

func TestNewConfigOptions(t *testing.T) {
	cfg := NewConfig(
		WithHost("http://llm.internal:9000"),
		WithChatModel("gpt-4o-mini"),
		WithEmbeddingModel("text-embedding-3-small"),
		WithToken("secret"),
	)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://llm.internal:9000/v1", cfg.ChatHost)
	assert.Equal(t, "http://llm.internal:9000/v1", cfg.EmbeddingHost)
	assert.Equal(t, "gpt-4o-mini", cfg.ChatModel)
	assert.Equal(t, "secret", cfg.Token)
}

func TestNormalizeAddsV1Suffix(t *testing.T) {
	cfg := NewConfig(WithChatHost("http://localhost:8080/"))
	cfg.Normalize()
	assert.Equal(t, "http://localhost:8080/v1", cfg.ChatHost)

	// Already canonical hosts are left alone.
	cfg = NewConfig(WithChatHost("http://localhost:8080/v1"))
	cfg.Normalize()
	assert.Equal(t, "http://localhost:8080/v1", cfg.ChatHost)
}

func TestValidateRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing chat model", func(c *Config) { c.ChatModel = "" }},
		{"missing embedding model", func(c *Config) { c.EmbeddingModel = "" }},
		{"missing chat host", func(c *Config) { c.ChatHost = "" }},
		{"missing embedding host", func(c *Config) { c.EmbeddingHost = "" }},
		{"missing token", func(c *Config) { c.Token = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
