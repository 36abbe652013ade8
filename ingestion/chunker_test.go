package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkerIsDeterministic(t *testing.T) {
	text := strings.Repeat("Billing cycles renew on the first of the month. Invoices are emailed within two days.\n\n", 40)
	chunker := NewChunker(DefaultChunkSize, DefaultChunkOverlap)

	first, err := chunker.Split(text)
	require.NoError(t, err)
	second, err := chunker.Split(text)
	require.NoError(t, err)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second, "same text and parameters yield identical boundaries")
}

func TestChunkerSplitsLongText(t *testing.T) {
	text := strings.Repeat("Refunds are processed within five business days of approval. ", 60)
	chunker := NewChunker(DefaultChunkSize, DefaultChunkOverlap)

	pieces, err := chunker.Split(text)
	require.NoError(t, err)
	assert.Greater(t, len(pieces), 1, "3000+ characters cannot fit one chunk")
	for _, piece := range pieces {
		assert.NotEmpty(t, piece)
	}
}

func TestChunkerShortTextSingleChunk(t *testing.T) {
	chunker := NewChunker(DefaultChunkSize, DefaultChunkOverlap)
	pieces, err := chunker.Split("A short policy note.")
	require.NoError(t, err)
	require.Len(t, pieces, 1)
	assert.Equal(t, "A short policy note.", pieces[0])
}
