package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhikarki/custoPilot/ai/mock"
	"github.com/abhikarki/custoPilot/vectorstore"
)

// axisEmbedder maps known texts to fixed unit vectors so similarity
// scores are exact in tests.
func axisEmbedder(vectors map[string][]float32) *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	lookup := func(text string) []float32 {
		if v, ok := vectors[text]; ok {
			return v
		}
		return []float32{0, 0, 1}
	}
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return lookup(text), nil
	}
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i, text := range texts {
			out[i] = lookup(text)
		}
		return out, nil
	}
	return embedder
}

func TestAddAssignsDeterministicIDs(t *testing.T) {
	store := New(mock.NewMockEmbedder())
	docs := []vectorstore.Document{
		{Content: "refund policy", Metadata: map[string]string{"document_id": "d1", "chunk_index": "0"}},
		{Content: "refund policy", Metadata: map[string]string{"document_id": "d2", "chunk_index": "0"}},
	}

	ids, err := store.Add(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1], "same content under different documents gets distinct ids")

	again, err := store.Add(context.Background(), docs[:1])
	require.NoError(t, err)
	assert.Equal(t, ids[0], again[0], "re-adding identical content yields the same id")
	assert.Equal(t, 2, store.Len())
}

func TestSearchFiltersAndOrders(t *testing.T) {
	embedder := axisEmbedder(map[string][]float32{
		"query":    {1, 0, 0},
		"close":    {1, 0.2, 0},
		"closer":   {1, 0.05, 0},
		"far":      {0, 1, 0},
		"other org": {1, 0, 0},
	})
	store := New(embedder)

	_, err := store.Add(context.Background(), []vectorstore.Document{
		{Content: "close", Metadata: map[string]string{"organization_id": "org-1", "document_id": "d1", "chunk_index": "0"}},
		{Content: "closer", Metadata: map[string]string{"organization_id": "org-1", "document_id": "d1", "chunk_index": "1"}},
		{Content: "far", Metadata: map[string]string{"organization_id": "org-1", "document_id": "d2", "chunk_index": "0"}},
		{Content: "other org", Metadata: map[string]string{"organization_id": "org-2", "document_id": "d3", "chunk_index": "0"}},
	})
	require.NoError(t, err)

	results, err := store.Search(context.Background(), "query", 10, vectorstore.Filter{"organization_id": "org-1"})
	require.NoError(t, err)
	require.Len(t, results, 3, "other-org document filtered out")

	assert.Equal(t, "closer", results[0].Content)
	assert.Equal(t, "close", results[1].Content)
	assert.Equal(t, "far", results[2].Content)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
	assert.InDelta(t, 1.0, results[0].Score, 0.01)
}

func TestSearchRespectsK(t *testing.T) {
	store := New(mock.NewMockEmbedder())
	docs := make([]vectorstore.Document, 8)
	for i := range docs {
		docs[i] = vectorstore.Document{
			Content:  string(rune('a' + i)),
			Metadata: map[string]string{"organization_id": "org-1"},
		}
	}
	_, err := store.Add(context.Background(), docs)
	require.NoError(t, err)

	results, err := store.Search(context.Background(), "query", 3, vectorstore.Filter{"organization_id": "org-1"})
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestDelete(t *testing.T) {
	store := New(mock.NewMockEmbedder())
	ids, err := store.Add(context.Background(), []vectorstore.Document{
		{Content: "to remove", Metadata: map[string]string{"organization_id": "org-1"}},
		{Content: "to keep", Metadata: map[string]string{"organization_id": "org-1"}},
	})
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), ids[:1]))
	assert.Equal(t, 1, store.Len())

	// Deleting unknown ids is a no-op.
	require.NoError(t, store.Delete(context.Background(), []string{"missing"}))
	assert.Equal(t, 1, store.Len())
}

func TestFilterMatches(t *testing.T) {
	metadata := map[string]string{"organization_id": "org-1", "department_id": "dep-9"}

	assert.True(t, vectorstore.Filter{}.Matches(metadata))
	assert.True(t, vectorstore.Filter{"organization_id": "org-1"}.Matches(metadata))
	assert.True(t, vectorstore.Filter{"organization_id": "org-1", "department_id": "dep-9"}.Matches(metadata))
	assert.False(t, vectorstore.Filter{"organization_id": "org-2"}.Matches(metadata))
	assert.False(t, vectorstore.Filter{"knowledge_type": "faq"}.Matches(metadata))
}
