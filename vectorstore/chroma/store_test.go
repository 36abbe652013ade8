package chroma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhikarki/custoPilot/ai"
	"github.com/abhikarki/custoPilot/vectorstore"
)

func TestWhereClause(t *testing.T) {
	assert.Nil(t, whereClause(nil))
	assert.Nil(t, whereClause(vectorstore.Filter{}))

	single := whereClause(vectorstore.Filter{"organization_id": "org-1"})
	assert.Equal(t, map[string]any{"organization_id": "org-1"}, single)

	multi := whereClause(vectorstore.Filter{
		"organization_id": "org-1",
		"department_id":   "dep-1",
	})
	require.NotNil(t, multi)
	clauses, ok := multi["$and"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, clauses, 2)
	// Keys are sorted, so the clause order is stable.
	assert.Equal(t, map[string]any{"department_id": map[string]any{"$eq": "dep-1"}}, clauses[0])
	assert.Equal(t, map[string]any{"organization_id": map[string]any{"$eq": "org-1"}}, clauses[1])
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(Config{AI: ai.DefaultConfig()})
	assert.Error(t, err, "URL is required")

	_, err = New(Config{URL: "http://localhost:8000"})
	assert.Error(t, err, "AI config is required")
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.2))
	assert.Equal(t, 1.0, clamp01(1.7))
	assert.Equal(t, 0.42, clamp01(0.42))
}
