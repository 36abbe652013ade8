package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("How do I reset my password?")
		id2 := IDFromContent("How do I reset my password?")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content different id", func(t *testing.T) {
		id1 := IDFromContent("first chunk")
		id2 := IDFromContent("second chunk")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("hex string is 16 chars", func(t *testing.T) {
		assert.Len(t, IDFromContent("x").String(), 16)
	})
}

func TestParseKnowledgeType(t *testing.T) {
	tests := []struct {
		label string
		want  KnowledgeType
	}{
		{"faq", KnowledgeFAQ},
		{"FAQ", KnowledgeFAQ},
		{"  policy\n", KnowledgePolicy},
		{"troubleshooting", KnowledgeTroubleshooting},
		{"sales", KnowledgeSales},
		{"general", KnowledgeGeneral},
		{"marketing", KnowledgeGeneral},
		{"", KnowledgeGeneral},
		{"I would classify this as faq", KnowledgeGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKnowledgeType(tt.label))
		})
	}
}

func TestRouteIntent(t *testing.T) {
	tests := []struct {
		intent Intent
		want   Department
	}{
		{IntentBilling, DepartmentBilling},
		{IntentTechnical, DepartmentTechnical},
		{IntentSales, DepartmentSales},
		{IntentComplaint, DepartmentCustomerService},
		{IntentFeedback, DepartmentCustomerService},
		{IntentGreeting, DepartmentGeneral},
		{IntentQuestion, DepartmentGeneral},
		{IntentOther, DepartmentGeneral},
		{Intent(""), DepartmentGeneral},
	}

	for _, tt := range tests {
		t.Run(string(tt.intent), func(t *testing.T) {
			assert.Equal(t, tt.want, RouteIntent(tt.intent))
		})
	}
}

func TestValidateChunk(t *testing.T) {
	valid := &Chunk{
		Content:     "some chunk text",
		Index:       0,
		TotalChunks: 3,
		DocumentID:  "doc-1",
	}
	require.NoError(t, ValidateChunk(valid))

	t.Run("nil", func(t *testing.T) {
		assert.ErrorIs(t, ValidateChunk(nil), ErrInvalidChunk)
	})

	t.Run("empty content", func(t *testing.T) {
		c := *valid
		c.Content = ""
		assert.ErrorIs(t, ValidateChunk(&c), ErrEmptyContent)
	})

	t.Run("index out of range", func(t *testing.T) {
		c := *valid
		c.Index = 3
		assert.ErrorIs(t, ValidateChunk(&c), ErrInvalidChunk)
	})

	t.Run("missing document id", func(t *testing.T) {
		c := *valid
		c.DocumentID = ""
		assert.ErrorIs(t, ValidateChunk(&c), ErrInvalidChunk)
	})
}

func TestValidateRelevance(t *testing.T) {
	assert.NoError(t, ValidateRelevance(0))
	assert.NoError(t, ValidateRelevance(0.5))
	assert.NoError(t, ValidateRelevance(1))
	assert.ErrorIs(t, ValidateRelevance(-0.01), ErrInvalidRelevance)
	assert.ErrorIs(t, ValidateRelevance(1.01), ErrInvalidRelevance)
}
