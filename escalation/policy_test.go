package escalation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideBelowThreshold(t *testing.T) {
	decision := Decide(0.4, DefaultThreshold, false)
	assert.True(t, decision.Escalate)
	assert.Equal(t, Medium, decision.Priority)
	assert.Equal(t, ReasonLowConfidence, decision.Reason)
}

func TestDecideModelSuggestionAlone(t *testing.T) {
	decision := Decide(0.9, DefaultThreshold, true)
	assert.True(t, decision.Escalate, "model suggestion escalates even with high confidence")
	assert.Equal(t, Low, decision.Priority)
	assert.Equal(t, ReasonModelSuggested, decision.Reason)
}

func TestDecideNoEscalation(t *testing.T) {
	decision := Decide(0.85, DefaultThreshold, false)
	assert.False(t, decision.Escalate)
	assert.Equal(t, Low, decision.Priority)
	assert.Empty(t, decision.Reason)
}

func TestDecideAtThreshold(t *testing.T) {
	// The comparison is strict: exactly at threshold does not escalate.
	decision := Decide(0.7, DefaultThreshold, false)
	assert.False(t, decision.Escalate)
}

func TestDecideCustomThreshold(t *testing.T) {
	assert.True(t, Decide(0.85, 0.9, false).Escalate)
	assert.False(t, Decide(0.85, 0.8, false).Escalate)
}

func TestPriorityFor(t *testing.T) {
	cases := []struct {
		confidence float64
		want       Priority
	}{
		{0.0, High},
		{0.29, High},
		{0.3, Medium},
		{0.49, Medium},
		{0.5, Low},
		{0.7, Low},
		{1.0, Low},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PriorityFor(c.confidence), "confidence %v", c.confidence)
	}
}
