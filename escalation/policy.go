package escalation

// Priority orders escalated conversations for the human queue.
type Priority int

const (
	Low    Priority = 1
	Medium Priority = 2
	High   Priority = 3
)

// DefaultThreshold is the confidence below which a conversation
// escalates when no override is configured.
const DefaultThreshold = 0.7

// Reasons attached to escalation decisions.
const (
	ReasonLowConfidence  = "low_confidence"
	ReasonModelSuggested = "model_suggested"
)

// Decision is the outcome of evaluating a scored response.
type Decision struct {
	Escalate bool
	Priority Priority
	Reason   string
}

// Decide evaluates a confidence score against the threshold. The model's
// own suggestion is OR'd in: either signal alone triggers escalation.
func Decide(confidence, threshold float64, modelSuggests bool) Decision {
	belowThreshold := confidence < threshold
	if !belowThreshold && !modelSuggests {
		return Decision{Priority: PriorityFor(confidence)}
	}

	reason := ReasonModelSuggested
	if belowThreshold {
		reason = ReasonLowConfidence
	}
	return Decision{
		Escalate: true,
		Priority: PriorityFor(confidence),
		Reason:   reason,
	}
}

// PriorityFor maps a confidence score to a queue priority. Lower
// confidence means a more urgent handoff.
func PriorityFor(confidence float64) Priority {
	switch {
	case confidence < 0.3:
		return High
	case confidence < 0.5:
		return Medium
	default:
		return Low
	}
}
