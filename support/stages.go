package support

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/abhikarki/custoPilot/core"
	"github.com/abhikarki/custoPilot/escalation"
	"github.com/abhikarki/custoPilot/llmjson"
	"github.com/abhikarki/custoPilot/vectorstore"
)

const (
	// retrievalK is how many candidates the vector search returns.
	retrievalK = 5

	// relevanceCutoff drops weak hits. The comparison is strict: a score
	// of exactly 0.5 is excluded.
	relevanceCutoff = 0.5

	// Snippet truncation, in characters, for the prompts that quote
	// retrieved context.
	reasonerSnippetLength  = 500
	responderSnippetLength = 800

	// History windows.
	intentHistoryTurns   = 5
	reasonerHistoryTurns = 3
)

// Agent names tagged onto results, so downstream heuristics can tell a
// real answer from the fallback path.
const (
	AgentResponse         = "response_agent"
	AgentResponseFallback = "response_agent_fallback"
)

// Fixed fallback texts for degraded stages.
const (
	fallbackReasoning = "Unable to fully analyze the query. Proceeding with available information."
	fallbackResponse  = "I apologize, but I'm having trouble generating a response. Let me connect you with a support team member who can help."
)

// Scorer defaults: a malformed answer keeps a usable mid confidence; a
// failed call is treated as a reason to hand off.
const (
	malformedScoreConfidence = 0.6
	failedScoreConfidence    = 0.5
)

// intent classifies the message and extracts entities, with the last few
// turns as context. Any failure defaults to a question with no entities.
func (p *Pipeline) intent(ctx context.Context, state State) State {
	state.Intent = core.IntentQuestion
	state.Entities = map[string]any{}

	prompt := intentPrompt(state.UserMessage, lastTurns(state.History, intentHistoryTurns))
	response, err := p.completer.Complete(ctx, intentSystem, prompt, 0)
	if err != nil {
		p.logger.Warn("intent classification failed", "err", err)
		return state
	}

	var out struct {
		Intent   string         `json:"intent"`
		Entities map[string]any `json:"entities"`
	}
	if err := llmjson.Unmarshal(response, &out); err != nil {
		p.logger.Warn("intent answer was malformed", "err", err)
		return state
	}

	if parsed, ok := parseIntent(out.Intent); ok {
		state.Intent = parsed
	}
	if out.Entities != nil {
		state.Entities = out.Entities
	}
	return state
}

// router picks the department. An explicitly supplied department
// overrides the intent map entirely.
func (p *Pipeline) router(ctx context.Context, state State) State {
	if state.Department != "" {
		state.RoutedDepartment = state.Department
		return state
	}
	state.RoutedDepartment = core.RouteIntent(state.Intent)
	return state
}

// retriever searches the knowledge index with the message plus extracted
// entity values, keeps only hits above the relevance cutoff and derives
// the source citations in the same order.
func (p *Pipeline) retriever(ctx context.Context, state State) State {
	query := retrievalQuery(state.UserMessage, state.Entities)

	filter := vectorstore.Filter{"organization_id": state.OrganizationID}
	if len(state.DepartmentIDs) == 1 {
		filter["department_id"] = state.DepartmentIDs[0]
	}

	hits, err := p.store.Search(ctx, query, retrievalK, filter)
	if err != nil {
		p.logger.Warn("knowledge retrieval failed", "err", err)
		return state
	}

	scope := documentScope(state.DocumentIDs)
	for _, hit := range hits {
		if err := core.ValidateRelevance(hit.Score); err != nil {
			p.logger.Warn("dropping hit with invalid relevance", "err", err)
			continue
		}
		if hit.Score <= relevanceCutoff {
			continue
		}
		documentID := hit.Metadata["document_id"]
		if scope != nil && !scope[documentID] {
			continue
		}
		state.Contexts = append(state.Contexts, core.RetrievedContext{
			Content:    hit.Content,
			DocumentID: documentID,
			Metadata:   hit.Metadata,
			Relevance:  hit.Score,
		})
		state.Sources = append(state.Sources, core.Source{
			DocumentID: documentID,
			Relevance:  hit.Score,
		})
	}

	p.logger.Debug("knowledge retrieved", "hits", len(hits), "kept", len(state.Contexts))
	return state
}

// reasoner produces a short analysis of whether the retrieved context
// answers the question. Failure yields a fixed sentence and never blocks
// the responder.
func (p *Pipeline) reasoner(ctx context.Context, state State) State {
	snippets := contextSnippets(state.Contexts, reasonerSnippetLength)
	prompt := reasonerPrompt(state.UserMessage, snippets, lastTurns(state.History, reasonerHistoryTurns))

	response, err := p.completer.Complete(ctx, reasonerSystem, prompt, state.Temperature)
	if err != nil || strings.TrimSpace(response) == "" {
		p.logger.Warn("reasoning failed", "err", err)
		state.Reasoning = fallbackReasoning
		return state
	}

	state.Reasoning = response
	return state
}

// responder produces the user-facing answer. Failure yields the fixed
// apologetic fallback and tags the run with the fallback agent name.
func (p *Pipeline) responder(ctx context.Context, state State) State {
	snippets := contextSnippets(state.Contexts, responderSnippetLength)
	prompt := responderPrompt(state.UserMessage, state.Reasoning, snippets)

	response, err := p.completer.Complete(ctx, state.SystemPrompt, prompt, state.Temperature)
	if err != nil || strings.TrimSpace(response) == "" {
		p.logger.Warn("response generation failed", "err", err)
		state.Response = fallbackResponse
		state.AgentName = AgentResponseFallback
		return state
	}

	state.Response = response
	state.AgentName = AgentResponse
	return state
}

// scorer rates the response and applies the escalation policy. The
// threshold rule is OR'd with the model's own suggestion: either signal
// alone escalates.
func (p *Pipeline) scorer(ctx context.Context, state State) State {
	confidence := malformedScoreConfidence
	modelSuggests := false

	snippets := contextSnippets(state.Contexts, reasonerSnippetLength)
	response, err := p.completer.Complete(ctx, scorerSystem, scorerPrompt(state.UserMessage, state.Response, snippets), 0)
	if err != nil {
		p.logger.Warn("scoring call failed", "err", err)
		confidence = failedScoreConfidence
		modelSuggests = true
	} else {
		var out struct {
			Confidence     float64 `json:"confidence"`
			ShouldEscalate bool    `json:"should_escalate"`
		}
		if perr := llmjson.Unmarshal(response, &out); perr != nil {
			p.logger.Warn("scoring answer was malformed", "err", perr)
		} else {
			confidence = clamp01(out.Confidence)
			modelSuggests = out.ShouldEscalate
		}
	}

	state.Confidence = confidence
	state.Escalation = escalation.Decide(confidence, state.Threshold, modelSuggests)
	state.ShouldEscalate = state.Escalation.Escalate
	return state
}

// lastTurns returns the trailing n turns of the history.
func lastTurns(history []core.Turn, n int) []core.Turn {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

// retrievalQuery concatenates the message with the entity values, in
// stable key order.
func retrievalQuery(message string, entities map[string]any) string {
	if len(entities) == 0 {
		return message
	}
	keys := make([]string, 0, len(entities))
	for key := range entities {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := []string{message}
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%v", entities[key]))
	}
	return strings.Join(parts, " ")
}

// documentScope builds the optional allow-set of document ids.
func documentScope(ids []string) map[string]bool {
	if len(ids) == 0 {
		return nil
	}
	scope := make(map[string]bool, len(ids))
	for _, id := range ids {
		scope[id] = true
	}
	return scope
}

// contextSnippets truncates the kept context contents for prompting.
func contextSnippets(contexts []core.RetrievedContext, limit int) []string {
	snippets := make([]string, 0, len(contexts))
	for _, c := range contexts {
		snippets = append(snippets, truncate(c.Content, limit))
	}
	return snippets
}

// truncate returns at most limit bytes of s, backing up so a multibyte
// rune is never split.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

// parseIntent validates a raw intent label against the closed set.
func parseIntent(label string) (core.Intent, bool) {
	switch core.Intent(strings.ToLower(strings.TrimSpace(label))) {
	case core.IntentGreeting:
		return core.IntentGreeting, true
	case core.IntentQuestion:
		return core.IntentQuestion, true
	case core.IntentComplaint:
		return core.IntentComplaint, true
	case core.IntentRequest:
		return core.IntentRequest, true
	case core.IntentFeedback:
		return core.IntentFeedback, true
	case core.IntentBilling:
		return core.IntentBilling, true
	case core.IntentTechnical:
		return core.IntentTechnical, true
	case core.IntentSales:
		return core.IntentSales, true
	case core.IntentOther:
		return core.IntentOther, true
	default:
		return "", false
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
