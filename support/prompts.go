package support

import (
	"fmt"
	"strings"

	"github.com/abhikarki/custoPilot/core"
)

const intentSystem = `You are an intent classification assistant for customer support. You always answer with valid JSON.`

func intentPrompt(message string, history []core.Turn) string {
	var b strings.Builder
	b.WriteString(`Classify the customer's message into exactly one intent:
greeting, question, complaint, request, feedback, billing, technical, sales, other

Also extract any entities mentioned (product names, order numbers, dates, amounts).

Return JSON: {"intent": "<intent>", "entities": {"<name>": "<value>"}}

`)
	writeHistory(&b, history)
	fmt.Fprintf(&b, "Customer message: %s", message)
	return b.String()
}

const reasonerSystem = `You are a support analyst. You assess whether retrieved knowledge answers a customer's question. Answer in 2-3 plain sentences.`

func reasonerPrompt(message string, snippets []string, history []core.Turn) string {
	var b strings.Builder
	b.WriteString("Assess whether the context below answers the customer's question. Note what is covered and what is missing.\n\n")
	writeHistory(&b, history)
	writeContext(&b, snippets)
	fmt.Fprintf(&b, "Customer question: %s", message)
	return b.String()
}

// defaultResponderSystem is the style contract for user-facing answers.
// Chatbot-level configuration may replace it per run.
const defaultResponderSystem = `You are a customer support agent. Answer concisely and directly.
Rules:
- Only state facts present in the provided context.
- If the context does not cover the question, say so and suggest contacting support.
- No sign-offs, no "happy to help further" filler.`

func responderPrompt(message, reasoning string, snippets []string) string {
	var b strings.Builder
	writeContext(&b, snippets)
	fmt.Fprintf(&b, "Analysis: %s\n\n", reasoning)
	fmt.Fprintf(&b, "Customer question: %s", message)
	return b.String()
}

const scorerSystem = `You are a quality assessor for support responses. You always answer with valid JSON.`

func scorerPrompt(message, response string, snippets []string) string {
	var b strings.Builder
	b.WriteString(`Score how well the response answers the question, given the context it was based on.

Rubric for confidence:
- 0.85-1.0: directly supported by context, complete answer
- 0.7-0.85: well supported, minor gaps
- 0.5-0.7: partially supported
- 0.3-0.5: significant uncertainty
- 0.0-0.3: unreliable, not supported

Return JSON: {"confidence": <number>, "should_escalate": <boolean>}

`)
	writeContext(&b, snippets)
	fmt.Fprintf(&b, "Question: %s\n\nResponse: %s", message, response)
	return b.String()
}

func writeHistory(b *strings.Builder, history []core.Turn) {
	if len(history) == 0 {
		return
	}
	b.WriteString("Conversation so far:\n")
	for _, turn := range history {
		fmt.Fprintf(b, "%s: %s\n", turn.Role, turn.Content)
	}
	b.WriteString("\n")
}

func writeContext(b *strings.Builder, snippets []string) {
	if len(snippets) == 0 {
		b.WriteString("Context: no relevant knowledge found.\n\n")
		return
	}
	b.WriteString("Context:\n")
	for i, snippet := range snippets {
		fmt.Fprintf(b, "[%d] %s\n", i+1, snippet)
	}
	b.WriteString("\n")
}
