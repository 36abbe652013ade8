package ingestion

import "fmt"

const parserSystem = `You are a document analysis assistant. You segment documents into sections and always answer with valid JSON.`

func parserPrompt(text string) string {
	return fmt.Sprintf(`Segment the following document into titled sections.

Return a JSON array where each element has this shape:
{"title": "section title", "content": "section text", "type": "header|paragraph|list|table"}

Document:
%s`, text)
}

const classifierSystem = `You are a document classification assistant. You always answer with valid JSON.`

func classifierPrompt(sample string) string {
	return fmt.Sprintf(`Classify the following document into exactly one category:
faq, policy, troubleshooting, sales, general

Return JSON: {"type": "<category>"}

Document sample:
%s`, sample)
}

const structurerSystem = `You are a knowledge extraction assistant. You always answer with valid JSON matching the requested schema exactly.`

func faqPrompt(text string) string {
	return fmt.Sprintf(`Extract all question/answer pairs from this FAQ document.

Return JSON: {"questions": [{"question": "...", "answer": "...", "category": "..."}]}

Document:
%s`, text)
}

func policyPrompt(text string) string {
	return fmt.Sprintf(`Extract the structure of this policy document.

Return JSON: {"title": "...", "effective_date": "...", "sections": [{"heading": "...", "content": "...", "key_points": ["..."]}]}

Document:
%s`, text)
}

func troubleshootingPrompt(text string) string {
	return fmt.Sprintf(`Extract the troubleshooting guides from this document.

Return JSON: {"guides": [{"problem": "...", "symptoms": ["..."], "solution": "...", "steps": ["..."]}]}

Document:
%s`, text)
}
