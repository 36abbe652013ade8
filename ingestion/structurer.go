package ingestion

import (
	"context"

	"github.com/abhikarki/custoPilot/core"
	"github.com/abhikarki/custoPilot/llmjson"
)

// generalSummaryLength is how much of the document the generic summary keeps.
const generalSummaryLength = 500

// structurer dispatches on the classifier's label to a type-specific
// extractor. FAQ, policy and troubleshooting each issue one LLM call;
// everything else takes the deterministic summary path. Extraction
// failures fall back to the parsed sections, never abort the run.
func (p *Pipeline) structurer(ctx context.Context, state State) State {
	sample := head(state.RawText, structurerInputCap)
	structured := &core.StructuredContent{Type: state.KnowledgeType}

	switch state.KnowledgeType {
	case core.KnowledgeFAQ:
		if faq, ok := p.extractFAQ(ctx, sample); ok {
			structured.FAQ = faq
		} else {
			structured.Sections = state.Sections
		}
	case core.KnowledgePolicy:
		if policy, ok := p.extractPolicy(ctx, sample); ok {
			structured.Policy = policy
		} else {
			structured.Sections = state.Sections
		}
	case core.KnowledgeTroubleshooting:
		if guides, ok := p.extractTroubleshooting(ctx, sample); ok {
			structured.Troubleshooting = guides
		} else {
			structured.Sections = state.Sections
		}
	default:
		structured.General = &core.GeneralContent{
			Summary:  summarize(state.RawText),
			Sections: state.Sections,
		}
	}

	state.Structured = structured
	return state
}

func (p *Pipeline) extractFAQ(ctx context.Context, sample string) (*core.FAQContent, bool) {
	response, err := p.completer.Complete(ctx, structurerSystem, faqPrompt(sample), extractionTemperature)
	if err != nil {
		p.logger.Warn("faq extraction failed", "err", err)
		return nil, false
	}
	var faq core.FAQContent
	if err := llmjson.Unmarshal(response, &faq); err != nil || len(faq.Questions) == 0 {
		p.logger.Warn("faq extraction returned no usable answer", "err", err)
		return nil, false
	}
	return &faq, true
}

func (p *Pipeline) extractPolicy(ctx context.Context, sample string) (*core.PolicyContent, bool) {
	response, err := p.completer.Complete(ctx, structurerSystem, policyPrompt(sample), extractionTemperature)
	if err != nil {
		p.logger.Warn("policy extraction failed", "err", err)
		return nil, false
	}
	var policy core.PolicyContent
	if err := llmjson.Unmarshal(response, &policy); err != nil || len(policy.Sections) == 0 {
		p.logger.Warn("policy extraction returned no usable answer", "err", err)
		return nil, false
	}
	return &policy, true
}

func (p *Pipeline) extractTroubleshooting(ctx context.Context, sample string) (*core.TroubleshootingContent, bool) {
	response, err := p.completer.Complete(ctx, structurerSystem, troubleshootingPrompt(sample), extractionTemperature)
	if err != nil {
		p.logger.Warn("troubleshooting extraction failed", "err", err)
		return nil, false
	}
	var guides core.TroubleshootingContent
	if err := llmjson.Unmarshal(response, &guides); err != nil || len(guides.Guides) == 0 {
		p.logger.Warn("troubleshooting extraction returned no usable answer", "err", err)
		return nil, false
	}
	return &guides, true
}

func summarize(text string) string {
	if len(text) <= generalSummaryLength {
		return text
	}
	return head(text, generalSummaryLength) + "..."
}
