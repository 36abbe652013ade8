package core

// StructuredContent is the tagged record produced by the structuring
// stage. Exactly one variant pointer is set for the matching Type; the
// Sections field carries the raw parsed sections when a type-specific
// extraction fell back.
type StructuredContent struct {
	Type            KnowledgeType           `json:"type"`
	FAQ             *FAQContent             `json:"faq,omitempty"`
	Policy          *PolicyContent          `json:"policy,omitempty"`
	Troubleshooting *TroubleshootingContent `json:"troubleshooting,omitempty"`
	General         *GeneralContent         `json:"general,omitempty"`
	Sections        []Section               `json:"sections,omitempty"`
}

// QA is a single question/answer pair extracted from FAQ content.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// FAQContent holds the Q&A pairs extracted from an FAQ document.
type FAQContent struct {
	Questions []QA `json:"questions"`
}

// PolicySection is one heading of a policy document with its key points.
type PolicySection struct {
	Heading   string   `json:"heading"`
	Content   string   `json:"content"`
	KeyPoints []string `json:"key_points"`
}

// PolicyContent holds the structured form of a policy document.
type PolicyContent struct {
	Title         string          `json:"title"`
	EffectiveDate string          `json:"effective_date"`
	Sections      []PolicySection `json:"sections"`
}

// Guide is one troubleshooting entry: a problem and how to resolve it.
type Guide struct {
	Problem  string   `json:"problem"`
	Symptoms []string `json:"symptoms"`
	Solution string   `json:"solution"`
	Steps    []string `json:"steps"`
}

// TroubleshootingContent holds the guides extracted from a
// troubleshooting document.
type TroubleshootingContent struct {
	Guides []Guide `json:"guides"`
}

// GeneralContent is the fallback structure for documents that do not fit
// a specialized category: a short summary plus the parsed sections.
type GeneralContent struct {
	Summary  string    `json:"summary"`
	Sections []Section `json:"sections"`
}
