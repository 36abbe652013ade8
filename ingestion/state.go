package ingestion

import "github.com/abhikarki/custoPilot/core"

// State is the per-run record threaded through the ingestion stages.
// Each run owns its state exclusively; fields are written once by the
// stage that produces them, except Errors which accumulates.
type State struct {
	// Input descriptors, set before the run starts.
	FilePath       string
	FileType       string
	OrganizationID string
	DepartmentID   string
	DocumentID     string

	// Working fields, filled in stage order.
	RawText       string
	Sections      []core.Section
	KnowledgeType core.KnowledgeType
	Structured    *core.StructuredContent
	Chunks        []core.Chunk

	// Control fields.
	ValidationPassed bool
	Errors           []string
	Metadata         map[string]string
}
