package support

import (
	"github.com/abhikarki/custoPilot/core"
	"github.com/abhikarki/custoPilot/escalation"
)

// State is the per-run record threaded through the support stages. Each
// run owns its state exclusively.
type State struct {
	// Input descriptors, set before the run starts.
	UserMessage    string
	History        []core.Turn
	OrganizationID string
	Department     core.Department
	DepartmentIDs  []string
	DocumentIDs    []string

	// Effective run configuration after overrides are applied.
	Temperature  float64
	SystemPrompt string
	Threshold    float64

	// Working fields, filled in stage order.
	Intent           core.Intent
	Entities         map[string]any
	RoutedDepartment core.Department
	Contexts         []core.RetrievedContext
	Reasoning        string
	Response         string

	// Control fields.
	Confidence     float64
	ShouldEscalate bool
	Escalation     escalation.Decision
	Sources        []core.Source
	AgentName      string
}
