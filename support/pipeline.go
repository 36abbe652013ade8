package support

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/abhikarki/custoPilot/ai"
	"github.com/abhikarki/custoPilot/core"
	"github.com/abhikarki/custoPilot/escalation"
	"github.com/abhikarki/custoPilot/pipeline"
	"github.com/abhikarki/custoPilot/vectorstore"
)

// Stage node names.
const (
	stageIntent    = "intent"
	stageRouter    = "router"
	stageRetriever = "retriever"
	stageReasoner  = "reasoner"
	stageResponder = "responder"
	stageScorer    = "scorer"
)

// PipelineName tags support runs in logs.
const PipelineName = "support_pipeline"

const defaultTemperature = 0.7

// Pipeline runs the support response workflow. It is immutable after
// construction and safe for concurrent Run calls.
type Pipeline struct {
	completer ai.Completer
	store     vectorstore.Store
	runner    *pipeline.Runner[State]
	logger    *slog.Logger

	temperature  float64
	systemPrompt string
	threshold    float64
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithTemperature sets the default sampling temperature for the
// reasoning and response stages. Default is 0.7.
func WithTemperature(temperature float64) Option {
	return func(p *Pipeline) error {
		p.temperature = temperature
		return nil
	}
}

// WithSystemPrompt replaces the default responder style contract.
func WithSystemPrompt(prompt string) Option {
	return func(p *Pipeline) error {
		if prompt != "" {
			p.systemPrompt = prompt
		}
		return nil
	}
}

// WithConfidenceThreshold sets the escalation threshold.
// Default is escalation.DefaultThreshold.
func WithConfidenceThreshold(threshold float64) Option {
	return func(p *Pipeline) error {
		p.threshold = threshold
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a support pipeline over the given LLM completer
// and knowledge index, compiling the stage graph once.
func NewPipeline(completer ai.Completer, store vectorstore.Store, opts ...Option) (*Pipeline, error) {
	if completer == nil {
		return nil, ErrCompleterRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}

	p := &Pipeline{
		completer:    completer,
		store:        store,
		logger:       slog.Default().With("component", PipelineName),
		temperature:  defaultTemperature,
		systemPrompt: defaultResponderSystem,
		threshold:    escalation.DefaultThreshold,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	runner, err := pipeline.NewGraph[State]().
		AddNode(stageIntent, p.intent).
		AddNode(stageRouter, p.router).
		AddNode(stageRetriever, p.retriever).
		AddNode(stageReasoner, p.reasoner).
		AddNode(stageResponder, p.responder).
		AddNode(stageScorer, p.scorer).
		SetEntry(stageIntent).
		AddEdge(stageIntent, stageRouter).
		AddEdge(stageRouter, stageRetriever).
		AddEdge(stageRetriever, stageReasoner).
		AddEdge(stageReasoner, stageResponder).
		AddEdge(stageResponder, stageScorer).
		AddEdge(stageScorer, pipeline.End).
		Compile()
	if err != nil {
		return nil, err
	}

	p.runner = runner
	return p, nil
}

// Overrides are optional per-run settings supplied by chatbot-level
// configuration. Nil pointer fields keep the pipeline defaults.
type Overrides struct {
	Temperature         *float64
	SystemPrompt        string
	ConfidenceThreshold *float64
}

// Input is one support request.
type Input struct {
	UserMessage    string
	History        []core.Turn
	OrganizationID string

	// Department, when set, overrides intent-based routing entirely.
	Department core.Department

	// DepartmentIDs and DocumentIDs narrow retrieval scope. A single
	// department id becomes an index filter; document ids are applied as
	// a post-filter on the hits.
	DepartmentIDs []string
	DocumentIDs   []string

	Overrides Overrides
}

// Result is the outcome of one support run.
type Result struct {
	RunID          string              `json:"run_id"`
	Response       string              `json:"response"`
	Intent         core.Intent         `json:"intent"`
	Entities       map[string]any      `json:"entities,omitempty"`
	Department     core.Department     `json:"department"`
	Confidence     float64             `json:"confidence"`
	Sources        []core.Source       `json:"sources,omitempty"`
	ShouldEscalate bool                `json:"should_escalate"`
	Escalation     escalation.Decision `json:"escalation"`
	AgentName      string              `json:"agent_name"`
}

// Run answers one customer message. It returns an error only for
// missing required inputs or a graph-level defect; degraded external
// calls still produce a usable Result.
func (p *Pipeline) Run(ctx context.Context, input Input) (*Result, error) {
	if input.UserMessage == "" {
		return nil, ErrMessageRequired
	}
	if input.OrganizationID == "" {
		return nil, ErrOrganizationRequired
	}
	for _, turn := range input.History {
		if err := core.ValidateTurn(turn); err != nil {
			return nil, err
		}
	}

	state := State{
		UserMessage:    input.UserMessage,
		History:        input.History,
		OrganizationID: input.OrganizationID,
		Department:     input.Department,
		DepartmentIDs:  input.DepartmentIDs,
		DocumentIDs:    input.DocumentIDs,
		Temperature:    p.temperature,
		SystemPrompt:   p.systemPrompt,
		Threshold:      p.threshold,
	}
	if input.Overrides.Temperature != nil {
		state.Temperature = *input.Overrides.Temperature
	}
	if input.Overrides.SystemPrompt != "" {
		state.SystemPrompt = input.Overrides.SystemPrompt
	}
	if input.Overrides.ConfidenceThreshold != nil {
		state.Threshold = *input.Overrides.ConfidenceThreshold
	}

	runID := uuid.NewString()
	final, err := p.runner.Run(ctx, state)
	if err != nil {
		return nil, err
	}

	p.logger.Info("support run completed",
		"run_id", runID,
		"intent", final.Intent,
		"department", final.RoutedDepartment,
		"confidence", final.Confidence,
		"escalate", final.ShouldEscalate,
		"agent", final.AgentName)

	return &Result{
		RunID:          runID,
		Response:       final.Response,
		Intent:         final.Intent,
		Entities:       final.Entities,
		Department:     final.RoutedDepartment,
		Confidence:     final.Confidence,
		Sources:        final.Sources,
		ShouldEscalate: final.ShouldEscalate,
		Escalation:     final.Escalation,
		AgentName:      final.AgentName,
	}, nil
}
