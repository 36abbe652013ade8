package ingestion

import (
	"context"
	"log/slog"

	"github.com/abhikarki/custoPilot/ai"
	"github.com/abhikarki/custoPilot/core"
	"github.com/abhikarki/custoPilot/pipeline"
	"github.com/abhikarki/custoPilot/vectorstore"
)

// Stage node names.
const (
	stageLoader     = "loader"
	stageParser     = "parser"
	stageClassifier = "classifier"
	stageStructurer = "structurer"
	stageValidator  = "validator"
	stageStorage    = "storage"

	branchStore  = "store"
	branchReject = "reject"
)

// Pipeline runs the knowledge ingestion workflow. It is immutable after
// construction and safe for concurrent Run calls; every run gets its own
// State.
type Pipeline struct {
	completer ai.Completer
	store     vectorstore.Store
	chunker   *Chunker
	runner    *pipeline.Runner[State]
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithChunker replaces the default chunker.
func WithChunker(chunker *Chunker) Option {
	return func(p *Pipeline) error {
		if chunker != nil {
			p.chunker = chunker
		}
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

// NewPipeline creates an ingestion pipeline over the given LLM completer
// and vector store, compiling the stage graph once.
func NewPipeline(completer ai.Completer, store vectorstore.Store, opts ...Option) (*Pipeline, error) {
	if completer == nil {
		return nil, ErrCompleterRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}

	p := &Pipeline{
		completer: completer,
		store:     store,
		chunker:   NewChunker(DefaultChunkSize, DefaultChunkOverlap),
		logger:    slog.Default().With("component", "ingestion"),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	runner, err := pipeline.NewGraph[State]().
		AddNode(stageLoader, p.loader).
		AddNode(stageParser, p.parser).
		AddNode(stageClassifier, p.classifier).
		AddNode(stageStructurer, p.structurer).
		AddNode(stageValidator, p.validator).
		AddNode(stageStorage, p.storage).
		SetEntry(stageLoader).
		AddEdge(stageLoader, stageParser).
		AddEdge(stageParser, stageClassifier).
		AddEdge(stageClassifier, stageStructurer).
		AddEdge(stageStructurer, stageValidator).
		AddConditionalEdge(stageValidator, func(s State) string {
			if s.ValidationPassed {
				return branchStore
			}
			return branchReject
		}, map[string]string{
			branchStore:  stageStorage,
			branchReject: pipeline.End,
		}).
		AddEdge(stageStorage, pipeline.End).
		Compile()
	if err != nil {
		return nil, err
	}

	p.runner = runner
	return p, nil
}

// Input identifies one document to ingest. DepartmentID is optional;
// everything else is required.
type Input struct {
	FilePath       string
	FileType       string
	OrganizationID string
	DepartmentID   string
	DocumentID     string
}

// Result is what a terminated run leaves behind. An empty Errors list is
// the success signal; callers persist Structured and Chunks and flip the
// document's status accordingly.
type Result struct {
	KnowledgeType core.KnowledgeType      `json:"knowledge_type"`
	Structured    *core.StructuredContent `json:"structured,omitempty"`
	Chunks        []core.Chunk            `json:"chunks,omitempty"`
	Metadata      map[string]string       `json:"metadata,omitempty"`
	Errors        []string                `json:"errors,omitempty"`
}

// Run ingests one document and returns the run summary. It returns an
// error only for missing required inputs or a graph-level defect;
// recoverable processing failures land in Result.Errors instead.
func (p *Pipeline) Run(ctx context.Context, input Input) (*Result, error) {
	if input.FilePath == "" {
		return nil, ErrFilePathRequired
	}
	if input.FileType == "" {
		return nil, ErrFileTypeRequired
	}
	if input.OrganizationID == "" {
		return nil, ErrOrganizationRequired
	}
	if input.DocumentID == "" {
		return nil, ErrDocumentIDRequired
	}

	state := State{
		FilePath:       input.FilePath,
		FileType:       input.FileType,
		OrganizationID: input.OrganizationID,
		DepartmentID:   input.DepartmentID,
		DocumentID:     input.DocumentID,
		Metadata:       make(map[string]string),
	}

	final, err := p.runner.Run(ctx, state)
	if err != nil {
		return nil, err
	}

	return &Result{
		KnowledgeType: final.KnowledgeType,
		Structured:    final.Structured,
		Chunks:        final.Chunks,
		Metadata:      final.Metadata,
		Errors:        final.Errors,
	}, nil
}
