package ingestion

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/panjf2000/ants/v2"

	"github.com/abhikarki/custoPilot/docstore"
	"github.com/abhikarki/custoPilot/vectorstore"
)

// Dispatcher runs ingestion concurrently across documents and keeps the
// document registry in step with each run's lifecycle. Concurrency
// exists only across runs; each run stays strictly sequential.
type Dispatcher struct {
	pipeline *Pipeline
	docs     *docstore.Store
	store    vectorstore.Store
	pool     *ants.Pool
	logger   *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher) error

// WithPoolSize sets the worker pool size for concurrent document
// processing. Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) DispatcherOption {
	return func(d *Dispatcher) error {
		if size < 1 {
			size = 1
		}
		if d.pool != nil {
			d.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		d.pool = pool
		return nil
	}
}

// WithVectorStore lets Reprocess clear a document's stale vectors
// before re-running ingestion.
func WithVectorStore(store vectorstore.Store) DispatcherOption {
	return func(d *Dispatcher) error {
		d.store = store
		return nil
	}
}

// NewDispatcher creates a dispatcher over a compiled pipeline and the
// document registry.
func NewDispatcher(pipeline *Pipeline, docs *docstore.Store, opts ...DispatcherOption) (*Dispatcher, error) {
	if pipeline == nil {
		return nil, ErrPipelineRequired
	}
	if docs == nil {
		return nil, ErrDocStoreRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	d := &Dispatcher{
		pipeline: pipeline,
		docs:     docs,
		pool:     pool,
		logger:   slog.Default().With("component", "ingestion-dispatcher"),
	}
	for _, opt := range opts {
		if optErr := opt(d); optErr != nil {
			d.Release()
			return nil, optErr
		}
	}
	return d, nil
}

// Enqueue registers the document as processing and submits its ingestion
// run to the worker pool. Run failures are persisted to the registry,
// not returned; the returned error covers registration only.
func (d *Dispatcher) Enqueue(ctx context.Context, doc *docstore.Document) error {
	doc.Status = docstore.StatusProcessing
	if err := d.docs.Put(ctx, doc); err != nil {
		return err
	}

	return d.pool.Submit(func() {
		if err := d.Process(context.Background(), doc); err != nil {
			d.logger.Error("failed to persist run outcome", "document_id", doc.ID, "err", err)
		}
	})
}

// Process runs ingestion for one registered document synchronously and
// persists the outcome: completed when the run's error list is empty,
// failed otherwise. The returned error covers registry writes and
// programmer-error-class run failures only.
func (d *Dispatcher) Process(ctx context.Context, doc *docstore.Document) error {
	doc.Status = docstore.StatusProcessing
	if err := d.docs.Put(ctx, doc); err != nil {
		return err
	}

	result, err := d.pipeline.Run(ctx, Input{
		FilePath:       doc.FilePath,
		FileType:       doc.FileType,
		OrganizationID: doc.OrganizationID,
		DepartmentID:   doc.DepartmentID,
		DocumentID:     doc.ID,
	})
	if err != nil {
		doc.Status = docstore.StatusFailed
		doc.Errors = append(doc.Errors, err.Error())
		if putErr := d.docs.Put(ctx, doc); putErr != nil {
			return putErr
		}
		return err
	}

	doc.KnowledgeType = result.KnowledgeType
	doc.Structured = result.Structured
	doc.Chunks = result.Chunks
	doc.Metadata = result.Metadata
	doc.Errors = result.Errors
	if len(result.Errors) == 0 {
		doc.Status = docstore.StatusCompleted
	} else {
		doc.Status = docstore.StatusFailed
	}

	d.logger.Info("document processed",
		"document_id", doc.ID, "status", doc.Status, "chunks", len(doc.Chunks))
	return d.docs.Put(ctx, doc)
}

// Reprocess re-runs ingestion for a registered document from scratch.
// Previously stored vectors are deleted first when a vector store was
// configured, so chunk-level idempotency holds across reprocessing.
func (d *Dispatcher) Reprocess(ctx context.Context, documentID string) error {
	doc, err := d.docs.Get(ctx, documentID)
	if err != nil {
		return err
	}

	if d.store != nil && len(doc.Chunks) > 0 {
		ids := make([]string, 0, len(doc.Chunks))
		for _, chunk := range doc.Chunks {
			if chunk.VectorID != "" {
				ids = append(ids, chunk.VectorID)
			}
		}
		if err := d.store.Delete(ctx, ids); err != nil {
			// Some indexes cannot delete per id; the re-run overwrites
			// content-addressed entries anyway.
			d.logger.Warn("failed to clear stale vectors", "document_id", documentID, "err", err)
		}
	}

	doc.KnowledgeType = ""
	doc.Structured = nil
	doc.Chunks = nil
	doc.Metadata = nil
	doc.Errors = nil
	return d.Process(ctx, doc)
}

// Release releases the worker pool. The dispatcher should not be used
// after calling Release.
func (d *Dispatcher) Release() {
	if d.pool != nil {
		d.pool.Release()
	}
}
