package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"github.com/abhikarki/custoPilot/core"
)

// Status is a document's lifecycle state in the registry.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Document is one registry record.
type Document struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	DepartmentID   string `json:"department_id,omitempty"`
	FilePath       string `json:"file_path"`
	FileType       string `json:"file_type"`
	Status         Status `json:"status"`

	// Filled by the dispatcher once an ingestion run terminates.
	KnowledgeType core.KnowledgeType      `json:"knowledge_type,omitempty"`
	Structured    *core.StructuredContent `json:"structured,omitempty"`
	Chunks        []core.Chunk            `json:"chunks,omitempty"`
	Metadata      map[string]string       `json:"metadata,omitempty"`
	Errors        []string                `json:"errors,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is a BadgerDB-backed document registry.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// badgerLoggerAdapter adapts slog.Logger to badger.Logger.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// Open opens the registry at filePath, creating the directory if needed.
// With inMemory set, nothing is persisted; used by tests.
func Open(filePath string, inMemory bool) (*Store, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		opts = badger.DefaultOptions(filePath)
	}

	logger := slog.Default().With("component", "docstore")
	opts.Logger = &badgerLoggerAdapter{logger: logger}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put writes a document and its organization index entry. CreatedAt is
// set on first write; UpdatedAt always advances. Every carried chunk
// must pass domain validation.
func (s *Store) Put(ctx context.Context, doc *Document) error {
	if doc.ID == "" {
		return ErrIDRequired
	}
	if doc.OrganizationID == "" {
		return ErrOrganizationRequired
	}
	for i := range doc.Chunks {
		if err := core.ValidateChunk(&doc.Chunks[i]); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now

	value, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *badger.Txn) error {
		if err := tx.Set(makeDocumentKey(doc.ID), value); err != nil {
			return err
		}
		return tx.Set(makeOrgIndexKey(doc.OrganizationID, doc.ID), nil)
	})
}

// Get returns the document with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Document, error) {
	var doc *Document
	err := s.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(makeDocumentKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			doc = &Document{}
			return json.Unmarshal(val, doc)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// SetStatus updates only the lifecycle status of a stored document.
func (s *Store) SetStatus(ctx context.Context, id string, status Status) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	doc.Status = status
	return s.Put(ctx, doc)
}

// ListByOrganization returns all documents registered under an
// organization, in id order.
func (s *Store) ListByOrganization(ctx context.Context, organizationID string) ([]*Document, error) {
	var ids []string
	err := s.db.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = makePartialOrgIndexKey(organizationID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			ids = append(ids, documentIDFromOrgIndexKey(iter.Item().Key(), organizationID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	docs := make([]*Document, 0, len(ids))
	for _, id := range ids {
		doc, err := s.Get(ctx, id)
		if err != nil {
			// Index entry without a record is a stale leftover.
			if errors.Is(err, ErrNotFound) {
				s.logger.Warn("stale organization index entry", "document_id", id)
				continue
			}
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Delete removes a document and its index entry. Unknown ids are a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	doc, err := s.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *badger.Txn) error {
		if err := tx.Delete(makeDocumentKey(id)); err != nil {
			return err
		}
		return tx.Delete(makeOrgIndexKey(doc.OrganizationID, id))
	})
}
