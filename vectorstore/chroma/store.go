// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package chroma implements vectorstore.Store against a Chroma server
// via langchaingo. Embeddings are generated with the configured
// OpenAI-compatible embedding service.
package chroma

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/vectorstores"
	lcchroma "github.com/tmc/langchaingo/vectorstores/chroma"

	"github.com/abhikarki/custoPilot/ai"
	"github.com/abhikarki/custoPilot/vectorstore"
)

// DefaultNamespace is the collection documents are stored in when no
// namespace is configured.
const DefaultNamespace = "knowledge"

// ErrDeleteUnsupported is returned by Delete: Chroma access through
// langchaingo has no per-id removal.
var ErrDeleteUnsupported = errors.New("chroma: per-id delete not supported")

// Store is a Chroma-backed vector index.
type Store struct {
	inner  lcchroma.Store
	logger *slog.Logger
}

// Config holds connection settings for a Chroma-backed store.
type Config struct {
	// URL is the Chroma server base URL, e.g. "http://localhost:8000".
	URL string

	// Namespace is the collection name. Defaults to DefaultNamespace.
	Namespace string

	// AI supplies the embedding service configuration.
	AI *ai.Config
}

// New connects to a Chroma server and returns a vectorstore.Store.
func New(config Config) (vectorstore.Store, error) {
	if config.URL == "" {
		return nil, fmt.Errorf("chroma: URL is required")
	}
	if config.AI == nil {
		return nil, fmt.Errorf("chroma: AI config is required")
	}
	if err := config.AI.Validate(); err != nil {
		return nil, err
	}
	namespace := config.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}

	client, err := openai.New(
		openai.WithBaseURL(config.AI.EmbeddingHost),
		openai.WithToken(config.AI.Token),
		openai.WithEmbeddingModel(config.AI.EmbeddingModel),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	inner, err := lcchroma.New(
		lcchroma.WithChromaURL(config.URL),
		lcchroma.WithEmbedder(embedder),
		lcchroma.WithNameSpace(namespace),
	)
	if err != nil {
		return nil, err
	}

	return &Store{
		inner:  inner,
		logger: slog.Default().With("component", "chroma-vectorstore"),
	}, nil
}

// Add embeds and indexes the documents, returning the ids Chroma assigned.
func (s *Store) Add(ctx context.Context, docs []vectorstore.Document) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	converted := make([]schema.Document, len(docs))
	for i, doc := range docs {
		metadata := make(map[string]any, len(doc.Metadata))
		for k, v := range doc.Metadata {
			metadata[k] = v
		}
		converted[i] = schema.Document{
			PageContent: doc.Content,
			Metadata:    metadata,
		}
	}

	ids, err := s.inner.AddDocuments(ctx, converted)
	if err != nil {
		s.logger.Error("failed to add documents", "count", len(docs), "err", err)
		return nil, err
	}

	s.logger.Debug("indexed documents", "count", len(ids))
	return ids, nil
}

// Search returns up to k filtered results ordered by descending
// relevance, with scores clamped to [0,1].
func (s *Store) Search(ctx context.Context, query string, k int, filter vectorstore.Filter) ([]vectorstore.Result, error) {
	opts := []vectorstores.Option{}
	if where := whereClause(filter); where != nil {
		opts = append(opts, vectorstores.WithFilters(where))
	}

	docs, err := s.inner.SimilaritySearch(ctx, query, k, opts...)
	if err != nil {
		s.logger.Error("similarity search failed", "err", err)
		return nil, err
	}

	results := make([]vectorstore.Result, 0, len(docs))
	for _, doc := range docs {
		metadata := make(map[string]string, len(doc.Metadata))
		for key, value := range doc.Metadata {
			metadata[key] = fmt.Sprintf("%v", value)
		}
		results = append(results, vectorstore.Result{
			Content:  doc.PageContent,
			Metadata: metadata,
			Score:    clamp01(float64(doc.Score)),
		})
	}
	return results, nil
}

// Delete is not supported: langchaingo's chroma store only exposes
// whole-collection removal. Use Reset to drop the collection.
func (s *Store) Delete(ctx context.Context, ids []string) error {
	return ErrDeleteUnsupported
}

// Reset drops the entire collection.
func (s *Store) Reset() error {
	return s.inner.RemoveCollection()
}

// whereClause converts an exact-match filter to Chroma's where format:
// a single predicate stays flat, multiple predicates are joined by $and.
func whereClause(filter vectorstore.Filter) map[string]any {
	if len(filter) == 0 {
		return nil
	}

	keys := make([]string, 0, len(filter))
	for key := range filter {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if len(keys) == 1 {
		return map[string]any{keys[0]: filter[keys[0]]}
	}

	clauses := make([]map[string]any, 0, len(keys))
	for _, key := range keys {
		clauses = append(clauses, map[string]any{key: map[string]any{"$eq": filter[key]}})
	}
	return map[string]any{"$and": clauses}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
