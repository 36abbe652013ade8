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


// Package memory implements vectorstore.Store in process, using an
// ai.Embedder for vectors and cosine similarity for scoring. Vector ids
// are content-hash based, so re-adding identical content under the same
// document yields the same ids.
package memory

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"sync"

	"github.com/abhikarki/custoPilot/ai"
	"github.com/abhikarki/custoPilot/core"
	"github.com/abhikarki/custoPilot/vectorstore"
)

type entry struct {
	id       string
	content  string
	metadata map[string]string
	vector   []float32
}

// Store is an in-process vector index.
type Store struct {
	embedder ai.Embedder
	logger   *slog.Logger

	mu      sync.RWMutex
	entries map[string]*entry
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// New creates an empty in-memory store backed by the given embedder.
func New(embedder ai.Embedder, opts ...Option) *Store {
	s := &Store{
		embedder: embedder,
		logger:   slog.Default().With("component", "memory-vectorstore"),
		entries:  make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of indexed documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Add embeds and indexes the documents, returning content-hash vector ids
// in input order.
func (s *Store) Add(ctx context.Context, docs []vectorstore.Document) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}

	vectors, err := s.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		s.logger.Error("failed to embed documents", "count", len(docs), "err", err)
		return nil, err
	}

	ids := make([]string, len(docs))
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, doc := range docs {
		// Salt the hash with identifying metadata so identical text in two
		// documents gets distinct ids.
		id := core.IDFromContent(doc.Metadata["document_id"] + "/" + doc.Metadata["chunk_index"] + "/" + doc.Content).String()
		ids[i] = id
		s.entries[id] = &entry{
			id:       id,
			content:  doc.Content,
			metadata: doc.Metadata,
			vector:   vectors[i],
		}
	}

	s.logger.Debug("indexed documents", "count", len(docs), "total", len(s.entries))
	return ids, nil
}

// Search embeds the query and returns up to k filtered results ordered by
// descending cosine similarity, clamped to [0,1].
func (s *Store) Search(ctx context.Context, query string, k int, filter vectorstore.Filter) ([]vectorstore.Result, error) {
	queryVector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("failed to embed query", "err", err)
		return nil, err
	}

	s.mu.RLock()
	results := make([]vectorstore.Result, 0, k)
	for _, e := range s.entries {
		if !filter.Matches(e.metadata) {
			continue
		}
		results = append(results, vectorstore.Result{
			Content:  e.content,
			Metadata: e.metadata,
			Score:    cosineSimilarity(queryVector, e.vector),
		})
	}
	s.mu.RUnlock()

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// Delete removes documents by their vector ids. Missing ids are ignored.
func (s *Store) Delete(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.entries, id)
	}
	return nil
}

// cosineSimilarity returns the cosine of the angle between two vectors,
// clamped to [0,1]. Mismatched or zero vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	score := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
