package vectorstore

import "context"

// Document is one unit of content to embed and index.
type Document struct {
	Content  string
	Metadata map[string]string
}

// Result is one scored hit from a similarity search.
type Result struct {
	Content  string
	Metadata map[string]string
	Score    float64
}

// Filter is an exact-match metadata predicate: a result matches when
// every key maps to exactly the given value.
type Filter map[string]string

// Matches reports whether the metadata satisfies every filter entry.
func (f Filter) Matches(metadata map[string]string) bool {
	for key, want := range f {
		if metadata[key] != want {
			return false
		}
	}
	return true
}

// Store is the similarity-search service. Implementations must be
// thread-safe for concurrent use across pipeline runs.
type Store interface {
	// Add embeds and indexes the documents, returning the assigned vector
	// ids in input order.
	Add(ctx context.Context, docs []Document) ([]string, error)

	// Search returns up to k results matching the filter, ordered by
	// descending relevance score in [0,1].
	Search(ctx context.Context, query string, k int, filter Filter) ([]Result, error)

	// Delete removes documents by their vector ids.
	Delete(ctx context.Context, ids []string) error
}
