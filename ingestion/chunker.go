package ingestion

import (
	"github.com/tmc/langchaingo/textsplitter"
)

// Chunking defaults. Breaks prefer paragraph, then line, then sentence,
// then word boundaries.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

var chunkSeparators = []string{"\n\n", "\n", ". ", " ", ""}

// Chunker splits document text into overlapping windows sized for
// embedding. Splitting is deterministic: the same text always yields the
// same chunk boundaries.
type Chunker struct {
	splitter textsplitter.RecursiveCharacter
}

// NewChunker creates a chunker with the given target size and overlap,
// both in characters.
func NewChunker(size, overlap int) *Chunker {
	return &Chunker{
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(size),
			textsplitter.WithChunkOverlap(overlap),
			textsplitter.WithSeparators(chunkSeparators),
		),
	}
}

// Split returns the chunk contents in document order.
func (c *Chunker) Split(text string) ([]string, error) {
	return c.splitter.SplitText(text)
}
