package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/schema"
)

// ErrUnsupportedType is returned by For when no extractor exists for the
// declared file type.
var ErrUnsupportedType = errors.New("unsupported file type")

// Extractor reads a file from disk and returns its text segments in
// document order.
type Extractor interface {
	Extract(ctx context.Context, path string) ([]string, error)
}

// For returns the extractor registered for the declared file type.
// Types are matched case-insensitively and a leading dot is tolerated.
func For(fileType string) (Extractor, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(fileType), ".")) {
	case "txt":
		return textExtractor{}, nil
	case "csv":
		return csvExtractor{}, nil
	case "pdf":
		return pdfExtractor{}, nil
	case "docx":
		return docxExtractor{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, fileType)
	}
}

// Supported reports whether a file type has a registered extractor.
func Supported(fileType string) bool {
	_, err := For(fileType)
	return err == nil
}

type textExtractor struct{}

func (textExtractor) Extract(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	docs, err := documentloaders.NewText(f).Load(ctx)
	if err != nil {
		return nil, err
	}
	return contents(docs), nil
}

type csvExtractor struct{}

func (csvExtractor) Extract(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	docs, err := documentloaders.NewCSV(f).Load(ctx)
	if err != nil {
		return nil, err
	}
	return contents(docs), nil
}

type pdfExtractor struct{}

func (pdfExtractor) Extract(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	docs, err := documentloaders.NewPDF(f, info.Size()).Load(ctx)
	if err != nil {
		return nil, err
	}
	return contents(docs), nil
}

func contents(docs []schema.Document) []string {
	segments := make([]string, 0, len(docs))
	for _, doc := range docs {
		segments = append(segments, doc.PageContent)
	}
	return segments
}
