package extract

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestForUnsupportedType(t *testing.T) {
	_, err := For("mp3")
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = For("")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestForNormalizesType(t *testing.T) {
	for _, fileType := range []string{"txt", "TXT", ".txt", " txt "} {
		_, err := For(fileType)
		assert.NoError(t, err, fileType)
	}
	assert.True(t, Supported("pdf"))
	assert.True(t, Supported("docx"))
	assert.False(t, Supported("xlsx"))
}

func TestTextExtractor(t *testing.T) {
	path := writeFile(t, "refunds.txt", "Refunds are issued within 14 days.\n\nContact billing for details.")

	extractor, err := For("txt")
	require.NoError(t, err)

	segments, err := extractor.Extract(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Contains(t, segments[0], "Refunds are issued within 14 days.")
}

func TestTextExtractorMissingFile(t *testing.T) {
	extractor, err := For("txt")
	require.NoError(t, err)

	_, err = extractor.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestCSVExtractor(t *testing.T) {
	path := writeFile(t, "plans.csv", "plan,price\nbasic,10\npro,25\n")

	extractor, err := For("csv")
	require.NoError(t, err)

	segments, err := extractor.Extract(context.Background(), path)
	require.NoError(t, err)
	require.NotEmpty(t, segments)
	joined := strings.Join(segments, "\n")
	assert.Contains(t, joined, "basic")
	assert.Contains(t, joined, "25")
}

func TestDocxExtractor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.docx")
	writeDocx(t, path, []string{"Return Policy", "Items may be returned within 30 days."})

	extractor, err := For("docx")
	require.NoError(t, err)

	segments, err := extractor.Extract(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Contains(t, segments[0], "Return Policy")
	assert.Contains(t, segments[0], "returned within 30 days")
}

func TestDocxExtractorNoBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	extractor, err := For("docx")
	require.NoError(t, err)

	_, err = extractor.Extract(context.Background(), path)
	assert.ErrorIs(t, err, ErrNoDocumentBody)
}

// writeDocx builds a minimal OOXML archive with one paragraph per input string.
func writeDocx(t *testing.T, path string, paragraphs []string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	body, err := zw.Create("word/document.xml")
	require.NoError(t, err)

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		sb.WriteString("<w:p><w:r><w:t>")
		sb.WriteString(p)
		sb.WriteString("</w:t></w:r></w:p>")
	}
	sb.WriteString(`</w:body></w:document>`)

	_, err = body.Write([]byte(sb.String()))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}
