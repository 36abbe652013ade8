package docstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhikarki/custoPilot/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open("", true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry")

	store, err := Open(path, false)
	require.NoError(t, err)

	require.NoError(t, store.Put(context.Background(), &Document{
		ID: "doc-1", OrganizationID: "org-1", FilePath: "/x", FileType: "txt", Status: StatusPending,
	}))
	require.NoError(t, store.Close())

	reopened, err := Open(path, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Get(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status, "records survive reopen")
}

func TestPutAndGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	doc := &Document{
		ID:             "doc-1",
		OrganizationID: "org-1",
		DepartmentID:   "dep-1",
		FilePath:       "/uploads/faq.txt",
		FileType:       "txt",
		Status:         StatusPending,
	}
	require.NoError(t, store.Put(ctx, doc))
	assert.False(t, doc.CreatedAt.IsZero())

	got, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "org-1", got.OrganizationID)
	assert.Equal(t, StatusPending, got.Status)
	assert.Equal(t, "/uploads/faq.txt", got.FilePath)
}

func TestGetUnknownID(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutValidation(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.Put(ctx, &Document{OrganizationID: "org-1"}), ErrIDRequired)
	assert.ErrorIs(t, store.Put(ctx, &Document{ID: "doc-1"}), ErrOrganizationRequired)
}

func TestSetStatus(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &Document{
		ID: "doc-1", OrganizationID: "org-1", FilePath: "/x", FileType: "txt", Status: StatusPending,
	}))
	require.NoError(t, store.SetStatus(ctx, "doc-1", StatusProcessing))

	got, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, got.Status)

	assert.ErrorIs(t, store.SetStatus(ctx, "missing", StatusFailed), ErrNotFound)
}

func TestPutRejectsInvalidChunk(t *testing.T) {
	store := openTestStore(t)

	err := store.Put(context.Background(), &Document{
		ID: "doc-1", OrganizationID: "org-1", FilePath: "/x", FileType: "txt", Status: StatusCompleted,
		Chunks: []core.Chunk{{Content: "orphan chunk", Index: 0, TotalChunks: 1}},
	})
	assert.ErrorIs(t, err, core.ErrInvalidChunk, "chunks without a document id never reach the registry")
}

func TestPutStoresRunResults(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	doc := &Document{
		ID: "doc-1", OrganizationID: "org-1", FilePath: "/x", FileType: "txt",
		Status:        StatusCompleted,
		KnowledgeType: core.KnowledgeFAQ,
		Structured: &core.StructuredContent{
			Type: core.KnowledgeFAQ,
			FAQ: &core.FAQContent{Questions: []core.QA{
				{Question: "How do I upgrade?", Answer: "From the billing page.", Category: "plans"},
			}},
		},
		Chunks: []core.Chunk{
			{Content: "How do I upgrade?", Index: 0, TotalChunks: 1, DocumentID: "doc-1", VectorID: "v-1", KnowledgeType: core.KnowledgeFAQ},
		},
		Metadata: map[string]string{"page_count": "1"},
	}
	require.NoError(t, store.Put(ctx, doc))

	got, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	require.NotNil(t, got.Structured)
	require.NotNil(t, got.Structured.FAQ)
	assert.Len(t, got.Structured.FAQ.Questions, 1)
	require.Len(t, got.Chunks, 1)
	assert.Equal(t, "v-1", got.Chunks[0].VectorID)
	assert.Equal(t, "1", got.Metadata["page_count"])
}

func TestListByOrganization(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, doc := range []*Document{
		{ID: "doc-a", OrganizationID: "org-1", FilePath: "/a", FileType: "txt", Status: StatusCompleted},
		{ID: "doc-b", OrganizationID: "org-1", FilePath: "/b", FileType: "pdf", Status: StatusFailed},
		{ID: "doc-c", OrganizationID: "org-2", FilePath: "/c", FileType: "txt", Status: StatusCompleted},
	} {
		require.NoError(t, store.Put(ctx, doc))
	}

	docs, err := store.ListByOrganization(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "doc-a", docs[0].ID)
	assert.Equal(t, "doc-b", docs[1].ID)

	empty, err := store.ListByOrganization(ctx, "org-3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &Document{
		ID: "doc-1", OrganizationID: "org-1", FilePath: "/x", FileType: "txt", Status: StatusPending,
	}))
	require.NoError(t, store.Delete(ctx, "doc-1"))

	_, err := store.Get(ctx, "doc-1")
	assert.ErrorIs(t, err, ErrNotFound)

	docs, err := store.ListByOrganization(ctx, "org-1")
	require.NoError(t, err)
	assert.Empty(t, docs, "index entry removed with the record")

	assert.NoError(t, store.Delete(ctx, "doc-1"), "deleting twice is a no-op")
}
