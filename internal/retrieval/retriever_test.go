package retrieval

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRetriever(t *testing.T) *SQLiteRetriever {
	t.Helper()

	db, err := OpenIndex(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	retriever, err := NewSQLiteRetriever(db, NewHashEmbedder(256), logger)
	require.NoError(t, err)

	return retriever
}

func TestAddChunksAssignsDeterministicIDs(t *testing.T) {
	t.Parallel() // Enable parallel execution
	retriever := newTestRetriever(t)
	ctx := context.Background()

	ids, err := retriever.AddChunks(ctx, "owner-a",
		[]string{"photosynthesis converts light", "cells contain chloroplasts"}, "biology.pdf")
	require.NoError(t, err)

	assert.Equal(t, []string{"biology.pdf_0", "biology.pdf_1"}, ids)
}

func TestAddChunksHonorsExplicitIDs(t *testing.T) {
	t.Parallel()
	retriever := newTestRetriever(t)
	ctx := context.Background()

	ids, err := retriever.AddChunks(ctx, "owner-a",
		[]string{"stored under a caller-chosen id", "second custom chunk"},
		"syllabus.txt", "week-1", "week-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"week-1", "week-2"}, ids)

	// The custom id is the chunk's identity for deletion.
	require.NoError(t, retriever.DeleteChunk(ctx, "owner-a", "week-1"))

	result, err := retriever.Query(ctx, "owner-a", "caller-chosen id", 5)
	require.NoError(t, err)
	assert.NotContains(t, result, "stored under a caller-chosen id")
	assert.Contains(t, result, "second custom chunk")
}

func TestAddChunksRejectsMismatchedIDCount(t *testing.T) {
	t.Parallel()
	retriever := newTestRetriever(t)

	_, err := retriever.AddChunks(context.Background(), "owner-a",
		[]string{"one", "two"}, "doc.txt", "only-one-id")
	assert.ErrorIs(t, err, ErrChunkIDMismatch)
}

func TestQueryReturnsMostSimilarFirst(t *testing.T) {
	t.Parallel()
	retriever := newTestRetriever(t)
	ctx := context.Background()

	_, err := retriever.AddChunks(ctx, "owner-a", []string{
		"photosynthesis converts light energy into chemical energy",
		"the krebs cycle produces ATP in mitochondria",
		"newton's laws describe classical motion",
	}, "notes.txt")
	require.NoError(t, err)

	result, err := retriever.Query(ctx, "owner-a", "how does photosynthesis convert light", 2)
	require.NoError(t, err)

	parts := splitContext(result)
	require.Len(t, parts, 2)
	assert.Equal(t, "photosynthesis converts light energy into chemical energy", parts[0])
}

func TestQueryIsIdempotent(t *testing.T) {
	t.Parallel()
	retriever := newTestRetriever(t)
	ctx := context.Background()

	_, err := retriever.AddChunks(ctx, "owner-a", []string{
		"alpha beta gamma",
		"beta gamma delta",
		"gamma delta epsilon",
	}, "greek.txt")
	require.NoError(t, err)

	first, err := retriever.Query(ctx, "owner-a", "beta gamma", 3)
	require.NoError(t, err)
	second, err := retriever.Query(ctx, "owner-a", "beta gamma", 3)
	require.NoError(t, err)

	assert.Equal(t, first, second, "unchanged store must return identical ordering")
}

func TestQueryIsolatesOwners(t *testing.T) {
	t.Parallel()
	retriever := newTestRetriever(t)
	ctx := context.Background()

	secret := "owner A's private exam notes about thermodynamics"
	_, err := retriever.AddChunks(ctx, "owner-a", []string{secret}, "private.pdf")
	require.NoError(t, err)

	// Owner B queries with text that matches owner A's chunk exactly.
	result, err := retriever.Query(ctx, "owner-b", secret, 5)
	require.NoError(t, err)
	assert.Empty(t, result, "owner B must never see owner A's chunks")

	// Owner A still sees their own chunk.
	result, err = retriever.Query(ctx, "owner-a", "thermodynamics", 5)
	require.NoError(t, err)
	assert.Contains(t, result, secret)
}

func TestQueryEmptyCollection(t *testing.T) {
	t.Parallel()
	retriever := newTestRetriever(t)

	result, err := retriever.Query(context.Background(), "nobody", "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestReAddingSourceReplacesChunks(t *testing.T) {
	t.Parallel()
	retriever := newTestRetriever(t)
	ctx := context.Background()

	_, err := retriever.AddChunks(ctx, "owner-a", []string{"old content about gravity"}, "physics.pdf")
	require.NoError(t, err)
	_, err = retriever.AddChunks(ctx, "owner-a", []string{"new content about gravity"}, "physics.pdf")
	require.NoError(t, err)

	result, err := retriever.Query(ctx, "owner-a", "content about gravity", 5)
	require.NoError(t, err)

	assert.Contains(t, result, "new content about gravity")
	assert.NotContains(t, result, "old content about gravity")
}

func TestDeleteChunkIsIdempotent(t *testing.T) {
	t.Parallel()
	retriever := newTestRetriever(t)
	ctx := context.Background()

	_, err := retriever.AddChunks(ctx, "owner-a", []string{"to be removed"}, "doc.txt")
	require.NoError(t, err)

	require.NoError(t, retriever.DeleteChunk(ctx, "owner-a", "doc.txt_0"))
	// Deleting again, or deleting something that never existed, is a no-op.
	require.NoError(t, retriever.DeleteChunk(ctx, "owner-a", "doc.txt_0"))
	require.NoError(t, retriever.DeleteChunk(ctx, "owner-a", "never-existed"))

	result, err := retriever.Query(ctx, "owner-a", "to be removed", 5)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestOperationsRequireOwner(t *testing.T) {
	t.Parallel()
	retriever := newTestRetriever(t)
	ctx := context.Background()

	_, err := retriever.AddChunks(ctx, "", []string{"text"}, "doc")
	assert.ErrorIs(t, err, ErrEmptyOwner)

	_, err = retriever.Query(ctx, "", "text", 5)
	assert.ErrorIs(t, err, ErrEmptyOwner)

	assert.ErrorIs(t, retriever.DeleteChunk(ctx, "", "id"), ErrEmptyOwner)
}

func TestQueryFailsUnavailableWhenIndexClosed(t *testing.T) {
	t.Parallel()

	db, err := OpenIndex(":memory:")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	retriever, err := NewSQLiteRetriever(db, NewHashEmbedder(64), logger)
	require.NoError(t, err)

	require.NoError(t, db.Close())

	_, err = retriever.Query(context.Background(), "owner-a", "anything", 5)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = retriever.AddChunks(context.Background(), "owner-a", []string{"text"}, "doc")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCosineSimilarity(t *testing.T) {
	t.Parallel()

	same, err := CosineSimilarity([]float32{1, 0}, []float32{2, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, same, 1e-9)

	orthogonal, err := CosineSimilarity([]float32{1, 0}, []float32{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, orthogonal, 1e-9)

	_, err = CosineSimilarity([]float32{1}, []float32{1, 2})
	assert.Error(t, err)
}

// splitContext splits a grounding string back into chunk texts.
func splitContext(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ContextSeparator)
}
