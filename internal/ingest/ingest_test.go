package ingest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/llm"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/retrieval"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIsHeadingHeuristics(t *testing.T) {
	t.Parallel() // Enable parallel execution

	headings := []string{
		"CHAPTER ONE: THERMODYNAMICS",
		"Introduction To Limits",
		"Newton's Laws", // apostrophe word is skipped, the rest are Title Case
	}
	for _, line := range headings {
		assert.True(t, isHeading(line), "expected heading: %q", line)
	}

	nonHeadings := []string{
		"",
		"   ",
		"the mitochondria is the powerhouse of the cell",
		"This sentence is far too long to plausibly be a section heading in notes",
	}
	for _, line := range nonHeadings {
		assert.False(t, isHeading(line), "expected non-heading: %q", line)
	}
}

func TestExtractTopicsSplitsOnHeadings(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"PHOTOSYNTHESIS",
		"light reactions happen in the thylakoid",
		"the calvin cycle fixes carbon",
		"",
		"CELLULAR RESPIRATION",
		"glycolysis splits glucose",
	}, "\n")

	topics := ExtractTopics(text)
	require.Len(t, topics, 2)

	assert.Equal(t, "PHOTOSYNTHESIS", topics[0].Topic)
	assert.Contains(t, topics[0].Content, "thylakoid")
	assert.Contains(t, topics[0].Content, "calvin cycle")

	assert.Equal(t, "CELLULAR RESPIRATION", topics[1].Topic)
	assert.Contains(t, topics[1].Content, "glycolysis")
}

func TestExtractTopicsFallsBackToSingleTopic(t *testing.T) {
	t.Parallel()

	topics := ExtractTopics("just some lowercase notes without any headings at all, spread over a single paragraph")
	require.Len(t, topics, 1)
	assert.Equal(t, "Document Content", topics[0].Topic)
	assert.Contains(t, topics[0].Content, "lowercase notes")
}

func TestExtractTopicsFallbackTruncatesLongDocuments(t *testing.T) {
	t.Parallel()

	topics := ExtractTopics(strings.Repeat("a", fallbackPreviewLimit+100))
	require.Len(t, topics, 1)
	assert.Len(t, topics[0].Content, fallbackPreviewLimit)
}

func TestExtractTopicsFallbackKeepsRunesIntact(t *testing.T) {
	t.Parallel()

	// The leading ASCII byte shifts every following two-byte rune off the
	// byte limit, so a plain byte-index cut would land mid-rune.
	topics := ExtractTopics("a" + strings.Repeat("é", fallbackPreviewLimit))
	require.Len(t, topics, 1)
	assert.True(t, utf8.ValidString(topics[0].Content))
	assert.LessOrEqual(t, len(topics[0].Content), fallbackPreviewLimit)
	assert.NotEmpty(t, topics[0].Content)
}

func TestTextExtractorReadsPlainText(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("some study notes"), 0o600))

	text, err := NewTextExtractor().ExtractText(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "some study notes", text)
}

func TestTextExtractorRejectsUnsupportedAndEmptyFiles(t *testing.T) {
	t.Parallel()
	extractor := NewTextExtractor()

	_, err := extractor.ExtractText(context.Background(), "slides.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFile)

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("   \n"), 0o600))
	_, err = extractor.ExtractText(context.Background(), empty)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestProcessDocumentExtractsTopicsAndIndexesText(t *testing.T) {
	t.Parallel()

	db, err := retrieval.OpenIndex(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	retriever, err := retrieval.NewSQLiteRetriever(db, retrieval.NewHashEmbedder(128), testLogger())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "biology.txt")
	content := "PHOTOSYNTHESIS\nlight reactions happen in the thylakoid membrane\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	service := NewService(NewTextExtractor(), retriever, nil, testLogger())
	ownerID := uuid.New()

	topics, err := service.ProcessDocument(context.Background(), ownerID, path)
	require.NoError(t, err)
	require.Len(t, topics, 1)

	assert.Equal(t, "PHOTOSYNTHESIS", topics[0].Name)
	assert.Equal(t, ownerID, topics[0].OwnerID)

	// The full text is now retrievable for this owner.
	grounding, err := retriever.Query(context.Background(), ownerID.String(), "thylakoid membrane", 5)
	require.NoError(t, err)
	assert.Contains(t, grounding, "thylakoid")
}

func TestProcessDocumentSurvivesIndexingFailure(t *testing.T) {
	t.Parallel()

	db, err := retrieval.OpenIndex(":memory:")
	require.NoError(t, err)
	broken, err := retrieval.NewSQLiteRetriever(db, retrieval.NewHashEmbedder(64), testLogger())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain notes"), 0o600))

	service := NewService(NewTextExtractor(), broken, nil, testLogger())

	topics, err := service.ProcessDocument(context.Background(), uuid.New(), path)
	require.NoError(t, err, "indexing failure must not fail ingestion")
	assert.NotEmpty(t, topics)
}

func TestProcessDocumentKeepsTopicsWhenEnhancementDegrades(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("GRAVITY\nobjects attract each other\n"), 0o600))

	// The deterministic provider has no canned shape for enhancement, so the
	// reply fails to decode and the extracted topics must survive as-is.
	service := NewService(NewTextExtractor(), nil, llm.NewMockProvider(testLogger()), testLogger())

	topics, err := service.ProcessDocument(context.Background(), uuid.New(), path)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "GRAVITY", topics[0].Name)
}
