package generation_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/generation"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/llm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// staticProvider returns a fixed reply for every request.
type staticProvider struct {
	reply string
	err   error
}

func (p staticProvider) Complete(_ context.Context, _ llm.Request) (string, error) {
	return p.reply, p.err
}

func TestGenerateFlashcardsFromContent(t *testing.T) {
	t.Parallel() // Enable parallel execution

	generator := generation.NewLLMGenerator(llm.NewMockProvider(testLogger()), testLogger())
	ownerID := uuid.New()
	topicID := uuid.New()

	cards, err := generator.GenerateFlashcards(context.Background(),
		"Photosynthesis converts light energy into chemical energy.",
		ownerID, &topicID, 5)
	require.NoError(t, err)
	require.NotEmpty(t, cards)

	for _, card := range cards {
		assert.Equal(t, ownerID, card.OwnerID)
		require.NotNil(t, card.TopicID)
		assert.Equal(t, topicID, *card.TopicID)
		assert.NotEmpty(t, card.Front)
		assert.NotEmpty(t, card.Back)

		// Fresh cards start with default review state.
		assert.Equal(t, 0, card.Repetition)
		assert.InDelta(t, domain.DefaultEasinessFactor, card.EasinessFactor, 1e-9)
		require.NoError(t, card.Validate())
	}
}

func TestGenerateFlashcardsRequiresContent(t *testing.T) {
	t.Parallel()

	generator := generation.NewLLMGenerator(llm.NewMockProvider(testLogger()), testLogger())

	_, err := generator.GenerateFlashcards(context.Background(), "", uuid.New(), nil, 5)
	assert.ErrorIs(t, err, generation.ErrEmptyContent)
}

func TestGenerateFlashcardsRejectsMalformedReply(t *testing.T) {
	t.Parallel()

	generator := generation.NewLLMGenerator(staticProvider{reply: "no cards today"}, testLogger())

	_, err := generator.GenerateFlashcards(context.Background(), "content", uuid.New(), nil, 5)
	assert.ErrorIs(t, err, generation.ErrInvalidResponse)
}

func TestGenerateFlashcardsRejectsEmptyList(t *testing.T) {
	t.Parallel()

	generator := generation.NewLLMGenerator(staticProvider{reply: "[]"}, testLogger())

	_, err := generator.GenerateFlashcards(context.Background(), "content", uuid.New(), nil, 5)
	assert.ErrorIs(t, err, generation.ErrInvalidResponse)
}

func TestGenerateFlashcardsRejectsBlankCard(t *testing.T) {
	t.Parallel()

	generator := generation.NewLLMGenerator(staticProvider{
		reply: `[{"front": "", "back": "b"}]`,
	}, testLogger())

	_, err := generator.GenerateFlashcards(context.Background(), "content", uuid.New(), nil, 5)
	assert.ErrorIs(t, err, generation.ErrInvalidResponse)
}

func TestGenerateFlashcardsStripsCodeFences(t *testing.T) {
	t.Parallel()

	generator := generation.NewLLMGenerator(staticProvider{
		reply: "```json\n[{\"front\":\"a\",\"back\":\"b\"}]\n```",
	}, testLogger())

	cards, err := generator.GenerateFlashcards(context.Background(), "content", uuid.New(), nil, 1)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "a", cards[0].Front)
}

func TestGenerateFlashcardsPropagatesProviderFailure(t *testing.T) {
	t.Parallel()

	generator := generation.NewLLMGenerator(staticProvider{err: llm.ErrProviderUnavailable}, testLogger())

	_, err := generator.GenerateFlashcards(context.Background(), "content", uuid.New(), nil, 5)
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
}
