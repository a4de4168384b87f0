package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/llm"
)

// DefaultFlashcardCount is used when a caller does not specify how many
// flashcards to generate.
const DefaultFlashcardCount = 10

// Generator defines the interface for generating flashcards from text.
// This interface serves as a boundary between the application core and
// external AI/LLM services.
type Generator interface {
	// GenerateFlashcards creates flashcards from the given source content.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - content: The source text to generate flashcards from
	//   - ownerID: The UUID of the user who will own the flashcards
	//   - topicID: The topic the content came from, or nil
	//   - count: How many flashcards to request; <= 0 uses DefaultFlashcardCount
	//
	// Returns:
	//   - A slice of domain.Flashcard pointers with fresh review state
	//   - An error if the generation fails (see errors.go for specific types)
	GenerateFlashcards(ctx context.Context, content string, ownerID uuid.UUID, topicID *uuid.UUID, count int) ([]*domain.Flashcard, error)
}

const flashcardSystemPrompt = `You are a flashcard generation AI. Your task is to create a set of flashcards based on the provided text. Each flashcard should have a clear question on the front and a concise answer on the back.

The output must be a valid JSON list of objects, where each object represents a flashcard and has the following structure:
- "front": The question or term.
- "back": The answer or definition.

Respond with ONLY the JSON list, no additional text or markdown formatting.`

// LLMGenerator implements Generator on the text-completion provider.
type LLMGenerator struct {
	provider llm.Provider
	logger   *slog.Logger
}

// NewLLMGenerator creates a new LLMGenerator.
func NewLLMGenerator(provider llm.Provider, logger *slog.Logger) *LLMGenerator {
	return &LLMGenerator{
		provider: provider,
		logger:   logger.With("component", "flashcard_generator"),
	}
}

// GenerateFlashcards implements the Generator interface.
func (g *LLMGenerator) GenerateFlashcards(
	ctx context.Context,
	content string,
	ownerID uuid.UUID,
	topicID *uuid.UUID,
	count int,
) ([]*domain.Flashcard, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if count <= 0 {
		count = DefaultFlashcardCount
	}

	userPrompt := fmt.Sprintf(
		"Content to turn into flashcards:\n---\n%s\n---\nNumber of flashcards to generate: %d",
		content, count)

	reply, err := g.provider.Complete(ctx, llm.Request{
		System:    flashcardSystemPrompt,
		User:      userPrompt,
		MaxTokens: 1000,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	var decoded []struct {
		Front string `json:"front"`
		Back  string `json:"back"`
	}
	if err := json.Unmarshal([]byte(llm.ExtractJSON(reply)), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if len(decoded) == 0 {
		return nil, fmt.Errorf("%w: no flashcards in reply", ErrInvalidResponse)
	}

	cards := make([]*domain.Flashcard, 0, len(decoded))
	for i, item := range decoded {
		card, err := domain.NewFlashcard(ownerID, topicID, item.Front, item.Back)
		if err != nil {
			return nil, fmt.Errorf("%w: flashcard %d: %v", ErrInvalidResponse, i+1, err)
		}
		cards = append(cards, card)
	}

	g.logger.DebugContext(ctx, "flashcards generated",
		"owner_id", ownerID,
		"count", len(cards))
	return cards, nil
}
