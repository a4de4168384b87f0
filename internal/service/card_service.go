package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/store"
)

// CardGenerator generates flashcards from source content.
// *generation.LLMGenerator satisfies it.
type CardGenerator interface {
	GenerateFlashcards(
		ctx context.Context,
		content string,
		ownerID uuid.UUID,
		topicID *uuid.UUID,
		count int,
	) ([]*domain.Flashcard, error)
}

// CardGenerationService generates and persists flashcards for a topic.
type CardGenerationService interface {
	// GenerateCards produces flashcards from the topic's content and saves
	// them with fresh review state. Returns ErrNotOwned when the topic
	// belongs to a different user.
	GenerateCards(ctx context.Context, ownerID, topicID uuid.UUID, count int) ([]*domain.Flashcard, error)
}

type cardGenerationServiceImpl struct {
	generator CardGenerator
	topics    store.TopicStore
	cards     store.FlashcardStore
	logger    *slog.Logger
}

// NewCardGenerationService creates a new CardGenerationService.
func NewCardGenerationService(
	generator CardGenerator,
	topics store.TopicStore,
	cards store.FlashcardStore,
	logger *slog.Logger,
) CardGenerationService {
	if generator == nil {
		panic("card generator cannot be nil")
	}
	if topics == nil {
		panic("topic store cannot be nil")
	}
	if cards == nil {
		panic("flashcard store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &cardGenerationServiceImpl{
		generator: generator,
		topics:    topics,
		cards:     cards,
		logger:    logger.With(slog.String("component", "card_generation_service")),
	}
}

// GenerateCards implements CardGenerationService.GenerateCards
func (s *cardGenerationServiceImpl) GenerateCards(
	ctx context.Context,
	ownerID, topicID uuid.UUID,
	count int,
) ([]*domain.Flashcard, error) {
	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if topic.OwnerID != ownerID {
		return nil, ErrNotOwned
	}

	content := topic.Name
	if topic.Summary != "" {
		content += "\n\n" + topic.Summary
	}

	cards, err := s.generator.GenerateFlashcards(ctx, content, ownerID, &topicID, count)
	if err != nil {
		return nil, NewServiceError("generate_cards", "flashcard generation failed", err)
	}
	if len(cards) == 0 {
		s.logger.WarnContext(ctx, "generator returned no flashcards",
			"topic_id", topicID, "owner_id", ownerID)
		return nil, NewServiceError("generate_cards", "no flashcards generated", ErrNoCardsGenerated)
	}

	if err := s.cards.CreateMultiple(ctx, cards); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "flashcards generated",
		"topic_id", topicID,
		"owner_id", ownerID,
		"count", len(cards))
	return cards, nil
}
