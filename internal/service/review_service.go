package service

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain/srs"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/store"
)

// FlashcardReviewService provides methods for reviewing flashcards using the
// spaced repetition scheduler.
type FlashcardReviewService interface {
	// GetNextCard retrieves the next flashcard due for review for a user,
	// ordered by how overdue it is. Returns ErrNoCardsDue when nothing is due.
	GetNextCard(ctx context.Context, ownerID uuid.UUID) (*domain.Flashcard, error)

	// SubmitReview grades a flashcard with a recall quality in [0,5],
	// recomputes its schedule, and persists the new review state. The read
	// and write happen in a single transaction.
	//
	// Returns:
	//   - (*domain.Flashcard, nil): The card with its updated schedule
	//   - (nil, store.ErrFlashcardNotFound): If the card does not exist
	//   - (nil, ErrNotOwned): If the user does not own the card
	//   - (nil, srs.ErrInvalidQuality): If quality is outside [0,5]
	SubmitReview(ctx context.Context, ownerID, cardID uuid.UUID, quality int) (*domain.Flashcard, error)
}

// reviewServiceImpl implements the FlashcardReviewService interface
type reviewServiceImpl struct {
	db        *sql.DB
	cards     store.FlashcardStore
	scheduler srs.Service
	logger    *slog.Logger
	now       func() time.Time
}

// NewFlashcardReviewService creates a new FlashcardReviewService.
// It panics if db, cards, or scheduler is nil, matching the construction-time
// validation of the store layer.
func NewFlashcardReviewService(
	db *sql.DB,
	cards store.FlashcardStore,
	scheduler srs.Service,
	logger *slog.Logger,
) FlashcardReviewService {
	if db == nil {
		panic("db cannot be nil")
	}
	if cards == nil {
		panic("flashcard store cannot be nil")
	}
	if scheduler == nil {
		panic("scheduler cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &reviewServiceImpl{
		db:        db,
		cards:     cards,
		scheduler: scheduler,
		logger:    logger.With(slog.String("component", "review_service")),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// GetNextCard implements FlashcardReviewService.GetNextCard
func (s *reviewServiceImpl) GetNextCard(ctx context.Context, ownerID uuid.UUID) (*domain.Flashcard, error) {
	due, err := s.cards.ListDue(ctx, ownerID, s.now(), 1)
	if err != nil {
		return nil, NewServiceError("get_next_card", "failed to list due cards", err)
	}
	if len(due) == 0 {
		return nil, ErrNoCardsDue
	}
	return due[0], nil
}

// SubmitReview implements FlashcardReviewService.SubmitReview
func (s *reviewServiceImpl) SubmitReview(
	ctx context.Context,
	ownerID, cardID uuid.UUID,
	quality int,
) (*domain.Flashcard, error) {
	var reviewed *domain.Flashcard

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txCards := s.cards.WithTx(tx)

		card, err := txCards.GetByID(ctx, cardID)
		if err != nil {
			return err
		}
		if card.OwnerID != ownerID {
			return ErrNotOwned
		}

		updated, err := s.scheduler.Reviewed(card, quality, s.now())
		if err != nil {
			return err
		}

		if err := txCards.UpdateReviewState(ctx, updated); err != nil {
			return err
		}

		reviewed = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "flashcard reviewed",
		"card_id", cardID,
		"quality", quality,
		"repetition", reviewed.Repetition,
		"next_review_at", reviewed.NextReviewAt)
	return reviewed, nil
}
