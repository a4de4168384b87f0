package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
)

// FlashcardStore defines the interface for flashcard data persistence.
type FlashcardStore interface {
	// CreateMultiple saves multiple flashcards to the store.
	// This method MUST be run within a transaction for atomicity; use
	// WithTx together with store.RunInTransaction.
	//
	// All flashcards must be valid according to domain validation rules.
	// Returns ErrInvalidEntity wrapping the validation failure otherwise.
	CreateMultiple(ctx context.Context, cards []*domain.Flashcard) error

	// GetByID retrieves a flashcard by its unique ID.
	// Returns ErrFlashcardNotFound if the flashcard does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error)

	// UpdateReviewState persists the flashcard's review fields (repetition
	// count, easiness factor, interval, next review date) after a review.
	// Returns ErrFlashcardNotFound if the flashcard does not exist.
	UpdateReviewState(ctx context.Context, card *domain.Flashcard) error

	// ListDue returns the owner's flashcards whose next review date is at or
	// before now, ordered soonest first. limit <= 0 means no limit.
	ListDue(ctx context.Context, ownerID uuid.UUID, now time.Time, limit int) ([]*domain.Flashcard, error)

	// Delete removes a flashcard from the store by its ID.
	// Returns ErrFlashcardNotFound if the flashcard does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new FlashcardStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) FlashcardStore
}
