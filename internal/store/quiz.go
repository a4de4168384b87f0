package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
)

// QuizStore defines the interface for quiz data persistence. Questions are
// stored alongside the quiz as a JSONB document; a quiz is always written
// and read whole.
type QuizStore interface {
	// Create saves a new quiz, including its questions.
	// Returns validation errors from the domain Quiz if data is invalid.
	Create(ctx context.Context, quiz *domain.Quiz) error

	// GetByID retrieves a quiz by its unique ID.
	// Returns ErrQuizNotFound if the quiz does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error)

	// ListByOwner returns all of the owner's quizzes, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Quiz, error)

	// Delete removes a quiz from the store by its ID.
	// Returns ErrQuizNotFound if the quiz does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new QuizStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller.
	WithTx(tx *sql.Tx) QuizStore
}
