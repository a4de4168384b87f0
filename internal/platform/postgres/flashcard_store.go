package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/store"
)

// PostgresFlashcardStore implements the store.FlashcardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresFlashcardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFlashcardStore creates a new PostgreSQL implementation of the
// FlashcardStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
func NewPostgresFlashcardStore(db store.DBTX, logger *slog.Logger) *PostgresFlashcardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresFlashcardStore{
		db:     db,
		logger: logger.With(slog.String("component", "flashcard_store")),
	}
}

// Ensure PostgresFlashcardStore implements store.FlashcardStore interface
var _ store.FlashcardStore = (*PostgresFlashcardStore)(nil)

// CreateMultiple implements store.FlashcardStore.CreateMultiple
func (s *PostgresFlashcardStore) CreateMultiple(ctx context.Context, cards []*domain.Flashcard) error {
	for _, card := range cards {
		if err := card.Validate(); err != nil {
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}
	}

	query := `
		INSERT INTO flashcards
			(id, owner_id, topic_id, front, back, repetition, easiness_factor,
			 interval_days, next_review_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	for _, card := range cards {
		_, err := s.db.ExecContext(ctx, query,
			card.ID,
			card.OwnerID,
			card.TopicID,
			card.Front,
			card.Back,
			card.Repetition,
			card.EasinessFactor,
			card.IntervalDays,
			card.NextReviewAt,
			card.CreatedAt,
			card.UpdatedAt,
		)
		if err != nil {
			return MapError(err)
		}
	}

	s.logger.DebugContext(ctx, "flashcards created", "count", len(cards))
	return nil
}

// GetByID implements store.FlashcardStore.GetByID
func (s *PostgresFlashcardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
	query := `
		SELECT id, owner_id, topic_id, front, back, repetition, easiness_factor,
		       interval_days, next_review_at, created_at, updated_at
		FROM flashcards
		WHERE id = $1
	`

	card, err := scanFlashcard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrFlashcardNotFound
		}
		return nil, MapError(err)
	}
	return card, nil
}

// UpdateReviewState implements store.FlashcardStore.UpdateReviewState
func (s *PostgresFlashcardStore) UpdateReviewState(ctx context.Context, card *domain.Flashcard) error {
	if err := card.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE flashcards
		SET repetition = $1, easiness_factor = $2, interval_days = $3,
		    next_review_at = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := s.db.ExecContext(ctx, query,
		card.Repetition,
		card.EasinessFactor,
		card.IntervalDays,
		card.NextReviewAt,
		card.UpdatedAt,
		card.ID,
	)
	if err != nil {
		return MapError(err)
	}
	if err := CheckRowsAffected(result, "flashcard"); err != nil {
		return store.ErrFlashcardNotFound
	}

	s.logger.DebugContext(ctx, "flashcard review state updated",
		"card_id", card.ID,
		"repetition", card.Repetition,
		"next_review_at", card.NextReviewAt)
	return nil
}

// ListDue implements store.FlashcardStore.ListDue
func (s *PostgresFlashcardStore) ListDue(
	ctx context.Context,
	ownerID uuid.UUID,
	now time.Time,
	limit int,
) ([]*domain.Flashcard, error) {
	query := `
		SELECT id, owner_id, topic_id, front, back, repetition, easiness_factor,
		       interval_days, next_review_at, created_at, updated_at
		FROM flashcards
		WHERE owner_id = $1 AND next_review_at <= $2
		ORDER BY next_review_at ASC
	`
	args := []any{ownerID, now}
	if limit > 0 {
		query += " LIMIT $3"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var cards []*domain.Flashcard
	for rows.Next() {
		card, err := scanFlashcard(rows)
		if err != nil {
			return nil, MapError(err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return cards, nil
}

// Delete implements store.FlashcardStore.Delete
func (s *PostgresFlashcardStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM flashcards WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	if err := CheckRowsAffected(result, "flashcard"); err != nil {
		return store.ErrFlashcardNotFound
	}
	return nil
}

// WithTx implements store.FlashcardStore.WithTx
func (s *PostgresFlashcardStore) WithTx(tx *sql.Tx) store.FlashcardStore {
	return &PostgresFlashcardStore{
		db:     tx,
		logger: s.logger,
	}
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanFlashcard(row rowScanner) (*domain.Flashcard, error) {
	var (
		card    domain.Flashcard
		topicID uuid.NullUUID
	)

	err := row.Scan(
		&card.ID,
		&card.OwnerID,
		&topicID,
		&card.Front,
		&card.Back,
		&card.Repetition,
		&card.EasinessFactor,
		&card.IntervalDays,
		&card.NextReviewAt,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if topicID.Valid {
		card.TopicID = &topicID.UUID
	}
	return &card, nil
}
