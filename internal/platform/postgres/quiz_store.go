package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/store"
)

// PostgresQuizStore implements the store.QuizStore interface using a
// PostgreSQL database as the storage backend. Quiz questions are stored as a
// JSONB document alongside the quiz row.
type PostgresQuizStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresQuizStore creates a new PostgreSQL implementation of the
// QuizStore interface.
func NewPostgresQuizStore(db store.DBTX, logger *slog.Logger) *PostgresQuizStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresQuizStore{
		db:     db,
		logger: logger.With(slog.String("component", "quiz_store")),
	}
}

// Ensure PostgresQuizStore implements store.QuizStore interface
var _ store.QuizStore = (*PostgresQuizStore)(nil)

// Create implements store.QuizStore.Create
func (s *PostgresQuizStore) Create(ctx context.Context, quiz *domain.Quiz) error {
	if err := quiz.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	questions, err := json.Marshal(quiz.Questions)
	if err != nil {
		return fmt.Errorf("%w: failed to encode questions: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO quizzes (id, owner_id, topic_id, title, difficulty, questions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = s.db.ExecContext(ctx, query,
		quiz.ID,
		quiz.OwnerID,
		quiz.TopicID,
		quiz.Title,
		quiz.Difficulty,
		questions,
		quiz.CreatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	s.logger.DebugContext(ctx, "quiz created",
		"quiz_id", quiz.ID,
		"questions", len(quiz.Questions))
	return nil
}

// GetByID implements store.QuizStore.GetByID
func (s *PostgresQuizStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error) {
	query := `
		SELECT id, owner_id, topic_id, title, difficulty, questions, created_at
		FROM quizzes
		WHERE id = $1
	`

	quiz, err := scanQuiz(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrQuizNotFound
		}
		return nil, MapError(err)
	}
	return quiz, nil
}

// ListByOwner implements store.QuizStore.ListByOwner
func (s *PostgresQuizStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Quiz, error) {
	query := `
		SELECT id, owner_id, topic_id, title, difficulty, questions, created_at
		FROM quizzes
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var quizzes []*domain.Quiz
	for rows.Next() {
		quiz, err := scanQuiz(rows)
		if err != nil {
			return nil, MapError(err)
		}
		quizzes = append(quizzes, quiz)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return quizzes, nil
}

// Delete implements store.QuizStore.Delete
func (s *PostgresQuizStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	if err := CheckRowsAffected(result, "quiz"); err != nil {
		return store.ErrQuizNotFound
	}
	return nil
}

// WithTx implements store.QuizStore.WithTx
func (s *PostgresQuizStore) WithTx(tx *sql.Tx) store.QuizStore {
	return &PostgresQuizStore{
		db:     tx,
		logger: s.logger,
	}
}

func scanQuiz(row rowScanner) (*domain.Quiz, error) {
	var (
		quiz      domain.Quiz
		topicID   uuid.NullUUID
		questions []byte
	)

	err := row.Scan(
		&quiz.ID,
		&quiz.OwnerID,
		&topicID,
		&quiz.Title,
		&quiz.Difficulty,
		&questions,
		&quiz.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if topicID.Valid {
		quiz.TopicID = &topicID.UUID
	}
	if err := json.Unmarshal(questions, &quiz.Questions); err != nil {
		return nil, fmt.Errorf("corrupt questions document for quiz %s: %w", quiz.ID, err)
	}
	return &quiz, nil
}
