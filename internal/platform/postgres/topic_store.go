package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/store"
)

// PostgresTopicStore implements the store.TopicStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTopicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTopicStore creates a new PostgreSQL implementation of the
// TopicStore interface.
func NewPostgresTopicStore(db store.DBTX, logger *slog.Logger) *PostgresTopicStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTopicStore{
		db:     db,
		logger: logger.With(slog.String("component", "topic_store")),
	}
}

// Ensure PostgresTopicStore implements store.TopicStore interface
var _ store.TopicStore = (*PostgresTopicStore)(nil)

// CreateMultiple implements store.TopicStore.CreateMultiple
func (s *PostgresTopicStore) CreateMultiple(ctx context.Context, topics []*domain.Topic) error {
	for _, topic := range topics {
		if err := topic.Validate(); err != nil {
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}
	}

	query := `
		INSERT INTO topics (id, owner_id, name, summary, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, topic := range topics {
		_, err := s.db.ExecContext(ctx, query,
			topic.ID,
			topic.OwnerID,
			topic.Name,
			topic.Summary,
			topic.Status,
			topic.CreatedAt,
			topic.UpdatedAt,
		)
		if err != nil {
			return MapError(err)
		}
	}

	s.logger.DebugContext(ctx, "topics created", "count", len(topics))
	return nil
}

// GetByID implements store.TopicStore.GetByID
func (s *PostgresTopicStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	query := `
		SELECT id, owner_id, name, summary, status, created_at, updated_at
		FROM topics
		WHERE id = $1
	`

	var topic domain.Topic
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&topic.ID,
		&topic.OwnerID,
		&topic.Name,
		&topic.Summary,
		&topic.Status,
		&topic.CreatedAt,
		&topic.UpdatedAt,
	)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrTopicNotFound
		}
		return nil, MapError(err)
	}
	return &topic, nil
}

// ListByOwner implements store.TopicStore.ListByOwner
func (s *PostgresTopicStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Topic, error) {
	query := `
		SELECT id, owner_id, name, summary, status, created_at, updated_at
		FROM topics
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var topics []*domain.Topic
	for rows.Next() {
		var topic domain.Topic
		err := rows.Scan(
			&topic.ID,
			&topic.OwnerID,
			&topic.Name,
			&topic.Summary,
			&topic.Status,
			&topic.CreatedAt,
			&topic.UpdatedAt,
		)
		if err != nil {
			return nil, MapError(err)
		}
		topics = append(topics, &topic)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return topics, nil
}

// UpdateStatus implements store.TopicStore.UpdateStatus
func (s *PostgresTopicStore) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TopicStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: invalid topic status %q", store.ErrInvalidEntity, status)
	}

	query := `
		UPDATE topics
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return MapError(err)
	}
	if err := CheckRowsAffected(result, "topic"); err != nil {
		return store.ErrTopicNotFound
	}

	s.logger.DebugContext(ctx, "topic status updated", "topic_id", id, "status", status)
	return nil
}

// Delete implements store.TopicStore.Delete
func (s *PostgresTopicStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM topics WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	if err := CheckRowsAffected(result, "topic"); err != nil {
		return store.ErrTopicNotFound
	}
	return nil
}

// WithTx implements store.TopicStore.WithTx
func (s *PostgresTopicStore) WithTx(tx *sql.Tx) store.TopicStore {
	return &PostgresTopicStore{
		db:     tx,
		logger: s.logger,
	}
}
