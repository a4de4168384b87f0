package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
)

// TopicStore defines the interface for topic data persistence.
type TopicStore interface {
	// CreateMultiple saves multiple topics to the store, as produced by one
	// document ingestion. Run within a transaction via WithTx so a failed
	// ingestion leaves no partial topics behind.
	CreateMultiple(ctx context.Context, topics []*domain.Topic) error

	// GetByID retrieves a topic by its unique ID.
	// Returns ErrTopicNotFound if the topic does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)

	// ListByOwner returns all of the owner's topics, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Topic, error)

	// UpdateStatus moves a topic through its study lifecycle.
	// Returns ErrTopicNotFound if the topic does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TopicStatus) error

	// Delete removes a topic from the store by its ID. Flashcards that
	// reference the topic keep existing with a detached topic reference.
	// Returns ErrTopicNotFound if the topic does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new TopicStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) TopicStore
}
