package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Topic-specific validation errors
var (
	// ErrTopicIDEmpty is returned when a topic ID is empty or nil.
	ErrTopicIDEmpty = errors.New("topic ID cannot be empty")

	// ErrTopicOwnerIDEmpty is returned when a topic's owner ID is empty or nil.
	ErrTopicOwnerIDEmpty = errors.New("topic owner ID cannot be empty")

	// ErrTopicNameEmpty is returned when a topic's name is empty.
	ErrTopicNameEmpty = errors.New("topic name cannot be empty")
)

// TopicStatus represents the lifecycle state of an extracted topic.
type TopicStatus string

// Valid topic status values.
const (
	// TopicStatusPending indicates the topic was extracted but has not been
	// studied yet.
	TopicStatusPending TopicStatus = "pending"

	// TopicStatusInProgress indicates the user has started studying the topic.
	TopicStatusInProgress TopicStatus = "in_progress"

	// TopicStatusCompleted indicates the user has finished the topic.
	TopicStatusCompleted TopicStatus = "completed"
)

// IsValid checks if the topic status is one of the recognized values.
func (s TopicStatus) IsValid() bool {
	switch s {
	case TopicStatusPending, TopicStatusInProgress, TopicStatusCompleted:
		return true
	default:
		return false
	}
}

// Topic represents a unit of study material extracted from a user's document.
// The Summary holds the raw section text the topic was extracted from and is
// the source content for lesson, quiz and flashcard generation.
type Topic struct {
	ID        uuid.UUID   `json:"id"`
	OwnerID   uuid.UUID   `json:"owner_id"`
	Name      string      `json:"name"`
	Summary   string      `json:"summary"`
	Status    TopicStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewTopic creates a new pending Topic for the given owner.
// Returns an error if validation fails.
func NewTopic(ownerID uuid.UUID, name, summary string) (*Topic, error) {
	now := time.Now().UTC()
	topic := &Topic{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Summary:   summary,
		Status:    TopicStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := topic.Validate(); err != nil {
		return nil, err
	}

	return topic, nil
}

// Validate checks if the Topic has valid data.
// Returns an error if any field fails validation.
func (t *Topic) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTopicIDEmpty
	}

	if t.OwnerID == uuid.Nil {
		return ErrTopicOwnerIDEmpty
	}

	if t.Name == "" {
		return ErrTopicNameEmpty
	}

	if !t.Status.IsValid() {
		return ErrInvalidTopicStatus
	}

	return nil
}
