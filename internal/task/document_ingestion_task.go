package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
)

// Status constants for DocumentIngestionTask
// These match the TaskStatus values defined in task.go
const (
	statusPending    = "pending"
	statusProcessing = "processing"
	statusCompleted  = "completed"
	statusFailed     = "failed"
)

// Common errors
var (
	ErrNilIngestor   = errors.New("ingestor cannot be nil")
	ErrNilTopicSaver = errors.New("topic saver cannot be nil")
	ErrNilLogger     = errors.New("logger cannot be nil")
	ErrEmptyOwnerID  = errors.New("owner ID cannot be empty")
	ErrEmptyFilePath = errors.New("file path cannot be empty")
)

// Ingestor defines the interface for the document processing pipeline
type Ingestor interface {
	// ProcessDocument extracts topics from the document at path and indexes
	// its text for the owner's retrieval collection
	ProcessDocument(ctx context.Context, ownerID uuid.UUID, path string) ([]*domain.Topic, error)
}

// TopicSaver defines the interface for persisting extracted topics
type TopicSaver interface {
	// CreateMultiple saves all extracted topics
	CreateMultiple(ctx context.Context, topics []*domain.Topic) error
}

// documentIngestionPayload represents the serialized data stored in the task
type documentIngestionPayload struct {
	OwnerID  uuid.UUID `json:"owner_id"`
	FilePath string    `json:"file_path"`
}

// DocumentIngestionTask implements the Task interface for processing an
// uploaded study document into persisted topics
type DocumentIngestionTask struct {
	id       uuid.UUID
	ownerID  uuid.UUID
	filePath string
	ingestor Ingestor
	topics   TopicSaver
	logger   *slog.Logger
	status   string // Using string instead of TaskStatus to avoid circular imports
}

// NewDocumentIngestionTask creates a new document ingestion task
func NewDocumentIngestionTask(
	ownerID uuid.UUID,
	filePath string,
	ingestor Ingestor,
	topics TopicSaver,
	logger *slog.Logger,
) (*DocumentIngestionTask, error) {
	// Validate dependencies
	if ingestor == nil {
		return nil, ErrNilIngestor
	}
	if topics == nil {
		return nil, ErrNilTopicSaver
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	// Validate task inputs
	if ownerID == uuid.Nil {
		return nil, ErrEmptyOwnerID
	}
	if filePath == "" {
		return nil, ErrEmptyFilePath
	}

	return &DocumentIngestionTask{
		id:       uuid.New(),
		ownerID:  ownerID,
		filePath: filePath,
		ingestor: ingestor,
		topics:   topics,
		logger:   logger.With("task_type", TaskTypeDocumentIngestion, "owner_id", ownerID),
		status:   statusPending,
	}, nil
}

// ID returns the task's unique identifier
func (t *DocumentIngestionTask) ID() uuid.UUID {
	return t.id
}

// Type returns the task type identifier
func (t *DocumentIngestionTask) Type() string {
	return TaskTypeDocumentIngestion
}

// Payload returns the task data as a byte slice
func (t *DocumentIngestionTask) Payload() []byte {
	payload := documentIngestionPayload{
		OwnerID:  t.ownerID,
		FilePath: t.filePath,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		// If marshal fails, return an empty payload with error logged
		t.logger.Error("failed to marshal task payload", "error", err)
		return []byte{}
	}

	return data
}

// Status returns the current task status
// We convert the string to TaskStatus to fulfill the Task interface
func (t *DocumentIngestionTask) Status() TaskStatus {
	return TaskStatus(t.status)
}

// Execute runs the document ingestion task: extracting topics from the
// uploaded file, indexing its text for retrieval, and persisting the
// resulting topics. It handles errors at each step and keeps the task
// status in sync with progress.
func (t *DocumentIngestionTask) Execute(ctx context.Context) error {
	t.status = statusProcessing
	t.logger.Info("starting document ingestion task", "file_path", t.filePath)

	// Check for context cancellation
	if err := ctx.Err(); err != nil {
		t.status = statusFailed
		t.logger.Error("task cancelled by context", "error", err)
		return fmt.Errorf("task cancelled by context: %w", err)
	}

	// 1. Extract topics and index the document text
	topics, err := t.ingestor.ProcessDocument(ctx, t.ownerID, t.filePath)
	if err != nil {
		t.status = statusFailed
		t.logger.Error("failed to process document", "error", err)
		return fmt.Errorf("failed to process document: %w", err)
	}

	t.logger.Info("topics extracted", "count", len(topics))

	// 2. Persist the extracted topics (if any)
	if len(topics) > 0 {
		if err := t.topics.CreateMultiple(ctx, topics); err != nil {
			t.status = statusFailed
			t.logger.Error("failed to save extracted topics", "error", err)
			return fmt.Errorf("failed to save extracted topics: %w", err)
		}
		t.logger.Info("saved extracted topics to database")
	} else {
		t.logger.Warn("document processed but no topics were extracted")
	}

	t.status = statusCompleted
	t.logger.Info("document ingestion task completed successfully", "topics_extracted", len(topics))
	return nil
}
