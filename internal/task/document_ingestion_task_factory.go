package task

import (
	"log/slog"

	"github.com/google/uuid"
)

// DocumentIngestionTaskFactory creates DocumentIngestionTask instances
type DocumentIngestionTaskFactory struct {
	ingestor Ingestor
	topics   TopicSaver
	logger   *slog.Logger
}

// NewDocumentIngestionTaskFactory creates a new factory for DocumentIngestionTasks
func NewDocumentIngestionTaskFactory(
	ingestor Ingestor,
	topics TopicSaver,
	logger *slog.Logger,
) *DocumentIngestionTaskFactory {
	return &DocumentIngestionTaskFactory{
		ingestor: ingestor,
		topics:   topics,
		logger:   logger.With("component", "document_ingestion_task_factory"),
	}
}

// CreateTask creates a new DocumentIngestionTask for the specified owner and file
func (f *DocumentIngestionTaskFactory) CreateTask(ownerID uuid.UUID, filePath string) (Task, error) {
	task, err := NewDocumentIngestionTask(
		ownerID,
		filePath,
		f.ingestor,
		f.topics,
		f.logger,
	)
	if err != nil {
		return nil, err
	}
	return task, nil
}
