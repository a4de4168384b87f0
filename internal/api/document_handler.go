package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/api/shared"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/task"
)

// TaskFactory defines the interface for creating document ingestion tasks.
// *task.DocumentIngestionTaskFactory satisfies it.
type TaskFactory interface {
	CreateTask(ownerID uuid.UUID, filePath string) (task.Task, error)
}

// TaskSubmitter defines the interface for submitting tasks to the background
// runner. *task.TaskRunner satisfies it.
type TaskSubmitter interface {
	Submit(ctx context.Context, task task.Task) error
}

// IngestDocumentRequest represents the request body for submitting a document
// for ingestion
type IngestDocumentRequest struct {
	Path string `json:"path" validate:"required"`
}

// IngestDocumentResponse acknowledges an accepted ingestion request
type IngestDocumentResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// DocumentHandler handles document ingestion HTTP requests
type DocumentHandler struct {
	factory TaskFactory
	runner  TaskSubmitter
	logger  *slog.Logger
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(factory TaskFactory, runner TaskSubmitter, logger *slog.Logger) *DocumentHandler {
	if factory == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("task factory cannot be nil for DocumentHandler")
	}
	if runner == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("task runner cannot be nil for DocumentHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &DocumentHandler{
		factory: factory,
		runner:  runner,
		logger:  logger.With(slog.String("component", "document_handler")),
	}
}

// IngestDocument handles POST /documents requests.
// Ingestion runs in the background; the response acknowledges the queued task
// with 202 Accepted.
func (h *DocumentHandler) IngestDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req IngestDocumentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	ingestionTask, err := h.factory.CreateTask(userID, req.Path)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusBadRequest, "Invalid document ingestion request", err)
		return
	}

	if err := h.runner.Submit(r.Context(), ingestionTask); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusServiceUnavailable, "Ingestion queue is unavailable", err)
		return
	}

	h.logger.InfoContext(r.Context(), "document ingestion queued",
		"user_id", userID,
		"task_id", ingestionTask.ID())

	shared.RespondWithJSON(w, r, http.StatusAccepted, IngestDocumentResponse{
		TaskID: ingestionTask.ID().String(),
		Status: "queued",
	})
}
