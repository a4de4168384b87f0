package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/api/shared"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/events"
)

// GoalRunner defines the interface for running a study goal through the
// multi-agent orchestrator. *orchestrator.Orchestrator satisfies it.
type GoalRunner interface {
	Run(ctx context.Context, ownerID, goal string) <-chan events.AgentEvent
}

// SubmitGoalRequest represents the request body for submitting a study goal
type SubmitGoalRequest struct {
	Goal string `json:"goal" validate:"required"`
}

// GoalHandler handles goal orchestration HTTP requests
type GoalHandler struct {
	runner GoalRunner
	logger *slog.Logger
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(runner GoalRunner, logger *slog.Logger) *GoalHandler {
	if runner == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("runner cannot be nil for GoalHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &GoalHandler{
		runner: runner,
		logger: logger.With(slog.String("component", "goal_handler")),
	}
}

// SubmitGoal handles POST /goals requests.
// It runs the goal through the orchestrator and streams the resulting agent
// events to the client as Server-Sent Events, one event per message, ending
// when the run's done event has been sent.
func (h *GoalHandler) SubmitGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req SubmitGoalRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Goal == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Goal is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.logger.InfoContext(r.Context(), "goal run started",
		"user_id", userID,
		"goal_length", len(req.Goal))

	// The channel is closed by the orchestrator after its done event; client
	// disconnects cancel r.Context() and stop the run before the next step.
	for event := range h.runner.Run(r.Context(), userID.String(), req.Goal) {
		data, err := json.Marshal(event)
		if err != nil {
			h.logger.ErrorContext(r.Context(), "failed to encode agent event", "error", err)
			continue
		}
		fmt.Fprintf(w, "data: %s\n\n", data)
		flusher.Flush()
	}
}
