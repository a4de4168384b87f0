package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/api/shared"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/service"
)

// GenerateQuizRequest represents the request body for generating a quiz
type GenerateQuizRequest struct {
	Topic      string  `json:"topic" validate:"required"`
	TopicID    *string `json:"topic_id,omitempty"`
	Difficulty string  `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Count      int     `json:"count" validate:"gte=0,lte=25"`
}

// QuizHandler handles quiz HTTP requests
type QuizHandler struct {
	quizzes service.QuizService
	logger  *slog.Logger
}

// NewQuizHandler creates a new QuizHandler
func NewQuizHandler(quizzes service.QuizService, logger *slog.Logger) *QuizHandler {
	if quizzes == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("quiz service cannot be nil for QuizHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &QuizHandler{
		quizzes: quizzes,
		logger:  logger.With(slog.String("component", "quiz_handler")),
	}
}

// GenerateQuiz handles POST /quizzes/generate requests.
// It generates a quiz on the requested topic, grounded in the user's
// uploaded material, and persists it.
func (h *QuizHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req GenerateQuizRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	var topicID *uuid.UUID
	if req.TopicID != nil {
		parsed, err := uuid.Parse(*req.TopicID)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid topic_id format")
			return
		}
		topicID = &parsed
	}

	quiz, err := h.quizzes.GenerateQuiz(r.Context(), userID, topicID,
		req.Topic, domain.QuizDifficulty(req.Difficulty), req.Count)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to generate quiz"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, quizToResponse(quiz))
}

// GetQuiz handles GET /quizzes/{id} requests.
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	quizID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	quiz, err := h.quizzes.GetQuiz(r.Context(), userID, quizID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, quizToResponse(quiz))
}

// ListQuizzes handles GET /quizzes requests.
func (h *QuizHandler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	quizzes, err := h.quizzes.ListQuizzes(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to list quizzes", err)
		return
	}

	responses := make([]QuizResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		responses = append(responses, quizToResponse(quiz))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}
