package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/api/shared"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/service"
)

// SubmitReviewRequest represents the request body for reviewing a flashcard
type SubmitReviewRequest struct {
	Quality int `json:"quality" validate:"gte=0,lte=5"`
}

// FlashcardHandler handles flashcard review HTTP requests
type FlashcardHandler struct {
	reviews service.FlashcardReviewService
	logger  *slog.Logger
}

// NewFlashcardHandler creates a new FlashcardHandler
func NewFlashcardHandler(reviews service.FlashcardReviewService, logger *slog.Logger) *FlashcardHandler {
	if reviews == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("review service cannot be nil for FlashcardHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &FlashcardHandler{
		reviews: reviews,
		logger:  logger.With(slog.String("component", "flashcard_handler")),
	}
}

// GetNextCard handles GET /flashcards/next requests.
// It retrieves the next flashcard due for review for the requesting user.
func (h *FlashcardHandler) GetNextCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	card, err := h.reviews.GetNextCard(r.Context(), userID)
	if errors.Is(err, service.ErrNoCardsDue) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to get next review card", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, flashcardToResponse(card))
}

// SubmitReview handles POST /flashcards/{id}/review requests.
// It grades the flashcard with the submitted recall quality and returns the
// card with its updated schedule.
func (h *FlashcardHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	cardID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req SubmitReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	updated, err := h.reviews.SubmitReview(r.Context(), userID, cardID, req.Quality)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to submit review"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	h.logger.DebugContext(r.Context(), "review submitted",
		"user_id", userID,
		"card_id", cardID,
		"quality", req.Quality)
	shared.RespondWithJSON(w, r, http.StatusOK, flashcardToResponse(updated))
}
