package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/api/shared"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/service"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/store"
)

// GenerateCardsRequest represents the request body for generating flashcards
// from a topic
type GenerateCardsRequest struct {
	Count int `json:"count" validate:"gte=0,lte=50"`
}

// TopicResponse represents the response data for a topic
type TopicResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Summary   string    `json:"summary"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func topicToResponse(topic *domain.Topic) TopicResponse {
	return TopicResponse{
		ID:        topic.ID.String(),
		OwnerID:   topic.OwnerID.String(),
		Name:      topic.Name,
		Summary:   topic.Summary,
		Status:    string(topic.Status),
		CreatedAt: topic.CreatedAt,
	}
}

// TopicHandler handles topic HTTP requests
type TopicHandler struct {
	topics store.TopicStore
	cards  service.CardGenerationService
	logger *slog.Logger
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(
	topics store.TopicStore,
	cards service.CardGenerationService,
	logger *slog.Logger,
) *TopicHandler {
	if topics == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("topic store cannot be nil for TopicHandler")
	}
	if cards == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("card generation service cannot be nil for TopicHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TopicHandler{
		topics: topics,
		cards:  cards,
		logger: logger.With(slog.String("component", "topic_handler")),
	}
}

// ListTopics handles GET /topics requests.
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	topics, err := h.topics.ListByOwner(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to list topics", err)
		return
	}

	responses := make([]TopicResponse, 0, len(topics))
	for _, topic := range topics {
		responses = append(responses, topicToResponse(topic))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GenerateCards handles POST /topics/{id}/flashcards requests.
// It generates flashcards from the topic's content and persists them with
// fresh review state.
func (h *TopicHandler) GenerateCards(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	topicID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	// An empty body is fine; the generator then uses its default count.
	var req GenerateCardsRequest
	if r.ContentLength > 0 {
		if err := shared.DecodeJSON(r, &req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
			return
		}
		if err := shared.ValidateRequest(req); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
			return
		}
	}

	cards, err := h.cards.GenerateCards(r.Context(), userID, topicID, req.Count)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to generate flashcards"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	responses := make([]FlashcardResponse, 0, len(cards))
	for _, card := range cards {
		responses = append(responses, flashcardToResponse(card))
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, responses)
}
