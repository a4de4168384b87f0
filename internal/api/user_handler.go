package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/api/shared"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/store"
)

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// UserHandler handles user HTTP requests
type UserHandler struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users store.UserStore, logger *slog.Logger) *UserHandler {
	if users == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("user store cannot be nil for UserHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserHandler{
		users:  users,
		logger: logger.With(slog.String("component", "user_handler")),
	}
}

// CreateUser handles POST /users requests.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	user, err := domain.NewUser(req.Name, req.Email)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, err.Error(), err)
		return
	}

	if err := h.users.Create(r.Context(), user); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to create user"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	h.logger.InfoContext(r.Context(), "user created", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// GetUser handles GET /users/{id} requests.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}
