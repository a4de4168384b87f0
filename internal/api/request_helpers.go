package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/api/shared"
)

// userIDHeader carries the caller identity. Authentication is handled
// upstream of this service; handlers only need the resolved user ID.
const userIDHeader = "X-User-ID"

// userIDFromRequest extracts the caller's UUID from the identity header.
//
// Returns:
//   - (uuid.UUID, true): The user's UUID if present and well formed
//   - (uuid.Nil, false): Otherwise, after writing a 401 response
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.Header.Get(userIDHeader)
	if raw == "" {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID header is required")
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(raw)
	if err != nil || userID == uuid.Nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid user ID")
		return uuid.Nil, false
	}
	return userID, true
}

// pathUUID extracts a UUID from the named URL path parameter.
//
// Returns:
//   - (uuid.UUID, true): The parsed UUID if valid
//   - (uuid.Nil, false): Otherwise, after writing a 400 response
func pathUUID(w http.ResponseWriter, r *http.Request, paramName string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, paramName+" is required")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid "+paramName+" format")
		return uuid.Nil, false
	}
	return id, true
}
