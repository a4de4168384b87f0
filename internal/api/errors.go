package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain/srs"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/service"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authorization errors
	case errors.Is(err, service.ErrNotOwned):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, srs.ErrInvalidQuality):
		return http.StatusBadRequest

	// Special cases
	case errors.Is(err, service.ErrNoCardsDue):
		return http.StatusNoContent

	case errors.Is(err, service.ErrNoCardsGenerated):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrNotOwned):
		return "You do not own this resource"

	case errors.Is(err, store.ErrFlashcardNotFound):
		return "Flashcard not found"

	case errors.Is(err, store.ErrQuizNotFound):
		return "Quiz not found"

	case errors.Is(err, store.ErrTopicNotFound):
		return "Topic not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email address is already registered"

	case errors.Is(err, srs.ErrInvalidQuality):
		return "Review quality must be between 0 and 5"

	case errors.Is(err, service.ErrNoCardsGenerated):
		return "No flashcards could be generated from this topic"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError converts validator errors into a short message
// that names the offending fields without echoing submitted values back.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "Validation error"
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fieldErr.Field())
	}
	return "Validation failed for: " + strings.Join(fields, ", ")
}
