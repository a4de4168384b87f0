package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps them to HTTP
// status codes.
var (
	// ErrNotOwned indicates a resource is owned by a different user than the
	// one making the request. API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrNoCardsDue indicates that the user has no flashcards due for review.
	// API layer should map this to HTTP 204 No Content.
	ErrNoCardsDue = errors.New("no flashcards due for review")

	// ErrNoCardsGenerated indicates the generator produced an empty card set
	// for a topic, usually because its content is too thin.
	ErrNoCardsGenerated = errors.New("no flashcards generated")
)

// ServiceError wraps errors from the service layer with additional context.
// This allows consumers to differentiate between different kinds of service
// failures using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "submit_review")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
