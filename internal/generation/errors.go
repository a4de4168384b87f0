package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when flashcard generation fails for any
	// general reason
	ErrGenerationFailed = errors.New("failed to generate flashcards from content")

	// ErrInvalidResponse is returned when the LLM reply cannot be parsed or
	// produced no usable flashcards
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrEmptyContent is returned when there is no source content to
	// generate from
	ErrEmptyContent = errors.New("no content to generate flashcards from")
)
