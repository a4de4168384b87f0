package llm

import "errors"

// Common errors returned by llm providers
var (
	// ErrProviderUnavailable is returned when the model API cannot be reached
	// or keeps failing after retries.
	ErrProviderUnavailable = errors.New("language model provider unavailable")

	// ErrRateLimited is returned when the model API rejects the call due to
	// quota or rate limits.
	ErrRateLimited = errors.New("language model provider rate limited")

	// ErrContentBlocked is returned when the model blocks the reply due to
	// safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrEmptyResponse is returned when the model produces no usable text.
	ErrEmptyResponse = errors.New("empty response from language model")
)
