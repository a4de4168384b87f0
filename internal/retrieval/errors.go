package retrieval

import "errors"

// Common errors returned by the retrieval package
var (
	// ErrUnavailable is returned when the embedding or index backend cannot
	// serve the operation. Callers are expected to degrade gracefully by
	// proceeding with an empty grounding context instead of failing the
	// whole request.
	ErrUnavailable = errors.New("retrieval backend unavailable")

	// ErrEmptyOwner is returned when an operation is attempted without an
	// owner ID. Every chunk belongs to exactly one owner's collection.
	ErrEmptyOwner = errors.New("owner ID cannot be empty")

	// ErrChunkIDMismatch is returned by AddChunks when explicit chunk IDs are
	// supplied but their count does not match the number of texts.
	ErrChunkIDMismatch = errors.New("chunk ID count does not match text count")
)
