package ingest

import "errors"

// Common errors returned by the ingest package
var (
	// ErrExtractionFailed is returned when no text could be extracted from a
	// document
	ErrExtractionFailed = errors.New("failed to extract text from document")

	// ErrUnsupportedFile is returned for file types the extractor does not
	// handle
	ErrUnsupportedFile = errors.New("unsupported file type")
)
