package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extractor pulls plain text out of an uploaded document. Implementations
// exist per file family (plain text here; PDF and OCR extraction live behind
// the same interface in deployments that carry those toolchains).
type Extractor interface {
	// ExtractText returns the document's text content.
	ExtractText(ctx context.Context, path string) (string, error)
}

// TextExtractor implements Extractor for plain-text files (.txt, .md).
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText implements the Extractor interface.
func (e *TextExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".text":
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFile, filepath.Ext(path))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	text := string(raw)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: document is empty", ErrExtractionFailed)
	}
	return text, nil
}
