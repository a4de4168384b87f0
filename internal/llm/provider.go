// Package llm defines the text-completion provider boundary used by the
// agents and the orchestrator. It isolates the application core from any
// concrete model API, following the same hexagonal pattern as the
// generation package: the live Gemini implementation lives under
// internal/platform/gemini, and a deterministic mock lives in this package
// so every consumer stays testable without network access.
package llm

import "context"

// Request describes a single text-completion call.
type Request struct {
	// System is the instruction prompt establishing the model's role and the
	// JSON schema it must reply with.
	System string

	// User is the task-specific prompt.
	User string

	// MaxTokens caps the reply length. Zero means the provider default.
	MaxTokens int32
}

// Provider is the text-in/text-out completion collaborator.
//
// Implementations are safe for concurrent use. The returned string is free
// text that is expected to contain JSON, possibly wrapped in a code fence;
// use ExtractJSON before structured decoding.
type Provider interface {
	// Complete sends the request to the model and returns its raw reply.
	// Fails with ErrProviderUnavailable or ErrRateLimited on call-level
	// failures, and ErrContentBlocked when the reply was suppressed by
	// safety filters.
	Complete(ctx context.Context, req Request) (string, error)
}
