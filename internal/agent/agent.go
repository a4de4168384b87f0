package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/llm"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/retrieval"
)

// bindParams converts a loosely-typed parameter map into the action's typed
// parameter struct via a JSON round-trip. Unknown keys are ignored so a plan
// may carry extra parameters (user_id is injected into every step) without
// breaking actions that do not use them.
func bindParams(params map[string]any, dst any) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}

// completeJSON sends one completion request and decodes the (possibly
// fenced) JSON reply into dst.
func completeJSON(
	ctx context.Context,
	provider llm.Provider,
	system, user string,
	maxTokens int32,
	dst any,
) error {
	reply, err := provider.Complete(ctx, llm.Request{
		System:    system,
		User:      user,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return err
	}

	cleaned := llm.ExtractJSON(reply)
	if err := json.Unmarshal([]byte(cleaned), dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	return nil
}

// groundingContext fetches the owner's most relevant chunks for the query.
// Retrieval failures degrade to an empty context: the agent still answers,
// just without grounding in the user's documents.
func groundingContext(
	ctx context.Context,
	retriever retrieval.Retriever,
	logger *slog.Logger,
	ownerID, query string,
) string {
	if retriever == nil || ownerID == "" {
		return ""
	}

	text, err := retriever.Query(ctx, ownerID, query, retrieval.DefaultTopK)
	if err != nil {
		logger.WarnContext(ctx, "retrieval unavailable, continuing without context",
			"owner_id", ownerID,
			"error", err)
		return ""
	}
	return text
}
