package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"google.golang.org/genai"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/config"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/llm"
)

// baseRetryDelay is the backoff before the first retry; it doubles on each
// subsequent attempt with up to 50% jitter added.
const baseRetryDelay = time.Second

// Provider implements the llm.Provider interface using Google's Gemini API.
type Provider struct {
	client     *genai.Client
	model      string
	maxRetries int
	logger     *slog.Logger
}

// NewProvider creates a new Gemini-backed Provider.
//
// Parameters:
//   - ctx: Context for client initialization
//   - cfg: LLM configuration containing the API key, model name, and retry budget
//   - logger: A structured logger for operation logging
//
// Returns:
//   - A properly initialized Provider or an error if initialization fails
func NewProvider(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (*Provider, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	if cfg.Model == "" {
		return nil, errors.New("model name cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Provider{
		client:     client,
		model:      cfg.Model,
		maxRetries: cfg.MaxRetries,
		logger:     logger.With(slog.String("component", "gemini_provider")),
	}, nil
}

// Ensure Provider implements llm.Provider interface
var _ llm.Provider = (*Provider)(nil)

// Complete implements llm.Provider.Complete. Transient API failures are
// retried with exponential backoff and jitter up to the configured retry
// budget; permanent failures (safety blocks, bad requests) return immediately.
func (p *Provider) Complete(ctx context.Context, req llm.Request) (string, error) {
	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = req.MaxTokens
	}

	var lastErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepWithBackoff(ctx, attempt); err != nil {
				return "", err
			}
			p.logger.DebugContext(ctx, "retrying Gemini call",
				"attempt", attempt+1,
				"max_attempts", p.maxRetries+1)
		}

		resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(req.User), cfg)
		if err != nil {
			classified := classifyError(err)
			if !isTransient(classified) {
				return "", classified
			}
			lastErr = classified
			p.logger.WarnContext(ctx, "transient Gemini failure",
				"attempt", attempt+1,
				"error", err)
			continue
		}

		text, err := extractText(resp)
		if err != nil {
			return "", err
		}
		return text, nil
	}

	return "", fmt.Errorf("%w: retries exhausted: %v", llm.ErrProviderUnavailable, lastErr)
}

// extractText pulls the reply text out of a response, detecting safety blocks
// and empty replies.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", llm.ErrEmptyResponse
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", llm.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: reply suppressed by safety filters", llm.ErrContentBlocked)
	}

	text := resp.Text()
	if text == "" {
		return "", llm.ErrEmptyResponse
	}
	return text, nil
}

// classifyError maps an API error to the provider sentinel errors.
func classifyError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 429:
			return fmt.Errorf("%w: %v", llm.ErrRateLimited, err)
		case apiErr.Code >= 500:
			return fmt.Errorf("%w: %v", llm.ErrProviderUnavailable, err)
		default:
			return err
		}
	}
	// Network-level failures without an API status code are treated as
	// provider unavailability.
	return fmt.Errorf("%w: %v", llm.ErrProviderUnavailable, err)
}

// isTransient reports whether a classified error is worth retrying.
func isTransient(err error) bool {
	return errors.Is(err, llm.ErrProviderUnavailable) || errors.Is(err, llm.ErrRateLimited)
}

// sleepWithBackoff waits for the exponential backoff delay of the given
// attempt (1-based), honoring context cancellation.
func sleepWithBackoff(ctx context.Context, attempt int) error {
	delay := baseRetryDelay << (attempt - 1)
	jitter := time.Duration(rand.Int63n(int64(delay) / 2))
	select {
	case <-time.After(delay + jitter):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
