package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/config"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/retrieval"
)

// Embedder implements the retrieval.Embedder interface using Google's
// Gemini embedding API.
type Embedder struct {
	client *genai.Client
	model  string
	dims   int
}

// NewEmbedder creates a new Gemini-backed Embedder for the configured
// embedding model.
func NewEmbedder(ctx context.Context, apiKey string, cfg config.RetrievalConfig) (*Embedder, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}

	model := cfg.EmbeddingModel
	if model == "" {
		model = "gemini-embedding-001"
	}
	dims := cfg.EmbeddingDimensions
	if dims <= 0 {
		dims = 768
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Embedder{
		client: client,
		model:  model,
		dims:   dims,
	}, nil
}

// Ensure Embedder implements retrieval.Embedder interface
var _ retrieval.Embedder = (*Embedder)(nil)

// Embed implements retrieval.Embedder.Embed
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return embeddings[0], nil
}

// EmbedBatch implements retrieval.Embedder.EmbedBatch.
// The Gemini API has native batch support.
func (e *Embedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	result, err := e.client.Models.EmbedContent(ctx,
		e.model,
		contents,
		&genai.EmbedContentConfig{
			TaskType: "RETRIEVAL_DOCUMENT",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini embed failed: %w", err)
	}
	if len(result.Embeddings) != len(texts) {
		return nil, fmt.Errorf("gemini embed returned %d embeddings for %d texts",
			len(result.Embeddings), len(texts))
	}

	embeddings := make([][]float32, len(result.Embeddings))
	for i, emb := range result.Embeddings {
		embeddings[i] = emb.Values
	}
	return embeddings, nil
}

// Dimensions implements retrieval.Embedder.Dimensions
func (e *Embedder) Dimensions() int {
	return e.dims
}
