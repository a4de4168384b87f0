// Package retrieval implements the per-user semantic text store that grounds
// agent prompts in the user's own documents.
package retrieval

import (
	"context"
	"errors"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// Embedder generates vector embeddings for text.
//
// The live implementation lives under internal/platform/gemini; the
// HashEmbedder in this package is the deterministic offline fallback.
type Embedder interface {
	// Embed generates an embedding for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the dimensionality of the embeddings.
	Dimensions() int
}

// CosineSimilarity calculates the cosine similarity between two vectors.
// Returns a value between -1 and 1, where 1 means identical direction.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.New("vector dimension mismatch")
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// HashEmbedder is a deterministic, dependency-free Embedder: each token is
// hashed into a fixed-size bucket vector which is then L2-normalized.
// Overlapping vocabulary yields genuinely higher cosine similarity, which is
// enough for offline operation and for tests; it is not a semantic model.
type HashEmbedder struct {
	dims int
}

// NewHashEmbedder creates a HashEmbedder with the given dimensionality.
// Non-positive dims fall back to 256.
func NewHashEmbedder(dims int) *HashEmbedder {
	if dims <= 0 {
		dims = 256
	}
	return &HashEmbedder{dims: dims}
}

// Embed implements the Embedder interface.
func (e *HashEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vec := make([]float32, e.dims)
	for _, token := range tokenize(text) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(token))
		vec[int(h.Sum32())%e.dims]++
	}

	// L2 normalize so cosine similarity reduces to a dot product.
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}

	return vec, nil
}

// EmbedBatch implements the Embedder interface.
func (e *HashEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := e.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		embeddings[i] = vec
	}
	return embeddings, nil
}

// Dimensions implements the Embedder interface.
func (e *HashEmbedder) Dimensions() int {
	return e.dims
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
