// Package gemini provides the live Google Gemini implementations of the
// llm.Provider and retrieval.Embedder interfaces. The composition root picks
// these when a Gemini API key is configured; without a key the application
// falls back to the deterministic in-process implementations.
package gemini
