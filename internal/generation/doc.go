// Package generation turns source content (topic summaries, lesson text)
// into flashcards via the text-completion provider. It abstracts the details
// of the LLM integration so callers create review material without coupling
// to a specific external service.
package generation
