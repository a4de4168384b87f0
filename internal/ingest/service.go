package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/llm"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/retrieval"
)

const enhanceSystemPrompt = `As an expert study assistant, enhance the following extracted educational topics from a document. Improve the content summaries to be more clear, concise, and educational.

Your output must be a valid JSON array of objects with two keys: "topic" and "content".
- "topic": A short, descriptive name for the topic (keep similar to original if appropriate).
- "content": An enhanced, clear and concise summary of the key points, concepts, and formulas.

Return ONLY the JSON array. Do not include any other text or markdown formatting.`

// Caps on the prompt material sent for topic enhancement.
const (
	enhanceTopicsLimit   = 15000
	enhanceFullTextLimit = 5000
)

// Service runs the document ingestion pipeline: extract text, split into
// topics, enhance summaries, index the text for retrieval, and return the
// topics as domain objects ready for persistence.
type Service struct {
	extractor Extractor
	retriever retrieval.Retriever
	provider  llm.Provider
	logger    *slog.Logger
}

// NewService creates a new ingestion Service. provider may be nil, in which
// case topic summaries are kept as extracted.
func NewService(
	extractor Extractor,
	retriever retrieval.Retriever,
	provider llm.Provider,
	logger *slog.Logger,
) *Service {
	return &Service{
		extractor: extractor,
		retriever: retriever,
		provider:  provider,
		logger:    logger.With("component", "ingest"),
	}
}

// ProcessDocument ingests one uploaded document for the owner and returns
// the extracted topics. The document's full text is added to the owner's
// retrieval collection under its file name; indexing failures degrade with a
// warning rather than failing the ingestion.
func (s *Service) ProcessDocument(ctx context.Context, ownerID uuid.UUID, path string) ([]*domain.Topic, error) {
	text, err := s.extractor.ExtractText(ctx, path)
	if err != nil {
		return nil, err
	}

	extracted := ExtractTopics(text)
	extracted = s.enhanceTopics(ctx, extracted, text)

	if s.retriever != nil {
		source := filepath.Base(path)
		if _, err := s.retriever.AddChunks(ctx, ownerID.String(), []string{text}, source); err != nil {
			s.logger.WarnContext(ctx, "indexing failed, document will not ground future answers",
				"owner_id", ownerID,
				"source", source,
				"error", err)
		}
	}

	topics := make([]*domain.Topic, 0, len(extracted))
	for _, tc := range extracted {
		topic, err := domain.NewTopic(ownerID, tc.Topic, tc.Content)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
		}
		topics = append(topics, topic)
	}

	s.logger.InfoContext(ctx, "document processed",
		"owner_id", ownerID,
		"source", filepath.Base(path),
		"topics", len(topics))
	return topics, nil
}

// enhanceTopics asks the model for improved topic summaries. Any failure
// returns the topics unchanged; enhancement is best effort.
func (s *Service) enhanceTopics(ctx context.Context, topics []TopicContent, fullText string) []TopicContent {
	if s.provider == nil || len(topics) == 0 {
		return topics
	}

	var sb strings.Builder
	for i, tc := range topics {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "Topic: %s\nContent: %s", tc.Topic, tc.Content)
	}
	summary := truncate(sb.String(), enhanceTopicsLimit)

	userPrompt := fmt.Sprintf(
		"Here are the extracted topics:\n---\n%s\n---\n\nFull document text for context:\n---\n%s\n---",
		summary, truncate(fullText, enhanceFullTextLimit))

	reply, err := s.provider.Complete(ctx, llm.Request{
		System:    enhanceSystemPrompt,
		User:      userPrompt,
		MaxTokens: 2000,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "topic enhancement failed, keeping extracted summaries", "error", err)
		return topics
	}

	var enhanced []TopicContent
	if err := json.Unmarshal([]byte(llm.ExtractJSON(reply)), &enhanced); err != nil {
		s.logger.WarnContext(ctx, "topic enhancement reply malformed, keeping extracted summaries", "error", err)
		return topics
	}
	for _, tc := range enhanced {
		if tc.Topic == "" || tc.Content == "" {
			s.logger.WarnContext(ctx, "topic enhancement reply incomplete, keeping extracted summaries")
			return topics
		}
	}
	if len(enhanced) == 0 {
		return topics
	}
	return enhanced
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
