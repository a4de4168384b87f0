package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/llm"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/retrieval"
)

// TeacherAgent generates micro-lessons grounded in the owner's documents.
type TeacherAgent struct {
	provider  llm.Provider
	retriever retrieval.Retriever
	logger    *slog.Logger
}

// NewTeacherAgent creates a new TeacherAgent.
func NewTeacherAgent(provider llm.Provider, retriever retrieval.Retriever, logger *slog.Logger) *TeacherAgent {
	return &TeacherAgent{
		provider:  provider,
		retriever: retriever,
		logger:    logger.With("agent", "teacher"),
	}
}

// LessonParams are the parameters for GenerateLesson.
type LessonParams struct {
	Topic  string `json:"topic"`
	UserID string `json:"user_id"`
}

// GenerateLesson creates a micro-lesson on the topic, grounded in the
// owner's retrieved document chunks when retrieval is available.
func (a *TeacherAgent) GenerateLesson(ctx context.Context, params LessonParams) (*Lesson, error) {
	if params.Topic == "" {
		return nil, fmt.Errorf("%w: topic is required", ErrInvalidParams)
	}

	docs := groundingContext(ctx, a.retriever, a.logger, params.UserID,
		fmt.Sprintf("Content related to %s", params.Topic))

	userPrompt := fmt.Sprintf(
		"Topic: %s\nContext from user's documents:\n---\n%s\n---",
		params.Topic, docs)

	var lesson Lesson
	if err := completeJSON(ctx, a.provider, lessonSystemPrompt, userPrompt, 1500, &lesson); err != nil {
		return nil, err
	}
	if lesson.Title == "" || lesson.Explanation == "" {
		return nil, fmt.Errorf("%w: lesson missing title or explanation", ErrMalformedOutput)
	}

	a.logger.DebugContext(ctx, "lesson generated",
		"topic", params.Topic,
		"key_concepts", len(lesson.KeyConcepts))
	return &lesson, nil
}

func (a *TeacherAgent) generateLessonAction(ctx context.Context, params map[string]any) (any, error) {
	var p LessonParams
	if err := bindParams(params, &p); err != nil {
		return nil, err
	}
	return a.GenerateLesson(ctx, p)
}
