package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/llm"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/retrieval"
)

// DefaultQuestionCount is used when a quiz request does not specify how many
// questions to generate.
const DefaultQuestionCount = 5

// QuizGenAgent generates practice questions and full mock exams grounded in
// the owner's documents.
type QuizGenAgent struct {
	provider  llm.Provider
	retriever retrieval.Retriever
	logger    *slog.Logger
}

// NewQuizGenAgent creates a new QuizGenAgent.
func NewQuizGenAgent(provider llm.Provider, retriever retrieval.Retriever, logger *slog.Logger) *QuizGenAgent {
	return &QuizGenAgent{
		provider:  provider,
		retriever: retriever,
		logger:    logger.With("agent", "quizgen"),
	}
}

// QuestionsParams are the parameters for GenerateQuestions.
type QuestionsParams struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
	UserID     string `json:"user_id"`
}

// GenerateQuestions produces multiple-choice practice questions on the
// topic at the requested difficulty. Every question carries exactly four
// options.
func (a *QuizGenAgent) GenerateQuestions(ctx context.Context, params QuestionsParams) ([]Question, error) {
	if params.Topic == "" {
		return nil, fmt.Errorf("%w: topic is required", ErrInvalidParams)
	}
	if params.Difficulty == "" {
		params.Difficulty = "medium"
	}
	if params.Count <= 0 {
		params.Count = DefaultQuestionCount
	}

	docs := groundingContext(ctx, a.retriever, a.logger, params.UserID,
		fmt.Sprintf("Content related to %s for a %s quiz", params.Topic, params.Difficulty))

	userPrompt := fmt.Sprintf(
		"Topic: %s\nDifficulty: %s\nNumber of questions: %d\nContext from user's documents:\n---\n%s\n---",
		params.Topic, params.Difficulty, params.Count, docs)

	var questions []Question
	if err := completeJSON(ctx, a.provider, questionsSystemPrompt, userPrompt, 2000, &questions); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions in reply", ErrMalformedOutput)
	}
	for i, q := range questions {
		if q.Question == "" || q.CorrectAnswer == "" || len(q.Options) != 4 {
			return nil, fmt.Errorf("%w: question %d is incomplete", ErrMalformedOutput, i+1)
		}
	}

	a.logger.DebugContext(ctx, "questions generated",
		"topic", params.Topic,
		"difficulty", params.Difficulty,
		"count", len(questions))
	return questions, nil
}

// MockExamParams are the parameters for GenerateMockExam.
type MockExamParams struct {
	ExamType   string   `json:"exam_type"`
	Duration   int      `json:"duration"`
	TotalMarks int      `json:"total_marks"`
	Topics     []string `json:"topics"`
	UserID     string   `json:"user_id"`
}

// GenerateMockExam assembles a realistic timed exam across the given topics,
// retrieving grounding context per topic.
func (a *QuizGenAgent) GenerateMockExam(ctx context.Context, params MockExamParams) (*MockExam, error) {
	if len(params.Topics) == 0 {
		return nil, fmt.Errorf("%w: topics are required", ErrInvalidParams)
	}

	var contextParts []string
	for _, topic := range params.Topics {
		docs := groundingContext(ctx, a.retriever, a.logger, params.UserID,
			fmt.Sprintf("Content for a mock exam on %s", topic))
		if docs != "" {
			contextParts = append(contextParts, docs)
		}
	}

	userPrompt := fmt.Sprintf(
		"Exam Type: %s\nDuration (minutes): %d\nTotal Marks: %d\nTopics: %s\nContext from user's documents:\n---\n%s\n---",
		params.ExamType, params.Duration, params.TotalMarks,
		strings.Join(params.Topics, ", "), strings.Join(contextParts, "\n\n"))

	var exam MockExam
	if err := completeJSON(ctx, a.provider, mockExamSystemPrompt, userPrompt, 4000, &exam); err != nil {
		return nil, err
	}
	if len(exam.Questions) == 0 {
		return nil, fmt.Errorf("%w: exam has no questions", ErrMalformedOutput)
	}

	a.logger.DebugContext(ctx, "mock exam generated",
		"exam_type", params.ExamType,
		"questions", len(exam.Questions))
	return &exam, nil
}

func (a *QuizGenAgent) generateQuestionsAction(ctx context.Context, params map[string]any) (any, error) {
	var p QuestionsParams
	if err := bindParams(params, &p); err != nil {
		return nil, err
	}
	return a.GenerateQuestions(ctx, p)
}

func (a *QuizGenAgent) generateMockExamAction(ctx context.Context, params map[string]any) (any, error) {
	var p MockExamParams
	if err := bindParams(params, &p); err != nil {
		return nil, err
	}
	return a.GenerateMockExam(ctx, p)
}
