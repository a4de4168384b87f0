package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/agent"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/store"
)

// QuestionGenerator defines the interface for producing quiz questions.
// *agent.QuizGenAgent satisfies it.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, params agent.QuestionsParams) ([]agent.Question, error)
}

// QuizService generates quizzes with the quiz generation agent and persists
// them for later review.
type QuizService interface {
	// GenerateQuiz produces a persisted quiz on the topic for the owner. The
	// questions are grounded in the owner's uploaded material when available.
	GenerateQuiz(
		ctx context.Context,
		ownerID uuid.UUID,
		topicID *uuid.UUID,
		topic string,
		difficulty domain.QuizDifficulty,
		count int,
	) (*domain.Quiz, error)

	// GetQuiz retrieves a quiz by ID, enforcing ownership.
	GetQuiz(ctx context.Context, ownerID, quizID uuid.UUID) (*domain.Quiz, error)

	// ListQuizzes returns all quizzes belonging to the owner, newest first.
	ListQuizzes(ctx context.Context, ownerID uuid.UUID) ([]*domain.Quiz, error)
}

// quizServiceImpl implements the QuizService interface
type quizServiceImpl struct {
	generator QuestionGenerator
	quizzes   store.QuizStore
	logger    *slog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	generator QuestionGenerator,
	quizzes store.QuizStore,
	logger *slog.Logger,
) QuizService {
	if generator == nil {
		panic("question generator cannot be nil")
	}
	if quizzes == nil {
		panic("quiz store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &quizServiceImpl{
		generator: generator,
		quizzes:   quizzes,
		logger:    logger.With(slog.String("component", "quiz_service")),
	}
}

// GenerateQuiz implements QuizService.GenerateQuiz
func (s *quizServiceImpl) GenerateQuiz(
	ctx context.Context,
	ownerID uuid.UUID,
	topicID *uuid.UUID,
	topic string,
	difficulty domain.QuizDifficulty,
	count int,
) (*domain.Quiz, error) {
	if difficulty == "" {
		difficulty = domain.QuizDifficultyMedium
	}

	questions, err := s.generator.GenerateQuestions(ctx, agent.QuestionsParams{
		Topic:      topic,
		Difficulty: string(difficulty),
		Count:      count,
		UserID:     ownerID.String(),
	})
	if err != nil {
		return nil, NewServiceError("generate_quiz", "question generation failed", err)
	}

	quizQuestions := make([]domain.QuizQuestion, 0, len(questions))
	for _, q := range questions {
		quizQuestions = append(quizQuestions, domain.QuizQuestion{
			ID:            uuid.New(),
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	quiz, err := domain.NewQuiz(ownerID, topicID, topic, difficulty, quizQuestions)
	if err != nil {
		return nil, NewServiceError("generate_quiz", "generated quiz failed validation", err)
	}

	if err := s.quizzes.Create(ctx, quiz); err != nil {
		return nil, NewServiceError("generate_quiz", "failed to save quiz", err)
	}

	s.logger.InfoContext(ctx, "quiz generated",
		"quiz_id", quiz.ID,
		"topic", topic,
		"questions", len(quiz.Questions))
	return quiz, nil
}

// GetQuiz implements QuizService.GetQuiz
func (s *quizServiceImpl) GetQuiz(ctx context.Context, ownerID, quizID uuid.UUID) (*domain.Quiz, error) {
	quiz, err := s.quizzes.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz.OwnerID != ownerID {
		return nil, ErrNotOwned
	}
	return quiz, nil
}

// ListQuizzes implements QuizService.ListQuizzes
func (s *quizServiceImpl) ListQuizzes(ctx context.Context, ownerID uuid.UUID) ([]*domain.Quiz, error) {
	return s.quizzes.ListByOwner(ctx, ownerID)
}
