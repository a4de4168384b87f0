package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/agent"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/store"
)

// fakeQuestionGenerator implements QuestionGenerator
type fakeQuestionGenerator struct {
	questions []agent.Question
	err       error
	gotParams agent.QuestionsParams
}

func (f *fakeQuestionGenerator) GenerateQuestions(
	ctx context.Context,
	params agent.QuestionsParams,
) ([]agent.Question, error) {
	f.gotParams = params
	return f.questions, f.err
}

// fakeQuizStore implements store.QuizStore backed by a map
type fakeQuizStore struct {
	quizzes   map[uuid.UUID]*domain.Quiz
	createErr error
}

func newFakeQuizStore() *fakeQuizStore {
	return &fakeQuizStore{quizzes: make(map[uuid.UUID]*domain.Quiz)}
}

func (f *fakeQuizStore) Create(ctx context.Context, quiz *domain.Quiz) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.quizzes[quiz.ID] = quiz
	return nil
}

func (f *fakeQuizStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error) {
	quiz, ok := f.quizzes[id]
	if !ok {
		return nil, store.ErrQuizNotFound
	}
	return quiz, nil
}

func (f *fakeQuizStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Quiz, error) {
	var out []*domain.Quiz
	for _, quiz := range f.quizzes {
		if quiz.OwnerID == ownerID {
			out = append(out, quiz)
		}
	}
	return out, nil
}

func (f *fakeQuizStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.quizzes, id)
	return nil
}

func (f *fakeQuizStore) WithTx(tx *sql.Tx) store.QuizStore {
	return f
}

func sampleQuestions() []agent.Question {
	return []agent.Question{
		{
			Question:      "What does SM-2 reset on a failed recall?",
			Options:       []string{"Interval", "Repetition count", "Easiness factor", "Nothing"},
			CorrectAnswer: "Repetition count",
			Explanation:   "Quality below 3 restarts the repetition sequence.",
		},
		{
			Question:      "What is the easiness factor floor?",
			Options:       []string{"1.0", "1.3", "2.0", "2.5"},
			CorrectAnswer: "1.3",
			Explanation:   "The factor never drops below 1.3.",
		},
	}
}

func newQuizFixture(generator *fakeQuestionGenerator, quizzes *fakeQuizStore) QuizService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewQuizService(generator, quizzes, logger)
}

func TestGenerateQuiz(t *testing.T) {
	t.Parallel() // Enable parallel execution

	ownerID := uuid.New()

	t.Run("persists a quiz from generated questions", func(t *testing.T) {
		t.Parallel()

		generator := &fakeQuestionGenerator{questions: sampleQuestions()}
		quizzes := newFakeQuizStore()
		svc := newQuizFixture(generator, quizzes)

		quiz, err := svc.GenerateQuiz(
			context.Background(), ownerID, nil, "Spaced Repetition", domain.QuizDifficultyHard, 2)
		require.NoError(t, err)

		assert.Equal(t, ownerID, quiz.OwnerID)
		assert.Equal(t, "Spaced Repetition", quiz.Title)
		assert.Equal(t, domain.QuizDifficultyHard, quiz.Difficulty)
		require.Len(t, quiz.Questions, 2)
		assert.NotEqual(t, uuid.Nil, quiz.Questions[0].ID)

		// The agent call carries the owner identity for retrieval grounding.
		assert.Equal(t, ownerID.String(), generator.gotParams.UserID)
		assert.Equal(t, "hard", generator.gotParams.Difficulty)

		_, ok := quizzes.quizzes[quiz.ID]
		assert.True(t, ok)
	})

	t.Run("defaults difficulty to medium", func(t *testing.T) {
		t.Parallel()

		generator := &fakeQuestionGenerator{questions: sampleQuestions()}
		svc := newQuizFixture(generator, newFakeQuizStore())

		quiz, err := svc.GenerateQuiz(context.Background(), ownerID, nil, "Entropy", "", 2)
		require.NoError(t, err)
		assert.Equal(t, domain.QuizDifficultyMedium, quiz.Difficulty)
	})

	t.Run("wraps generation failures", func(t *testing.T) {
		t.Parallel()

		generator := &fakeQuestionGenerator{err: errors.New("provider unavailable")}
		svc := newQuizFixture(generator, newFakeQuizStore())

		_, err := svc.GenerateQuiz(context.Background(), ownerID, nil, "Entropy", "", 2)
		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "generate_quiz", svcErr.Operation)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		t.Parallel()

		generator := &fakeQuestionGenerator{questions: sampleQuestions()}
		quizzes := newFakeQuizStore()
		quizzes.createErr = errors.New("insert failed")
		svc := newQuizFixture(generator, quizzes)

		_, err := svc.GenerateQuiz(context.Background(), ownerID, nil, "Entropy", "", 2)
		assert.ErrorContains(t, err, "failed to save quiz")
	})
}

func TestGetQuiz(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	generator := &fakeQuestionGenerator{questions: sampleQuestions()}
	quizzes := newFakeQuizStore()
	svc := newQuizFixture(generator, quizzes)

	quiz, err := svc.GenerateQuiz(context.Background(), ownerID, nil, "Entropy", "", 2)
	require.NoError(t, err)

	t.Run("returns owned quiz", func(t *testing.T) {
		got, err := svc.GetQuiz(context.Background(), ownerID, quiz.ID)
		require.NoError(t, err)
		assert.Equal(t, quiz.ID, got.ID)
	})

	t.Run("rejects another owner's quiz", func(t *testing.T) {
		_, err := svc.GetQuiz(context.Background(), uuid.New(), quiz.ID)
		assert.ErrorIs(t, err, ErrNotOwned)
	})

	t.Run("returns not found for unknown quiz", func(t *testing.T) {
		_, err := svc.GetQuiz(context.Background(), ownerID, uuid.New())
		assert.ErrorIs(t, err, store.ErrQuizNotFound)
	})
}
