package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Quiz-specific validation errors
var (
	// ErrQuizIDEmpty is returned when a quiz ID is empty or nil.
	ErrQuizIDEmpty = errors.New("quiz ID cannot be empty")

	// ErrQuizOwnerIDEmpty is returned when a quiz's owner ID is empty or nil.
	ErrQuizOwnerIDEmpty = errors.New("quiz owner ID cannot be empty")

	// ErrQuizTitleEmpty is returned when a quiz's title is empty.
	ErrQuizTitleEmpty = errors.New("quiz title cannot be empty")

	// ErrQuizQuestionEmpty is returned when a quiz question has no text.
	ErrQuizQuestionEmpty = errors.New("quiz question text cannot be empty")

	// ErrQuizOptionCount is returned when a multiple-choice question does not
	// carry exactly four options.
	ErrQuizOptionCount = errors.New("quiz question must have exactly four options")
)

// QuizDifficulty represents the difficulty level of a quiz.
type QuizDifficulty string

// Valid quiz difficulty values.
const (
	QuizDifficultyEasy   QuizDifficulty = "easy"
	QuizDifficultyMedium QuizDifficulty = "medium"
	QuizDifficultyHard   QuizDifficulty = "hard"
)

// IsValid checks if the difficulty is one of the recognized levels.
func (d QuizDifficulty) IsValid() bool {
	switch d {
	case QuizDifficultyEasy, QuizDifficultyMedium, QuizDifficultyHard:
		return true
	default:
		return false
	}
}

// Quiz represents a generated set of practice questions for a topic.
type Quiz struct {
	ID         uuid.UUID      `json:"id"`
	OwnerID    uuid.UUID      `json:"owner_id"`
	TopicID    *uuid.UUID     `json:"topic_id,omitempty"`
	Title      string         `json:"title"`
	Difficulty QuizDifficulty `json:"difficulty"`
	Questions  []QuizQuestion `json:"questions"`
	CreatedAt  time.Time      `json:"created_at"`
}

// QuizQuestion is a single multiple-choice question within a quiz.
type QuizQuestion struct {
	ID            uuid.UUID `json:"id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correct_answer"`
	Explanation   string    `json:"explanation"`
}

// NewQuiz creates a new Quiz for the given owner with the supplied questions.
// Returns an error if validation fails.
func NewQuiz(
	ownerID uuid.UUID,
	topicID *uuid.UUID,
	title string,
	difficulty QuizDifficulty,
	questions []QuizQuestion,
) (*Quiz, error) {
	quiz := &Quiz{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		TopicID:    topicID,
		Title:      title,
		Difficulty: difficulty,
		Questions:  questions,
		CreatedAt:  time.Now().UTC(),
	}

	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	return quiz, nil
}

// Validate checks if the Quiz and all of its questions have valid data.
// Returns an error if any field fails validation.
func (q *Quiz) Validate() error {
	if q.ID == uuid.Nil {
		return ErrQuizIDEmpty
	}

	if q.OwnerID == uuid.Nil {
		return ErrQuizOwnerIDEmpty
	}

	if q.Title == "" {
		return ErrQuizTitleEmpty
	}

	if !q.Difficulty.IsValid() {
		return ErrInvalidDifficulty
	}

	for _, question := range q.Questions {
		if question.Question == "" {
			return ErrQuizQuestionEmpty
		}
		if len(question.Options) != 4 {
			return ErrQuizOptionCount
		}
	}

	return nil
}
