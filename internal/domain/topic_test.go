package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewTopic(t *testing.T) {
	t.Parallel() // Enable parallel execution
	ownerID := uuid.New()

	topic, err := NewTopic(ownerID, "Photosynthesis", "How plants convert light into energy.")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if topic.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if topic.OwnerID != ownerID {
		t.Errorf("Expected owner ID %s, got %s", ownerID, topic.OwnerID)
	}

	if topic.Status != TopicStatusPending {
		t.Errorf("Expected status %s, got %s", TopicStatusPending, topic.Status)
	}

	// Test invalid ownerID
	_, err = NewTopic(uuid.Nil, "name", "summary")
	if !errors.Is(err, ErrTopicOwnerIDEmpty) {
		t.Errorf("Expected error %v, got %v", ErrTopicOwnerIDEmpty, err)
	}

	// Test empty name
	_, err = NewTopic(ownerID, "", "summary")
	if !errors.Is(err, ErrTopicNameEmpty) {
		t.Errorf("Expected error %v, got %v", ErrTopicNameEmpty, err)
	}
}

func TestTopicStatusIsValid(t *testing.T) {
	t.Parallel()

	valid := []TopicStatus{TopicStatusPending, TopicStatusInProgress, TopicStatusCompleted}
	for _, status := range valid {
		if !status.IsValid() {
			t.Errorf("Expected status %s to be valid", status)
		}
	}

	if TopicStatus("archived").IsValid() {
		t.Error("Expected unrecognized status to be invalid")
	}
}

func TestQuizValidate(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	questions := []QuizQuestion{
		{
			ID:            uuid.New(),
			Question:      "Which keyword declares a variable in Go?",
			Options:       []string{"var", "let", "def", "dim"},
			CorrectAnswer: "var",
			Explanation:   "Go uses var (or short declarations) for variables.",
		},
	}

	quiz, err := NewQuiz(ownerID, nil, "Go Basics", QuizDifficultyEasy, questions)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(quiz.Questions) != 1 {
		t.Errorf("Expected 1 question, got %d", len(quiz.Questions))
	}

	// Invalid difficulty
	_, err = NewQuiz(ownerID, nil, "Go Basics", QuizDifficulty("impossible"), questions)
	if !errors.Is(err, ErrInvalidDifficulty) {
		t.Errorf("Expected error %v, got %v", ErrInvalidDifficulty, err)
	}

	// Wrong option count
	bad := []QuizQuestion{{Question: "q", Options: []string{"a", "b"}, CorrectAnswer: "a"}}
	_, err = NewQuiz(ownerID, nil, "Go Basics", QuizDifficultyEasy, bad)
	if !errors.Is(err, ErrQuizOptionCount) {
		t.Errorf("Expected error %v, got %v", ErrQuizOptionCount, err)
	}
}
