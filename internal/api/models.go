package api

import (
	"time"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
)

// FlashcardResponse represents the response data for a flashcard
type FlashcardResponse struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"owner_id"`
	TopicID        *string   `json:"topic_id,omitempty"`
	Front          string    `json:"front"`
	Back           string    `json:"back"`
	Repetition     int       `json:"repetition"`
	EasinessFactor float64   `json:"easiness_factor"`
	IntervalDays   int       `json:"interval_days"`
	NextReviewAt   time.Time `json:"next_review_at"`
}

// flashcardToResponse converts a domain.Flashcard to a FlashcardResponse
func flashcardToResponse(card *domain.Flashcard) FlashcardResponse {
	resp := FlashcardResponse{
		ID:             card.ID.String(),
		OwnerID:        card.OwnerID.String(),
		Front:          card.Front,
		Back:           card.Back,
		Repetition:     card.Repetition,
		EasinessFactor: card.EasinessFactor,
		IntervalDays:   card.IntervalDays,
		NextReviewAt:   card.NextReviewAt,
	}
	if card.TopicID != nil {
		topicID := card.TopicID.String()
		resp.TopicID = &topicID
	}
	return resp
}

// QuizQuestionResponse represents one question within a quiz response
type QuizQuestionResponse struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// QuizResponse represents the response data for a quiz
type QuizResponse struct {
	ID         string                 `json:"id"`
	OwnerID    string                 `json:"owner_id"`
	TopicID    *string                `json:"topic_id,omitempty"`
	Title      string                 `json:"title"`
	Difficulty string                 `json:"difficulty"`
	Questions  []QuizQuestionResponse `json:"questions"`
	CreatedAt  time.Time              `json:"created_at"`
}

// quizToResponse converts a domain.Quiz to a QuizResponse
func quizToResponse(quiz *domain.Quiz) QuizResponse {
	questions := make([]QuizQuestionResponse, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, QuizQuestionResponse{
			ID:            q.ID.String(),
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	resp := QuizResponse{
		ID:         quiz.ID.String(),
		OwnerID:    quiz.OwnerID.String(),
		Title:      quiz.Title,
		Difficulty: string(quiz.Difficulty),
		Questions:  questions,
		CreatedAt:  quiz.CreatedAt,
	}
	if quiz.TopicID != nil {
		topicID := quiz.TopicID.String()
		resp.TopicID = &topicID
	}
	return resp
}
