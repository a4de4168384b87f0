package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Flashcard-specific validation errors
var (
	// ErrFlashcardIDEmpty is returned when a flashcard ID is empty or nil.
	ErrFlashcardIDEmpty = errors.New("flashcard ID cannot be empty")

	// ErrFlashcardOwnerIDEmpty is returned when a flashcard's owner ID is empty or nil.
	ErrFlashcardOwnerIDEmpty = errors.New("flashcard owner ID cannot be empty")

	// ErrFlashcardFrontEmpty is returned when a flashcard's front side is empty.
	ErrFlashcardFrontEmpty = errors.New("flashcard front cannot be empty")

	// ErrFlashcardBackEmpty is returned when a flashcard's back side is empty.
	ErrFlashcardBackEmpty = errors.New("flashcard back cannot be empty")

	// ErrFlashcardRepetitionNegative is returned when the repetition count is negative.
	ErrFlashcardRepetitionNegative = errors.New("flashcard repetition count cannot be negative")

	// ErrFlashcardEasinessTooLow is returned when the easiness factor is below
	// the SM-2 floor of 1.3.
	ErrFlashcardEasinessTooLow = errors.New("flashcard easiness factor cannot be below 1.3")

	// ErrFlashcardIntervalTooShort is returned when the review interval is
	// shorter than one day.
	ErrFlashcardIntervalTooShort = errors.New("flashcard interval must be at least one day")
)

// SM-2 scheduling defaults for a freshly created flashcard.
const (
	// DefaultEasinessFactor is the initial SM-2 easiness factor.
	DefaultEasinessFactor = 2.5

	// MinEasinessFactor is the SM-2 floor below which the easiness factor
	// never drops.
	MinEasinessFactor = 1.3
)

// Flashcard represents a single memorized item with its spaced-repetition
// scheduling state. The scheduling fields (Repetition, EasinessFactor,
// IntervalDays, NextReviewAt) are mutated only by the srs package on each
// review event; everything else is immutable after creation.
type Flashcard struct {
	ID             uuid.UUID  `json:"id"`
	OwnerID        uuid.UUID  `json:"owner_id"`
	TopicID        *uuid.UUID `json:"topic_id,omitempty"`
	Front          string     `json:"front"`
	Back           string     `json:"back"`
	Repetition     int        `json:"repetition"`
	EasinessFactor float64    `json:"easiness_factor"`
	IntervalDays   int        `json:"interval_days"`
	NextReviewAt   time.Time  `json:"next_review_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewFlashcard creates a new Flashcard owned by the given user, optionally
// attached to a topic. The scheduling state starts at the SM-2 defaults:
// zero repetitions, easiness 2.5, one-day interval, due immediately.
// Returns an error if validation fails.
func NewFlashcard(ownerID uuid.UUID, topicID *uuid.UUID, front, back string) (*Flashcard, error) {
	now := time.Now().UTC()
	card := &Flashcard{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		TopicID:        topicID,
		Front:          front,
		Back:           back,
		Repetition:     0,
		EasinessFactor: DefaultEasinessFactor,
		IntervalDays:   1,
		NextReviewAt:   now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Flashcard has valid data.
// Returns an error if any field fails validation.
func (f *Flashcard) Validate() error {
	if f.ID == uuid.Nil {
		return ErrFlashcardIDEmpty
	}

	if f.OwnerID == uuid.Nil {
		return ErrFlashcardOwnerIDEmpty
	}

	if f.Front == "" {
		return ErrFlashcardFrontEmpty
	}

	if f.Back == "" {
		return ErrFlashcardBackEmpty
	}

	if f.Repetition < 0 {
		return ErrFlashcardRepetitionNegative
	}

	if f.EasinessFactor < MinEasinessFactor {
		return ErrFlashcardEasinessTooLow
	}

	if f.IntervalDays < 1 {
		return ErrFlashcardIntervalTooShort
	}

	return nil
}
