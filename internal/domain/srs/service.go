package srs

import (
	"errors"
	"time"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/domain"
)

// Common errors
var (
	// ErrNilFlashcard is returned when a nil flashcard is passed to the scheduler.
	ErrNilFlashcard = errors.New("flashcard cannot be nil")

	// ErrInvalidQuality is returned when a review quality grade is outside [0,5].
	// The call is rejected before any scheduling state is touched.
	ErrInvalidQuality = errors.New("review quality must be between 0 and 5")
)

// Service defines the interface for spaced-repetition scheduling operations.
type Service interface {
	// Reviewed computes the flashcard's next scheduling state given a recall
	// quality grade in [0,5]. The input card is never mutated; a new card
	// value with updated Repetition, EasinessFactor, IntervalDays and
	// NextReviewAt is returned.
	//
	// Quality below 3 means the item was forgotten: the repetition count
	// resets to zero and the interval restarts at one day. The easiness
	// factor is only adjusted on successful recalls.
	Reviewed(card *domain.Flashcard, quality int, now time.Time) (*domain.Flashcard, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new SRS service with the classic SM-2 parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new SRS service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// Reviewed implements the Service interface.
func (s *defaultService) Reviewed(
	card *domain.Flashcard,
	quality int,
	now time.Time,
) (*domain.Flashcard, error) {
	if card == nil {
		return nil, ErrNilFlashcard
	}

	if quality < MinQuality || quality > MaxQuality {
		return nil, ErrInvalidQuality
	}

	// Copy the card; scheduling updates follow the immutable update pattern.
	updated := *card

	if quality < RecallThreshold {
		// Forgotten: restart the learning curve.
		updated.Repetition = 0
		updated.IntervalDays = s.params.LapseInterval
	} else {
		updated.IntervalDays = calculateNewInterval(
			card.Repetition,
			card.IntervalDays,
			card.EasinessFactor,
			s.params,
		)
		updated.Repetition = card.Repetition + 1
		updated.EasinessFactor = calculateNewEaseFactor(card.EasinessFactor, quality, s.params)
	}

	// The next review date is recomputed on both branches, anchored to the
	// calendar day of the review.
	updated.NextReviewAt = startOfDay(now).AddDate(0, 0, updated.IntervalDays)
	updated.UpdatedAt = now.UTC()

	return &updated, nil
}

// startOfDay truncates a timestamp to midnight UTC of the same calendar day.
func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
