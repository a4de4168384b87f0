// Package srs implements the SM-2 spaced-repetition scheduling algorithm
// that drives long-term flashcard review.
package srs

// Quality grade bounds for a review. A grade below RecallThreshold means the
// item was forgotten and its learning curve restarts.
const (
	MinQuality = 0
	MaxQuality = 5

	// RecallThreshold is the lowest quality grade that still counts as a
	// successful recall.
	RecallThreshold = 3
)

// Params defines the configurable parameters of the SM-2 algorithm.
//
// The default values encode the calibrated forgetting curve of the classic
// algorithm and should not be changed casually: the easiness update
// coefficients (0.1, 0.08, 0.02), the 1.3 floor and the day-6 second interval
// are load-bearing.
type Params struct {
	// MinEaseFactor is the floor below which an item's easiness factor
	// never drops.
	MinEaseFactor float64

	// FirstInterval is the interval in days after the first successful
	// recall of an item.
	FirstInterval int

	// SecondInterval is the interval in days after the second successful
	// recall of an item.
	SecondInterval int

	// LapseInterval is the interval in days applied when an item is
	// forgotten (quality below RecallThreshold).
	LapseInterval int
}

// NewDefaultParams creates a new Params instance with the classic SM-2 values.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor:  1.3,
		FirstInterval:  1,
		SecondInterval: 6,
		LapseInterval:  1,
	}
}
