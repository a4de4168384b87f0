package srs

import "math"

// calculateNewInterval determines the next review interval in days for a
// successfully recalled item.
//
// SM-2 hardcodes the first two intervals (1 day, then 6 days); from the third
// recall onwards the interval grows multiplicatively by the item's easiness
// factor, rounded to the nearest whole day.
//
// Parameters:
//   - repetition: number of successful recalls before this review
//   - intervalDays: the item's current interval in days
//   - easeFactor: the item's current easiness factor
//   - params: configuration parameters for the algorithm
//
// Returns the new interval in days.
func calculateNewInterval(repetition, intervalDays int, easeFactor float64, params *Params) int {
	switch repetition {
	case 0:
		return params.FirstInterval
	case 1:
		return params.SecondInterval
	default:
		return int(math.Round(float64(intervalDays) * easeFactor))
	}
}

// calculateNewEaseFactor applies the SM-2 easiness update for a successful
// recall with the given quality grade.
//
// The update is EF' = EF + (0.1 - (5-q)*(0.08 + (5-q)*0.02)): a perfect
// recall (q=5) raises easiness by 0.1, a barely-correct one (q=3) lowers it
// by 0.14. The result is clamped to params.MinEaseFactor.
func calculateNewEaseFactor(currentEF float64, quality int, params *Params) float64 {
	misses := float64(MaxQuality - quality)
	newEF := currentEF + (0.1 - misses*(0.08+misses*0.02))

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}

	return newEF
}
