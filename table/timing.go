package table

import (
	"math/rand"
	"time"
)

// DurationFunc returns how long philosopher id spends in a phase.
type DurationFunc func(id int) time.Duration

// Fixed always returns d.
func Fixed(d time.Duration) DurationFunc {
	return func(int) time.Duration { return d }
}

// Uniform returns durations drawn uniformly from [min, max).
// If max is not above min it always returns min.
func Uniform(min, max time.Duration) DurationFunc {
	if max <= min {
		return Fixed(min)
	}
	span := int64(max - min)
	return func(int) time.Duration {
		return min + time.Duration(rand.Int63n(span))
	}
}
