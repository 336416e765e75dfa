package utils

import (
	"math"
	"time"
)

// Nights returns the number of nights between two calendar dates. The
// difference is taken as an absolute day count and fractional days round
// up, so a positive-length range always charges at least one night.
func Nights(start, end time.Time) int64 {
	hours := end.Sub(start).Hours()
	if hours < 0 {
		hours = -hours
	}
	return int64(math.Ceil(hours / 24))
}

// StayCost computes the total cost of a stay: nights × nightly price.
func StayCost(start, end time.Time, nightlyPriceCents int64) int64 {
	return Nights(start, end) * nightlyPriceCents
}
