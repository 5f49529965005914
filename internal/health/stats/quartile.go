package stats

import (
	"time"
)

const day = 24 * time.Hour

// Which selects one of the three quartiles.
type Which int

const (
	Q1 Which = iota + 1
	Q2
	Q3
)

// Quartile returns the requested quartile of an ascending sorted sequence of
// durations. The lower and upper halves exclude the median when the length is odd.
// All results are truncated to whole days, and an empty sequence yields zero.
func Quartile(sorted []time.Duration, q Which) time.Duration {
	if len(sorted) == 0 {
		return 0
	}

	idx := len(sorted) / 2
	even := len(sorted)%2 == 0

	switch q {
	case Q1:
		return Quartile(sorted[:idx], Q2)
	case Q2:
		if even {
			return ((sorted[idx-1] + sorted[idx]) / 2).Truncate(day)
		}
		return sorted[idx].Truncate(day)
	case Q3:
		if even {
			return Quartile(sorted[idx:], Q2)
		}
		return Quartile(sorted[idx+1:], Q2)
	default:
		return 0
	}
}

// Median is a shorthand for the second quartile.
func Median(sorted []time.Duration) time.Duration {
	return Quartile(sorted, Q2)
}

// HalfSpread returns half of the interquartile range, truncated to whole days.
func HalfSpread(sorted []time.Duration) time.Duration {
	return ((Quartile(sorted, Q3) - Quartile(sorted, Q1)) / 2).Truncate(day)
}

// Days converts a whole number of days into a duration.
func Days(n int) time.Duration {
	return time.Duration(n) * day
}
