package series

import (
	"fmt"
	"strings"
	"time"
)

// Interval is an inclusive range of calendar days.
// First <= Last is expected but not enforced.
type Interval struct {
	First time.Time `json:"first"`
	Last  time.Time `json:"last"`
}

func (i Interval) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(i.First) && !d.After(i.Last)
}

// Days returns the number of days covered by the interval, 0 if it is empty.
func (i Interval) Days() int {
	if i.Last.Before(i.First) {
		return 0
	}
	return DaysBetween(i.First, i.Last) + 1
}

// DefaultInterval is the initially selected look-back window, in days.
type DefaultInterval int

const (
	All         DefaultInterval = 0
	OneYear     DefaultInterval = 365
	SixMonths   DefaultInterval = 182
	ThreeMonths DefaultInterval = 91
	OneMonth    DefaultInterval = 30
)

func ParseDefaultInterval(s string) (DefaultInterval, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ALL", "":
		return All, nil
	case "1Y":
		return OneYear, nil
	case "6M":
		return SixMonths, nil
	case "3M":
		return ThreeMonths, nil
	case "1M":
		return OneMonth, nil
	default:
		return All, fmt.Errorf("unknown interval: %s", s)
	}
}

// InitInterval picks the interval to show for the given record dates.
// The interval always ends today. It starts at the earliest date, unless the
// latest record is recent enough for the default look-back to apply.
func InitInterval(dates []time.Time, defaultInterval DefaultInterval, today time.Time) Interval {
	today = Day(today)
	first, last := today, today
	for i, d := range dates {
		d = Day(d)
		if i == 0 || d.Before(first) {
			first = d
		}
		if i == 0 || d.After(last) {
			last = d
		}
	}

	if defaultInterval != All {
		lookBack := AddDays(today, -int(defaultInterval))
		if !last.Before(lookBack) {
			first = lookBack
		}
	}

	return Interval{
		First: first,
		Last:  today,
	}
}
