package cycle

import (
	"sort"
	"time"

	"github.com/2beens/healthtracker/internal/health/series"
	"github.com/2beens/healthtracker/internal/health/stats"
)

const (
	// maxPeriodGap is the longest break between period days that still
	// belongs to the same period.
	maxPeriodGap = 3 * 24 * time.Hour
	// recentCyclesDays limits the cycles used for estimating the current one.
	recentCyclesDays = 182
)

type Cycle struct {
	Begin  time.Time     `json:"begin"`
	Length time.Duration `json:"length"`
}

type CurrentCycle struct {
	Begin             time.Time     `json:"begin"`
	TimeLeft          time.Duration `json:"timeLeft"`
	TimeLeftVariation time.Duration `json:"timeLeftVariation"`
}

type Stats struct {
	LengthMedian    time.Duration `json:"lengthMedian"`
	LengthVariation time.Duration `json:"lengthVariation"`
}

// Cycles groups period days into cycles. The records don't need to be
// sorted, but they are walked in their given order after the earliest date.
// The last cycle is still open and therefore not part of the result.
func Cycles(periods []Period) []Cycle {
	if len(periods) == 0 {
		return []Cycle{}
	}

	begin := series.Day(periods[0].Date)
	for _, p := range periods[1:] {
		if d := series.Day(p.Date); d.Before(begin) {
			begin = d
		}
	}

	cycles := make([]Cycle, 0)
	last := begin
	for _, p := range periods[1:] {
		date := series.Day(p.Date)
		if date.Sub(last) > maxPeriodGap {
			cycles = append(cycles, Cycle{
				Begin:  begin,
				Length: date.Sub(begin),
			})
			begin = date
		}
		last = date
	}

	return cycles
}

// CurrentCycleAt estimates the still open cycle following the given ones,
// based on the cycles of the last half year before today. Nil is returned
// if there are no such cycles.
func CurrentCycleAt(cycles []Cycle, today time.Time) *CurrentCycle {
	today = series.Day(today)
	from := series.AddDays(today, -recentCyclesDays)

	recent := make([]Cycle, 0, len(cycles))
	for _, c := range cycles {
		if !c.Begin.Before(from) && !c.Begin.After(today) {
			recent = append(recent, c)
		}
	}
	if len(recent) == 0 {
		return nil
	}

	s := CycleStats(recent)
	lastCycle := recent[len(recent)-1]
	begin := lastCycle.Begin.Add(lastCycle.Length)

	return &CurrentCycle{
		Begin:             begin,
		TimeLeft:          s.LengthMedian - (today.Sub(begin) + stats.Days(1)),
		TimeLeftVariation: s.LengthVariation,
	}
}

// CurrentCycleNow is CurrentCycleAt relative to the current day.
func CurrentCycleNow(cycles []Cycle) *CurrentCycle {
	return CurrentCycleAt(cycles, series.Today())
}

func CycleStats(cycles []Cycle) Stats {
	lengths := make([]time.Duration, 0, len(cycles))
	for _, c := range cycles {
		lengths = append(lengths, c.Length)
	}
	sort.Slice(lengths, func(i, j int) bool { return lengths[i] < lengths[j] })

	return Stats{
		LengthMedian:    stats.Quartile(lengths, stats.Q2),
		LengthVariation: stats.HalfSpread(lengths),
	}
}

// InInterval returns the cycles beginning within the interval.
func InInterval(cycles []Cycle, interval series.Interval) []Cycle {
	result := make([]Cycle, 0, len(cycles))
	for _, c := range cycles {
		if interval.Contains(c.Begin) {
			result = append(result, c)
		}
	}
	return result
}
