package training

import (
	"time"

	"github.com/2beens/healthtracker/internal/health/series"
)

const (
	LoadRatioLow  float32 = 0.8
	LoadRatioHigh float32 = 1.5

	shortTermLoadWindow = 7
	longTermLoadWindow  = 28
)

// Stats holds the short-term and long-term training load, one value per day.
type Stats struct {
	ShortTermLoad []series.Point `json:"shortTermLoad"`
	LongTermLoad  []series.Point `json:"longTermLoad"`
}

func NewStats(sessions []Session) Stats {
	return StatsAt(sessions, series.Today())
}

func StatsAt(sessions []Session, today time.Time) Stats {
	shortTerm := WeightedSumOfLoad(sessions, shortTermLoadWindow, today)
	return Stats{
		ShortTermLoad: shortTerm,
		LongTermLoad:  AverageWeightedSumOfLoad(shortTerm, longTermLoadWindow),
	}
}

// LoadRatio is the ratio of the latest short-term and long-term load.
// There is no ratio as long as the long-term load is zero.
func (s Stats) LoadRatio() (float32, bool) {
	var longTerm float32
	if n := len(s.LongTermLoad); n > 0 {
		longTerm = s.LongTermLoad[n-1].Value
	}
	if longTerm <= 0 {
		return 0, false
	}

	var shortTerm float32
	if n := len(s.ShortTermLoad); n > 0 {
		shortTerm = s.ShortTermLoad[n-1].Value
	}
	return shortTerm / longTerm, true
}

func (s *Stats) Clear() {
	s.ShortTermLoad = s.ShortTermLoad[:0]
	s.LongTermLoad = s.LongTermLoad[:0]
}

// WeightedSumOfLoad computes the daily load from the earliest session up to
// today, where the load of each of the last window days is weighted
// linearly decreasing with its age.
func WeightedSumOfLoad(sessions []Session, window int, today time.Time) []series.Point {
	window = max(window, 1)
	today = series.Day(today)
	first, last := today, today
	if len(sessions) > 0 {
		first = series.Day(sessions[0].Date)
		for _, s := range sessions[1:] {
			if d := series.Day(s.Date); d.Before(first) {
				first = d
			}
		}
		for _, s := range sessions {
			if d := series.Day(s.Date); d.After(last) {
				last = d
			}
		}
	}

	loadPerDay := make(map[time.Time]float32, len(sessions))
	for _, s := range sessions {
		loadPerDay[series.Day(s.Date)] += float32(s.Load())
	}

	weights := make([]float32, window)
	for i := range weights {
		weights[i] = 1 - 1/float32(window)*float32(i)
	}
	buffer := make([]float32, window)

	result := make([]series.Point, 0, series.DaysBetween(first, last)+1)
	for day := first; !day.After(last); day = series.AddDays(day, 1) {
		copy(buffer[1:], buffer[:window-1])
		buffer[0] = loadPerDay[day]

		var sum float32
		for i, load := range buffer {
			sum += load * weights[i]
		}
		result = append(result, series.Point{Date: day, Value: sum})
	}
	return result
}

// AverageWeightedSumOfLoad averages each run of window consecutive values,
// dating the average at the end of the run.
func AverageWeightedSumOfLoad(weightedSumOfLoad []series.Point, window int) []series.Point {
	result := make([]series.Point, 0)
	if window < 1 {
		return result
	}
	for end := window; end <= len(weightedSumOfLoad); end++ {
		var sum float32
		for _, p := range weightedSumOfLoad[end-window : end] {
			sum += p.Value
		}
		result = append(result, series.Point{
			Date:  weightedSumOfLoad[end-1].Date,
			Value: sum / float32(window),
		})
	}
	return result
}
