package training

import (
	"github.com/2beens/healthtracker/internal/health/exercise"
	"github.com/2beens/healthtracker/internal/health/series"

	"github.com/google/uuid"
)

const chartRadius = 3

// SetVolumeTotal is the weekly set volume, centered on each day of the interval.
func SetVolumeTotal(sessions []Session, interval series.Interval) []series.Point {
	data := make([]series.Point, 0, len(sessions))
	for _, s := range sessions {
		data = append(data, series.Point{Date: s.Date, Value: float32(s.SetVolume())})
	}
	return series.CenteredMovingTotal(data, interval, chartRadius)
}

// RPEAverage is the weekly average of the session RPE.
func RPEAverage(sessions []Session, interval series.Interval) [][]series.Point {
	data := make([]series.Point, 0, len(sessions))
	for _, s := range sessions {
		if rpe, ok := s.AvgRPE(); ok {
			data = append(data, series.Point{Date: s.Date, Value: rpe.Float()})
		}
	}
	return series.CenteredMovingAverage(data, interval, chartRadius)
}

// MuscleSetVolume is the weekly set volume per muscle, where a set counts
// according to the stimulus the exercise has on the muscle.
func MuscleSetVolume(
	sessions []Session,
	exercises map[uuid.UUID]exercise.Exercise,
	interval series.Interval,
) map[exercise.MuscleID][]series.Point {
	data := make(map[exercise.MuscleID][]series.Point, len(exercise.Muscles))
	for _, m := range exercise.Muscles {
		data[m] = []series.Point{}
	}
	for _, s := range sessions {
		for m, stimulus := range s.StimulusPerMuscle(exercises) {
			if !m.IsKnown() {
				continue
			}
			data[m] = append(data[m], series.Point{
				Date:  s.Date,
				Value: float32(stimulus) / float32(exercise.StimulusPrimary),
			})
		}
	}

	result := make(map[exercise.MuscleID][]series.Point, len(data))
	for m, points := range data {
		result[m] = series.CenteredMovingTotal(points, interval, chartRadius)
	}
	return result
}

// Charts bundles the training charts of an interval.
type Charts struct {
	Interval        series.Interval                      `json:"interval"`
	Load            Stats                                `json:"load"`
	SetVolume       []series.Point                       `json:"setVolume"`
	RPE             [][]series.Point                     `json:"rpe"`
	MuscleSetVolume map[exercise.MuscleID][]series.Point `json:"muscleSetVolume"`
}

func NewCharts(
	sessions []Session,
	exercises map[uuid.UUID]exercise.Exercise,
	interval series.Interval,
) Charts {
	stats := StatsAt(sessions, interval.Last)
	stats.ShortTermLoad = series.Filter(stats.ShortTermLoad, interval)
	stats.LongTermLoad = series.Filter(stats.LongTermLoad, interval)
	return Charts{
		Interval:        interval,
		Load:            stats,
		SetVolume:       SetVolumeTotal(sessions, interval),
		RPE:             RPEAverage(sessions, interval),
		MuscleSetVolume: MuscleSetVolume(sessions, exercises, interval),
	}
}
