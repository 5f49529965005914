package routine

import (
	"github.com/2beens/healthtracker/internal/health/exercise"

	"github.com/google/uuid"
)

type Summary struct {
	DurationSeconds   int64                                  `json:"durationSeconds"`
	NumSets           uint32                                 `json:"numSets"`
	Exercises         []uuid.UUID                            `json:"exercises"`
	StimulusPerMuscle map[exercise.MuscleID]exercise.Stimulus `json:"stimulusPerMuscle"`
}

func (r Routine) Summary(exercises map[uuid.UUID]exercise.Exercise) Summary {
	return Summary{
		DurationSeconds:   int64(r.Duration().Seconds()),
		NumSets:           r.NumSets(),
		Exercises:         r.Exercises(),
		StimulusPerMuscle: r.StimulusPerMuscle(exercises),
	}
}
