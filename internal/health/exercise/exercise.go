package exercise

import (
	"github.com/2beens/healthtracker/internal/health/name"

	"github.com/google/uuid"
)

type Muscle struct {
	MuscleID MuscleID `json:"muscleId"`
	Stimulus Stimulus `json:"stimulus"`
}

type Exercise struct {
	ID      uuid.UUID `json:"id"`
	UserID  uuid.UUID `json:"userId"`
	Name    name.Name `json:"name"`
	Muscles []Muscle  `json:"muscles"`
}

// MuscleStimulus maps the exercise's muscles to their stimulus.
func (e Exercise) MuscleStimulus() map[MuscleID]Stimulus {
	result := make(map[MuscleID]Stimulus, len(e.Muscles))
	for _, m := range e.Muscles {
		result[m.MuscleID] = m.Stimulus
	}
	return result
}

// Index builds the id lookup used by routine and session evaluation.
func Index(exercises []Exercise) map[uuid.UUID]Exercise {
	result := make(map[uuid.UUID]Exercise, len(exercises))
	for _, e := range exercises {
		result[e.ID] = e
	}
	return result
}

// Validate checks the muscle list of an exercise.
func (e Exercise) Validate() error {
	for _, m := range e.Muscles {
		if _, err := ParseMuscleID(int(m.MuscleID)); err != nil {
			return err
		}
		if _, err := ParseStimulus(int(m.Stimulus)); err != nil {
			return err
		}
	}
	return nil
}
