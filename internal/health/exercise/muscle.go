package exercise

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMuscleID = errors.New("invalid muscle id")
	ErrInvalidStimulus = errors.New("stimulus must be 100 or less")
)

type MuscleID int

const (
	NoMuscle      MuscleID = 0
	Neck          MuscleID = 1
	Pecs          MuscleID = 11
	Traps         MuscleID = 21
	Lats          MuscleID = 22
	FrontDelts    MuscleID = 31
	SideDelts     MuscleID = 32
	RearDelts     MuscleID = 33
	Biceps        MuscleID = 41
	Triceps       MuscleID = 42
	Forearms      MuscleID = 51
	Abs           MuscleID = 61
	ErectorSpinae MuscleID = 62
	Glutes        MuscleID = 71
	Abductors     MuscleID = 72
	Quads         MuscleID = 81
	Hamstrings    MuscleID = 82
	Adductors     MuscleID = 83
	Calves        MuscleID = 91
)

// Muscles lists every known muscle, ordered from head to toe.
var Muscles = []MuscleID{
	Neck,
	Pecs,
	Traps,
	Lats,
	FrontDelts,
	SideDelts,
	RearDelts,
	Biceps,
	Triceps,
	Forearms,
	Abs,
	ErectorSpinae,
	Glutes,
	Abductors,
	Quads,
	Hamstrings,
	Adductors,
	Calves,
}

var muscleInfo = map[MuscleID]struct {
	name        string
	description string
}{
	Neck:          {"Neck", ""},
	Pecs:          {"Pecs", "Chest"},
	Traps:         {"Traps", "Upper back"},
	Lats:          {"Lats", "Sides of back"},
	FrontDelts:    {"Front Delts", "Anterior shoulders"},
	SideDelts:     {"Side Delts", "Mid shoulders"},
	RearDelts:     {"Rear Delts", "Posterior shoulders"},
	Biceps:        {"Biceps", "Front of upper arms"},
	Triceps:       {"Triceps", "Back of upper arms"},
	Forearms:      {"Forearms", ""},
	Abs:           {"Abs", "Belly"},
	ErectorSpinae: {"Erector Spinae", "Lower back and spine"},
	Glutes:        {"Glutes", "Buttocks"},
	Abductors:     {"Abductors", "Outside of hips"},
	Quads:         {"Quads", "Front of thighs"},
	Hamstrings:    {"Hamstrings", "Back of thighs"},
	Adductors:     {"Adductors", "Inner thighs"},
	Calves:        {"Calves", "Back of lower legs"},
}

func ParseMuscleID(value int) (MuscleID, error) {
	m := MuscleID(value)
	if !m.IsKnown() {
		return NoMuscle, fmt.Errorf("%w: %d", ErrInvalidMuscleID, value)
	}
	return m, nil
}

func (m MuscleID) IsKnown() bool {
	_, ok := muscleInfo[m]
	return ok
}

func (m MuscleID) Name() string {
	if info, ok := muscleInfo[m]; ok {
		return info.name
	}
	return "No Muscle"
}

func (m MuscleID) Description() string {
	return muscleInfo[m].description
}

// Stimulus is the training effect of an exercise on a muscle, in percent.
type Stimulus uint32

const (
	StimulusNone      Stimulus = 0
	StimulusSecondary Stimulus = 50
	StimulusPrimary   Stimulus = 100
)

func ParseStimulus(value int) (Stimulus, error) {
	if value < 0 || value > int(StimulusPrimary) {
		return StimulusNone, fmt.Errorf("%w (%d > 100)", ErrInvalidStimulus, value)
	}
	return Stimulus(value), nil
}
