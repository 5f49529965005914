package routine

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/2beens/healthtracker/internal/health/exercise"
	"github.com/2beens/healthtracker/internal/health/name"
	"github.com/2beens/healthtracker/internal/health/training"

	"github.com/google/uuid"
)

const (
	partTypeSection  = "section"
	partTypeActivity = "activity"

	// An activity without a time takes this long per rep.
	defaultRepTime training.Time = 4
)

type Routine struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"userId"`
	Name     name.Name `json:"name"`
	Notes    string    `json:"notes"`
	Archived bool      `json:"archived"`
	Sections Parts     `json:"sections"`
}

// Part is either a Section or an Activity.
type Part interface {
	Duration() time.Duration
	NumSets() uint32
	StimulusPerMuscle(exercises map[uuid.UUID]exercise.Exercise) map[exercise.MuscleID]exercise.Stimulus

	exercises(result map[uuid.UUID]struct{})
	appendElements(result training.Elements) training.Elements
}

// Section repeats its parts for the given number of rounds.
type Section struct {
	Rounds uint32 `json:"rounds"`
	Parts  Parts  `json:"parts"`
}

// Activity is a set of an exercise, or a rest if no exercise is given.
type Activity struct {
	ExerciseID *uuid.UUID      `json:"exerciseId,omitempty"`
	Reps       training.Reps   `json:"reps"`
	Time       training.Time   `json:"time"`
	Weight     training.Weight `json:"weight"`
	RPE        training.RPE    `json:"rpe"`
	Automatic  bool            `json:"automatic"`
}

func (r Routine) Duration() time.Duration {
	var d time.Duration
	for _, s := range r.Sections {
		d += s.Duration()
	}
	return d
}

func (r Routine) NumSets() uint32 {
	var n uint32
	for _, s := range r.Sections {
		n += s.NumSets()
	}
	return n
}

// StimulusPerMuscle contains every known muscle, including the ones the
// routine doesn't train.
func (r Routine) StimulusPerMuscle(exercises map[uuid.UUID]exercise.Exercise) map[exercise.MuscleID]exercise.Stimulus {
	result := make(map[exercise.MuscleID]exercise.Stimulus, len(exercise.Muscles))
	for _, m := range exercise.Muscles {
		result[m] = exercise.StimulusNone
	}
	for _, s := range r.Sections {
		for m, stimulus := range s.StimulusPerMuscle(exercises) {
			if _, ok := result[m]; ok {
				result[m] += stimulus
			}
		}
	}
	return result
}

// Exercises returns the distinct exercises of the routine, sorted.
func (r Routine) Exercises() []uuid.UUID {
	set := make(map[uuid.UUID]struct{})
	for _, s := range r.Sections {
		s.exercises(set)
	}
	result := make([]uuid.UUID, 0, len(set))
	for id := range set {
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].String() < result[j].String()
	})
	return result
}

// ToTrainingSessionElements unrolls the routine into the elements of a new
// training session, carrying the routine values over as targets.
func (r Routine) ToTrainingSessionElements() training.Elements {
	result := training.Elements{}
	for _, s := range r.Sections {
		result = s.appendElements(result)
	}
	return result
}

func (s Section) Duration() time.Duration {
	var d time.Duration
	for _, p := range s.Parts {
		d += p.Duration()
	}
	rounds := time.Duration(1)
	if s.Rounds <= math.MaxInt32 {
		rounds = time.Duration(s.Rounds)
	}
	return d * rounds
}

func (s Section) NumSets() uint32 {
	var n uint32
	for _, p := range s.Parts {
		n += p.NumSets()
	}
	return n * s.Rounds
}

func (s Section) StimulusPerMuscle(exercises map[uuid.UUID]exercise.Exercise) map[exercise.MuscleID]exercise.Stimulus {
	result := make(map[exercise.MuscleID]exercise.Stimulus)
	for _, p := range s.Parts {
		for m, stimulus := range p.StimulusPerMuscle(exercises) {
			result[m] += stimulus * exercise.Stimulus(s.Rounds)
		}
	}
	return result
}

func (s Section) exercises(result map[uuid.UUID]struct{}) {
	for _, p := range s.Parts {
		p.exercises(result)
	}
}

func (s Section) appendElements(result training.Elements) training.Elements {
	for i := uint32(0); i < s.Rounds; i++ {
		for _, p := range s.Parts {
			result = p.appendElements(result)
		}
	}
	return result
}

func (a Activity) IsRest() bool {
	return a.ExerciseID == nil
}

func (a Activity) Duration() time.Duration {
	reps := max(a.Reps, 1)
	t := a.Time
	if t == 0 {
		t = defaultRepTime
	}
	return time.Duration(uint32(reps)*uint32(t)) * time.Second
}

func (a Activity) NumSets() uint32 {
	if a.IsRest() {
		return 0
	}
	return 1
}

func (a Activity) StimulusPerMuscle(exercises map[uuid.UUID]exercise.Exercise) map[exercise.MuscleID]exercise.Stimulus {
	if a.IsRest() {
		return map[exercise.MuscleID]exercise.Stimulus{}
	}
	e, ok := exercises[*a.ExerciseID]
	if !ok {
		return map[exercise.MuscleID]exercise.Stimulus{}
	}
	return e.MuscleStimulus()
}

func (a Activity) exercises(result map[uuid.UUID]struct{}) {
	if !a.IsRest() {
		result[*a.ExerciseID] = struct{}{}
	}
}

func (a Activity) appendElements(result training.Elements) training.Elements {
	if a.IsRest() {
		rest := training.Rest{Automatic: a.Automatic}
		if a.Time > 0 {
			rest.TargetTime = &a.Time
		}
		return append(result, rest)
	}

	set := training.Set{ExerciseID: *a.ExerciseID, Automatic: a.Automatic}
	if a.Reps > 0 {
		set.TargetReps = &a.Reps
	}
	if a.Time > 0 {
		set.TargetTime = &a.Time
	}
	if a.Weight > 0 {
		set.TargetWeight = &a.Weight
	}
	if a.RPE > 0 {
		set.TargetRPE = &a.RPE
	}
	return append(result, set)
}

// Parts is an ordered list of routine parts, encoded with a type tag.
type Parts []Part

func (ps Parts) MarshalJSON() ([]byte, error) {
	encoded := make([]any, 0, len(ps))
	for _, p := range ps {
		switch v := p.(type) {
		case Section:
			encoded = append(encoded, struct {
				Type string `json:"type"`
				Section
			}{partTypeSection, v})
		case Activity:
			encoded = append(encoded, struct {
				Type string `json:"type"`
				Activity
			}{partTypeActivity, v})
		default:
			return nil, fmt.Errorf("unknown part type %T", p)
		}
	}
	return json.Marshal(encoded)
}

func (ps *Parts) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parts := make(Parts, 0, len(raw))
	for i, r := range raw {
		var tag struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(r, &tag); err != nil {
			return fmt.Errorf("part %d: %w", i, err)
		}
		switch tag.Type {
		case partTypeSection:
			var s Section
			if err := json.Unmarshal(r, &s); err != nil {
				return fmt.Errorf("part %d: %w", i, err)
			}
			if s.Parts == nil {
				s.Parts = Parts{}
			}
			parts = append(parts, s)
		case partTypeActivity:
			var a Activity
			if err := json.Unmarshal(r, &a); err != nil {
				return fmt.Errorf("part %d: %w", i, err)
			}
			parts = append(parts, a)
		default:
			return fmt.Errorf("part %d: unknown type [%s]", i, tag.Type)
		}
	}

	*ps = parts
	return nil
}
