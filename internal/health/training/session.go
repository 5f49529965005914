package training

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/2beens/healthtracker/internal/health/exercise"

	"github.com/google/uuid"
)

const (
	elementTypeSet  = "set"
	elementTypeRest = "rest"
)

type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	RoutineID uuid.UUID `json:"routineId"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes"`
	Elements  Elements  `json:"elements"`
}

// Element is either a Set or a Rest.
type Element interface {
	isElement()
}

type Set struct {
	ExerciseID   uuid.UUID `json:"exerciseId"`
	Reps         *Reps     `json:"reps,omitempty"`
	Time         *Time     `json:"time,omitempty"`
	Weight       *Weight   `json:"weight,omitempty"`
	RPE          *RPE      `json:"rpe,omitempty"`
	TargetReps   *Reps     `json:"targetReps,omitempty"`
	TargetTime   *Time     `json:"targetTime,omitempty"`
	TargetWeight *Weight   `json:"targetWeight,omitempty"`
	TargetRPE    *RPE      `json:"targetRpe,omitempty"`
	Automatic    bool      `json:"automatic"`
}

type Rest struct {
	TargetTime *Time `json:"targetTime,omitempty"`
	Automatic  bool  `json:"automatic"`
}

func (Set) isElement()  {}
func (Rest) isElement() {}

// performed reports whether any work was recorded for the set.
func (s Set) performed() bool {
	return s.Reps != nil || s.Time != nil
}

// Elements is the ordered list of session elements, encoded with a type tag.
type Elements []Element

func (es Elements) MarshalJSON() ([]byte, error) {
	encoded := make([]any, 0, len(es))
	for _, e := range es {
		switch v := e.(type) {
		case Set:
			encoded = append(encoded, struct {
				Type string `json:"type"`
				Set
			}{elementTypeSet, v})
		case Rest:
			encoded = append(encoded, struct {
				Type string `json:"type"`
				Rest
			}{elementTypeRest, v})
		default:
			return nil, fmt.Errorf("unknown element type %T", e)
		}
	}
	return json.Marshal(encoded)
}

func (es *Elements) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	elements := make(Elements, 0, len(raw))
	for i, r := range raw {
		var tag struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(r, &tag); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		switch tag.Type {
		case elementTypeSet:
			var s Set
			if err := json.Unmarshal(r, &s); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
			elements = append(elements, s)
		case elementTypeRest:
			var rest Rest
			if err := json.Unmarshal(r, &rest); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
			elements = append(elements, rest)
		default:
			return fmt.Errorf("element %d: unknown type [%s]", i, tag.Type)
		}
	}

	*es = elements
	return nil
}

func (s Session) sets() []Set {
	var sets []Set
	for _, e := range s.Elements {
		if set, ok := e.(Set); ok {
			sets = append(sets, set)
		}
	}
	return sets
}

// Exercises returns the distinct exercises of the session, sorted.
func (s Session) Exercises() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	result := make([]uuid.UUID, 0)
	for _, set := range s.sets() {
		if _, ok := seen[set.ExerciseID]; ok {
			continue
		}
		seen[set.ExerciseID] = struct{}{}
		result = append(result, set.ExerciseID)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].String() < result[j].String()
	})
	return result
}

func (s Session) AvgReps() (float32, bool) {
	var sum, n uint32
	for _, set := range s.sets() {
		if set.Reps != nil {
			sum += uint32(*set.Reps)
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float32(sum) / float32(n), true
}

func (s Session) AvgTime() (float32, bool) {
	var sum, n uint32
	for _, set := range s.sets() {
		if set.Time != nil {
			sum += uint32(*set.Time)
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float32(sum) / float32(n), true
}

func (s Session) AvgWeight() (float32, bool) {
	var sum float32
	var n int
	for _, set := range s.sets() {
		if set.Weight != nil {
			sum += float32(*set.Weight)
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float32(n), true
}

func (s Session) AvgRPE() (RPE, bool) {
	var values []RPE
	for _, set := range s.sets() {
		if set.RPE != nil {
			values = append(values, *set.RPE)
		}
	}
	return AvgRPE(values)
}

// Load is the sum of the set loads. A set with an RPE above 5 weighs
// 2^(RPE-5), any other performed set weighs 1.
func (s Session) Load() uint32 {
	var load uint32
	for _, set := range s.sets() {
		switch {
		case set.RPE != nil && *set.RPE > RPEFive:
			load += uint32(math.Round(math.Pow(2, float64(set.RPE.Float())-5)))
		case set.RPE != nil:
			load++
		case set.performed():
			load++
		}
	}
	return load
}

// SetVolume counts the performed sets with an RPE of at least 7. Sets
// without an RPE are counted as maximal effort.
func (s Session) SetVolume() uint32 {
	var volume uint32
	for _, set := range s.sets() {
		rpe := RPETen
		if set.RPE != nil {
			rpe = *set.RPE
		}
		if rpe >= RPESeven && set.performed() {
			volume++
		}
	}
	return volume
}

// VolumeLoad sums reps times weight, or the plain reps for sets without a weight.
func (s Session) VolumeLoad() uint32 {
	var volume uint32
	for _, set := range s.sets() {
		if set.Reps == nil {
			continue
		}
		if set.Weight != nil {
			volume += uint32(math.Round(float64(float32(*set.Reps) * float32(*set.Weight))))
		} else {
			volume += uint32(*set.Reps)
		}
	}
	return volume
}

// TUT is the time under tension in seconds. Sets without a time don't
// contribute, and false is returned if no set has one.
func (s Session) TUT() (uint32, bool) {
	var tut uint32
	found := false
	for _, set := range s.sets() {
		if set.Time == nil {
			continue
		}
		found = true
		reps := uint32(1)
		if set.Reps != nil {
			reps = uint32(*set.Reps)
		}
		tut += reps * uint32(*set.Time)
	}
	return tut, found
}

// StimulusPerMuscle adds up the muscle stimulus of all performed sets with
// sufficient effort. Sets of unknown exercises are ignored.
func (s Session) StimulusPerMuscle(exercises map[uuid.UUID]exercise.Exercise) map[exercise.MuscleID]exercise.Stimulus {
	result := make(map[exercise.MuscleID]exercise.Stimulus)
	for _, set := range s.sets() {
		if !set.performed() {
			continue
		}
		if set.RPE != nil && *set.RPE < RPESeven {
			continue
		}
		e, ok := exercises[set.ExerciseID]
		if !ok {
			continue
		}
		for muscleID, stimulus := range e.MuscleStimulus() {
			result[muscleID] += stimulus
		}
	}
	return result
}
