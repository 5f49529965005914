package training

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrOutOfRange        = errors.New("value out of range")
	ErrInvalidResolution = errors.New("invalid resolution")
	ErrParse             = errors.New("parse error")
)

const float32Epsilon = 1.1920929e-07

// Reps is the number of repetitions of a set.
type Reps uint32

func NewReps(value uint32) (Reps, error) {
	if value > 999 {
		return 0, fmt.Errorf("%w: reps must be in the range 0 to 999", ErrOutOfRange)
	}
	return Reps(value), nil
}

func ParseReps(s string) (Reps, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: reps must be an integer", ErrParse)
	}
	return NewReps(uint32(v))
}

func (r Reps) String() string {
	return strconv.FormatUint(uint64(r), 10)
}

func (r *Reps) UnmarshalJSON(data []byte) error {
	var v uint32
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: reps must be an integer", ErrParse)
	}
	parsed, err := NewReps(v)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Time is a duration in seconds.
type Time uint32

func NewTime(value uint32) (Time, error) {
	if value > 999 {
		return 0, fmt.Errorf("%w: time must be in the range 0 to 999 s", ErrOutOfRange)
	}
	return Time(value), nil
}

func ParseTime(s string) (Time, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: time must be an integer", ErrParse)
	}
	return NewTime(uint32(v))
}

func (t Time) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var v uint32
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: time must be an integer", ErrParse)
	}
	parsed, err := NewTime(v)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Weight is a load in kg with a resolution of 0.1 kg.
type Weight float32

func NewWeight(value float32) (Weight, error) {
	if !(value >= 0 && value < 1000) {
		return 0, fmt.Errorf("%w: weight must be in the range 0.0 to 999.9 kg", ErrOutOfRange)
	}
	if math.Abs(math.Mod(float64(float32(value*10)), 1)) > float32Epsilon {
		return 0, fmt.Errorf("%w: weight must be a multiple of 0.1 kg", ErrInvalidResolution)
	}
	return Weight(value), nil
}

func ParseWeight(s string) (Weight, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: weight must be a decimal", ErrParse)
	}
	return NewWeight(float32(v))
}

func (w Weight) String() string {
	return strconv.FormatFloat(float64(w), 'f', -1, 32)
}

func (w *Weight) UnmarshalJSON(data []byte) error {
	var v float32
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: weight must be a decimal", ErrParse)
	}
	parsed, err := NewWeight(v)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// RPE is the rating of perceived exertion, stored in tenths.
type RPE uint8

const (
	RPEZero  RPE = 0
	RPEOne   RPE = 10
	RPETwo   RPE = 20
	RPEThree RPE = 30
	RPEFour  RPE = 40
	RPEFive  RPE = 50
	RPESix   RPE = 60
	RPESeven RPE = 70
	RPEEight RPE = 80
	RPENine  RPE = 90
	RPETen   RPE = 100
)

func NewRPE(value float32) (RPE, error) {
	if !(value >= 0 && value <= 10) {
		return 0, fmt.Errorf("%w: RPE must be in the range 0.0 to 10.0", ErrOutOfRange)
	}
	v := uint8(value * 10)
	if v%5 != 0 {
		return 0, fmt.Errorf("%w: RPE must be a multiple of 0.5", ErrInvalidResolution)
	}
	return RPE(v), nil
}

func ParseRPE(s string) (RPE, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: RPE must be a decimal", ErrParse)
	}
	return NewRPE(float32(v))
}

// AvgRPE returns the truncated mean of the values, false for no values.
func AvgRPE(values []RPE) (RPE, bool) {
	if len(values) == 0 {
		return 0, false
	}
	var sum int
	for _, v := range values {
		sum += int(v)
	}
	return RPE(sum / len(values)), true
}

func (r RPE) Float() float32 {
	return float32(r) / 10
}

func (r RPE) String() string {
	return strconv.FormatFloat(float64(r.Float()), 'f', -1, 32)
}

func (r RPE) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Float())
}

func (r *RPE) UnmarshalJSON(data []byte) error {
	var v float32
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: RPE must be a decimal", ErrParse)
	}
	parsed, err := NewRPE(v)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// RIR is the number of repetitions in reserve, stored in tenths.
type RIR uint8

func (r RPE) RIR() RIR {
	return RIR(RPETen - r)
}

func (r RIR) Float() float32 {
	return float32(r) / 10
}

func (r RIR) String() string {
	return strconv.FormatFloat(float64(r.Float()), 'f', -1, 32)
}
