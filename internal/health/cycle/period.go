package cycle

import (
	"errors"
	"time"
)

var ErrInvalidIntensity = errors.New("intensity must be in the range 1 to 4")

type Intensity int

const (
	Spotting Intensity = iota + 1
	Light
	Medium
	Heavy
)

func ParseIntensity(value int) (Intensity, error) {
	i := Intensity(value)
	if !i.IsValid() {
		return 0, ErrInvalidIntensity
	}
	return i, nil
}

func (i Intensity) IsValid() bool {
	return i >= Spotting && i <= Heavy
}

func (i Intensity) String() string {
	switch i {
	case Spotting:
		return "spotting"
	case Light:
		return "light"
	case Medium:
		return "medium"
	case Heavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// Period is a single recorded day of menstrual bleeding.
type Period struct {
	Date      time.Time `json:"date"`
	Intensity Intensity `json:"intensity"`
}
