package training

import (
	"github.com/google/uuid"
)

// Metrics are the derived values of a single session. Absent averages are nil.
type Metrics struct {
	Exercises  []uuid.UUID `json:"exercises"`
	AvgReps    *float32    `json:"avgReps,omitempty"`
	AvgTime    *float32    `json:"avgTime,omitempty"`
	AvgWeight  *float32    `json:"avgWeight,omitempty"`
	AvgRPE     *RPE        `json:"avgRpe,omitempty"`
	Load       uint32      `json:"load"`
	SetVolume  uint32      `json:"setVolume"`
	VolumeLoad uint32      `json:"volumeLoad"`
	TUT        *uint32     `json:"tut,omitempty"`
}

func (s Session) Metrics() Metrics {
	m := Metrics{
		Exercises:  s.Exercises(),
		Load:       s.Load(),
		SetVolume:  s.SetVolume(),
		VolumeLoad: s.VolumeLoad(),
	}
	if v, ok := s.AvgReps(); ok {
		m.AvgReps = &v
	}
	if v, ok := s.AvgTime(); ok {
		m.AvgTime = &v
	}
	if v, ok := s.AvgWeight(); ok {
		m.AvgWeight = &v
	}
	if v, ok := s.AvgRPE(); ok {
		m.AvgRPE = &v
	}
	if v, ok := s.TUT(); ok {
		m.TUT = &v
	}
	return m
}

// Summary is a session along with its metrics.
type Summary struct {
	Session
	Metrics Metrics `json:"metrics"`
}
