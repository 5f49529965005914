package body

import (
	"time"

	"github.com/2beens/healthtracker/internal/health/series"
	"github.com/2beens/healthtracker/internal/health/user"
)

const (
	// The formulas take the age into account, which is not recorded.
	assumedAge       = 30
	avgBodyFatRadius = 3
)

// Fat holds the skinfold measurements of a day, in mm.
type Fat struct {
	Date        time.Time `json:"date"`
	Chest       *uint8    `json:"chest,omitempty"`
	Abdominal   *uint8    `json:"abdominal,omitempty"`
	Thigh       *uint8    `json:"thigh,omitempty"`
	Tricep      *uint8    `json:"tricep,omitempty"`
	Subscapular *uint8    `json:"subscapular,omitempty"`
	Suprailiac  *uint8    `json:"suprailiac,omitempty"`
	Midaxillary *uint8    `json:"midaxillary,omitempty"`
}

type jacksonPollock struct {
	k0, k1, k2, ka float32
}

var (
	jp3Female = jacksonPollock{1.0994921, 0.0009929, 0.0000023, 0.0001392}
	jp3Male   = jacksonPollock{1.10938, 0.0008267, 0.0000016, 0.0002574}
	jp7Female = jacksonPollock{1.097, 0.00046971, 0.00000056, 0.00012828}
	jp7Male   = jacksonPollock{1.112, 0.00043499, 0.00000055, 0.00028826}
)

func (jp jacksonPollock) bodyFat(sum float32) float32 {
	return 495/(jp.k0-jp.k1*sum+jp.k2*sum*sum-jp.ka*assumedAge) - 450
}

func sumOf(skinfolds ...*uint8) (float32, bool) {
	var sum float32
	for _, s := range skinfolds {
		if s == nil {
			return 0, false
		}
		sum += float32(*s)
	}
	return sum, true
}

// JP3 estimates the body fat percentage from three skinfolds.
func (f Fat) JP3(sex user.Sex) (float32, bool) {
	if sex == user.Male {
		sum, ok := sumOf(f.Chest, f.Abdominal, f.Thigh)
		if !ok {
			return 0, false
		}
		return jp3Male.bodyFat(sum), true
	}

	sum, ok := sumOf(f.Tricep, f.Suprailiac, f.Thigh)
	if !ok {
		return 0, false
	}
	return jp3Female.bodyFat(sum), true
}

// JP7 estimates the body fat percentage from seven skinfolds.
func (f Fat) JP7(sex user.Sex) (float32, bool) {
	sum, ok := sumOf(f.Chest, f.Abdominal, f.Thigh, f.Tricep, f.Subscapular, f.Suprailiac, f.Midaxillary)
	if !ok {
		return 0, false
	}
	if sex == user.Male {
		return jp7Male.bodyFat(sum), true
	}
	return jp7Female.bodyFat(sum), true
}

// AvgBodyFat is the weekly average of the JP3 body fat.
func AvgBodyFat(records []Fat, sex user.Sex, interval series.Interval) [][]series.Point {
	data := make([]series.Point, 0, len(records))
	for _, r := range records {
		if v, ok := r.JP3(sex); ok {
			data = append(data, series.Point{Date: r.Date, Value: v})
		}
	}
	return series.CenteredMovingAverage(data, interval, avgBodyFatRadius)
}
