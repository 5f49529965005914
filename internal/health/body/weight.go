package body

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/healthtracker/internal/health/series"
)

const avgBodyWeightRadius = 4

var ErrInvalidWeight = errors.New("body weight must be greater than 0")

type Weight struct {
	Date   time.Time `json:"date"`
	Weight float32   `json:"weight"`
}

func (w Weight) Validate() error {
	if !(w.Weight > 0 && w.Weight < 1000) {
		return fmt.Errorf("%w and less than 1000 kg (%v)", ErrInvalidWeight, w.Weight)
	}
	return nil
}

// AvgBodyWeight smooths the body weight by averaging each record with the
// four records before and after it.
func AvgBodyWeight(records []Weight) []Weight {
	sorted := make([]Weight, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	data := make([]series.Point, 0, len(sorted))
	for _, r := range sorted {
		data = append(data, series.Point{Date: r.Date, Value: r.Weight})
	}

	avg := series.ValueBasedCenteredMovingAverage(data, avgBodyWeightRadius)
	result := make([]Weight, 0, len(avg))
	for _, p := range avg {
		result = append(result, Weight{Date: p.Date, Weight: p.Value})
	}
	return result
}
