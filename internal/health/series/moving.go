package series

import (
	"time"
)

// Point is a single dated value of a series.
type Point struct {
	Date  time.Time `json:"date"`
	Value float32   `json:"value"`
}

// GroupFunc combines values into one. Returning false marks the absence of a value.
type GroupFunc func(values []float32) (float32, bool)

func Sum(values []float32) (float32, bool) {
	var sum float32
	for _, v := range values {
		sum += v
	}
	return sum, true
}

func Mean(values []float32) (float32, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sum, _ := Sum(values)
	return sum / float32(len(values)), true
}

// CenteredMovingGrouping walks every day of the interval and groups the values
// found within radius days around it.
//
// Values of the same day are first combined by groupDay, then the per-day
// results within a window are combined by groupRange. A window without a
// value splits the output into a new series. Values outside the interval only
// contribute to windows of centers inside it.
func CenteredMovingGrouping(
	data []Point,
	interval Interval,
	radius int,
	groupDay, groupRange GroupFunc,
) [][]Point {
	first, last := Day(interval.First), Day(interval.Last)

	dayValues := make(map[time.Time][]float32)
	for _, p := range data {
		d := Day(p.Date)
		dayValues[d] = append(dayValues[d], p.Value)
	}

	grouped := make(map[time.Time]float32, len(dayValues))
	for d, values := range dayValues {
		if v, ok := groupDay(values); ok {
			grouped[d] = v
		}
	}

	result := [][]Point{{}}
	for center := first; !center.After(last); center = AddDays(center, 1) {
		end := AddDays(center, radius)
		if end.After(last) {
			end = last
		}

		var window []float32
		for d := AddDays(center, -radius); !d.After(end); d = AddDays(d, 1) {
			if v, ok := grouped[d]; ok {
				window = append(window, v)
			}
		}

		current := len(result) - 1
		if v, ok := groupRange(window); ok {
			result[current] = append(result[current], Point{Date: center, Value: v})
		} else if len(result[current]) > 0 {
			result = append(result, []Point{})
		}
	}

	nonEmpty := result[:0]
	for _, s := range result {
		if len(s) > 0 {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return nonEmpty
}

// CenteredMovingTotal sums values within radius days around each day of the
// interval. Days without data count as zero, so the result is a single series
// covering the whole interval. An empty interval results in an empty series.
func CenteredMovingTotal(data []Point, interval Interval, radius int) []Point {
	grouped := CenteredMovingGrouping(data, interval, radius, Sum, Sum)
	if len(grouped) == 0 {
		return []Point{}
	}
	return grouped[0]
}

// CenteredMovingAverage averages values within radius days around each day of
// the interval. Gaps of more than 2*radius+1 days without data split the result.
func CenteredMovingAverage(data []Point, interval Interval, radius int) [][]Point {
	return CenteredMovingGrouping(data, interval, radius, meanOfDay, Mean)
}

func meanOfDay(values []float32) (float32, bool) {
	sum, _ := Sum(values)
	return sum / float32(len(values)), true
}

// ValueBasedCenteredMovingAverage averages each value with up to radius values
// before and after it, regardless of the dates in between. The data must hold
// one value per day in ascending order.
func ValueBasedCenteredMovingAverage(data []Point, radius int) []Point {
	result := make([]Point, 0, len(data))
	for i, p := range data {
		lo := max(i-radius, 0)
		hi := min(i+radius, len(data)-1)

		var sum float32
		for _, v := range data[lo : hi+1] {
			sum += v.Value
		}
		result = append(result, Point{
			Date:  p.Date,
			Value: sum / float32(hi-lo+1),
		})
	}
	return result
}

// Filter returns the points of the series within the interval.
func Filter(points []Point, interval Interval) []Point {
	result := make([]Point, 0, len(points))
	for _, p := range points {
		if interval.Contains(p.Date) {
			result = append(result, p)
		}
	}
	return result
}
