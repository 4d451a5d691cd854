package domain

import (
	"fmt"
	"strings"
	"time"
)

// HistoryPoint is one synthetic sample of a trend series
type HistoryPoint struct {
	Time   time.Time `json:"time"`
	Value  float64   `json:"value"`
	Status Status    `json:"status"`
}

// TimeRange names a trend window
type TimeRange string

const (
	RangeDay   TimeRange = "day"
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
)

// ParseTimeRange accepts day, week or month; empty means day
func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(strings.ToLower(strings.TrimSpace(s))) {
	case "", RangeDay:
		return RangeDay, nil
	case RangeWeek:
		return RangeWeek, nil
	case RangeMonth:
		return RangeMonth, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTimeRange, s)
}

// Window returns how far back the range reaches and the sample spacing
func (r TimeRange) Window() (hours, intervalMinutes int) {
	switch r {
	case RangeWeek:
		return 168, 240
	case RangeMonth:
		return 720, 720
	default:
		return 24, 60
	}
}

// Label is the display name of the range
func (r TimeRange) Label() string {
	switch r {
	case RangeWeek:
		return "Last Week"
	case RangeMonth:
		return "Last Month"
	default:
		return "Last 24 Hours"
	}
}

// HistoryStats summarizes a series for chart axes
type HistoryStats struct {
	Average  float64 `json:"average"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	ChartMin float64 `json:"chart_min"`
	ChartMax float64 `json:"chart_max"`
}

// CalculateStatistics computes stats for a series.
// Chart bounds pad the observed extremes by 10%.
func CalculateStatistics(points []HistoryPoint) HistoryStats {
	if len(points) == 0 {
		return HistoryStats{}
	}

	var sum float64
	min := points[0].Value
	max := points[0].Value

	for _, p := range points {
		sum += p.Value
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
	}

	return HistoryStats{
		Average:  sum / float64(len(points)),
		Min:      min,
		Max:      max,
		ChartMin: min * 0.9,
		ChartMax: max * 1.1,
	}
}
