package domain

import (
	"fmt"
	"math"
)

// Status classifies how far a reading is from its optimal range
type Status string

const (
	StatusGood     Status = "good"
	StatusModerate Status = "moderate"
	StatusPoor     Status = "poor"
	StatusUnknown  Status = "unknown"
)

// Text returns the human-readable label shown on status badges
func (s Status) Text() string {
	switch s {
	case StatusGood:
		return "Good"
	case StatusModerate:
		return "Moderate"
	case StatusPoor:
		return "Poor"
	default:
		return "Unknown"
	}
}

// ThresholdRange is an inclusive [Min, Max] interval
type ThresholdRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies inside the range, both ends included
func (r ThresholdRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Validate checks that both bounds are finite and ordered
func (r ThresholdRange) Validate() error {
	if !isFinite(r.Min) || !isFinite(r.Max) {
		return fmt.Errorf("%w: bounds must be finite, got [%v, %v]", ErrInvalidThresholds, r.Min, r.Max)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %v is greater than max %v", ErrInvalidThresholds, r.Min, r.Max)
	}
	return nil
}

// Thresholds pairs the optimal range with the outer acceptable range.
// Anything outside both is poor.
type Thresholds struct {
	Good     ThresholdRange `json:"good" yaml:"good"`
	Moderate ThresholdRange `json:"moderate" yaml:"moderate"`
}

// NewThresholds builds validated thresholds
func NewThresholds(good, moderate ThresholdRange) (Thresholds, error) {
	t := Thresholds{Good: good, Moderate: moderate}
	if err := t.Validate(); err != nil {
		return Thresholds{}, err
	}
	return t, nil
}

// Validate checks each range on its own.
// The moderate band is not required to enclose the good band: one-sided
// sensors such as turbidity use a moderate band that starts where good ends.
func (t Thresholds) Validate() error {
	if err := t.Good.Validate(); err != nil {
		return fmt.Errorf("good range: %w", err)
	}
	if err := t.Moderate.Validate(); err != nil {
		return fmt.Errorf("moderate range: %w", err)
	}
	return nil
}

// Classify labels value against these thresholds
func (t Thresholds) Classify(value float64) Status {
	return Classify(value, t.Good, t.Moderate)
}

// Classify maps a reading to a status.
// good:     value in [good.Min, good.Max]
// moderate: value in [moderate.Min, good.Min) or (good.Max, moderate.Max]
// poor:     everything else
// A NaN reading can't be placed and is unknown.
func Classify(value float64, good, moderate ThresholdRange) Status {
	if math.IsNaN(value) {
		return StatusUnknown
	}
	if good.Contains(value) {
		return StatusGood
	}
	if (value >= moderate.Min && value < good.Min) || (value > good.Max && value <= moderate.Max) {
		return StatusModerate
	}
	return StatusPoor
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
