package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// SensorKind identifies the measured quantity and governs clamping rules
type SensorKind string

const (
	KindPH           SensorKind = "ph"
	KindTurbidity    SensorKind = "turbidity"
	KindTDS          SensorKind = "tds"
	KindConductivity SensorKind = "conductivity"
	KindOxygen       SensorKind = "oxygen"
)

// Bounds returns the physically possible range for the kind.
// pH is a 0-14 scale; every other quantity is non-negative with no ceiling.
func (k SensorKind) Bounds() (lo, hi float64) {
	if k == KindPH {
		return 0, 14
	}
	return 0, math.Inf(1)
}

// Clamp forces v into the kind's bounds
func (k SensorKind) Clamp(v float64) float64 {
	lo, hi := k.Bounds()
	return math.Max(lo, math.Min(hi, v))
}

// Color returns the trend chart line color for the kind
func (k SensorKind) Color() string {
	switch k {
	case KindPH:
		return "#8884d8"
	case KindTurbidity:
		return "#82ca9d"
	case KindTDS:
		return "#8dd1e1"
	case KindConductivity:
		return "#a4de6c"
	case KindOxygen:
		return "#ffc658"
	default:
		return "#83a6ed"
	}
}

// SensorReading is a single measured value with its derived status
type SensorReading struct {
	Value  float64 `json:"value"`
	Status Status  `json:"status"`
	Unit   string  `json:"unit"`
}

// SensorRecord is the live state of one tracked sensor.
// Records are values: every update produces a new record.
type SensorRecord struct {
	ID         string        `json:"id"`
	Kind       SensorKind    `json:"kind"`
	Name       string        `json:"name"`
	Reading    SensorReading `json:"reading"`
	Thresholds Thresholds    `json:"thresholds"`
	Timestamp  time.Time     `json:"timestamp"`
}

// NewSensorRecord creates a record with validation and a derived status
func NewSensorRecord(id, name string, kind SensorKind, value float64, unit string, thresholds Thresholds, at time.Time) (SensorRecord, error) {
	if strings.TrimSpace(id) == "" {
		return SensorRecord{}, fmt.Errorf("%w: id is required", ErrInvalidSensor)
	}
	if err := thresholds.Validate(); err != nil {
		return SensorRecord{}, fmt.Errorf("sensor %s: %w", id, err)
	}
	if kind == "" {
		kind = SensorKind(id)
	}

	return SensorRecord{
		ID:   id,
		Kind: kind,
		Name: name,
		Reading: SensorReading{
			Value:  value,
			Status: thresholds.Classify(value),
			Unit:   unit,
		},
		Thresholds: thresholds,
		Timestamp:  at,
	}, nil
}

// WithValue returns a copy carrying a new value, status recomputed
func (r SensorRecord) WithValue(value float64, at time.Time) SensorRecord {
	r.Reading.Value = value
	r.Reading.Status = r.Thresholds.Classify(value)
	r.Timestamp = at
	return r
}

// WithThresholds returns a copy classified against new thresholds
func (r SensorRecord) WithThresholds(t Thresholds) SensorRecord {
	r.Thresholds = t
	r.Reading.Status = t.Classify(r.Reading.Value)
	return r
}

// GaugePercent positions the value on a 0-100 dial whose scale runs from
// min(moderate.Min, 0) to max(moderate.Max, 1.2*value)
func (r SensorRecord) GaugePercent() float64 {
	value := r.Reading.Value
	lo := math.Min(r.Thresholds.Moderate.Min, 0)
	hi := math.Max(r.Thresholds.Moderate.Max, value*1.2)
	span := hi - lo
	if span <= 0 {
		return 0
	}
	return math.Min(100, math.Max(0, (value-lo)/span*100))
}

// FormatValue renders a value with fixed precision followed by its unit
func FormatValue(value float64, unit string, precision int) string {
	if precision < 0 {
		precision = 0
	}
	s := fmt.Sprintf("%.*f", precision, value)
	if unit == "" {
		return s
	}
	return s + " " + unit
}

// DefaultSensors returns the baseline sensor set
func DefaultSensors(at time.Time) []SensorRecord {
	seed := []struct {
		id, name, unit string
		value          float64
		good, moderate ThresholdRange
	}{
		{"ph", "pH Level", "pH", 7.2, ThresholdRange{6.5, 8.0}, ThresholdRange{5.0, 9.0}},
		{"turbidity", "Turbidity", "NTU", 2.3, ThresholdRange{0, 5}, ThresholdRange{5, 10}},
		{"tds", "Total Dissolved Solids", "ppm", 180, ThresholdRange{0, 300}, ThresholdRange{300, 500}},
		{"conductivity", "Conductivity", "μS/cm", 350, ThresholdRange{100, 500}, ThresholdRange{50, 800}},
		{"oxygen", "Dissolved Oxygen", "mg/L", 8.1, ThresholdRange{6.5, 9.5}, ThresholdRange{5.0, 12.0}},
	}

	sensors := make([]SensorRecord, 0, len(seed))
	for _, s := range seed {
		t := Thresholds{Good: s.good, Moderate: s.moderate}
		sensors = append(sensors, SensorRecord{
			ID:   s.id,
			Kind: SensorKind(s.id),
			Name: s.name,
			Reading: SensorReading{
				Value:  s.value,
				Status: t.Classify(s.value),
				Unit:   s.unit,
			},
			Thresholds: t,
			Timestamp:  at,
		})
	}
	return sensors
}

// CloneSensors copies a sensor slice so callers never share backing arrays
func CloneSensors(sensors []SensorRecord) []SensorRecord {
	if sensors == nil {
		return nil
	}
	out := make([]SensorRecord, len(sensors))
	copy(out, sensors)
	return out
}
