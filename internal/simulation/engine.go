// Package simulation generates synthetic water-quality telemetry.
//
// Every method takes its input by value and returns a fresh value; the only
// shared dependency is the injected random source, so an Engine may be used
// from several goroutines at once.
package simulation

import (
	"fmt"
	"math"
	"time"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/ports"
)

const (
	// FluctuationRatio bounds a live reading's change per tick, relative to its value
	FluctuationRatio = 0.10

	// HistoryVarianceRatio bounds a history point's offset from the anchor value
	HistoryVarianceRatio = 0.20

	// MaxHistoryPoints caps a single series; the month window needs 61
	MaxHistoryPoints = 2000

	// MaxBatteryDrain is the largest battery drop per tick, in percent
	MaxBatteryDrain = 0.5

	// MaxSignalChange is the largest signal swing per tick, in percent
	MaxSignalChange = 5.0

	// OfflineProbability is the chance a tick reports the unit offline
	OfflineProbability = 0.02
)

// Engine evolves readings and unit health
type Engine struct {
	rng ports.RandomSource
	now func() time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithClock replaces time.Now as the evaluation time source
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an engine drawing randomness from rng
func NewEngine(rng ports.RandomSource, opts ...Option) *Engine {
	e := &Engine{
		rng: rng,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// symmetric returns a uniform value in [-1, 1)
func (e *Engine) symmetric() float64 {
	return e.rng.Float64()*2 - 1
}

// Next moves a reading by up to ±10% of its value, clamps it to the kind's
// physical bounds and reclassifies it. The unit is preserved.
func (e *Engine) Next(reading domain.SensorReading, kind domain.SensorKind, thresholds domain.Thresholds) domain.SensorReading {
	current := reading.Value
	value := kind.Clamp(current + e.symmetric()*FluctuationRatio*current)

	return domain.SensorReading{
		Value:  value,
		Status: thresholds.Classify(value),
		Unit:   reading.Unit,
	}
}

// Fluctuate returns the sensor's next record, stamped with the evaluation time
func (e *Engine) Fluctuate(sensor domain.SensorRecord) domain.SensorRecord {
	sensor.Reading = e.Next(sensor.Reading, sensor.Kind, sensor.Thresholds)
	sensor.Timestamp = e.now()
	return sensor
}

// AdvanceStatus drains the battery, jitters the signal and rolls the
// connectivity dice. Battery never increases; each online roll is
// independent of the previous tick.
func (e *Engine) AdvanceStatus(status domain.SystemStatus) domain.SystemStatus {
	drain := e.rng.Float64() * MaxBatteryDrain
	signal := status.SignalStrength + e.symmetric()*MaxSignalChange
	online := e.rng.Float64() > OfflineProbability

	return domain.SystemStatus{
		BatteryLevel:   math.Max(0, status.BatteryLevel-drain),
		SignalStrength: math.Max(0, math.Min(100, signal)),
		LastUpdate:     e.now(),
		IsOnline:       online,
	}
}

// GenerateHistory synthesizes a backdated series for a trend chart.
//
// Points are spaced intervalMinutes apart from now-hours up to now, both ends
// included, oldest first: floor(hours*60/intervalMinutes)+1 points. Each value
// is an independent ±20% perturbation of the sensor's current value clamped at
// zero, not a random walk, so consecutive points are uncorrelated. Each call
// yields a new series. Windows that would exceed MaxHistoryPoints are rejected.
func (e *Engine) GenerateHistory(sensor domain.SensorRecord, hours, intervalMinutes int) ([]domain.HistoryPoint, error) {
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive, got %d minutes", domain.ErrInvalidHistoryWindow, intervalMinutes)
	}
	if hours < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative, got %d hours", domain.ErrInvalidHistoryWindow, hours)
	}
	count := int64(hours)*60/int64(intervalMinutes) + 1
	if count > MaxHistoryPoints {
		return nil, fmt.Errorf("%w: %d hours at %d minutes is %d points, limit is %d",
			domain.ErrInvalidHistoryWindow, hours, intervalMinutes, count, MaxHistoryPoints)
	}

	now := e.now()
	base := sensor.Reading.Value
	spread := base * HistoryVarianceRatio

	points := make([]domain.HistoryPoint, 0, count)
	for ago := hours * 60; ago >= 0; ago -= intervalMinutes {
		value := math.Max(0, base+e.symmetric()*spread)
		points = append(points, domain.HistoryPoint{
			Time:   now.Add(-time.Duration(ago) * time.Minute),
			Value:  value,
			Status: sensor.Thresholds.Classify(value),
		})
	}

	return points, nil
}

// GenerateRange synthesizes the series for a named trend window
func (e *Engine) GenerateRange(sensor domain.SensorRecord, r domain.TimeRange) ([]domain.HistoryPoint, error) {
	hours, interval := r.Window()
	return e.GenerateHistory(sensor, hours, interval)
}
