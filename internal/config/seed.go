package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
)

// Seed is the initial state loaded from SEED_FILE. Empty sections fall
// back to the built-in baseline.
type Seed struct {
	Sensors []SensorSeed    `yaml:"sensors" validate:"dive"`
	System  *SystemSeed     `yaml:"system"`
	Devices []domain.Device `yaml:"devices" validate:"dive"`
}

// SensorSeed describes one tracked sensor
type SensorSeed struct {
	ID         string            `yaml:"id" validate:"required"`
	Name       string            `yaml:"name" validate:"required"`
	Kind       domain.SensorKind `yaml:"kind" validate:"omitempty,oneof=ph turbidity tds conductivity oxygen"`
	Unit       string            `yaml:"unit"`
	Value      float64           `yaml:"value"`
	Thresholds domain.Thresholds `yaml:"thresholds"`
}

// SystemSeed is the starting unit status
type SystemSeed struct {
	BatteryLevel   float64 `yaml:"battery_level" validate:"gte=0,lte=100"`
	SignalStrength float64 `yaml:"signal_strength" validate:"gte=0,lte=100"`
	IsOnline       bool    `yaml:"is_online"`
}

// LoadSeed reads and validates a seed file
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes and validates seed YAML
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if err := validator.New().Struct(seed); err != nil {
		return nil, fmt.Errorf("validate seed file: %w", err)
	}

	seen := make(map[string]bool, len(seed.Sensors))
	for _, s := range seed.Sensors {
		if seen[s.ID] {
			return nil, fmt.Errorf("%w: duplicate sensor id %q", domain.ErrInvalidSensor, s.ID)
		}
		seen[s.ID] = true
		if err := s.Thresholds.Validate(); err != nil {
			return nil, fmt.Errorf("sensor %s: %w", s.ID, err)
		}
	}

	taken := make(map[string]bool, len(seed.Devices))
	for _, d := range seed.Devices {
		if d.ID == "" {
			continue
		}
		if taken[d.ID] {
			return nil, fmt.Errorf("%w: duplicate device id %q", domain.ErrInvalidDevice, d.ID)
		}
		taken[d.ID] = true
	}

	// Unset IDs follow list position, skipping any claimed explicitly
	for i := range seed.Devices {
		if seed.Devices[i].ID != "" {
			continue
		}
		n := i + 1
		for taken[domain.DeviceID(n)] {
			n++
		}
		seed.Devices[i].ID = domain.DeviceID(n)
		taken[seed.Devices[i].ID] = true
	}
	return &seed, nil
}

// SensorRecords returns the seeded sensors, or the baseline when none are given
func (s *Seed) SensorRecords(at time.Time) ([]domain.SensorRecord, error) {
	if s == nil || len(s.Sensors) == 0 {
		return domain.DefaultSensors(at), nil
	}

	out := make([]domain.SensorRecord, 0, len(s.Sensors))
	for _, ss := range s.Sensors {
		rec, err := domain.NewSensorRecord(ss.ID, ss.Name, ss.Kind, ss.Value, ss.Unit, ss.Thresholds, at)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// SystemStatus returns the seeded unit status, or the baseline
func (s *Seed) SystemStatus(at time.Time) domain.SystemStatus {
	if s == nil || s.System == nil {
		return domain.DefaultSystemStatus(at)
	}
	return domain.SystemStatus{
		BatteryLevel:   s.System.BatteryLevel,
		SignalStrength: s.System.SignalStrength,
		LastUpdate:     at,
		IsOnline:       s.System.IsOnline,
	}
}

// DeviceList returns the seeded fleet, or the baseline
func (s *Seed) DeviceList() []domain.Device {
	if s == nil || len(s.Devices) == 0 {
		return domain.DefaultDevices()
	}
	out := make([]domain.Device, len(s.Devices))
	copy(out, s.Devices)
	return out
}
