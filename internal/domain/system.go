package domain

import "time"

// SystemStatus is the health of the field unit hosting the sensors
type SystemStatus struct {
	BatteryLevel   float64   `json:"battery_level"`
	SignalStrength float64   `json:"signal_strength"`
	LastUpdate     time.Time `json:"last_update"`
	IsOnline       bool      `json:"is_online"`
}

// DefaultSystemStatus returns the baseline unit state
func DefaultSystemStatus(at time.Time) SystemStatus {
	return SystemStatus{
		BatteryLevel:   78,
		SignalStrength: 85,
		LastUpdate:     at,
		IsOnline:       true,
	}
}

// BatteryBand grades the battery level: above 75 good, above 25 moderate
func (s SystemStatus) BatteryBand() Status {
	switch {
	case s.BatteryLevel > 75:
		return StatusGood
	case s.BatteryLevel > 25:
		return StatusModerate
	default:
		return StatusPoor
	}
}

// SignalBand grades signal strength: above 75 good, above 35 moderate
func (s SystemStatus) SignalBand() Status {
	switch {
	case s.SignalStrength > 75:
		return StatusGood
	case s.SignalStrength > 35:
		return StatusModerate
	default:
		return StatusPoor
	}
}

// StateText returns Online or Offline
func (s SystemStatus) StateText() string {
	if s.IsOnline {
		return "Online"
	}
	return "Offline"
}
